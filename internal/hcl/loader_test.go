package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/hepnos-wizard/internal/config"
	"github.com/vk/hepnos-wizard/internal/hepnos"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_FullProfile(t *testing.T) {
	// --- Arrange ---
	path := writeFile(t, t.TempDir(), "hepnos.hcl", `
address          = "ofi+tcp"
progress_xstream = true
group_file       = "cluster.ssg"

rpc {
  xstreams = 4
  pools    = 2
}

providers {
  storage = 3
  queue   = 1
}

databases {
  type        = "rocksdb"
  path_prefix = format("%s/hepnos", env.SCRATCH)
  dataset     = 2
  run         = 1
  subrun      = 1
  event       = max(4, 8)
  product     = 0
}
`)
	loader := NewLoaderWithEnv([]string{"SCRATCH=/scratch/u1", "IGNORED"})

	// --- Act ---
	profile, err := loader.Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	p := config.Params(profile)

	expected := hepnos.Params{
		Address:            "ofi+tcp",
		UseProgressXStream: true,
		NumRPCXStreams:     4,
		NumRPCPools:        2,
		NumProviders:       3,
		NumQueueProviders:  1,
		Databases:          hepnos.DatabaseCounts{Dataset: 2, Run: 1, Subrun: 1, Event: 8, Product: 0},
		DatabaseType:       "rocksdb",
		PathPrefix:         "/scratch/u1/hepnos",
		GroupFile:          "cluster.ssg",
	}
	assert.Equal(t, expected, p)
}

func TestLoader_PartialProfileKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "p.hcl", `
address = upper("na+sm")
databases {
  event = 4
}
`)

	profile, err := NewLoaderWithEnv(nil).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Nil(t, profile.NumProviders)
	assert.Nil(t, profile.DatabaseType)

	p := config.Params(profile)
	assert.Equal(t, "NA+SM", p.Address)
	assert.Equal(t, 4, p.Databases.Event)
	assert.Equal(t, 1, p.Databases.Dataset)
	assert.Equal(t, 1, p.NumProviders)
}

func TestLoader_DirectoryMergesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "10-base.hcl", `
address = "na+sm"
providers {
  storage = 2
}
`)
	writeFile(t, dir, "20-site.hcl", `
providers {
  queue = 3
}
`)
	writeFile(t, dir, "README.md", `not a profile`)

	profile, err := NewLoaderWithEnv(nil).Load(context.Background(), dir)
	require.NoError(t, err)

	p := config.Params(profile)
	assert.Equal(t, "na+sm", p.Address)
	assert.Equal(t, 2, p.NumProviders)
	assert.Equal(t, 3, p.NumQueueProviders)
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "syntax error",
			content: "rpc {\n  xstreams = 2\n",
			errMsg:  "failed to parse HCL file",
		},
		{
			name:    "unknown attribute",
			content: `colour = "blue"`,
			errMsg:  "failed to decode HCL file",
		},
		{
			name:    "wrong type",
			content: "providers {\n  storage = \"many\"\n}\n",
			errMsg:  "failed to decode HCL file",
		},
		{
			name:    "missing env variable",
			content: `address = env.NOPE`,
			errMsg:  "failed to decode HCL file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "bad.hcl", tc.content)
			_, err := NewLoaderWithEnv(nil).Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLoader_MissingPath(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error accessing profile")
}

func TestLoader_EmptyDirectory(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .hcl files found")
}
