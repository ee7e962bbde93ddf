package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_DiskBacked(t *testing.T) {
	r := Default()

	testCases := []struct {
		name     string
		expected bool
	}{
		{"map", false},
		{"unordered_map", false},
		{"set", false},
		{"unordered_set", false},
		{"leveldb", true},
		{"rocksdb", true},
		{"berkeleydb", true},
		{"lmdb", true},
		{"gdbm", true},
		{"tkrzw", true},
		{"unqlite", true},
		{"no_such_backend", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.IsDiskBacked(tc.name))
		})
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(Backend{Name: "map"}))

	err := r.Register(Backend{Name: "map", DiskBacked: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"map" is already registered`)

	b, ok := r.Lookup("map")
	require.True(t, ok)
	assert.False(t, b.DiskBacked, "the first registration must win")
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := New()
	require.Error(t, r.Register(Backend{}))
	assert.Empty(t, r.Names())
}

func TestRegistry_Names(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(Backend{Name: "set"}))
	require.NoError(t, r.Register(Backend{Name: "leveldb", DiskBacked: true}))
	require.NoError(t, r.Register(Backend{Name: "map"}))

	assert.Equal(t, []string{"leveldb", "map", "set"}, r.Names())
}

func TestYokan_RegisterTwiceFails(t *testing.T) {
	r := Default()
	require.Error(t, (&Yokan{}).Register(r))
}
