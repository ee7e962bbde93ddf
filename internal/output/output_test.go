package output

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Stdout(t *testing.T) {
	var buf bytes.Buffer
	w, err := Open("", &buf)
	require.NoError(t, err)

	_, err = io.WriteString(w, "hello")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, "hello", buf.String())
}

func TestOpen_TruncatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hepnos.json")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous content"), 0o600))

	w, err := Open(path, nil)
	require.NoError(t, err)
	_, err = io.WriteString(w, "{}")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestOpen_MissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "out.json"), nil)
	require.Error(t, err)
}
