package hepnos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObjectKind(t *testing.T) {
	for _, kind := range ObjectKinds() {
		k, err := ParseObjectKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, k)
	}

	for _, bad := range []string{"", "datasets", "Event", "file"} {
		_, err := ParseObjectKind(bad)
		assert.ErrorIs(t, err, ErrInvalidObjectKind, "input %q", bad)
	}
}

func TestObjectKind_DefaultBackend(t *testing.T) {
	assert.Equal(t, "map", KindDataset.DefaultBackend())
	assert.Equal(t, "set", KindRun.DefaultBackend())
	assert.Equal(t, "set", KindSubrun.DefaultBackend())
	assert.Equal(t, "set", KindEvent.DefaultBackend())
	assert.Equal(t, "map", KindProduct.DefaultBackend())
}

func TestObjectKind_DatabaseName(t *testing.T) {
	assert.Equal(t, "hepnos-datasets-0", KindDataset.DatabaseName(0))
	assert.Equal(t, "hepnos-subruns-12", KindSubrun.DatabaseName(12))
}
