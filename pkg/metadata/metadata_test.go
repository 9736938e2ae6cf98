package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/galaxycheck/pkg/errors"
)

// writeFile writes test content to a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestParseMetadata tests decoding of valid metadata files.
//
// It verifies:
//   - JSON objects decode with key order preserved
//   - JSON arrays and scalars decode to their natural values
//   - Nested values are reachable through the ordered map
func TestParseMetadata(t *testing.T) {
	t.Run("object preserves key order", func(t *testing.T) {
		path := writeFile(t, "meta.json", `{"zebra": 1, "alpha": 2, "mid": 3}`)

		value, err := ParseMetadata(path)
		require.NoError(t, err)

		ordered, ok := value.(*orderedmap.OrderedMap)
		require.True(t, ok)
		assert.Equal(t, []string{"zebra", "alpha", "mid"}, ordered.Keys())
	})

	t.Run("nested values", func(t *testing.T) {
		path := writeFile(t, "meta.json", `{"collection_info": {"namespace": "ns", "name": "coll"}}`)

		value, err := ParseMetadata(path)
		require.NoError(t, err)

		ordered := value.(*orderedmap.OrderedMap)
		info, ok := ordered.Get("collection_info")
		require.True(t, ok)

		nested, ok := info.(orderedmap.OrderedMap)
		require.True(t, ok)
		namespace, _ := nested.Get("namespace")
		assert.Equal(t, "ns", namespace)
	})

	t.Run("array document", func(t *testing.T) {
		path := writeFile(t, "meta.json", `["1.0.0", "1.1.0"]`)

		value, err := ParseMetadata(path)
		require.NoError(t, err)
		assert.Equal(t, []interface{}{"1.0.0", "1.1.0"}, value)
	})

	t.Run("scalar document", func(t *testing.T) {
		path := writeFile(t, "meta.json", `42`)

		value, err := ParseMetadata(path)
		require.NoError(t, err)
		assert.Equal(t, float64(42), value)
	})
}

// TestParseMetadataErrors tests the loader's failure modes.
//
// It verifies:
//   - A missing path fails with NotFoundError carrying the path
//   - Invalid JSON fails with MalformedDataError carrying the path
func TestParseMetadataErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "nope.json")

		value, err := ParseMetadata(missing)
		assert.Nil(t, value)

		nfe, ok := errors.IsNotFoundError(err)
		require.True(t, ok)
		assert.Equal(t, missing, nfe.Path)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeFile(t, "bad.json", `{"unterminated": `)

		value, err := ParseMetadata(path)
		assert.Nil(t, value)

		mde, ok := errors.IsMalformedDataError(err)
		require.True(t, ok)
		assert.Equal(t, path, mde.Path)
	})

	t.Run("invalid non-object json", func(t *testing.T) {
		path := writeFile(t, "bad.json", `[1, 2,`)

		_, err := ParseMetadata(path)
		_, ok := errors.IsMalformedDataError(err)
		assert.True(t, ok)
	})
}
