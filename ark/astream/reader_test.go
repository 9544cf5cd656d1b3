package astream

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ark-savior/ark/aobject"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullDocument = `{
  "saveVersion": 9,
  "gameTime": 12345.5,
  "dataFiles": ["a", "b"],
  "embeddedData": [{"path": "x", "blob": [[1, 2], [3]]}],
  "objects": [
    {
      "id": 0,
      "class": "PrimalItemResource_Wood_C",
      "properties": [{"name": "ItemQuantity", "type": "IntProperty", "value": 100}]
    },
    {
      "id": 1,
      "class": "PrimalInventoryBP_StorageBox_Small_C",
      "location": {"x": 1, "y": 2, "z": 3}
    }
  ],
  "hibernation": {
    "entries": []
  }
}
`

func readAll(t *testing.T, reader *Reader) []aobject.GameObject {
	objects := make([]aobject.GameObject, 0)
	for {
		obj, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return objects
		}
		require.NoError(t, err)
		objects = append(objects, *obj)
	}
}

func TestReader_FullDocument(t *testing.T) {
	reader := NewReader(strings.NewReader(fullDocument))
	objects := readAll(t, reader)

	require.Len(t, objects, 2)
	assert.Equal(t, "PrimalItemResource_Wood_C", objects[0].Class)
	assert.Equal(t, 100.0, objects[0].Float("ItemQuantity", 0))
	assert.Equal(t, int64(1), objects[1].ID)

	// drained readers keep returning io.EOF
	_, err := reader.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestReader_BareArray(t *testing.T) {
	reader := NewReader(strings.NewReader(`[{"id": 5, "class": "A_C"}, {"id": 6, "class": "B_C"}]`))
	objects := readAll(t, reader)
	require.Len(t, objects, 2)
	assert.Equal(t, "B_C", objects[1].Class)
}

func TestReader_EmptyObjects(t *testing.T) {
	reader := NewReader(strings.NewReader(`{"objects": [], "hibernation": {}}`))
	assert.Empty(t, readAll(t, reader))
}

func TestReader_ObjectsNotFound(t *testing.T) {
	tests := map[string]string{
		"no objects key":   `{"saveVersion": 9, "hibernation": {}}`,
		"objects not list": `{"objects": {"id": 1}}`,
		"scalar document":  `42`,
		"empty document":   ``,
	}
	for name, document := range tests {
		reader := NewReader(strings.NewReader(document))
		_, err := reader.Next()
		assert.True(t, errors.Is(err, ErrObjectsNotFound), name)

		// the failure is sticky
		_, err = reader.Next()
		assert.True(t, errors.Is(err, ErrObjectsNotFound), name)
	}
}

func TestReader_Truncated(t *testing.T) {
	reader := NewReader(strings.NewReader(`{"objects": [{"id": 1, "class": "A_C"}, {"id": 2, "cla`))
	obj, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(1), obj.ID)

	_, err = reader.Next()
	assert.Error(t, err)
	assert.False(t, errors.Is(err, io.EOF))
}

func TestOpen_PlainAndCompressed(t *testing.T) {
	dir := t.TempDir()

	plainPath := filepath.Join(dir, "TheIsland.json")
	require.NoError(t, os.WriteFile(plainPath, []byte(fullDocument), 0644))

	compressedPath := filepath.Join(dir, "TheIsland.json.zst")
	encoder, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := encoder.EncodeAll([]byte(fullDocument), nil)
	require.NoError(t, encoder.Close())
	require.NoError(t, os.WriteFile(compressedPath, compressed, 0644))

	for _, path := range []string{plainPath, compressedPath} {
		reader, err := Open(path)
		require.NoError(t, err, path)
		objects := readAll(t, reader)
		assert.Len(t, objects, 2, path)
		assert.NoError(t, reader.Close(), path)
	}
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
