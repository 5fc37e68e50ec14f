package persist_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statkit/persist"
)

// Composite shapes crossing the any envelope in these tests.
func init() {
	persist.Register([]float64(nil))
	persist.Register(map[string]any{})
}

// TestSaveLoad_Scalars verifies round-trip fidelity for the unregistered
// basic types.
func TestSaveLoad_Scalars(t *testing.T) {
	dir := t.TempDir()

	for name, v := range map[string]any{
		"int":    42,
		"float":  3.25,
		"string": "snapshot",
		"bool":   true,
	} {
		path := filepath.Join(dir, name+".bin")
		require.NoError(t, persist.Save(path, v))

		got, err := persist.Load(path)
		require.NoError(t, err)
		assert.Equal(t, v, got, "round trip of %s", name)
	}
}

// TestSaveLoad_Sequence verifies round-trip fidelity for a registered slice.
func TestSaveLoad_Sequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.bin")
	v := []float64{1.5, -2.5, 0}

	require.NoError(t, persist.Save(path, v))
	got, err := persist.Load(path)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

// TestSaveLoad_NestedMapping verifies round-trip fidelity for a registered
// tree-shaped mapping with mixed leaf types.
func TestSaveLoad_NestedMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested.bin")
	v := map[string]any{
		"count": 3,
		"label": "run-1",
		"inner": map[string]any{"rate": 0.5},
	}

	require.NoError(t, persist.Save(path, v))
	got, err := persist.Load(path)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

// TestLoad_MissingFile keeps the os error chain intact so callers can match
// fs.ErrNotExist.
func TestLoad_MissingFile(t *testing.T) {
	_, err := persist.Load(filepath.Join(t.TempDir(), "absent.bin"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// TestLoad_CorruptStream verifies ErrDecode on bytes that never were a gob
// envelope.
func TestLoad_CorruptStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.bin")
	require.NoError(t, os.WriteFile(path, []byte("not a gob stream"), 0o600))

	_, err := persist.Load(path)
	assert.ErrorIs(t, err, persist.ErrDecode)
}

// TestSave_UnregisteredType verifies encode failure cleans up the partial
// file instead of leaving torn bytes.
func TestSave_UnregisteredType(t *testing.T) {
	type unregistered struct{ X int }
	path := filepath.Join(t.TempDir(), "torn.bin")

	err := persist.Save(path, unregistered{X: 1})
	require.Error(t, err, "an unregistered composite type cannot cross the any envelope")

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, fs.ErrNotExist, "partial file must be removed")
}

// TestSave_Overwrite verifies a second Save fully replaces the first snapshot.
func TestSave_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.bin")

	require.NoError(t, persist.Save(path, "first"))
	require.NoError(t, persist.Save(path, "second, longer payload"))

	got, err := persist.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "second, longer payload", got)
}
