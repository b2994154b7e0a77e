package pantry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maibrennan/larder/internal/pantry"
)

func TestStore_LoadMissingFileIsEmptyState(t *testing.T) {
	t.Parallel()

	store := pantry.NewStore(filepath.Join(t.TempDir(), "pantry.json"))

	s, err := store.Load()
	require.NoError(t, err)

	available, unavailable := s.Names()
	assert.Empty(t, available)
	assert.Empty(t, unavailable)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "pantry.json")
	store := pantry.NewStore(path)

	s, err := pantry.FromNames([]string{"milk", "eggs"}, []string{"saffron"})
	require.NoError(t, err)
	require.NoError(t, store.Save(s))

	loaded, err := store.Load()
	require.NoError(t, err)

	available, unavailable := loaded.Names()
	assert.Equal(t, []string{"eggs", "milk"}, available)
	assert.Equal(t, []string{"saffron"}, unavailable)
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := pantry.NewStore(filepath.Join(dir, "pantry.json"))

	s := pantry.NewState()
	_, _, err := s.Toggle("milk")
	require.NoError(t, err)
	require.NoError(t, store.Save(s))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "pantry.json", files[0].Name())
}

func TestStore_LoadRejectsCorruptState(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pantry.json")

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := pantry.NewStore(path).Load()
	assert.Error(t, err)

	overlap := `{"available": ["milk"], "unavailable": ["milk"]}`
	require.NoError(t, os.WriteFile(path, []byte(overlap), 0o644))
	_, err = pantry.NewStore(path).Load()
	assert.ErrorIs(t, err, pantry.ErrContractViolation)
}
