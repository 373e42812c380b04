package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNew(t *testing.T) {
	registryPath := filepath.Join(t.TempDir(), "nested", "registry.json")

	reg, err := NewRegistry(registryPath)
	require.NoError(t, err)
	assert.Empty(t, reg.List())
	assert.Equal(t, registryPath, reg.Path())
}

func TestRegistryLoadExisting(t *testing.T) {
	registryPath := filepath.Join(t.TempDir(), "registry.json")
	fixture := `{
  "version": "1.0",
  "themes": [
    {"id": "brand", "name": "Brand", "location": "themes/brand.yaml", "registered_at": "2026-01-02T15:04:05Z"}
  ]
}`
	require.NoError(t, os.WriteFile(registryPath, []byte(fixture), 0o644))

	reg, err := NewRegistry(registryPath)
	require.NoError(t, err)

	themes := reg.List()
	require.Len(t, themes, 1)
	assert.Equal(t, "brand", themes[0].ID)
	assert.Equal(t, "themes/brand.yaml", themes[0].Location)
}

func TestRegistryCorruptFile(t *testing.T) {
	registryPath := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(registryPath, []byte("{not json"), 0o644))

	_, err := NewRegistry(registryPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse registry.json")
}

func TestRegistryAddGetRemove(t *testing.T) {
	reg, err := NewRegistry(filepath.Join(t.TempDir(), "registry.json"))
	require.NoError(t, err)

	entry := Entry{ID: "brand", Name: "Brand", Location: "brand.yaml", RegisteredAt: time.Now()}
	require.NoError(t, reg.Add(entry))

	err = reg.Add(entry)
	require.ErrorIs(t, err, ErrDuplicate)

	got, err := reg.Get("brand")
	require.NoError(t, err)
	assert.Equal(t, "Brand", got.Name)

	entry.Description = "updated"
	require.NoError(t, reg.Update(entry))
	got, err = reg.Get("brand")
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Description)

	require.NoError(t, reg.Remove("brand"))
	_, err = reg.Get("brand")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, reg.Remove("brand"), ErrNotFound)
	require.ErrorIs(t, reg.Update(entry), ErrNotFound)
}

func TestRegistryRejectsInvalidID(t *testing.T) {
	reg, err := NewRegistry(filepath.Join(t.TempDir(), "registry.json"))
	require.NoError(t, err)

	require.Error(t, reg.Add(Entry{ID: "Bad ID", Location: "x.yaml"}))
	assert.Empty(t, reg.List())
}

func TestRegistryListIsSortedCopy(t *testing.T) {
	reg, err := NewRegistry(filepath.Join(t.TempDir(), "registry.json"))
	require.NoError(t, err)

	require.NoError(t, reg.Add(Entry{ID: "zeta", Location: "z.yaml"}))
	require.NoError(t, reg.Add(Entry{ID: "alpha", Location: "a.yaml"}))

	list := reg.List()
	require.Equal(t, "alpha", list[0].ID)
	list[0].ID = "mutated"

	_, err = reg.Get("alpha")
	require.NoError(t, err)
}

func TestRegistrySaveRoundTrip(t *testing.T) {
	registryPath := filepath.Join(t.TempDir(), "registry.json")

	reg, err := NewRegistry(registryPath)
	require.NoError(t, err)
	require.NoError(t, reg.Add(Entry{ID: "brand", Name: "Brand", Location: "https://example.com/brand.json"}))
	require.NoError(t, reg.Save())

	_, err = os.Stat(registryPath + ".tmp")
	assert.True(t, os.IsNotExist(err))

	reopened, err := NewRegistry(registryPath)
	require.NoError(t, err)
	got, err := reopened.Get("brand")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/brand.json", got.Location)
}
