package profile_test

import (
	"path/filepath"
	"testing"

	"github.com/appidartkitthana/GAS-System-management/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsZeroProfile(t *testing.T) {
	store := profile.NewFileStore(filepath.Join(t.TempDir(), "profile.json"))
	p, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, p.Name)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	store := profile.NewFileStore(filepath.Join(t.TempDir(), "profile.json"))
	want := profile.CompanyProfile{
		Name:    "Somchai Gas Shop",
		Address: "12/3 Moo 4, Chiang Mai",
		TaxID:   "0123456789012",
		Phone:   "081-234-5678",
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveOverwrites(t *testing.T) {
	store := profile.NewFileStore(filepath.Join(t.TempDir(), "profile.json"))
	require.NoError(t, store.Save(profile.CompanyProfile{Name: "First"}))
	require.NoError(t, store.Save(profile.CompanyProfile{Name: "Second"}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Name)
}
