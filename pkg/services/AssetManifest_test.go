package services

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAssetManifest_Missing(t *testing.T) {
	_, err := LoadAssetManifest(filepath.Join(t.TempDir(), "nope.json"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestAssetManifest_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "manifest.json")

	manifest := NewAssetManifest(70)
	manifest.Assets["/static/images/residencias/gallery1/1.jpg"] = ManifestEntry{
		URL:    "/assets/1-0123abcd.jpg",
		File:   "assets/1-0123abcd.jpg",
		Width:  800,
		Height: 600,
	}
	manifest.Assets["/static/images/residencias/gallery1/icon.png"] = ManifestEntry{URL: "data:image/png;base64,AAAA"}

	require.NoError(t, manifest.Save(path))

	loaded, err := LoadAssetManifest(path)
	require.NoError(t, err)

	assert.Equal(t, 70, loaded.Quality)
	assert.Equal(t, manifest.Assets, loaded.Assets)
	assert.Equal(t, []string{"assets/1-0123abcd.jpg"}, loaded.Files())
}

func TestAssetManifest_NilLookupFallsBack(t *testing.T) {
	var manifest *AssetManifest

	_, ok := manifest.Lookup("/x.jpg")
	assert.False(t, ok)
	assert.Equal(t, "/x.jpg", manifest.URL("/x.jpg"))
}
