package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Example(t *testing.T) {
	service := NewGalleryService(GalleryServiceConfig{})

	items, err := service.Generate(2, 3)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Gallery 2 - Image 1", items[0].Alt)
	assert.Equal(t, "/static/images/residencias/gallery2/1.webp", items[0].Image)
	assert.Equal(t, "/static/images/residencias/gallery2/1.jpg", items[0].Fallback)
	assert.True(t, strings.HasSuffix(items[2].Image, "gallery2/3.webp"))
	assert.True(t, strings.HasSuffix(items[2].Fallback, "gallery2/3.jpg"))
}

func TestGenerate_ZeroItemsIsEmptyNotNil(t *testing.T) {
	service := NewGalleryService(GalleryServiceConfig{})

	items, err := service.Generate(1, 0)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGenerate_RejectsInvalidArguments(t *testing.T) {
	service := NewGalleryService(GalleryServiceConfig{})

	tests := []struct {
		name         string
		galleryIndex int
		itemCount    int
	}{
		{name: "zero gallery", galleryIndex: 0, itemCount: 3},
		{name: "negative gallery", galleryIndex: -1, itemCount: 3},
		{name: "negative count", galleryIndex: 1, itemCount: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := service.Generate(tt.galleryIndex, tt.itemCount)
			assert.Nil(t, items)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
}

func TestGenerate_ReturnsIndependentSlices(t *testing.T) {
	service := NewGalleryService(GalleryServiceConfig{})

	first, err := service.Generate(4, 2)
	require.NoError(t, err)

	second, err := service.Generate(4, 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	first[0].Alt = "changed"
	assert.Equal(t, "Gallery 4 - Image 1", second[0].Alt)
}

func TestGenerate_PlaceholderHintsWithoutManifest(t *testing.T) {
	service := NewGalleryService(GalleryServiceConfig{})

	items, err := service.Generate(1, 1)
	require.NoError(t, err)

	assert.Equal(t, DefaultImageWidth, items[0].Width)
	assert.Equal(t, DefaultImageHeight, items[0].Height)
	assert.Equal(t, DefaultSizes, items[0].Sizes)
	assert.Equal(t,
		"/static/images/residencias/gallery1/1-480w.jpg 480w, /static/images/residencias/gallery1/1-800w.jpg 800w, /static/images/residencias/gallery1/1-1200w.jpg 1200w",
		items[0].Srcset,
	)
}

func TestGenerate_CustomConfiguration(t *testing.T) {
	service := NewGalleryService(GalleryServiceConfig{
		BasePath:     "/img/",
		PrimaryExt:   ".avif",
		FallbackExt:  "png",
		SrcsetWidths: []int{},
		Sizes:        "100vw",
	})

	items, err := service.Generate(3, 1)
	require.NoError(t, err)

	assert.Equal(t, "/img/gallery3/1.avif", items[0].Image)
	assert.Equal(t, "/img/gallery3/1.png", items[0].Fallback)
	assert.Equal(t, "", items[0].Srcset)
	assert.Equal(t, "100vw", items[0].Sizes)
}

func TestGenerate_UsesManifest(t *testing.T) {
	manifest := NewAssetManifest(85)
	manifest.Assets["/static/images/residencias/gallery2/1.jpg"] = ManifestEntry{URL: "/assets/1-aaaaaaaa.jpg", Width: 1000, Height: 600}
	manifest.Assets["/static/images/residencias/gallery2/1-480w.jpg"] = ManifestEntry{URL: "/assets/1-480w-bbbbbbbb.jpg", Width: 480, Height: 288}
	manifest.Assets["/static/images/residencias/gallery2/1.webp"] = ManifestEntry{URL: "/assets/1-cccccccc.webp", Width: 1000, Height: 600}

	service := NewGalleryService(GalleryServiceConfig{Manifest: manifest})

	items, err := service.Generate(2, 2)
	require.NoError(t, err)

	assert.Equal(t, "/assets/1-cccccccc.webp", items[0].Image)
	assert.Equal(t, "/assets/1-aaaaaaaa.jpg", items[0].Fallback)
	assert.Equal(t, 1000, items[0].Width)
	assert.Equal(t, 600, items[0].Height)
	assert.Equal(t, "/assets/1-480w-bbbbbbbb.jpg 480w, /assets/1-aaaaaaaa.jpg 1000w", items[0].Srcset)

	// Missing from the manifest: logical paths and placeholder hints
	assert.Equal(t, "/static/images/residencias/gallery2/2.jpg", items[1].Fallback)
	assert.Equal(t, DefaultImageWidth, items[1].Width)
	assert.Equal(t, "", items[1].Srcset)
}
