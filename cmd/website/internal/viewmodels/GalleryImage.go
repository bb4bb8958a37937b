package viewmodels

import (
	"html/template"

	"github.com/adampresley/residencias/pkg/models"
)

/*
GalleryImage is a gallery item ready for the gallery partial. Image
URLs may be inlined data: URLs from the asset manifest, which
html/template would otherwise replace with ZgotmplZ, so they are carried
as trusted URL and srcset values.
*/
type GalleryImage struct {
	Image    template.Srcset
	Fallback template.URL
	Alt      string
	Srcset   template.Srcset
	Sizes    string
	Width    int
	Height   int
}

func NewGalleryImages(items []models.GalleryItem) []GalleryImage {
	result := make([]GalleryImage, 0, len(items))

	for _, item := range items {
		result = append(result, GalleryImage{
			Image:    template.Srcset(item.Image),
			Fallback: template.URL(item.Fallback),
			Alt:      item.Alt,
			Srcset:   template.Srcset(item.Srcset),
			Sizes:    item.Sizes,
			Width:    item.Width,
			Height:   item.Height,
		})
	}

	return result
}
