package models

/*
GalleryItem describes one displayable gallery image. Image is the
modern format (WebP) and Fallback the JPEG at the same logical location.
Srcset, Sizes, Width and Height are responsive rendering hints. Width
and Height are only measured values when an asset manifest supplied them.
*/
type GalleryItem struct {
	Image    string `json:"image"`
	Fallback string `json:"fallback"`
	Alt      string `json:"alt"`
	Srcset   string `json:"srcset,omitempty"`
	Sizes    string `json:"sizes,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}
