package services

import (
	"fmt"
	"strings"

	"github.com/adampresley/residencias/pkg/models"
)

const (
	// DefaultGalleryBasePath is the served root for gallery images. The
	// image optimizer keys its manifest by paths under this root.
	DefaultGalleryBasePath = "/static/images/residencias"
	DefaultPrimaryExt      = "webp"
	DefaultFallbackExt     = "jpg"
	DefaultSizes           = "(max-width: 640px) 100vw, (max-width: 1024px) 50vw, 33vw"

	// Placeholder hints used when no manifest is loaded. These are not measured.
	DefaultImageWidth  = 1200
	DefaultImageHeight = 800
)

var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	DefaultSrcsetWidths = []int{480, 800, 1200}
)

type GalleryServicer interface {
	Generate(galleryIndex, itemCount int) ([]models.GalleryItem, error)
}

type GalleryServiceConfig struct {
	BasePath      string
	PrimaryExt    string
	FallbackExt   string
	SrcsetWidths  []int
	Sizes         string
	DefaultWidth  int
	DefaultHeight int
	Manifest      *AssetManifest
}

type GalleryService struct {
	basePath      string
	primaryExt    string
	fallbackExt   string
	srcsetWidths  []int
	sizes         string
	defaultWidth  int
	defaultHeight int
	manifest      *AssetManifest
}

func NewGalleryService(config GalleryServiceConfig) GalleryService {
	if config.BasePath == "" {
		config.BasePath = DefaultGalleryBasePath
	}

	if config.PrimaryExt == "" {
		config.PrimaryExt = DefaultPrimaryExt
	}

	if config.FallbackExt == "" {
		config.FallbackExt = DefaultFallbackExt
	}

	if config.SrcsetWidths == nil {
		config.SrcsetWidths = DefaultSrcsetWidths
	}

	if config.Sizes == "" {
		config.Sizes = DefaultSizes
	}

	if config.DefaultWidth <= 0 {
		config.DefaultWidth = DefaultImageWidth
	}

	if config.DefaultHeight <= 0 {
		config.DefaultHeight = DefaultImageHeight
	}

	widths := make([]int, len(config.SrcsetWidths))
	copy(widths, config.SrcsetWidths)

	return GalleryService{
		basePath:      strings.TrimSuffix(config.BasePath, "/"),
		primaryExt:    strings.TrimPrefix(config.PrimaryExt, "."),
		fallbackExt:   strings.TrimPrefix(config.FallbackExt, "."),
		srcsetWidths:  widths,
		sizes:         config.Sizes,
		defaultWidth:  config.DefaultWidth,
		defaultHeight: config.DefaultHeight,
		manifest:      config.Manifest,
	}
}

/*
Generate returns itemCount gallery items for a gallery, numbered from 1.
Zero items yields an empty slice. A gallery index below 1 or a negative
item count is rejected with ErrInvalidArgument.
*/
func (s GalleryService) Generate(galleryIndex, itemCount int) ([]models.GalleryItem, error) {
	if galleryIndex <= 0 {
		return nil, fmt.Errorf("%w: gallery index must be positive, got %d", ErrInvalidArgument, galleryIndex)
	}

	if itemCount < 0 {
		return nil, fmt.Errorf("%w: item count must not be negative, got %d", ErrInvalidArgument, itemCount)
	}

	result := make([]models.GalleryItem, 0, itemCount)
	dir := s.GalleryDir(galleryIndex)

	for i := 1; i <= itemCount; i++ {
		image := fmt.Sprintf("%s/%d.%s", dir, i, s.primaryExt)
		fallback := fmt.Sprintf("%s/%d.%s", dir, i, s.fallbackExt)
		width, height := s.dimensions(fallback)

		result = append(result, models.GalleryItem{
			Image:    s.manifest.URL(image),
			Fallback: s.manifest.URL(fallback),
			Alt:      fmt.Sprintf("Gallery %d - Image %d", galleryIndex, i),
			Srcset:   s.srcset(dir, i, fallback, width),
			Sizes:    s.sizes,
			Width:    width,
			Height:   height,
		})
	}

	return result, nil
}

func (s GalleryService) GalleryDir(galleryIndex int) string {
	return fmt.Sprintf("%s/gallery%d", s.basePath, galleryIndex)
}

func (s GalleryService) dimensions(fallback string) (int, int) {
	if entry, ok := s.manifest.Lookup(fallback); ok && entry.Width > 0 && entry.Height > 0 {
		return entry.Width, entry.Height
	}

	return s.defaultWidth, s.defaultHeight
}

/*
srcset lists the fallback-format width variants. Without a manifest
every configured width is listed. With one, only variants the optimizer
actually produced are listed, followed by the full size image.
*/
func (s GalleryService) srcset(dir string, index int, fallback string, fullWidth int) string {
	candidates := []string{}

	for _, w := range s.srcsetWidths {
		variant := VariantPath(dir, fmt.Sprint(index), w, s.fallbackExt)

		if s.manifest == nil {
			candidates = append(candidates, fmt.Sprintf("%s %dw", variant, w))
			continue
		}

		if entry, ok := s.manifest.Lookup(variant); ok {
			candidates = append(candidates, fmt.Sprintf("%s %dw", entry.URL, entry.Width))
		}
	}

	if s.manifest != nil {
		if _, ok := s.manifest.Lookup(fallback); ok {
			candidates = append(candidates, fmt.Sprintf("%s %dw", s.manifest.URL(fallback), fullWidth))
		}
	}

	return strings.Join(candidates, ", ")
}

// VariantPath names a width variant, e.g. /base/gallery2/1-480w.jpg.
func VariantPath(dir, stem string, width int, ext string) string {
	return fmt.Sprintf("%s/%s-%dw.%s", dir, stem, width, ext)
}
