package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/createbucketoptions"
	"github.com/adampresley/adamgokit/s3/listoptions"
	"github.com/adampresley/adamgokit/slices"
	"github.com/alitto/pond/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"go.uber.org/multierr"
	"golang.org/x/image/webp"
)

const (
	DefaultImageQuality = 85
	DefaultMaxWorkers   = 20
	AssetsFolder        = "assets"
)

var (
	ErrDuplicateAsset = fmt.Errorf("duplicate asset")

	validSourceExt = []string{".jpg", ".jpeg", ".png", ".webp"}
)

type ImageOptimizer interface {
	Optimize(ctx context.Context) (*AssetManifest, error)
}

type ImageOptimizerConfig struct {
	AssetBaseURL string
	AwsBucket    string
	AwsRegion    string
	BasePath     string
	InlineLimit  int64
	ManifestPath string
	MaxWorkers   int
	OutputDir    string
	Quality      int
	S3Client     s3.S3Client
	S3Prefix     string
	SourceDir    string
	Widths       []int
}

/*
ImageOptimizerService re-encodes gallery source images with one global
quality, writes them under OutputDir/assets with content hashed names
and records the result in an asset manifest. When an S3 client is
configured the output is also published to a bucket.
*/
type ImageOptimizerService struct {
	assetBaseURL string
	awsBucket    string
	awsRegion    string
	basePath     string
	inlineLimit  int64
	manifestPath string
	maxWorkers   int
	outputDir    string
	quality      int
	s3Client     s3.S3Client
	s3Prefix     string
	sourceDir    string
	widths       []int
}

func NewImageOptimizerService(config ImageOptimizerConfig) ImageOptimizerService {
	if config.Quality <= 0 || config.Quality > 100 {
		config.Quality = DefaultImageQuality
	}

	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultMaxWorkers
	}

	if config.BasePath == "" {
		config.BasePath = DefaultGalleryBasePath
	}

	if config.Widths == nil {
		config.Widths = DefaultSrcsetWidths
	}

	return ImageOptimizerService{
		assetBaseURL: strings.TrimSuffix(config.AssetBaseURL, "/"),
		awsBucket:    config.AwsBucket,
		awsRegion:    config.AwsRegion,
		basePath:     strings.TrimSuffix(config.BasePath, "/"),
		inlineLimit:  config.InlineLimit,
		manifestPath: config.ManifestPath,
		maxWorkers:   config.MaxWorkers,
		outputDir:    config.OutputDir,
		quality:      config.Quality,
		s3Client:     config.S3Client,
		s3Prefix:     strings.Trim(config.S3Prefix, "/"),
		sourceDir:    config.SourceDir,
		widths:       config.Widths,
	}
}

func (o ImageOptimizerService) Optimize(ctx context.Context) (*AssetManifest, error) {
	var (
		err     error
		sources []string
		mu      sync.Mutex
		errs    error
	)

	slog.Info("starting image optimization...", "sourceDir", o.sourceDir, "outputDir", o.outputDir, "quality", o.quality)

	if sources, err = o.findSources(); err != nil {
		return nil, err
	}

	if err = os.MkdirAll(filepath.Join(o.outputDir, AssetsFolder), 0o755); err != nil {
		return nil, fmt.Errorf("error creating output directory '%s': %w", o.outputDir, err)
	}

	manifest := NewAssetManifest(o.quality)
	pool := pond.NewPool(o.maxWorkers, pond.WithContext(ctx))

	for _, source := range sources {
		pool.Submit(func() {
			entries, err := o.processImage(source)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				slog.Error("error optimizing image", "source", source, "error", err)
				errs = multierr.Append(errs, err)
				return
			}

			for logical, entry := range entries {
				if other, ok := manifest.Assets[logical]; ok {
					err = fmt.Errorf("%w: '%s' and '%s' both produce '%s'", ErrDuplicateAsset, other.Source, entry.Source, logical)
					slog.Error("error optimizing image", "source", source, "error", err)
					errs = multierr.Append(errs, err)
					continue
				}

				manifest.Assets[logical] = entry
			}
		})
	}

	_ = pool.Stop().Wait()

	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("image optimization cancelled: %w", err)
	}

	if errs != nil {
		return nil, errs
	}

	if o.manifestPath != "" {
		if err = manifest.Save(o.manifestPath); err != nil {
			return nil, err
		}
	}

	if o.s3Client != nil {
		if err = o.publish(manifest); err != nil {
			return nil, err
		}
	}

	slog.Info("image optimization finished", "numSources", len(sources), "numAssets", len(manifest.Assets))
	return manifest, nil
}

func (o ImageOptimizerService) findSources() ([]string, error) {
	result := []string{}

	err := filepath.WalkDir(o.sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))

		if slices.IsInSlice(ext, validSourceExt) {
			result = append(result, path)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("error scanning source directory '%s': %w", o.sourceDir, err)
	}

	return result, nil
}

/*
processImage optimizes one source image and its width variants. The
returned map is keyed by logical path.
*/
func (o ImageOptimizerService) processImage(source string) (map[string]ManifestEntry, error) {
	var (
		err     error
		b       []byte
		rel     string
		img     image.Image
		encoded []byte
	)

	if b, err = os.ReadFile(source); err != nil {
		return nil, fmt.Errorf("error reading source image '%s': %w", source, err)
	}

	if rel, err = filepath.Rel(o.sourceDir, source); err != nil {
		return nil, fmt.Errorf("error resolving relative path for '%s': %w", source, err)
	}

	rel = filepath.ToSlash(rel)
	ext := CanonicalExt(filepath.Ext(rel))
	stem := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	dir := o.basePath

	if d := filepath.ToSlash(filepath.Dir(rel)); d != "." {
		dir = dir + "/" + d
	}

	logical := fmt.Sprintf("%s/%s.%s", dir, stem, ext)
	result := map[string]ManifestEntry{}

	/*
	 * WebP has no encoder in our stack, so WebP sources are measured
	 * and published as-is.
	 */
	if ext == "webp" {
		config, err := webp.DecodeConfig(bytes.NewReader(b))

		if err != nil {
			return nil, fmt.Errorf("error decoding webp image '%s': %w", source, err)
		}

		if result[logical], err = o.writeAsset(source, stem, ext, b, config.Width, config.Height); err != nil {
			return nil, err
		}

		return result, nil
	}

	if img, err = imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true)); err != nil {
		return nil, fmt.Errorf("error decoding image '%s': %w", source, err)
	}

	if encoded, err = o.encode(img, ext); err != nil {
		return nil, fmt.Errorf("error encoding image '%s': %w", source, err)
	}

	bounds := img.Bounds()

	if result[logical], err = o.writeAsset(source, stem, ext, encoded, bounds.Dx(), bounds.Dy()); err != nil {
		return nil, err
	}

	for _, width := range o.widths {
		if width <= 0 || width >= bounds.Dx() {
			continue
		}

		variant := resize.Resize(uint(width), 0, img, resize.Lanczos3)

		if encoded, err = o.encode(variant, ext); err != nil {
			return nil, fmt.Errorf("error encoding %dw variant of '%s': %w", width, source, err)
		}

		variantStem := fmt.Sprintf("%s-%dw", stem, width)
		variantBounds := variant.Bounds()
		entry, err := o.writeAsset(source, variantStem, ext, encoded, variantBounds.Dx(), variantBounds.Dy())

		if err != nil {
			return nil, err
		}

		result[VariantPath(dir, stem, width, ext)] = entry
	}

	return result, nil
}

func (o ImageOptimizerService) encode(img image.Image, ext string) ([]byte, error) {
	var (
		err error
		buf bytes.Buffer
	)

	switch ext {
	case "jpg", "jpeg":
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(o.quality))

	case "png":
		err = imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(PNGCompressionLevel(o.quality)))

	default:
		err = fmt.Errorf("unsupported image format '%s'", ext)
	}

	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

/*
PNGCompressionLevel maps the global quality onto PNG compression. PNG is
lossless, so quality only trades encode time for size.
*/
func PNGCompressionLevel(quality int) png.CompressionLevel {
	if quality >= 95 {
		return png.BestSpeed
	}

	return png.BestCompression
}

func (o ImageOptimizerService) writeAsset(source, stem, ext string, data []byte, width, height int) (ManifestEntry, error) {
	hash := ContentHash(data)

	entry := ManifestEntry{
		Source: filepath.ToSlash(source),
		Hash:   hash,
		Format: ext,
		Width:  width,
		Height: height,
		Bytes:  int64(len(data)),
	}

	if int64(len(data)) < o.inlineLimit {
		entry.URL = fmt.Sprintf("data:%s;base64,%s", MimeType(ext), base64.StdEncoding.EncodeToString(data))
		return entry, nil
	}

	entry.File = HashedAssetName(stem, hash, ext)
	entry.URL = o.assetBaseURL + "/" + entry.File

	if err := os.WriteFile(filepath.Join(o.outputDir, filepath.FromSlash(entry.File)), data, 0o644); err != nil {
		return entry, fmt.Errorf("error writing asset '%s': %w", entry.File, err)
	}

	return entry, nil
}

/*
CanonicalExt lower-cases a file extension and files .jpeg under jpg, the
extension the gallery generator asks for.
*/
func CanonicalExt(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))

	if ext == "jpeg" {
		return "jpg"
	}

	return ext
}

// HashedAssetName follows the assets/[name]-[hash].[ext] pattern.
func HashedAssetName(stem, hash, ext string) string {
	return fmt.Sprintf("%s/%s-%s.%s", AssetsFolder, stem, hash, ext)
}

func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:8]
}

func MimeType(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	}

	return "application/octet-stream"
}

func (o ImageOptimizerService) publish(manifest *AssetManifest) error {
	var (
		err      error
		existing []string
		f        *os.File
	)

	if err = o.ensureBucketExists(o.awsBucket); err != nil {
		return err
	}

	if existing, err = o.listPublishedAssets(); err != nil {
		return err
	}

	pending, skipped := PendingUploads(manifest.Files(), existing, o.s3Prefix)
	published := 0

	for key, file := range pending {
		if f, err = os.Open(filepath.Join(o.outputDir, filepath.FromSlash(file))); err != nil {
			return fmt.Errorf("error opening asset '%s' for upload: %w", file, err)
		}

		_, err = o.s3Client.Put(o.awsBucket, key, f)
		_ = f.Close()

		if err != nil {
			return fmt.Errorf("error uploading asset '%s' to S3: %w", key, err)
		}

		published++
	}

	slog.Info("published optimized assets", "bucket", o.awsBucket, "uploaded", published, "skipped", skipped)
	return nil
}

/*
PendingUploads maps bucket keys to the local asset files that still need
uploading, and counts the files skipped because their key is already in
the bucket. Names are content hashed, so an existing key already holds
identical bytes.
*/
func PendingUploads(files, existing []string, prefix string) (map[string]string, int) {
	result := map[string]string{}
	skipped := 0

	for _, file := range files {
		key := file

		if prefix != "" {
			key = prefix + "/" + file
		}

		if slices.IsInSlice(key, existing) {
			skipped++
			continue
		}

		result[key] = file
	}

	return result, skipped
}

func (o ImageOptimizerService) listPublishedAssets() ([]string, error) {
	prefix := AssetsFolder

	if o.s3Prefix != "" {
		prefix = o.s3Prefix + "/" + AssetsFolder
	}

	response, err := o.s3Client.List(
		o.awsBucket,
		prefix,
		listoptions.WithGetAll(),
		listoptions.WithFilter(func(obj types.Object) bool {
			ext := strings.ToLower(filepath.Ext(aws.ToString(obj.Key)))
			return slices.IsInSlice(ext, validSourceExt)
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("error listing published assets: %w", err)
	}

	return slices.Map(response.Objects, func(input s3.Object, index int) string {
		return input.Key
	}), nil
}

func (o ImageOptimizerService) ensureBucketExists(bucketName string) error {
	var (
		err    error
		exists bool
	)

	exists, err = o.s3Client.BucketExists(bucketName)

	if err != nil {
		return fmt.Errorf("error ensuring bucket '%s' exists: %w", bucketName, err)
	}

	if exists {
		return nil
	}

	slog.Info("creating bucket", "bucketName", bucketName)

	err = o.s3Client.CreateBucket(
		bucketName,
		createbucketoptions.WithRegion(o.awsRegion),
	)

	if err != nil {
		return fmt.Errorf("error creating bucket '%s': %w", bucketName, err)
	}

	return nil
}
