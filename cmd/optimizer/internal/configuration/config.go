package configuration

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adampresley/configinator"
)

type Config struct {
	AssetBaseURL       string `flag:"assetbaseurl" env:"ASSET_BASE_URL" default:"" description:"Prefix for asset URLs in the manifest. Empty serves them from /assets on the website"`
	AwsAccessKeyId     string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID"`
	AwsBucket          string `flag:"awsbucket" env:"AWS_BUCKET" default:"residencias-assets" description:"S3 bucket optimized assets are published to"`
	AwsEndpointUrl     string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"http://localhost:4566" description:"AWS endpoint URL"`
	AwsRegion          string `flag:"awsregion" env:"AWS_REGION" default:"us-east-1" description:"AWS region"`
	AwsSecretAccessKey string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	GalleryBasePath    string `flag:"gallerybasepath" env:"GALLERY_BASE_PATH" default:"/static/images/residencias" description:"Served root of gallery images. Must match the website"`
	ImageQuality       int    `flag:"quality" env:"IMAGE_QUALITY" default:"85" description:"Quality (1-100) applied to every re-encoded image"`
	InlineLimit        int64  `flag:"inlinelimit" env:"INLINE_LIMIT" default:"0" description:"Assets smaller than this many bytes are inlined as data URLs. 0 never inlines"`
	LogLevel           string `flag:"loglevel" env:"LOG_LEVEL" default:"info" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	ManifestPath       string `flag:"manifest" env:"MANIFEST_PATH" default:"./dist/manifest.json" description:"Where to write the asset manifest"`
	MaxWorkers         int    `flag:"maxworkers" env:"MAX_WORKERS" default:"20" description:"Maximum number of concurrent image workers"`
	OutputDir          string `flag:"out" env:"OUTPUT_DIR" default:"./dist" description:"Output directory. Assets are written to its assets folder"`
	PublishToS3        bool   `flag:"publish" env:"PUBLISH_TO_S3" default:"false" description:"Upload optimized assets to S3"`
	ResponsiveWidths   string `flag:"widths" env:"RESPONSIVE_WIDTHS" default:"480,800,1200" description:"Comma separated widths of responsive variants"`
	S3Prefix           string `flag:"s3prefix" env:"S3_PREFIX" default:"" description:"Key prefix inside the bucket"`
	SourceDir          string `flag:"src" env:"SOURCE_DIR" default:"./images/residencias" description:"Directory holding gallery{n}/{i}.webp|jpg sources"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}

// ParseWidths reads a comma separated list of positive widths.
func ParseWidths(value string) ([]int, error) {
	result := []int{}

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)

		if part == "" {
			continue
		}

		width, err := strconv.Atoi(part)

		if err != nil {
			return nil, fmt.Errorf("invalid responsive width '%s': %w", part, err)
		}

		if width <= 0 {
			return nil, fmt.Errorf("responsive width must be positive, got %d", width)
		}

		result = append(result, width)
	}

	return result, nil
}
