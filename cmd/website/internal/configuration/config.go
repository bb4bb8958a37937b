package configuration

import "github.com/adampresley/configinator"

type Config struct {
	AssetsDir        string `flag:"assetsdir" env:"ASSETS_DIR" default:"./dist/assets" description:"Directory of optimized, hashed image assets served under /assets/"`
	ContactFromEmail string `flag:"contactfrom" env:"CONTACT_FROM_EMAIL" default:"noreply@residencias.example.com" description:"Sender address for contact notifications"`
	ContactToEmail   string `flag:"contactto" env:"CONTACT_TO_EMAIL" default:"" description:"Address notified when a contact request arrives. Empty disables notifications"`
	DSN              string `flag:"dsn" env:"DSN" default:"file:./data/residencias.db" description:"Data source name"`
	EmailApiKey      string `flag:"emailapikey" env:"EMAIL_API_KEY" default:"" description:"API key for sending emails"`
	GalleryBasePath  string `flag:"gallerybasepath" env:"GALLERY_BASE_PATH" default:"/static/images/residencias" description:"Served root of gallery images"`
	HomeGalleryCount int    `flag:"homegallerycount" env:"HOME_GALLERY_COUNT" default:"6" description:"Number of images in the home page gallery"`
	HomeGalleryIndex int    `flag:"homegalleryindex" env:"HOME_GALLERY_INDEX" default:"1" description:"Gallery shown on the home page"`
	Host             string `flag:"host" env:"HOST" default:"localhost:8080" description:"The address and port to bind the HTTP server to"`
	LogLevel         string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	ManifestPath     string `flag:"manifest" env:"MANIFEST_PATH" default:"./dist/manifest.json" description:"Asset manifest written by the optimizer. Missing means placeholder image hints"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}
