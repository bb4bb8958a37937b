package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/residencias/cmd/optimizer/internal/configuration"
	"github.com/adampresley/residencias/pkg/logging"
	"github.com/adampresley/residencias/pkg/services"
)

var (
	Version string = "development"
	appName string = "residencias-optimizer"
)

func main() {
	var (
		err      error
		widths   []int
		s3Client s3.S3Client
		manifest *services.AssetManifest
	)

	config := configuration.LoadConfig()
	logging.Setup(config.LogLevel, appName, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("sourceDir", config.SourceDir),
		slog.String("outputDir", config.OutputDir),
		slog.Int("quality", config.ImageQuality),
		slog.Bool("publishToS3", config.PublishToS3),
	)

	if widths, err = configuration.ParseWidths(config.ResponsiveWidths); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if config.PublishToS3 {
		awsConfig := &awsconfig.Config{
			Endpoint:        config.AwsEndpointUrl,
			Region:          config.AwsRegion,
			AccessKeyID:     config.AwsAccessKeyId,
			SecretAccessKey: config.AwsSecretAccessKey,
		}

		retrier.Retry(func() error {
			if err = awsConfig.Load(); err != nil {
				slog.Error("failed to load AWS config. trying again", "error", err)
				return err
			}

			return nil
		})

		if err != nil {
			slog.Error("unable to load AWS config", "error", err)
			os.Exit(1)
		}

		if s3Client, err = s3.NewClient(awsConfig); err != nil {
			slog.Error("unable to create S3 client", "error", err)
			os.Exit(1)
		}
	}

	optimizer := services.NewImageOptimizerService(services.ImageOptimizerConfig{
		AssetBaseURL: config.AssetBaseURL,
		AwsBucket:    config.AwsBucket,
		AwsRegion:    config.AwsRegion,
		BasePath:     config.GalleryBasePath,
		InlineLimit:  config.InlineLimit,
		ManifestPath: config.ManifestPath,
		MaxWorkers:   config.MaxWorkers,
		OutputDir:    config.OutputDir,
		Quality:      config.ImageQuality,
		S3Client:     s3Client,
		S3Prefix:     config.S3Prefix,
		SourceDir:    config.SourceDir,
		Widths:       widths,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()

	if manifest, err = optimizer.Optimize(ctx); err != nil {
		slog.Error("image optimization failed", "error", err)
		os.Exit(1)
	}

	slog.Info("done", "assets", len(manifest.Assets), "manifest", config.ManifestPath, "elapsed", time.Since(start).String())
}
