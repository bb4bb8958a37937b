package main

import (
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/residencias/cmd/website/internal/configuration"
	"github.com/adampresley/residencias/cmd/website/internal/contacto"
	"github.com/adampresley/residencias/cmd/website/internal/home"
	"github.com/adampresley/residencias/cmd/website/internal/pages"
	"github.com/adampresley/residencias/cmd/website/internal/residencias"
	"github.com/adampresley/residencias/pkg/logging"
	"github.com/adampresley/residencias/pkg/migrations"
	"github.com/adampresley/residencias/pkg/routing"
	"github.com/adampresley/residencias/pkg/services"
	_ "github.com/glebarez/sqlite"
	"github.com/rfberaldo/sqlz"
	"github.com/rfberaldo/sqlz/binds"
)

var (
	Version string = "development"
	appName string = "residencias"

	//go:embed app
	appFS embed.FS

	config configuration.Config

	/* Services */
	contactService   services.ContactServicer
	db               *sqlz.DB
	galleryService   services.GalleryServicer
	renderer         rendering.TemplateRenderer
	residenceService services.ResidenceServicer
	routeTable       routing.RouteTable

	/* Controllers */
	contactoController    contacto.ContactoHandlers
	homeController        home.HomeHandlers
	residenciasController residencias.ResidenciasHandlers
)

func main() {
	var (
		err      error
		manifest *services.AssetManifest
	)

	config = configuration.LoadConfig()
	logging.Setup(config.LogLevel, appName, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("galleryBasePath", config.GalleryBasePath),
		slog.String("manifestPath", config.ManifestPath),
	)

	slog.Debug("setting up...")

	/*
	 * Setup services
	 */
	binds.Register("sqlite", binds.BindByDriver("sqlite3"))
	if db, err = sqlz.Connect("sqlite", config.DSN); err != nil {
		panic(err)
	}

	if err = migrations.Migrate(db); err != nil {
		panic(err)
	}

	if manifest, err = services.LoadAssetManifest(config.ManifestPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}

		slog.Warn("no asset manifest found. gallery images will use placeholder dimensions", "manifestPath", config.ManifestPath)
		manifest = nil
	}

	if routeTable, err = routing.NewRouteTable(routing.DefaultRoutes()...); err != nil {
		panic(err)
	}

	renderer, err = rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		PagesDir:          "pages",
	})

	if err != nil {
		panic(err)
	}

	galleryService = services.NewGalleryService(services.GalleryServiceConfig{
		BasePath: config.GalleryBasePath,
		Manifest: manifest,
	})

	residenceService = services.NewResidenceService(services.ResidenceServiceConfig{
		DB: db,
	})

	contactService = services.NewContactService(services.ContactServiceConfig{
		DB:          db,
		EmailApiKey: config.EmailApiKey,
		FromEmail:   config.ContactFromEmail,
		FromName:    "Residencias",
		NotifyEmail: config.ContactToEmail,
		NotifyName:  "Residencias",
	})

	/*
	 * Setup controllers
	 */
	pageRenderer := pages.NewTemplateRenderer(renderer)
	homeRoute, _ := routeTable.ByName(routing.NameInicio)
	residenciasRoute, _ := routeTable.ByName(routing.NameResidencias)
	contactoRoute, _ := routeTable.ByName(routing.NameContacto)

	homeController = home.NewHomeController(home.HomeControllerConfig{
		GalleryCount:   config.HomeGalleryCount,
		GalleryIndex:   config.HomeGalleryIndex,
		GalleryService: galleryService,
		Renderer:       pageRenderer,
		Route:          homeRoute,
	})

	residenciasController = residencias.NewResidenciasController(residencias.ResidenciasControllerConfig{
		GalleryService:   galleryService,
		Renderer:         pageRenderer,
		ResidenceService: residenceService,
		Route:            residenciasRoute,
	})

	contactoController = contacto.NewContactoController(contacto.ContactoControllerConfig{
		ContactService:   contactService,
		Renderer:         pageRenderer,
		ResidenceService: residenceService,
		Route:            contactoRoute,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	routes, err := pageRoutes(routeTable, map[string]http.HandlerFunc{
		routing.NameInicio:      homeController.HomePage,
		routing.NameResidencias: residenciasController.ListingsPage,
		routing.NameContacto:    contactoController.ContactPage,
	})

	if err != nil {
		panic(err)
	}

	assetServer := http.StripPrefix("/assets/", http.FileServer(http.Dir(config.AssetsDir)))

	routes = append(routes,
		mux.Route{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		mux.Route{Path: "POST /contacto", HandlerFunc: contactoController.ContactAction},
		mux.Route{Path: "GET /assets/", HandlerFunc: assetServer.ServeHTTP},
	)

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	mux.Shutdown(httpServer)
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}
