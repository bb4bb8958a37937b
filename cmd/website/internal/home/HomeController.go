package home

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/residencias/cmd/website/internal/pages"
	"github.com/adampresley/residencias/cmd/website/internal/viewmodels"
	"github.com/adampresley/residencias/pkg/models"
	"github.com/adampresley/residencias/pkg/routing"
	"github.com/adampresley/residencias/pkg/services"
)

type HomeHandlers interface {
	HomePage(w http.ResponseWriter, r *http.Request)
}

type HomeControllerConfig struct {
	GalleryCount   int
	GalleryIndex   int
	GalleryService services.GalleryServicer
	Renderer       pages.Renderer
	Route          routing.Route
}

type HomeController struct {
	galleryCount   int
	galleryIndex   int
	galleryService services.GalleryServicer
	renderer       pages.Renderer
	route          routing.Route
}

func NewHomeController(config HomeControllerConfig) HomeController {
	return HomeController{
		galleryCount:   config.GalleryCount,
		galleryIndex:   config.GalleryIndex,
		galleryService: config.GalleryService,
		renderer:       config.Renderer,
		route:          config.Route,
	}
}

/*
GET /
*/
func (c HomeController) HomePage(w http.ResponseWriter, r *http.Request) {
	var (
		err     error
		gallery []models.GalleryItem
	)

	viewData := viewmodels.HomePage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx:             httphelpers.IsHtmx(r),
			CurrentRoute:       c.route.Name,
			JavascriptIncludes: []rendering.JavascriptInclude{},
		},
		Gallery: []viewmodels.GalleryImage{},
	}

	if gallery, err = c.galleryService.Generate(c.galleryIndex, c.galleryCount); err != nil {
		slog.Error("error generating home page gallery", "error", err, "galleryIndex", c.galleryIndex, "count", c.galleryCount)
		viewData.IsError = true
		viewData.Message = "There was a problem getting photos for this page."
	} else {
		viewData.Gallery = viewmodels.NewGalleryImages(gallery)
	}

	c.renderer.Render(c.route.Page, viewData, w)
}
