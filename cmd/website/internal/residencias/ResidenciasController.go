package residencias

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/residencias/cmd/website/internal/pages"
	"github.com/adampresley/residencias/cmd/website/internal/viewmodels"
	"github.com/adampresley/residencias/pkg/models"
	"github.com/adampresley/residencias/pkg/routing"
	"github.com/adampresley/residencias/pkg/services"
)

type ResidenciasHandlers interface {
	ListingsPage(w http.ResponseWriter, r *http.Request)
}

type ResidenciasControllerConfig struct {
	GalleryService   services.GalleryServicer
	Renderer         pages.Renderer
	ResidenceService services.ResidenceServicer
	Route            routing.Route
}

type ResidenciasController struct {
	galleryService   services.GalleryServicer
	renderer         pages.Renderer
	residenceService services.ResidenceServicer
	route            routing.Route
}

func NewResidenciasController(config ResidenciasControllerConfig) ResidenciasController {
	return ResidenciasController{
		galleryService:   config.GalleryService,
		renderer:         config.Renderer,
		residenceService: config.ResidenceService,
		route:            config.Route,
	}
}

/*
GET /residencias
GET /residencias?residencia={slug}
*/
func (c ResidenciasController) ListingsPage(w http.ResponseWriter, r *http.Request) {
	var (
		err        error
		residences []*models.Residence
		residence  *models.Residence
	)

	viewData := viewmodels.ResidenciasPage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx:       httphelpers.IsHtmx(r),
			CurrentRoute: c.route.Name,
		},
		Residences: []viewmodels.ResidenceListing{},
	}

	if slug := httphelpers.GetFromRequest[string](r, "residencia"); slug != "" {
		if residence, err = c.residenceService.GetBySlug(slug); err != nil {
			if errors.Is(err, models.ErrResidenceNotFound) {
				viewData.IsWarning = true
				viewData.Message = "We could not find that residence. Here are all of our listings."
			} else {
				slog.Error("error getting residence", "error", err, "slug", slug)
			}
		} else {
			residences = []*models.Residence{residence}
		}
	}

	if residences == nil {
		if residences, err = c.residenceService.GetAll(); err != nil {
			slog.Error("error getting residences", "error", err)
			viewData.IsError = true
			viewData.Message = "An unexpected error occurred. Please try again later."

			c.renderer.Render(c.route.Page, viewData, w)
			return
		}
	}

	for _, residence := range residences {
		gallery, err := c.galleryService.Generate(residence.GalleryIndex, residence.ImageCount)

		if err != nil {
			slog.Error("error generating residence gallery", "error", err, "slug", residence.Slug, "galleryIndex", residence.GalleryIndex)
			gallery = []models.GalleryItem{}
		}

		viewData.Residences = append(viewData.Residences, viewmodels.ResidenceListing{
			Residence: residence,
			Gallery:   viewmodels.NewGalleryImages(gallery),
		})
	}

	c.renderer.Render(c.route.Page, viewData, w)
}
