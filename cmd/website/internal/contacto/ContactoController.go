package contacto

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

type ContactoHandlers interface {
	ContactPage(w http.ResponseWriter, r *http.Request)
	ContactAction(w http.ResponseWriter, r *http.Request)
}

type ContactoControllerConfig struct {
	ContactService   services.ContactServicer
	Renderer         pages.Renderer
	ResidenceService services.ResidenceServicer
	Route            routing.Route
}

type ContactoController struct {
	contactService   services.ContactServicer
	renderer         pages.Renderer
	residenceService services.ResidenceServicer
	route            routing.Route
}

func NewContactoController(config ContactoControllerConfig) ContactoController {
	return ContactoController{
		contactService:   config.ContactService,
		renderer:         config.Renderer,
		residenceService: config.ResidenceService,
		route:            config.Route,
	}
}

/*
GET /contacto
*/
func (c ContactoController) ContactPage(w http.ResponseWriter, r *http.Request) {
	viewData := c.newViewData(r)
	viewData.Request.ResidenceSlug = httphelpers.GetFromRequest[string](r, "residencia")

	c.renderer.Render(c.route.Page, viewData, w)
}

/*
POST /contacto
*/
func (c ContactoController) ContactAction(w http.ResponseWriter, r *http.Request) {
	var (
		err error
	)

	viewData := c.newViewData(r)
	viewData.Request = models.ContactRequest{
		Name:          httphelpers.GetFromRequest[string](r, "name"),
		Email:         httphelpers.GetFromRequest[string](r, "email"),
		Phone:         httphelpers.GetFromRequest[string](r, "phone"),
		Message:       httphelpers.GetFromRequest[string](r, "message"),
		ResidenceSlug: httphelpers.GetFromRequest[string](r, "residencia"),
	}

	if err = c.contactService.Submit(&viewData.Request); err != nil {
		if errors.Is(err, models.ErrInvalidContactRequest) {
			viewData.IsWarning = true
			viewData.Message = "Please check the form: " + err.Error()
		} else {
			slog.Error("error submitting contact request", "error", err)
			viewData.IsError = true
			viewData.Message = "An unexpected error occurred. Please try again later."
		}

		c.renderer.Render(c.route.Page, viewData, w)
		return
	}

	viewData.Submitted = true
	viewData.Message = "Thank you! We will be in touch soon."
	c.renderer.Render(c.route.Page, viewData, w)
}

func (c ContactoController) newViewData(r *http.Request) viewmodels.ContactoPage {
	var (
		err error
	)

	viewData := viewmodels.ContactoPage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx:       httphelpers.IsHtmx(r),
			CurrentRoute: c.route.Name,
		},
		Residences: []*models.Residence{},
	}

	if viewData.Residences, err = c.residenceService.GetAll(); err != nil {
		slog.Error("error getting residences for contact form", "error", err)
		viewData.Residences = []*models.Residence{}
	}

	return viewData
}
