package pages

import (
	"net/http"

	"github.com/adampresley/adamgokit/rendering"
)

// Renderer renders a named page template with its view data.
type Renderer interface {
	Render(page string, data any, w http.ResponseWriter)
}

type TemplateRenderer struct {
	renderer rendering.TemplateRenderer
}

func NewTemplateRenderer(renderer rendering.TemplateRenderer) TemplateRenderer {
	return TemplateRenderer{
		renderer: renderer,
	}
}

func (r TemplateRenderer) Render(page string, data any, w http.ResponseWriter) {
	r.renderer.Render(page, data, w)
}
