package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"sareemahal/internal/models"
	"sareemahal/internal/services"

	"github.com/gin-gonic/gin/render"
)

// HTMLRenderer serves a separate template set per page, each parsed together
// with the shared base layout.
type HTMLRenderer struct {
	Templates map[string]*template.Template
}

// Instance selects the page's template set.
func (r *HTMLRenderer) Instance(name string, data interface{}) render.Render {
	return render.HTML{
		Template: r.Templates[name],
		Data:     data,
	}
}

// Render writes the HTTP response.
func (r *HTMLRenderer) Render(w http.ResponseWriter, code int, data ...interface{}) error {
	name := data[0].(string)
	templateData := data[1]
	instance := r.Instance(name, templateData)
	return instance.Render(w)
}

// TemplateFuncs are the helpers available to every page template.
var TemplateFuncs = template.FuncMap{
	"inr":         services.FormatINR,
	"badgeClass":  models.StatusBadgeClass,
	"images":      func(p models.Product) []string { return p.ImageList() },
	"mainImage":   func(p models.Product) string { return p.MainImage() },
	"description": RenderDescription,
	"lineTotal":   func(ci models.CartItem) float64 { return ci.LineTotal() },
	"add":         func(a, b int) int { return a + b },
	"sub":         func(a, b int) int { return a - b },
	"json": func(v interface{}) template.JS {
		encoded, err := json.Marshal(v)
		if err != nil {
			return "null"
		}
		return template.JS(encoded)
	},
}
