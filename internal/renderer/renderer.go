package renderer

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed views
var views embed.FS

// TemplateRenderer implements echo.Renderer
type TemplateRenderer struct {
	Templates map[string]*template.Template
}

// New creates a new TemplateRenderer with pre-parsed templates
func New() *TemplateRenderer {
	r := &TemplateRenderer{
		Templates: make(map[string]*template.Template),
	}
	r.parseTemplates()
	return r
}

func (t *TemplateRenderer) parseTemplates() {
	// Pages share the base layout and the file row partial
	parse := func(name, pageFile string) {
		t.Templates[name] = template.Must(template.ParseFS(views,
			"views/layouts/base.html",
			"views/partials/file_row.html",
			"views/pages/"+pageFile,
		))
	}

	parse("buckets", "buckets.html")
	parse("browser", "browser.html")

	t.Templates["object_info"] = template.Must(template.ParseFS(views, "views/partials/object_info.html"))
	t.Templates["file_row"] = template.Must(template.ParseFS(views, "views/partials/file_row.html"))
}

// selfExecutingTemplates lists templates that execute their own named block instead of "base"
var selfExecutingTemplates = map[string]bool{
	"object_info": true,
	"file_row":    true,
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.Templates[name]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Template not found: "+name)
	}

	if selfExecutingTemplates[name] {
		return tmpl.ExecuteTemplate(w, name, data)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}
