// Package view renders the HTML pages of the site from embedded templates.
package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"recipeme/internal/domain/entity"
	"recipeme/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Page template names.
const (
	PageIndex      = "index.html"
	PageAbout      = "about.html"
	PageSignUp     = "sign_up.html"
	PageLogin      = "login.html"
	PageViewRecipe = "view_recipe.html"
	PageError      = "error.html"
)

const layoutFile = "templates/layout.html"

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data handed to every template.
type Page struct {
	Title     string
	Notices   []entity.Notice
	Username  string
	Logged    bool
	CSRFToken string

	// Form re-renders submitted values; FieldErrors carries their validation messages.
	Form        map[string]string
	FieldErrors entity.FieldErrors

	Recipes []*entity.Recipe
	Recipe  *usecase.RecipeDetail
	Error   *ErrorInfo
}

// ErrorInfo describes the failure shown by the error page.
type ErrorInfo struct {
	Code    int
	Message string
}

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// NewRenderer parses every page template together with the shared layout.
func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list templates")
	}

	funcs := template.FuncMap{
		"join": strings.Join,
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		if name == layoutFile {
			continue
		}

		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, layoutFile, name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse template %s", name)
		}
		pages[strings.TrimPrefix(name, "templates/")] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render executes the named page inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("template %s not found", name)
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		return errors.Wrapf(err, "failed to render %s", name)
	}

	return nil
}
