// Package web renders the public comparison pages and the admin views.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

const (
	PageComparison     = "comparison"
	PageLogin          = "login"
	PageError          = "error"
	PageAdminDashboard = "admin_dashboard"
	PageAdminPlatforms = "admin_platforms"
	PageAdminPlatform  = "admin_platform_form"
	PageAdminFeatures  = "admin_features"
	PageAdminFeature   = "admin_feature_form"
	PageAdminCompare   = "admin_comparisons"
)

var publicPages = []string{PageComparison, PageLogin, PageError}

var adminPages = []string{
	PageAdminDashboard,
	PageAdminPlatforms,
	PageAdminPlatform,
	PageAdminFeatures,
	PageAdminFeature,
	PageAdminCompare,
}

// Renderer holds one parsed template set per page, each combined with the
// layout it extends.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, name := range publicPages {
		if err := r.parse(name, "templates/layout.html"); err != nil {
			return nil, err
		}
	}
	for _, name := range adminPages {
		if err := r.parse(name, "templates/admin_layout.html"); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// MustNewRenderer panics when the embedded templates do not parse
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) parse(name, layout string) error {
	t, err := template.New(name).Funcs(funcMap()).ParseFS(templateFS, layout, "templates/"+name+".html")
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}
	r.pages[name] = t
	return nil
}

// Render executes the named page and returns the HTML
func (r *Renderer) Render(name string, data interface{}) ([]byte, error) {
	t, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page: %s", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// StaticFS serves the admin scripts
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
