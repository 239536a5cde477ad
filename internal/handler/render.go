package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/blogfeed/blogfeed/web"
)

// pages are the templates rendered inside the shared layout.
var pages = []string{"index.html", "home.html", "login.html", "signup.html"}

// Renderer holds the parsed page templates.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses the embedded layout and page templates once at
// startup.
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(web.Templates, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Renderer{templates: templates}, nil
}

// Render executes the page inside the layout. The page is rendered to a
// buffer first so a mid-render failure never writes a partial response.
func (r *Renderer) Render(w http.ResponseWriter, page string, data any) error {
	t, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown template %s", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
