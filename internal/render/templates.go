package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"
)

//go:embed templates
var embedded embed.FS

//go:embed static
var static embed.FS

// EmbeddedFS returns the templates compiled into the binary.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(fmt.Sprintf("templates: %v", err))
	}
	return sub
}

// StaticFS returns the stylesheet and other assets served under /static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(fmt.Sprintf("static: %v", err))
	}
	return sub
}

var funcs = template.FuncMap{
	"lineBreaks": LineBreaks,
	"join":       strings.Join,
	"slug":       Slug,
}

// Templates holds the parsed fragment set and one template per page.
// Reload swaps both atomically so requests never see a half-parsed set.
type Templates struct {
	mu        sync.RWMutex
	fragments *template.Template
	pages     map[string]*template.Template
}

// LoadTemplates parses layout.html, partials/*.html and pages/*.html from fsys.
func LoadTemplates(fsys fs.FS) (*Templates, error) {
	t := &Templates{}
	if err := t.Reload(fsys); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload re-parses every template from fsys. On error the previous set stays.
func (t *Templates) Reload(fsys fs.FS) error {
	base, err := template.New("base").Funcs(funcs).ParseFS(fsys, "layout.html", "partials/*.html")
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(fsys, "pages/*.html")
	if err != nil {
		return fmt.Errorf("list pages: %w", err)
	}
	pages := make(map[string]*template.Template, len(files))
	for _, f := range files {
		clone, err := base.Clone()
		if err != nil {
			return fmt.Errorf("clone layout: %w", err)
		}
		page, err := clone.ParseFS(fsys, f)
		if err != nil {
			return fmt.Errorf("parse %s: %w", f, err)
		}
		pages[strings.TrimSuffix(path.Base(f), ".html")] = page
	}

	t.mu.Lock()
	t.fragments = base
	t.pages = pages
	t.mu.Unlock()
	return nil
}

// Fragment executes a named partial.
func (t *Templates) Fragment(w io.Writer, name string, data any) error {
	t.mu.RLock()
	set := t.fragments
	t.mu.RUnlock()
	return set.ExecuteTemplate(w, name, data)
}

// Page executes the layout with the named page's content block.
func (t *Templates) Page(w io.Writer, name string, data any) error {
	t.mu.RLock()
	page, ok := t.pages[name]
	t.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return page.ExecuteTemplate(w, "layout", data)
}

// Has reports whether a page exists.
func (t *Templates) Has(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.pages[name]
	return ok
}
