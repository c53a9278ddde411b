package view

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Engine loads and renders named templates from a views directory.
// Registration happens at startup; Render is safe for concurrent use.
type Engine struct {
	mu   sync.RWMutex
	root string
	ext  string
	tmpl *template.Template
}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithRoot sets the directory templates are loaded from.
func WithRoot(dir string) Option {
	return func(e *Engine) {
		if dir != "" {
			e.root = dir
		}
	}
}

// WithExt sets the template file extension, including the dot.
func WithExt(ext string) Option {
	return func(e *Engine) {
		if ext != "" {
			e.ext = ext
		}
	}
}

// WithFunc registers an additional helper available to all templates.
func WithFunc(name string, fn any) Option {
	return func(e *Engine) {
		e.tmpl = e.tmpl.Funcs(template.FuncMap{name: fn})
	}
}

// New creates an engine rooted at "views" with the ".html" extension and
// the markdown helper preinstalled.
func New(opts ...Option) *Engine {
	e := &Engine{
		root: "views",
		ext:  ".html",
		tmpl: template.New("").Funcs(template.FuncMap{
			"markdown": Markdown,
		}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Root returns the directory templates are loaded from.
func (e *Engine) Root() string {
	return e.root
}

// Register loads the template for the given logical name from
// <root>/<name><ext> and makes it available to Render.
func (e *Engine) Register(name string) error {
	path := filepath.Join(e.root, name+e.ext)

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read template %q: %w", path, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.tmpl.New(name).Parse(string(src)); err != nil {
		return fmt.Errorf("parse template %q: %w", path, err)
	}
	return nil
}

// RegisterPartials loads every template file in the given directory under
// its file stem, so templates can include them by name. A missing
// directory is not an error; partials are optional.
func (e *Engine) RegisterPartials(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read partials dir %q: %w", dir, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), e.ext) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read partial %q: %w", path, err)
		}

		name := strings.TrimSuffix(entry.Name(), e.ext)
		if _, err := e.tmpl.New(name).Parse(string(src)); err != nil {
			return fmt.Errorf("parse partial %q: %w", path, err)
		}
	}
	return nil
}

// Render executes a registered template with the given data and returns
// the rendered text.
func (e *Engine) Render(name string, data any) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.tmpl.Lookup(name) == nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrRenderFailed, name, err)
	}
	return buf.String(), nil
}
