// Package templates renders the dashboard pages. Every page is parsed on
// top of the shared layout, which carries the navigation and the browser
// geolocation script.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"path"
	"strings"
	"time"

	"github.com/linesmerrill/emergency-dashboard/models"
)

//go:embed layout.html pages/*.html
var files embed.FS

// Page is the data every template receives
type Page struct {
	Title  string
	User   *models.User
	Notice string
	Error  string
	Data   interface{}
}

// Renderer holds one parsed template set per page
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Local().Format("02 Jan 2006 15:04")
	},
	"datetimePtr": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Local().Format("02 Jan 2006 15:04")
	},
	"km": func(d *float64) string {
		if d == nil {
			return ""
		}
		return fmt.Sprintf("%.1f km", *d)
	},
	"dict": func(pairs ...interface{}) (map[string]interface{}, error) {
		if len(pairs)%2 != 0 {
			return nil, fmt.Errorf("dict needs key and value pairs")
		}
		m := make(map[string]interface{}, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			key, ok := pairs[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
			}
			m[key] = pairs[i+1]
		}
		return m, nil
	},
	"label": func(v interface{}) string {
		s := strings.ReplaceAll(strings.ToLower(fmt.Sprint(v)), "_", " ")
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

// New parses the layout and every page
func New() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(files, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	names, err := files.ReadDir("pages")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, entry := range names {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(files, path.Join("pages", entry.Name())); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}
		r.pages[strings.TrimSuffix(entry.Name(), ".html")] = t
	}
	return r, nil
}

// Render writes page name. Nothing is written if execution fails.
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// Has reports whether a page called name exists
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}
