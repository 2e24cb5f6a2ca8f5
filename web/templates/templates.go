// Package templates renders the server-side HTML pages from an embedded
// template set. Every page shares layout.html and defines its own "title"
// and "content" blocks.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed *.html
var files embed.FS

var pages = mustParse()

func mustParse() map[string]*template.Template {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		panic(err)
	}

	parsed := make(map[string]*template.Template, len(entries))
	for _, e := range entries {
		name := e.Name()
		if name == "layout.html" {
			continue
		}
		parsed[name] = template.Must(template.ParseFS(files, "layout.html", name))
	}
	return parsed
}

// Render writes the named page with the given status code.
func Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := pages[page]
	if !ok {
		return fmt.Errorf("unknown template %q", page)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return t.ExecuteTemplate(w, "layout", data)
}
