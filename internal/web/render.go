package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"vet-clinic-web/internal/domain/selectors"
)

//go:embed templates/*.html
var templateFS embed.FS

// selectView es un <select> con la opción elegida.
type selectView struct {
	Select   selectors.Select
	Selected int64
}

var funcs = template.FuncMap{
	"selectOf": func(s selectors.Select, selected int64) selectView {
		return selectView{Select: s, Selected: selected}
	},
}

var templates = template.Must(template.New("web").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))

// render ejecuta en un buffer para no mandar media página si el template
// falla.
func (s *server) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.Error("template render failed", map[string]any{"template": name, "error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}
