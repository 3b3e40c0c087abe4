package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// renderPage writes an HTML page from the embedded template set. Render
// failures after the header is written can only be logged.
func renderPage(w http.ResponseWriter, logger zerolog.Logger, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		logger.Error().Err(err).Str("template", name).Msg("failed to render template")
	}
}
