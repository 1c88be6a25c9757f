package handlers

import (
	"Inventario/internal/repo"
	"Inventario/internal/service"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

var views = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

func render(w http.ResponseWriter, logger *zap.SugaredLogger, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := views.ExecuteTemplate(w, name, data); err != nil {
		logger.Errorw("render template", "template", name, "error", err)
	}
}

// writeServiceError maps service and repo errors onto the HTTP contract:
// validation and uniqueness violations are 400 with a fixed message,
// missing identifiers are 404, anything else is a logged 500 with a
// generic body.
func writeServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrBadQuantity),
		errors.Is(err, service.ErrBadReference),
		errors.Is(err, service.ErrCorreoTaken),
		errors.Is(err, service.ErrUsuarioTaken):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repo.ErrNotFound):
		http.Error(w, "no encontrado", http.StatusNotFound)
	default:
		logger.Errorw(op, "error", err)
		http.Error(w, "error interno", http.StatusInternalServerError)
	}
}
