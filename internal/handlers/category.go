package handlers

import (
	"Inventario/internal/service"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	Categories *service.CategoryService
	Logger     *zap.SugaredLogger
}

func NewCategoryHandler(c *service.CategoryService, logger *zap.SugaredLogger) *CategoryHandler {
	return &CategoryHandler{Categories: c, Logger: logger}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categorias, err := h.Categories.List(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "list categorias", err)
		return
	}
	render(w, h.Logger, "categorias.html", map[string]any{"Categorias": categorias})
}

func (h *CategoryHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	render(w, h.Logger, "categoria_form.html", map[string]any{"Categoria": nil})
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := categoryFormInput(r)
	if err != nil {
		http.Error(w, "formulario inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Categories.Create(r.Context(), in); err != nil {
		writeServiceError(w, h.Logger, "create categoria", err)
		return
	}
	http.Redirect(w, r, "/categorias", http.StatusSeeOther)
}

func (h *CategoryHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	categoria, err := h.Categories.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, "get categoria", err)
		return
	}
	render(w, h.Logger, "categoria_form.html", map[string]any{"Categoria": categoria})
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	in, err := categoryFormInput(r)
	if err != nil {
		http.Error(w, "formulario inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Categories.Update(r.Context(), id, in); err != nil {
		writeServiceError(w, h.Logger, "update categoria", err)
		return
	}
	http.Redirect(w, r, "/categorias", http.StatusSeeOther)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Categories.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.Logger, "delete categoria", err)
		return
	}
	http.Redirect(w, r, "/categorias", http.StatusSeeOther)
}

func categoryFormInput(r *http.Request) (service.CategoryInput, error) {
	if err := r.ParseForm(); err != nil {
		return service.CategoryInput{}, err
	}
	return service.CategoryInput{
		Nombre:      strings.TrimSpace(r.PostFormValue("nombre")),
		Descripcion: strings.TrimSpace(r.PostFormValue("descripcion")),
	}, nil
}
