package handlers

import (
	"Inventario/internal/service"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	Users  *service.UserService
	Logger *zap.SugaredLogger
}

func NewUserHandler(u *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{Users: u, Logger: logger}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Users.List(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "list usuarios", err)
		return
	}
	render(w, h.Logger, "usuarios.html", map[string]any{"Usuarios": usuarios})
}

func (h *UserHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	render(w, h.Logger, "usuario_form.html", map[string]any{"Usuario": nil})
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := userFormInput(r)
	if err != nil {
		http.Error(w, "formulario inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Users.Create(r.Context(), in); err != nil {
		writeServiceError(w, h.Logger, "create usuario", err)
		return
	}
	http.Redirect(w, r, "/usuarios", http.StatusSeeOther)
}

func (h *UserHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		http.Error(w, "no encontrado", http.StatusNotFound)
		return
	}
	usuario, err := h.Users.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, "get usuario", err)
		return
	}
	render(w, h.Logger, "usuario_form.html", map[string]any{"Usuario": usuario})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		http.Error(w, "no encontrado", http.StatusNotFound)
		return
	}
	in, err := userFormInput(r)
	if err != nil {
		http.Error(w, "formulario inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Users.Update(r.Context(), id, in); err != nil {
		writeServiceError(w, h.Logger, "update usuario", err)
		return
	}
	http.Redirect(w, r, "/usuarios", http.StatusSeeOther)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		http.Error(w, "no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Users.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.Logger, "delete usuario", err)
		return
	}
	http.Redirect(w, r, "/usuarios", http.StatusSeeOther)
}

// userID parses the sequential integer ID from the path. A non-numeric ID
// can never exist, so it reads as not found.
func userID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func userFormInput(r *http.Request) (service.UserInput, error) {
	if err := r.ParseForm(); err != nil {
		return service.UserInput{}, err
	}
	return service.UserInput{
		Nombre:   strings.TrimSpace(r.PostFormValue("nombre")),
		Correo:   strings.TrimSpace(r.PostFormValue("correo")),
		Usuario:  strings.TrimSpace(r.PostFormValue("usuario")),
		Password: r.PostFormValue("password"),
		Rol:      strings.TrimSpace(r.PostFormValue("rol")),
	}, nil
}
