package handlers

import (
	"Inventario/internal/config"
	"Inventario/internal/middleware"
	"Inventario/internal/service"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// AuthHandler holds the login/logout screens. Credentials are checked by
// the user service; the session is an HttpOnly cookie.
type AuthHandler struct {
	Users  *service.UserService
	Logger *zap.SugaredLogger
	Config *config.Config
}

func NewAuthHandler(u *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Users: u, Logger: logger, Config: cfg}
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	render(w, h.Logger, "login.html", nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulario inválido", http.StatusBadRequest)
		return
	}
	usuario := strings.TrimSpace(r.PostFormValue("usuario"))
	password := r.PostFormValue("password")

	u, err := h.Users.Authenticate(r.Context(), usuario, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "credenciales inválidas", http.StatusUnauthorized)
			return
		}
		writeServiceError(w, h.Logger, "login", err)
		return
	}

	if err := middleware.SetLoginCookie(w, u.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("login: set cookie", "error", err)
		http.Error(w, "error interno", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
