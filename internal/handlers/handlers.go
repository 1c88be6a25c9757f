package handlers

import (
	"Inventario/internal/config"
	"Inventario/internal/middleware"
	"Inventario/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler wires the middleware chain and all entity routes.
func NewHandler(
	userService *service.UserService,
	productService *service.ProductService,
	supplierService *service.SupplierService,
	categoryService *service.CategoryService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithMetrics)
	r.Use(middleware.WithAuth(cfg.AuthSecret))

	userHandler := NewUserHandler(userService, logger)
	productHandler := NewProductHandler(productService, categoryService, supplierService, logger)
	supplierHandler := NewSupplierHandler(supplierService, logger)
	categoryHandler := NewCategoryHandler(categoryService, logger)
	authHandler := NewAuthHandler(userService, logger, cfg)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		uid, ok := middleware.GetUserIDFromContext(req.Context())
		render(w, logger, "index.html", map[string]any{"UserID": uid, "LoggedIn": ok})
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Productos
	r.Get("/productos", productHandler.List)
	r.Get("/registrar_producto", productHandler.NewForm)
	r.Post("/registrar_producto", productHandler.Create)
	r.Get("/modificar_producto/{id}", productHandler.EditForm)
	r.Post("/modificar_producto/{id}", productHandler.Update)
	r.Post("/eliminar_producto/{id}", productHandler.Delete)

	// Proveedores
	r.Get("/proveedores", supplierHandler.List)
	r.Get("/registrar_proveedor", supplierHandler.NewForm)
	r.Post("/registrar_proveedor", supplierHandler.Create)
	r.Get("/modificar_proveedor/{id}", supplierHandler.EditForm)
	r.Post("/modificar_proveedor/{id}", supplierHandler.Update)
	r.Post("/eliminar_proveedor/{id}", supplierHandler.Delete)

	// Categorias
	r.Get("/categorias", categoryHandler.List)
	r.Get("/registrar_categoria", categoryHandler.NewForm)
	r.Post("/registrar_categoria", categoryHandler.Create)
	r.Get("/modificar_categoria/{id}", categoryHandler.EditForm)
	r.Post("/modificar_categoria/{id}", categoryHandler.Update)
	r.Post("/eliminar_categoria/{id}", categoryHandler.Delete)

	// Usuarios. The edit path is /editar_usuario, not /modificar_usuario,
	// and delete takes POST like everything else.
	r.Get("/usuarios", userHandler.List)
	r.Get("/registrar_usuario", userHandler.NewForm)
	r.Post("/registrar_usuario", userHandler.Create)
	r.Get("/editar_usuario/{id}", userHandler.EditForm)
	r.Post("/editar_usuario/{id}", userHandler.Update)
	r.Post("/eliminar_usuario/{id}", userHandler.Delete)

	// Sesión
	r.Get("/login", authHandler.LoginForm)
	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)

	return &Handler{Router: r}
}
