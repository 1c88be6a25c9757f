package handlers

import (
	"Inventario/internal/model"
	"Inventario/internal/service"
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductHandler serves the product screens. It also needs the category and
// supplier services to fill the reference selects on the form.
type ProductHandler struct {
	Products   *service.ProductService
	Categories *service.CategoryService
	Suppliers  *service.SupplierService
	Logger     *zap.SugaredLogger
}

func NewProductHandler(p *service.ProductService, c *service.CategoryService, s *service.SupplierService, logger *zap.SugaredLogger) *ProductHandler {
	return &ProductHandler{Products: p, Categories: c, Suppliers: s, Logger: logger}
}

// List shows all products with category and supplier joined in.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	productos, err := h.Products.ListWithRefs(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "list productos", err)
		return
	}
	render(w, h.Logger, "productos.html", map[string]any{"Productos": productos})
}

func (h *ProductHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	data, err := h.formData(r.Context(), nil)
	if err != nil {
		writeServiceError(w, h.Logger, "producto form", err)
		return
	}
	render(w, h.Logger, "producto_form.html", data)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := productFormInput(r)
	if err != nil {
		http.Error(w, "cantidad inválida", http.StatusBadRequest)
		return
	}
	if _, err := h.Products.Create(r.Context(), in); err != nil {
		writeServiceError(w, h.Logger, "create producto", err)
		return
	}
	http.Redirect(w, r, "/productos", http.StatusSeeOther)
}

func (h *ProductHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	producto, err := h.Products.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, "get producto", err)
		return
	}
	data, err := h.formData(r.Context(), producto)
	if err != nil {
		writeServiceError(w, h.Logger, "producto form", err)
		return
	}
	render(w, h.Logger, "producto_form.html", data)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	in, err := productFormInput(r)
	if err != nil {
		http.Error(w, "cantidad inválida", http.StatusBadRequest)
		return
	}
	if _, err := h.Products.Update(r.Context(), id, in); err != nil {
		writeServiceError(w, h.Logger, "update producto", err)
		return
	}
	http.Redirect(w, r, "/productos", http.StatusSeeOther)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Products.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.Logger, "delete producto", err)
		return
	}
	http.Redirect(w, r, "/productos", http.StatusSeeOther)
}

func (h *ProductHandler) formData(ctx context.Context, producto *model.Product) (map[string]any, error) {
	categorias, err := h.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	proveedores, err := h.Suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"Producto":    producto,
		"Categorias":  categorias,
		"Proveedores": proveedores,
	}, nil
}

func productFormInput(r *http.Request) (service.ProductInput, error) {
	if err := r.ParseForm(); err != nil {
		return service.ProductInput{}, err
	}
	cantidad, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("cantidad")))
	if err != nil {
		return service.ProductInput{}, err
	}
	return service.ProductInput{
		Nombre:      strings.TrimSpace(r.PostFormValue("nombre")),
		Descripcion: strings.TrimSpace(r.PostFormValue("descripcion")),
		Cantidad:    cantidad,
		CategoriaID: strings.TrimSpace(r.PostFormValue("categoria_id")),
		ProveedorID: strings.TrimSpace(r.PostFormValue("proveedor_id")),
		Ubicacion:   strings.TrimSpace(r.PostFormValue("ubicacion")),
	}, nil
}
