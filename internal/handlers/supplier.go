package handlers

import (
	"Inventario/internal/service"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SupplierHandler struct {
	Suppliers *service.SupplierService
	Logger    *zap.SugaredLogger
}

func NewSupplierHandler(s *service.SupplierService, logger *zap.SugaredLogger) *SupplierHandler {
	return &SupplierHandler{Suppliers: s, Logger: logger}
}

func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	proveedores, err := h.Suppliers.List(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "list proveedores", err)
		return
	}
	render(w, h.Logger, "proveedores.html", map[string]any{"Proveedores": proveedores})
}

func (h *SupplierHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	render(w, h.Logger, "proveedor_form.html", map[string]any{"Proveedor": nil})
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := supplierFormInput(r)
	if err != nil {
		http.Error(w, "formulario inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Suppliers.Create(r.Context(), in); err != nil {
		writeServiceError(w, h.Logger, "create proveedor", err)
		return
	}
	http.Redirect(w, r, "/proveedores", http.StatusSeeOther)
}

func (h *SupplierHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	proveedor, err := h.Suppliers.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, "get proveedor", err)
		return
	}
	render(w, h.Logger, "proveedor_form.html", map[string]any{"Proveedor": proveedor})
}

func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	in, err := supplierFormInput(r)
	if err != nil {
		http.Error(w, "formulario inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Suppliers.Update(r.Context(), id, in); err != nil {
		writeServiceError(w, h.Logger, "update proveedor", err)
		return
	}
	http.Redirect(w, r, "/proveedores", http.StatusSeeOther)
}

func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Suppliers.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.Logger, "delete proveedor", err)
		return
	}
	http.Redirect(w, r, "/proveedores", http.StatusSeeOther)
}

func supplierFormInput(r *http.Request) (service.SupplierInput, error) {
	if err := r.ParseForm(); err != nil {
		return service.SupplierInput{}, err
	}
	return service.SupplierInput{
		Nombre:       strings.TrimSpace(r.PostFormValue("nombre")),
		Contacto:     strings.TrimSpace(r.PostFormValue("contacto")),
		Telefono:     strings.TrimSpace(r.PostFormValue("telefono")),
		Correo:       strings.TrimSpace(r.PostFormValue("correo")),
		Calle:        strings.TrimSpace(r.PostFormValue("calle")),
		Ciudad:       strings.TrimSpace(r.PostFormValue("ciudad")),
		CodigoPostal: strings.TrimSpace(r.PostFormValue("codigo_postal")),
	}, nil
}
