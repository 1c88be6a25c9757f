package service

import (
	"Inventario/internal/model"
	"Inventario/internal/repo"
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrBadQuantity  = errors.New("cantidad must be a non-negative integer")
	ErrBadReference = errors.New("referenced category or supplier does not exist")
)

// ProductInput carries the product form fields.
type ProductInput struct {
	Nombre      string
	Descripcion string
	Cantidad    int
	CategoriaID string
	ProveedorID string
	Ubicacion   string
}

// ProductService validates product fields and the category/supplier
// references before anything reaches the store.
type ProductService struct {
	productos   repo.ProductRepository
	categorias  repo.CategoryRepository
	proveedores repo.SupplierRepository
}

func NewProductService(p repo.ProductRepository, c repo.CategoryRepository, s repo.SupplierRepository) *ProductService {
	return &ProductService{productos: p, categorias: c, proveedores: s}
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.productos.ListAll(ctx)
}

// ListWithRefs returns products with category and supplier expanded;
// rows with dangling references are excluded.
func (s *ProductService) ListWithRefs(ctx context.Context) ([]model.Product, error) {
	return s.productos.ListWithRefs(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	return s.productos.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*model.Product, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	p := &model.Product{
		ID:          uuid.NewString(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Cantidad:    in.Cantidad,
		CategoriaID: in.CategoriaID,
		ProveedorID: in.ProveedorID,
		Ubicacion:   in.Ubicacion,
	}
	if err := s.productos.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) (*model.Product, error) {
	p, err := s.productos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	p.Nombre = in.Nombre
	p.Descripcion = in.Descripcion
	p.Cantidad = in.Cantidad
	p.CategoriaID = in.CategoriaID
	p.ProveedorID = in.ProveedorID
	p.Ubicacion = in.Ubicacion

	if err := s.productos.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.productos.Delete(ctx, id)
}

// validate rejects empty names, negative stock, and references that do not
// resolve. A malformed reference comes back as ErrBadReference, never as a
// store error.
func (s *ProductService) validate(ctx context.Context, in ProductInput) error {
	if in.Nombre == "" {
		return ErrMissingField
	}
	if in.Cantidad < 0 {
		return ErrBadQuantity
	}
	if _, err := s.categorias.GetByID(ctx, in.CategoriaID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrBadReference
		}
		return err
	}
	if _, err := s.proveedores.GetByID(ctx, in.ProveedorID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrBadReference
		}
		return err
	}
	return nil
}
