package service

import (
	"Inventario/internal/model"
	"Inventario/internal/repo"
	"context"

	"github.com/google/uuid"
)

// SupplierInput carries the supplier form fields, address included.
type SupplierInput struct {
	Nombre       string
	Contacto     string
	Telefono     string
	Correo       string
	Calle        string
	Ciudad       string
	CodigoPostal string
}

type SupplierService struct {
	repo repo.SupplierRepository
}

func NewSupplierService(r repo.SupplierRepository) *SupplierService {
	return &SupplierService{repo: r}
}

func (s *SupplierService) List(ctx context.Context) ([]model.Supplier, error) {
	return s.repo.ListAll(ctx)
}

func (s *SupplierService) Get(ctx context.Context, id string) (*model.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SupplierService) Create(ctx context.Context, in SupplierInput) (*model.Supplier, error) {
	if in.Nombre == "" {
		return nil, ErrMissingField
	}
	p := &model.Supplier{
		ID:       uuid.NewString(),
		Nombre:   in.Nombre,
		Contacto: in.Contacto,
		Telefono: in.Telefono,
		Correo:   in.Correo,
		Direccion: model.Address{
			Calle:        in.Calle,
			Ciudad:       in.Ciudad,
			CodigoPostal: in.CodigoPostal,
		},
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *SupplierService) Update(ctx context.Context, id string, in SupplierInput) (*model.Supplier, error) {
	if in.Nombre == "" {
		return nil, ErrMissingField
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Nombre = in.Nombre
	p.Contacto = in.Contacto
	p.Telefono = in.Telefono
	p.Correo = in.Correo
	p.Direccion = model.Address{
		Calle:        in.Calle,
		Ciudad:       in.Ciudad,
		CodigoPostal: in.CodigoPostal,
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *SupplierService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
