package service

import (
	"Inventario/internal/model"
	"Inventario/internal/repo"
	"context"

	"github.com/google/uuid"
)

// CategoryInput carries the category form fields.
type CategoryInput struct {
	Nombre      string
	Descripcion string
}

type CategoryService struct {
	repo repo.CategoryRepository
}

func NewCategoryService(r repo.CategoryRepository) *CategoryService {
	return &CategoryService{repo: r}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListAll(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*model.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*model.Category, error) {
	if in.Nombre == "" {
		return nil, ErrMissingField
	}
	c := &model.Category{
		ID:          uuid.NewString(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, in CategoryInput) (*model.Category, error) {
	if in.Nombre == "" {
		return nil, ErrMissingField
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Nombre = in.Nombre
	c.Descripcion = in.Descripcion
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes the category without checking for products that still
// reference it; such products drop out of the joined list view.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
