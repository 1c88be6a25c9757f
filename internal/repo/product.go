package repo

import (
	"Inventario/internal/model"
	"context"

	"gorm.io/gorm"
)

// ProductRepository gives the service CRUD plus the denormalizing read used
// by the product list view.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)

	// ListWithRefs expands each product's category and supplier reference.
	// Products whose category or supplier no longer exists are excluded,
	// the same inner-join the old aggregation produced. ListAll still
	// returns them.
	ListWithRefs(ctx context.Context) ([]model.Product, error)

	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id string) error
}

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository creates the gorm-backed product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	var productos []model.Product
	if err := r.db.WithContext(ctx).Order("nombre").Find(&productos).Error; err != nil {
		return nil, err
	}
	return productos, nil
}

func (r *productRepo) ListWithRefs(ctx context.Context) ([]model.Product, error) {
	var productos []model.Product
	err := r.db.WithContext(ctx).
		Preload("Categoria").
		Preload("Proveedor").
		Order("nombre").
		Find(&productos).Error
	if err != nil {
		return nil, err
	}
	joined := make([]model.Product, 0, len(productos))
	for _, p := range productos {
		if p.Categoria == nil || p.Proveedor == nil {
			continue // dangling reference
		}
		joined = append(joined, p)
	}
	return joined, nil
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Omit("Categoria", "Proveedor").Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
