package repo

import (
	"Inventario/internal/model"
	"context"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	ListAll(ctx context.Context) ([]model.Supplier, error)
	GetByID(ctx context.Context, id string) (*model.Supplier, error)
	Create(ctx context.Context, s *model.Supplier) error
	Update(ctx context.Context, s *model.Supplier) error
	Delete(ctx context.Context, id string) error
}

type supplierRepo struct {
	db *gorm.DB
}

// NewSupplierRepository creates the gorm-backed supplier repository.
func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) ListAll(ctx context.Context) ([]model.Supplier, error) {
	var proveedores []model.Supplier
	if err := r.db.WithContext(ctx).Order("nombre").Find(&proveedores).Error; err != nil {
		return nil, err
	}
	return proveedores, nil
}

func (r *supplierRepo) GetByID(ctx context.Context, id string) (*model.Supplier, error) {
	var s model.Supplier
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *supplierRepo) Create(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *supplierRepo) Update(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *supplierRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Supplier{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
