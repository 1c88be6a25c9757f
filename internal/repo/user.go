package repo

import (
	"Inventario/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository is the minimal access contract the user service needs.
type UserRepository interface {
	ListAll(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// GetByCorreo and GetByUsuario match case-insensitively; uniqueness of
	// both fields is enforced at that level.
	GetByCorreo(ctx context.Context, correo string) (*model.User, error)
	GetByUsuario(ctx context.Context, usuario string) (*model.User, error)

	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository creates the gorm-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) ListAll(ctx context.Context) ([]model.User, error) {
	var usuarios []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) GetByCorreo(ctx context.Context, correo string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "LOWER(correo) = LOWER(?)", correo).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) GetByUsuario(ctx context.Context, usuario string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "LOWER(usuario) = LOWER(?)", usuario).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) Update(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *userRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
