package role

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=role_repo.go -destination=mock/role_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, r *Role) error
	FindAll(ctx context.Context) ([]Role, error)
	FindByID(ctx context.Context, id int64) (*Role, error)
	Update(ctx context.Context, r *Role) error
	Count(ctx context.Context) (int64, error)
	CreateAll(ctx context.Context, rows []Role) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Role, error) {
	var roles []Role
	err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error
	return roles, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error
	return &role, err
}

func (r *repository) Update(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Role{}).Count(&count).Error
	return count, err
}

func (r *repository) CreateAll(ctx context.Context, rows []Role) error {
	return r.db.WithContext(ctx).Create(&rows).Error
}
