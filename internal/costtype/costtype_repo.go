package costtype

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=costtype_repo.go -destination=mock/costtype_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id int64) (*CostType, error)
	FindAll(ctx context.Context) ([]CostType, error)
	Count(ctx context.Context) (int64, error)
	CreateAll(ctx context.Context, rows []CostType) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id int64) (*CostType, error) {
	var ct CostType
	err := r.db.WithContext(ctx).First(&ct, "id = ?", id).Error
	return &ct, err
}

func (r *repository) FindAll(ctx context.Context) ([]CostType, error) {
	var rows []CostType
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CostType{}).Count(&count).Error
	return count, err
}

func (r *repository) CreateAll(ctx context.Context, rows []CostType) error {
	return r.db.WithContext(ctx).Create(&rows).Error
}
