package tripstatus

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=tripstatus_repo.go -destination=mock/tripstatus_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id int64) (*TripStatus, error)
	FindAll(ctx context.Context) ([]TripStatus, error)
	Count(ctx context.Context) (int64, error)
	CreateAll(ctx context.Context, rows []TripStatus) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id int64) (*TripStatus, error) {
	var s TripStatus
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindAll(ctx context.Context) ([]TripStatus, error) {
	var rows []TripStatus
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&TripStatus{}).Count(&count).Error
	return count, err
}

func (r *repository) CreateAll(ctx context.Context, rows []TripStatus) error {
	return r.db.WithContext(ctx).Create(&rows).Error
}
