package municipality

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=municipality_repo.go -destination=mock/municipality_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, m *Municipality) error
	FindAll(ctx context.Context) ([]Municipality, error)
	FindByID(ctx context.Context, id int64) (*Municipality, error)
	FindByFederativeUnit(ctx context.Context, federativeUnitID int64) ([]Municipality, error)
	Update(ctx context.Context, m *Municipality) error
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

func (r *repository) Create(ctx context.Context, m *Municipality) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Municipality, error) {
	var rows []Municipality
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Municipality, error) {
	var m Municipality
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) FindByFederativeUnit(ctx context.Context, federativeUnitID int64) ([]Municipality, error) {
	var rows []Municipality
	err := r.db.WithContext(ctx).
		Where("federative_unit_id = ?", federativeUnitID).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, m *Municipality) error {
	return r.db.WithContext(ctx).Save(m).Error
}
