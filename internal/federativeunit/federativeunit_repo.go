package federativeunit

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=federativeunit_repo.go -destination=mock/federativeunit_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, u *FederativeUnit) error
	FindAll(ctx context.Context) ([]FederativeUnit, error)
	FindByID(ctx context.Context, id int64) (*FederativeUnit, error)
	FindByAbbreviation(ctx context.Context, abbreviation string) (*FederativeUnit, error)
	Update(ctx context.Context, u *FederativeUnit) error
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

func (r *repository) Create(ctx context.Context, u *FederativeUnit) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindAll(ctx context.Context) ([]FederativeUnit, error) {
	var units []FederativeUnit
	err := r.db.WithContext(ctx).Order("id ASC").Find(&units).Error
	return units, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*FederativeUnit, error) {
	var unit FederativeUnit
	err := r.db.WithContext(ctx).First(&unit, "id = ?", id).Error
	return &unit, err
}

func (r *repository) FindByAbbreviation(ctx context.Context, abbreviation string) (*FederativeUnit, error) {
	var unit FederativeUnit
	err := r.db.WithContext(ctx).First(&unit, "abbreviation = ?", abbreviation).Error
	return &unit, err
}

func (r *repository) Update(ctx context.Context, u *FederativeUnit) error {
	return r.db.WithContext(ctx).Save(u).Error
}
