package trip

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=trip_repo.go -destination=mock/trip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateTrip(ctx context.Context, t *Trip) error
	FindTripByID(ctx context.Context, id int64) (*Trip, error)
	FindTripsByEmployee(ctx context.Context, employeeID int64) ([]Trip, error)
	FindFirstByEmployeeAndStatus(ctx context.Context, employeeID, statusID int64) (*Trip, error)
	UpdateTrip(ctx context.Context, t *Trip) error
	DeleteTrip(ctx context.Context, id int64) (int64, error)

	CreateDestination(ctx context.Context, d *Destination) error
	FindDestinationsByTrip(ctx context.Context, tripID int64) ([]Destination, error)
	UpdateDestination(ctx context.Context, d *Destination) error
	DeleteDestination(ctx context.Context, id int64) error
	DeleteDestinationsByTrip(ctx context.Context, tripID int64) error

	CreateCost(ctx context.Context, c *Cost) error
	FindCostsByDestination(ctx context.Context, destinationID int64) ([]Cost, error)
	UpdateCost(ctx context.Context, c *Cost) error
	DeleteCost(ctx context.Context, id int64) error
	DeleteCostsByDestination(ctx context.Context, destinationID int64) error
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

func (r *repository) CreateTrip(ctx context.Context, t *Trip) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindTripByID(ctx context.Context, id int64) (*Trip, error) {
	var t Trip
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) FindTripsByEmployee(ctx context.Context, employeeID int64) ([]Trip, error) {
	var trips []Trip
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("id ASC").
		Find(&trips).Error
	return trips, err
}

// FindFirstByEmployeeAndStatus returns gorm.ErrRecordNotFound when the
// employee has no trip in the given status.
func (r *repository) FindFirstByEmployeeAndStatus(ctx context.Context, employeeID, statusID int64) (*Trip, error) {
	var t Trip
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status_id = ?", employeeID, statusID).
		Order("id ASC").
		First(&t).Error
	return &t, err
}

func (r *repository) UpdateTrip(ctx context.Context, t *Trip) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) DeleteTrip(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Trip{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) CreateDestination(ctx context.Context, d *Destination) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindDestinationsByTrip(ctx context.Context, tripID int64) ([]Destination, error) {
	var rows []Destination
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateDestination(ctx context.Context, d *Destination) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *repository) DeleteDestination(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Destination{}, "id = ?", id).Error
}

func (r *repository) DeleteDestinationsByTrip(ctx context.Context, tripID int64) error {
	return r.db.WithContext(ctx).Delete(&Destination{}, "trip_id = ?", tripID).Error
}

func (r *repository) CreateCost(ctx context.Context, c *Cost) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindCostsByDestination(ctx context.Context, destinationID int64) ([]Cost, error) {
	var rows []Cost
	err := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateCost(ctx context.Context, c *Cost) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) DeleteCost(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Cost{}, "id = ?", id).Error
}

func (r *repository) DeleteCostsByDestination(ctx context.Context, destinationID int64) error {
	return r.db.WithContext(ctx).Delete(&Cost{}, "destination_id = ?", destinationID).Error
}
