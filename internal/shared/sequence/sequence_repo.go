package sequence

import (
	"context"

	"gorm.io/gorm"
)

// EntityCounter backs the per-entity numeric id sequences. Every aggregate row
// (trip, destination, cost, employee, ...) gets its id from here instead of a
// column default, so ids stay monotonically increasing per entity type.
type EntityCounter struct {
	EntityType string `gorm:"type:varchar(40);primaryKey"`
	LastValue  int64  `gorm:"not null;default:0"`
	UpdatedAt  int64  `gorm:"autoUpdateTime"`
}

func (EntityCounter) TableName() string { return "entity_counters" }

//go:generate mockgen -destination=mock/sequence_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	NextID(ctx context.Context, entityType string) (int64, error)
	// EnsureAtLeast raises a counter so allocations never collide with rows
	// inserted with fixed ids (seed data).
	EnsureAtLeast(ctx context.Context, entityType string, value int64) error
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

func (r *repository) NextID(ctx context.Context, entityType string) (int64, error) {
	var nextValue int64

	// Atomic UPSERT + increment; safe under concurrent allocations for the
	// same entity type.
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO entity_counters (entity_type, last_value, updated_at)
		VALUES (?, 1, EXTRACT(EPOCH FROM now())::bigint)
		ON CONFLICT (entity_type) DO UPDATE
		SET last_value = entity_counters.last_value + 1,
		    updated_at = EXTRACT(EPOCH FROM now())::bigint
		RETURNING last_value
	`, entityType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

func (r *repository) EnsureAtLeast(ctx context.Context, entityType string, value int64) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO entity_counters (entity_type, last_value, updated_at)
		VALUES (?, ?, EXTRACT(EPOCH FROM now())::bigint)
		ON CONFLICT (entity_type) DO UPDATE
		SET last_value = GREATEST(entity_counters.last_value, EXCLUDED.last_value),
		    updated_at = EXTRACT(EPOCH FROM now())::bigint
	`, entityType, value).Error
}
