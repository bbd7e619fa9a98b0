package tripstatus

import "time"

// Fixed lookup: 1 Pendente, 2 Aprovado, 3 Reprovado.
const (
	Pending  int64 = 1
	Approved int64 = 2
	Rejected int64 = 3
)

type TripStatus struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(30);not null;uniqueIndex:uq_trip_status_name"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TripStatus) TableName() string { return "trip_statuses" }

// Seed rows inserted at startup when the table is empty.
func SeedRows() []TripStatus {
	return []TripStatus{
		{ID: Pending, Name: "Pendente", Active: true},
		{ID: Approved, Name: "Aprovado", Active: true},
		{ID: Rejected, Name: "Reprovado", Active: true},
	}
}
