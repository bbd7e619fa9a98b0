package trip

import (
	"time"

	"github.com/shopspring/decimal"
)

type Trip struct {
	ID                      int64     `gorm:"primaryKey"`
	EmployeeID              int64     `gorm:"not null;index"`
	DepartureMunicipalityID int64     `gorm:"not null"`
	StatusID                int64     `gorm:"not null;index"`
	StartDate               time.Time `gorm:"type:date;not null"`
	EndDate                 time.Time `gorm:"type:date;not null"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (Trip) TableName() string { return "trips" }

type Destination struct {
	ID             int64     `gorm:"primaryKey"`
	TripID         int64     `gorm:"not null;index"`
	MunicipalityID int64     `gorm:"not null"`
	ArrivalDate    time.Time `gorm:"type:date;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Destination) TableName() string { return "trip_destinations" }

type Cost struct {
	ID            int64           `gorm:"primaryKey"`
	DestinationID int64           `gorm:"not null;index"`
	CostTypeID    int64           `gorm:"not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Cost) TableName() string { return "destination_costs" }
