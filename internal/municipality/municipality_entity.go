package municipality

import "time"

type Municipality struct {
	ID               int64  `gorm:"primaryKey"`
	Name             string `gorm:"type:varchar(100);not null;uniqueIndex:uq_municipality_name_unit"`
	FederativeUnitID int64  `gorm:"not null;uniqueIndex:uq_municipality_name_unit"`
	Active           bool   `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Municipality) TableName() string { return "municipalities" }
