package federativeunit

import "time"

type FederativeUnit struct {
	ID           int64  `gorm:"primaryKey"`
	Abbreviation string `gorm:"type:varchar(2);not null;uniqueIndex:uq_federative_unit_abbreviation"`
	Name         string `gorm:"type:varchar(45);not null;uniqueIndex:uq_federative_unit_name"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (FederativeUnit) TableName() string { return "federative_units" }
