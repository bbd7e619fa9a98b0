package costtype

import "time"

type CostType struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(45);not null;uniqueIndex:uq_cost_type_name"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CostType) TableName() string { return "cost_types" }

// Seed rows inserted at startup when the table is empty.
func SeedRows() []CostType {
	return []CostType{
		{ID: 1, Name: "Passagens", Active: true},
		{ID: 2, Name: "Alimentação", Active: true},
		{ID: 3, Name: "Hospedagem", Active: true},
		{ID: 4, Name: "Transporte (Uber ou Táxi)", Active: true},
	}
}
