package employee

import "time"

type Employee struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(100);not null;uniqueIndex:uq_employee_name"`
	Email        string `gorm:"type:varchar(100);not null;uniqueIndex:uq_employee_email"`
	PasswordHash string `gorm:"type:varchar(100)"`
	GoogleID     string `gorm:"type:varchar(60)"`
	RoleID       int64  `gorm:"not null"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Employee) TableName() string { return "employees" }
