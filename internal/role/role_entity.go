package role

import "time"

// DefaultRoleID is assigned to employees created at signup; role 1 is the
// administrator (see rbac.AdminRoleID).
const DefaultRoleID int64 = 2

type Role struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(45);not null;uniqueIndex:uq_role_name"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Role) TableName() string { return "roles" }

// Seed rows inserted at startup when the table is empty.
func SeedRows() []Role {
	return []Role{
		{ID: 1, Name: "Administrador", Active: true},
		{ID: 2, Name: "Empregado", Active: true},
	}
}
