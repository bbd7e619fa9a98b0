package rbac

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	// GetEmployeeRole reads the role id straight from storage. found is false
	// when the employee does not exist or was deactivated.
	GetEmployeeRole(ctx context.Context, employeeID int64) (roleID int64, found bool, err error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetEmployeeRole(ctx context.Context, employeeID int64) (int64, bool, error) {
	var roleID int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("role_id").
		Where("id = ?", employeeID).
		Where("active = ?", true).
		Take(&roleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return roleID, true, nil
}
