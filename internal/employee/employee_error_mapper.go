package employee

import (
	"errors"
	"strings"

	employeeerrors "go-viagens/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_employee_email":
				return employeeerrors.ErrEmailAlreadyRegistered
			case "uq_employee_name":
				return employeeerrors.ErrNameAlreadyRegistered
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "uq_employee_email") {
			return employeeerrors.ErrEmailAlreadyRegistered
		}
		if strings.Contains(errMsg, "uq_employee_name") {
			return employeeerrors.ErrNameAlreadyRegistered
		}
	}

	return err
}
