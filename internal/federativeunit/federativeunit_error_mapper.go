package federativeunit

import (
	"errors"
	"strings"

	federativeuniterrors "go-viagens/internal/federativeunit/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return federativeuniterrors.ErrFederativeUnitNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_federative_unit_abbreviation", "uq_federative_unit_name":
				return federativeuniterrors.ErrFederativeUnitAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_federative_unit") {
		return federativeuniterrors.ErrFederativeUnitAlreadyExists
	}

	return err
}
