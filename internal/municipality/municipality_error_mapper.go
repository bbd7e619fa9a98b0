package municipality

import (
	"errors"
	"strings"

	municipalityerrors "go-viagens/internal/municipality/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return municipalityerrors.ErrMunicipalityNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_municipality_name_unit" {
			return municipalityerrors.ErrMunicipalityAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_municipality_name_unit") {
		return municipalityerrors.ErrMunicipalityAlreadyExists
	}

	return err
}
