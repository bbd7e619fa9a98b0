package federativeuniterrors

import (
	"net/http"

	"go-viagens/internal/shared/apperror"
)

var (
	ErrFederativeUnitNotFound = apperror.New(
		apperror.CodeNotFound,
		"federative unit not found",
		http.StatusNotFound,
	)
	ErrFederativeUnitAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"federative unit already registered",
		http.StatusConflict,
	)
)
