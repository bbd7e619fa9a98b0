package municipalityerrors

import (
	"net/http"

	"go-viagens/internal/shared/apperror"
)

var (
	ErrMunicipalityNotFound = apperror.New(
		apperror.CodeNotFound,
		"municipality not found",
		http.StatusNotFound,
	)
	ErrMunicipalityAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"municipality already registered for this federative unit",
		http.StatusConflict,
	)
	ErrMunicipalityNotInState = apperror.New(
		apperror.CodeInvalidInput,
		"municipality does not belong to the given federative unit",
		http.StatusBadRequest,
	)
	ErrVerifierUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"municipality verification service unavailable",
		http.StatusServiceUnavailable,
	)
)
