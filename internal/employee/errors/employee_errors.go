package employeeerrors

import (
	"net/http"

	"go-viagens/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"email already registered",
		http.StatusConflict,
	)
	ErrNameAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"employee name already registered",
		http.StatusConflict,
	)
)
