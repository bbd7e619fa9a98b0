package roleerrors

import (
	"net/http"

	"go-viagens/internal/shared/apperror"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"role not found",
		http.StatusNotFound,
	)
	ErrRoleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"role name already registered",
		http.StatusConflict,
	)
)
