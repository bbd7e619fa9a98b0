package triperrors

import (
	"net/http"

	"go-viagens/internal/shared/apperror"
)

var (
	ErrTripNotFound = apperror.New(
		apperror.CodeNotFound,
		"trip not found",
		http.StatusNotFound,
	)
	// ErrTripTooSoon fires when an approved trip already exists and the new
	// one starts within seven days of its end date.
	ErrTripTooSoon = apperror.New(
		apperror.CodeConflict,
		"a trip is already approved for this employee; the new trip must start at least one week after it ends",
		http.StatusConflict,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"dates must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrNegativeCostAmount = apperror.New(
		apperror.CodeInvalidInput,
		"cost amounts must not be negative",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"trip end date must not be before the start date",
		http.StatusBadRequest,
	)
	ErrDestinationNotFound = apperror.New(
		apperror.CodeNotFound,
		"trip destination not found",
		http.StatusNotFound,
	)
	ErrVoucherUnavailable = apperror.New(
		apperror.CodeInternalError,
		"could not render the trip voucher",
		http.StatusInternalServerError,
	)
)
