// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/rxledger/pkg/httpx"
	identitydomain "github.com/ghuser/rxledger/services/identity/domain"
	pharmdomain "github.com/ghuser/rxledger/services/pharmacy/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors, which keeps
// business-rule rejections (4xx) distinguishable from infrastructure
// failures (store down, etc.).
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, pharmdomain.ErrMedicineNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, pharmdomain.ErrMedicineAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, pharmdomain.ErrInvalidMedicine):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, pharmdomain.ErrInvalidQuantity):
		return http.StatusBadRequest // 400
	case errors.Is(err, pharmdomain.ErrInsufficientStock):
		return http.StatusConflict // 409
	case errors.Is(err, pharmdomain.ErrMedicineExpired):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, pharmdomain.ErrNotificationFailed):
		return http.StatusBadGateway // 502 — receipt relay failed, sale aborted
	case errors.Is(err, pharmdomain.ErrSupplierNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, pharmdomain.ErrInvalidSupplier):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, identitydomain.ErrAccountNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, identitydomain.ErrUsernameTaken):
		return http.StatusConflict // 409
	case errors.Is(err, identitydomain.ErrInvalidCredentials):
		return http.StatusUnauthorized // 401
	case errors.Is(err, identitydomain.ErrAdminLimitReached):
		return http.StatusBadRequest // 400
	case errors.Is(err, identitydomain.ErrInvalidRole):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
