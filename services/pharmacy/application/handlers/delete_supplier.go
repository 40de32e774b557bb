package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/rxledger/pkg/auth"
	"github.com/ghuser/rxledger/pkg/errhttp"
	"github.com/ghuser/rxledger/pkg/httpx"
	appsvcs "github.com/ghuser/rxledger/services/pharmacy/application/services"
)

// DeleteSupplierHandler handles DELETE /api/suppliers/{id} requests.
type DeleteSupplierHandler struct {
	svc *appsvcs.Services
}

// NewDeleteSupplierHandler returns a DeleteSupplierHandler backed by the given services.
func NewDeleteSupplierHandler(svc *appsvcs.Services) *DeleteSupplierHandler {
	return &DeleteSupplierHandler{svc: svc}
}

// Execute removes a supplier.
//
//	@Summary		Delete supplier
//	@Description	Removes a supplier from the org
//	@Tags			suppliers
//	@Produce		json
//	@Param			id	path	string	true	"Supplier ID"
//	@Success		204	"supplier deleted"
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/suppliers/{id} [delete]
func (h *DeleteSupplierHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid supplier id")
		return
	}

	if err := h.svc.Supplier.Delete(r.Context(), orgID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
