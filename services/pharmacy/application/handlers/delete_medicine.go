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

// DeleteMedicineHandler handles DELETE /api/medicines/{id} requests.
type DeleteMedicineHandler struct {
	svc *appsvcs.Services
}

// NewDeleteMedicineHandler returns a DeleteMedicineHandler backed by the given services.
func NewDeleteMedicineHandler(svc *appsvcs.Services) *DeleteMedicineHandler {
	return &DeleteMedicineHandler{svc: svc}
}

// Execute removes a medicine.
//
//	@Summary		Delete medicine
//	@Description	Removes a medicine from the org's inventory
//	@Tags			medicines
//	@Produce		json
//	@Param			id	path	string	true	"Medicine ID"
//	@Success		204	"medicine deleted"
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/medicines/{id} [delete]
func (h *DeleteMedicineHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid medicine id")
		return
	}

	if err := h.svc.Medicine.Delete(r.Context(), orgID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
