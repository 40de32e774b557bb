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

// GetMedicineHandler handles GET /api/medicines/{id} requests.
type GetMedicineHandler struct {
	svc *appsvcs.Services
}

// NewGetMedicineHandler returns a GetMedicineHandler backed by the given services.
func NewGetMedicineHandler(svc *appsvcs.Services) *GetMedicineHandler {
	return &GetMedicineHandler{svc: svc}
}

// Execute fetches one medicine by ID.
//
//	@Summary		Get medicine
//	@Description	Returns one of the org's medicines by ID
//	@Tags			medicines
//	@Produce		json
//	@Param			id	path		string	true	"Medicine ID"
//	@Success		200	{object}	MedicineResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/medicines/{id} [get]
func (h *GetMedicineHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	m, err := h.svc.Medicine.GetByID(r.Context(), orgID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toMedicineResponse(m))
}
