package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/rxledger/pkg/auth"
	"github.com/ghuser/rxledger/pkg/errhttp"
	"github.com/ghuser/rxledger/pkg/httpx"
	pkgvalidator "github.com/ghuser/rxledger/pkg/validator"
	appsvcs "github.com/ghuser/rxledger/services/pharmacy/application/services"
)

// SellMedicineRequest is the request body for POST /api/medicines/{id}/sell.
type SellMedicineRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0" example:"5"`
} // @name SellMedicineRequest

// SellMedicineHandler handles the direct stock-adjustment sale. It decrements
// quantity in place; no ledger entry is written and a drained medicine keeps
// its row at zero.
type SellMedicineHandler struct {
	svc *appsvcs.Services
}

// NewSellMedicineHandler returns a SellMedicineHandler backed by the given services.
func NewSellMedicineHandler(svc *appsvcs.Services) *SellMedicineHandler {
	return &SellMedicineHandler{svc: svc}
}

// Execute sells units of a medicine without billing.
//
//	@Summary		Sell medicine (direct)
//	@Description	Decrements stock without a ledger entry; the row survives at zero
//	@Tags			medicines
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Medicine ID"
//	@Param			request	body		SellMedicineRequest	true	"Sale request"
//	@Success		200		{object}	MedicineResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/medicines/{id}/sell [post]
func (h *SellMedicineHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[SellMedicineRequest](w, r)
	if !ok {
		return
	}

	m, err := h.svc.Medicine.Sell(r.Context(), orgID, id, req.Quantity)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toMedicineResponse(m))
}
