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

// UpdateMedicineRequest is the request body for PUT /api/medicines/{id}.
// Expiry date and the expired flag are not updatable through this endpoint.
type UpdateMedicineRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=255" example:"Paracetamol"`
	Description string  `json:"description" validate:"max=1000"               example:"500mg tablets"`
	UnitPrice   float64 `json:"unit_price"  validate:"gte=0"                  example:"12.0"`
	Quantity    int     `json:"quantity"    validate:"gte=0"                  example:"80"`
} // @name UpdateMedicineRequest

// UpdateMedicineHandler handles PUT /api/medicines/{id} requests.
type UpdateMedicineHandler struct {
	svc *appsvcs.Services
}

// NewUpdateMedicineHandler returns an UpdateMedicineHandler backed by the given services.
func NewUpdateMedicineHandler(svc *appsvcs.Services) *UpdateMedicineHandler {
	return &UpdateMedicineHandler{svc: svc}
}

// Execute replaces the mutable fields of a medicine.
//
//	@Summary		Update medicine
//	@Description	Replaces name, description, unit price, and quantity
//	@Tags			medicines
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Medicine ID"
//	@Param			request	body		UpdateMedicineRequest	true	"Medicine update request"
//	@Success		200		{object}	MedicineResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/medicines/{id} [put]
func (h *UpdateMedicineHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[UpdateMedicineRequest](w, r)
	if !ok {
		return
	}

	m, err := h.svc.Medicine.Update(r.Context(), orgID, id, req.Name, req.Description, req.UnitPrice, req.Quantity)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toMedicineResponse(m))
}
