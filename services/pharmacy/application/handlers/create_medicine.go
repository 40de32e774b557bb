package handlers

import (
	"net/http"

	"github.com/ghuser/rxledger/pkg/auth"
	"github.com/ghuser/rxledger/pkg/errhttp"
	"github.com/ghuser/rxledger/pkg/httpx"
	pkgvalidator "github.com/ghuser/rxledger/pkg/validator"
	appsvcs "github.com/ghuser/rxledger/services/pharmacy/application/services"
)

// CreateMedicineRequest is the request body for POST /api/medicines.
type CreateMedicineRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=255" example:"Paracetamol"`
	Description string  `json:"description" validate:"max=1000"               example:"500mg tablets"`
	UnitPrice   float64 `json:"unit_price"  validate:"gte=0"                  example:"10.5"`
	Quantity    int     `json:"quantity"    validate:"gte=0"                  example:"100"`
	ExpiryDate  string  `json:"expiry_date" example:"2027-01-31"`
} // @name CreateMedicineRequest

// CreateMedicineHandler handles POST /api/medicines requests.
type CreateMedicineHandler struct {
	svc *appsvcs.Services
}

// NewCreateMedicineHandler returns a CreateMedicineHandler backed by the given services.
func NewCreateMedicineHandler(svc *appsvcs.Services) *CreateMedicineHandler {
	return &CreateMedicineHandler{svc: svc}
}

// Execute creates a new medicine.
//
//	@Summary		Create medicine
//	@Description	Adds a medicine to the caller's inventory
//	@Tags			medicines
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateMedicineRequest	true	"Medicine creation request"
//	@Success		201		{object}	MedicineResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/medicines [post]
func (h *CreateMedicineHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateMedicineRequest](w, r)
	if !ok {
		return
	}

	m, err := h.svc.Medicine.Create(r.Context(), orgID, req.Name, req.Description, req.UnitPrice, req.Quantity, req.ExpiryDate)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toMedicineResponse(m))
}
