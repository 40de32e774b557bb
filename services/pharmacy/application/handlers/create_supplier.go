package handlers

import (
	"net/http"

	"github.com/ghuser/rxledger/pkg/auth"
	"github.com/ghuser/rxledger/pkg/errhttp"
	"github.com/ghuser/rxledger/pkg/httpx"
	pkgvalidator "github.com/ghuser/rxledger/pkg/validator"
	appsvcs "github.com/ghuser/rxledger/services/pharmacy/application/services"
)

// CreateSupplierRequest is the request body for POST /api/suppliers.
type CreateSupplierRequest struct {
	Name          string `json:"name"           validate:"required,min=1,max=255" example:"MediSource Ltd"`
	ContactNumber string `json:"contact_number" validate:"required,max=50"        example:"+1-555-0100"`
	Email         string `json:"email"          validate:"omitempty,email"        example:"orders@medisource.example"`
	Address       string `json:"address"        validate:"max=500"                example:"12 Depot Road"`
} // @name CreateSupplierRequest

// CreateSupplierHandler handles POST /api/suppliers requests.
type CreateSupplierHandler struct {
	svc *appsvcs.Services
}

// NewCreateSupplierHandler returns a CreateSupplierHandler backed by the given services.
func NewCreateSupplierHandler(svc *appsvcs.Services) *CreateSupplierHandler {
	return &CreateSupplierHandler{svc: svc}
}

// Execute creates a new supplier.
//
//	@Summary		Create supplier
//	@Description	Adds a vendor contact record to the caller's org
//	@Tags			suppliers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateSupplierRequest	true	"Supplier creation request"
//	@Success		201		{object}	SupplierResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/suppliers [post]
func (h *CreateSupplierHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateSupplierRequest](w, r)
	if !ok {
		return
	}

	s, err := h.svc.Supplier.Create(r.Context(), orgID, req.Name, req.ContactNumber, req.Email, req.Address)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toSupplierResponse(s))
}
