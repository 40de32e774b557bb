package handlers

import (
	"net/http"

	"github.com/ghuser/rxledger/pkg/auth"
	"github.com/ghuser/rxledger/pkg/errhttp"
	"github.com/ghuser/rxledger/pkg/httpx"
	pkgvalidator "github.com/ghuser/rxledger/pkg/validator"
	appsvcs "github.com/ghuser/rxledger/services/pharmacy/application/services"
)

// ProcessBillingRequest is the request body for POST /api/billing.
type ProcessBillingRequest struct {
	MedicineName  string `json:"medicine_name"  validate:"required,min=1,max=255" example:"Paracetamol"`
	Quantity      int    `json:"quantity"       validate:"required,gt=0"          example:"5"`
	CustomerEmail string `json:"customer_email" validate:"required,email"         example:"customer@example.com"`
} // @name ProcessBillingRequest

// ProcessBillingHandler handles POST /api/billing requests: the full sale
// workflow with receipt email, ledger entry, and delete-at-zero.
type ProcessBillingHandler struct {
	svc *appsvcs.Services
}

// NewProcessBillingHandler returns a ProcessBillingHandler backed by the given services.
func NewProcessBillingHandler(svc *appsvcs.Services) *ProcessBillingHandler {
	return &ProcessBillingHandler{svc: svc}
}

// Execute runs the billing workflow.
//
//	@Summary		Bill a sale
//	@Description	Emails the receipt, decrements stock, appends to the sale ledger, and deletes the medicine if stock hits zero
//	@Tags			billing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ProcessBillingRequest	true	"Billing request"
//	@Success		201		{object}	SaleResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/billing [post]
func (h *ProcessBillingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ProcessBillingRequest](w, r)
	if !ok {
		return
	}

	sale, err := h.svc.Billing.ProcessBilling(r.Context(), orgID, req.MedicineName, req.Quantity, req.CustomerEmail)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toSaleResponse(sale))
}
