package handlers

import (
	"net/http"

	"github.com/ghuser/rxledger/pkg/auth"
	"github.com/ghuser/rxledger/pkg/errhttp"
	"github.com/ghuser/rxledger/pkg/httpx"
	appsvcs "github.com/ghuser/rxledger/services/pharmacy/application/services"
)

// ListSalesResponse is the sale ledger listing.
type ListSalesResponse struct {
	Sales []SaleResponse `json:"sales"`
	Total int            `json:"total" example:"17"`
} // @name ListSalesResponse

// ListSalesHandler handles GET /api/sales requests.
type ListSalesHandler struct {
	svc *appsvcs.Services
}

// NewListSalesHandler returns a ListSalesHandler backed by the given services.
func NewListSalesHandler(svc *appsvcs.Services) *ListSalesHandler {
	return &ListSalesHandler{svc: svc}
}

// Execute lists the caller's sale ledger, newest first.
//
//	@Summary		List sales
//	@Description	Returns the org's sale ledger entries, newest first; the full ledger unless paginate=true
//	@Tags			sales
//	@Produce		json
//	@Param			paginate	query		bool	false	"Enable pagination (default false)"
//	@Param			page		query		int		false	"Page number (1-based)"
//	@Param			size		query		int		false	"Page size (max 100)"
//	@Success		200		{object}	ListSalesResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/api/sales [get]
func (h *ListSalesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	sales, total, err := h.svc.Sale.List(r.Context(), orgID, queryOptsFromRequest(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListSalesResponse{
		Sales: make([]SaleResponse, 0, len(sales)),
		Total: total,
	}
	for _, s := range sales {
		resp.Sales = append(resp.Sales, toSaleResponse(s))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
