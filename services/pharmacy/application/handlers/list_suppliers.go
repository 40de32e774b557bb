package handlers

import (
	"net/http"

	"github.com/ghuser/rxledger/pkg/auth"
	"github.com/ghuser/rxledger/pkg/errhttp"
	"github.com/ghuser/rxledger/pkg/httpx"
	appsvcs "github.com/ghuser/rxledger/services/pharmacy/application/services"
)

// ListSuppliersResponse is the supplier listing.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
	Total     int                `json:"total" example:"3"`
} // @name ListSuppliersResponse

// ListSuppliersHandler handles GET /api/suppliers requests.
type ListSuppliersHandler struct {
	svc *appsvcs.Services
}

// NewListSuppliersHandler returns a ListSuppliersHandler backed by the given services.
func NewListSuppliersHandler(svc *appsvcs.Services) *ListSuppliersHandler {
	return &ListSuppliersHandler{svc: svc}
}

// Execute lists the caller's suppliers.
//
//	@Summary		List suppliers
//	@Description	Returns all of the org's suppliers, ordered by name
//	@Tags			suppliers
//	@Produce		json
//	@Success		200	{object}	ListSuppliersResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/api/suppliers [get]
func (h *ListSuppliersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	suppliers, err := h.svc.Supplier.List(r.Context(), orgID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListSuppliersResponse{
		Suppliers: make([]SupplierResponse, 0, len(suppliers)),
		Total:     len(suppliers),
	}
	for _, s := range suppliers {
		resp.Suppliers = append(resp.Suppliers, toSupplierResponse(s))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
