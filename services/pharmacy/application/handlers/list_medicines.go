package handlers

import (
	"net/http"

	"github.com/ghuser/rxledger/pkg/auth"
	"github.com/ghuser/rxledger/pkg/errhttp"
	"github.com/ghuser/rxledger/pkg/httpx"
	appsvcs "github.com/ghuser/rxledger/services/pharmacy/application/services"
)

// ListMedicinesResponse is the medicine listing.
type ListMedicinesResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
	Total     int                `json:"total" example:"42"`
} // @name ListMedicinesResponse

// ListMedicinesHandler handles GET /api/medicines requests.
type ListMedicinesHandler struct {
	svc *appsvcs.Services
}

// NewListMedicinesHandler returns a ListMedicinesHandler backed by the given services.
func NewListMedicinesHandler(svc *appsvcs.Services) *ListMedicinesHandler {
	return &ListMedicinesHandler{svc: svc}
}

// Execute lists the caller's medicines.
//
//	@Summary		List medicines
//	@Description	Returns the org's medicines ordered by name; the full list unless paginate=true
//	@Tags			medicines
//	@Produce		json
//	@Param			paginate	query		bool	false	"Enable pagination (default false)"
//	@Param			page		query		int		false	"Page number (1-based)"
//	@Param			size		query		int		false	"Page size (max 100)"
//	@Success		200		{object}	ListMedicinesResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/api/medicines [get]
func (h *ListMedicinesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, err := auth.OrgIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	medicines, total, err := h.svc.Medicine.List(r.Context(), orgID, queryOptsFromRequest(r))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListMedicinesResponse{
		Medicines: make([]MedicineResponse, 0, len(medicines)),
		Total:     total,
	}
	for _, m := range medicines {
		resp.Medicines = append(resp.Medicines, toMedicineResponse(m))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
