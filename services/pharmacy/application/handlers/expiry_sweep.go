package handlers

import (
	"net/http"

	"github.com/ghuser/rxledger/pkg/errhttp"
	"github.com/ghuser/rxledger/pkg/httpx"
	appsvcs "github.com/ghuser/rxledger/services/pharmacy/application/services"
)

// ExpirySweepResponse reports what an on-demand sweep did.
type ExpirySweepResponse struct {
	Scanned int `json:"scanned" example:"120"`
	Flagged int `json:"flagged" example:"3"`
} // @name ExpirySweepResponse

// ExpirySweepHandler handles POST /api/medicines/expiry-sweep requests.
// The same sweep runs on a schedule in the worker process; this endpoint
// exists for operators who do not want to wait for the next run.
type ExpirySweepHandler struct {
	svc *appsvcs.Services
}

// NewExpirySweepHandler returns an ExpirySweepHandler backed by the given services.
func NewExpirySweepHandler(svc *appsvcs.Services) *ExpirySweepHandler {
	return &ExpirySweepHandler{svc: svc}
}

// Execute runs a full expiry sweep synchronously.
//
//	@Summary		Run expiry sweep
//	@Description	Scans all medicines and stamps the expired flag where the expiry date has passed. Admin only.
//	@Tags			medicines
//	@Produce		json
//	@Success		200	{object}	ExpirySweepResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Router			/api/medicines/expiry-sweep [post]
func (h *ExpirySweepHandler) Execute(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Sweeper.Run(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ExpirySweepResponse{
		Scanned: report.Scanned,
		Flagged: report.Flagged,
	})
}
