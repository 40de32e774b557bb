package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/rxledger/pkg/auth"
	"github.com/ghuser/rxledger/pkg/httpx"
	"github.com/ghuser/rxledger/pkg/logger"
)

// LogoutHandler handles POST /api/auth/logout requests.
type LogoutHandler struct {
	store sessions.Store
	log   logger.Logger
}

// NewLogoutHandler returns a LogoutHandler using the given session store.
func NewLogoutHandler(store sessions.Store, log logger.Logger) *LogoutHandler {
	return &LogoutHandler{store: store, log: log}
}

// Execute invalidates the current session.
//
//	@Summary		Log out
//	@Description	Invalidates the session cookie
//	@Tags			auth
//	@Produce		json
//	@Success		204	"session invalidated"
//	@Router			/api/auth/logout [post]
func (h *LogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r, h.store); err != nil {
		h.log.ErrorContext(r.Context(), "failed to expire session", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "could not end session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
