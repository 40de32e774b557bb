package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/rxledger/pkg/auth"
	"github.com/ghuser/rxledger/pkg/errhttp"
	"github.com/ghuser/rxledger/pkg/httpx"
	"github.com/ghuser/rxledger/pkg/logger"
	pkgvalidator "github.com/ghuser/rxledger/pkg/validator"
	appsvcs "github.com/ghuser/rxledger/services/identity/application/services"
)

// LoginRequest is the request body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"s3cret-pass"`
} // @name LoginRequest

// LoginResponse is returned on successful login.
type LoginResponse struct {
	OrgID    uuid.UUID `json:"org_id"   example:"550e8400-e29b-41d4-a716-446655440000"`
	Username string    `json:"username" example:"alice"`
	Role     string    `json:"role"     example:"admin"`
} // @name LoginResponse

// LoginHandler handles POST /api/auth/login requests.
type LoginHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
	log   logger.Logger
}

// NewLoginHandler returns a LoginHandler backed by the given services and
// session store.
func NewLoginHandler(svc *appsvcs.Services, store sessions.Store, log logger.Logger) *LoginHandler {
	return &LoginHandler{svc: svc, store: store, log: log}
}

// Execute verifies credentials and establishes a session.
//
//	@Summary		Log in
//	@Description	Verifies credentials and sets the session cookie
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login request"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/api/auth/login [post]
func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	account, err := h.svc.Account.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := auth.SignIn(w, r, h.store, account.OrgID, account.ID, string(account.Role)); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write session", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "could not establish session")
		return
	}

	httpx.JSON(w, http.StatusOK, LoginResponse{
		OrgID:    account.OrgID,
		Username: account.Username,
		Role:     string(account.Role),
	})
}
