package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/rxledger/pkg/errhttp"
	"github.com/ghuser/rxledger/pkg/httpx"
	pkgvalidator "github.com/ghuser/rxledger/pkg/validator"
	appsvcs "github.com/ghuser/rxledger/services/identity/application/services"
)

// RegisterRequest is the request body for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=255" example:"alice"`
	Password string `json:"password" validate:"required,min=8,max=72"  example:"s3cret-pass"`
	Role     string `json:"role"     validate:"required,oneof=admin staff" example:"admin"`
} // @name RegisterRequest

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	OrgID     uuid.UUID `json:"org_id"     example:"550e8400-e29b-41d4-a716-446655440000"`
	Username  string    `json:"username"   example:"alice"`
	Role      string    `json:"role"       example:"admin"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name RegisterResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"username is already taken"`
} // @name AuthErrorResponse

// RegisterHandler handles POST /api/auth/register requests.
type RegisterHandler struct {
	svc *appsvcs.Services
}

// NewRegisterHandler returns a RegisterHandler backed by the given services.
func NewRegisterHandler(svc *appsvcs.Services) *RegisterHandler {
	return &RegisterHandler{svc: svc}
}

// Execute registers a new account.
//
//	@Summary		Register account
//	@Description	Creates a new account and its own tenant. Admin registrations are capped.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration request"
//	@Success		201		{object}	RegisterResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/api/auth/register [post]
func (h *RegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterRequest](w, r)
	if !ok {
		return
	}

	account, err := h.svc.Account.Register(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, RegisterResponse{
		ID:        account.ID,
		OrgID:     account.OrgID,
		Username:  account.Username,
		Role:      string(account.Role),
		CreatedAt: account.CreatedAt,
	})
}
