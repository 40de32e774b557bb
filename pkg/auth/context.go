package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const (
	orgIDKey     contextKey = "org_id"
	accountIDKey contextKey = "account_id"
	roleKey      contextKey = "role"
)

// ErrOrgIDNotFound is returned when no OrgID exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrOrgIDNotFound = errors.New("org_id not found in context")

// ErrRoleNotFound is returned when no role exists in the request context.
var ErrRoleNotFound = errors.New("role not found in context")

// OrgIDFromCtx extracts the authenticated tenant (organization) ID from the
// request context. Every repository query must be scoped by this value.
// Returns uuid.Nil and ErrOrgIDNotFound if no OrgID is set (unauthenticated request).
func OrgIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	orgID, ok := ctx.Value(orgIDKey).(uuid.UUID)
	if !ok || orgID == uuid.Nil {
		return uuid.Nil, ErrOrgIDNotFound
	}
	return orgID, nil
}

// WithOrgID returns a new context with the given OrgID attached.
// Used by authentication middleware after validating the session.
func WithOrgID(ctx context.Context, orgID uuid.UUID) context.Context {
	return context.WithValue(ctx, orgIDKey, orgID)
}

// AccountIDFromCtx extracts the authenticated account ID, or uuid.Nil when absent.
func AccountIDFromCtx(ctx context.Context) uuid.UUID {
	accountID, _ := ctx.Value(accountIDKey).(uuid.UUID)
	return accountID
}

// WithAccountID returns a new context with the given account ID attached.
func WithAccountID(ctx context.Context, accountID uuid.UUID) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// RoleFromCtx extracts the authenticated account's role from the request context.
func RoleFromCtx(ctx context.Context) (string, error) {
	role, ok := ctx.Value(roleKey).(string)
	if !ok || role == "" {
		return "", ErrRoleNotFound
	}
	return role, nil
}

// WithRole returns a new context with the given role attached.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}
