package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/rxledger/pkg/httpx"
	"github.com/ghuser/rxledger/pkg/logger"
)

const sessionName = "rxledger_session"

const (
	sessionOrgIDKey     = "org_id"
	sessionAccountIDKey = "account_id"
	sessionRoleKey      = "role"
)

// RequireAuth is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the tenant (org) ID, account ID, and role,
// and injects them into the request context.
// Returns 401 Unauthorized if the session is missing, invalid, or lacks a valid org_id.
//
// After this middleware, handlers can safely call auth.OrgIDFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			orgIDStr, ok := session.Values[sessionOrgIDKey].(string)
			if !ok || orgIDStr == "" {
				log.WarnContext(r.Context(), "session missing org_id")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			orgID, err := uuid.Parse(orgIDStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid org_id in session", "org_id", orgIDStr, "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session data"})
				return
			}

			ctx := WithOrgID(r.Context(), orgID)

			if idStr, ok := session.Values[sessionAccountIDKey].(string); ok {
				if accountID, err := uuid.Parse(idStr); err == nil {
					ctx = WithAccountID(ctx, accountID)
				}
			}
			if role, ok := session.Values[sessionRoleKey].(string); ok && role != "" {
				ctx = WithRole(ctx, role)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns a middleware that rejects requests whose session role
// does not match. Must run after RequireAuth.
func RequireRole(role string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, err := RoleFromCtx(r.Context())
			if err != nil || got != role {
				log.WarnContext(r.Context(), "role check failed", "required", role)
				httpx.JSON(w, http.StatusForbidden, map[string]string{"error": "insufficient permissions"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SignIn writes an authenticated session for the given account.
// Called by the identity service after verifying credentials.
func SignIn(w http.ResponseWriter, r *http.Request, store sessions.Store, orgID, accountID uuid.UUID, role string) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		// A tampered cookie still yields a usable fresh session.
		session, _ = store.New(r, sessionName)
	}
	session.Values[sessionOrgIDKey] = orgID.String()
	session.Values[sessionAccountIDKey] = accountID.String()
	session.Values[sessionRoleKey] = role
	return session.Save(r, w)
}

// SignOut invalidates the current session and expires the cookie.
func SignOut(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return nil // nothing to invalidate
	}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
