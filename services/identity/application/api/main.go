package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/rxledger/pkg/app"
	"github.com/ghuser/rxledger/services/identity/application/handlers"
	appsvcs "github.com/ghuser/rxledger/services/identity/application/services"
)

// AuthRoutes registers authentication endpoints on the provided chi router.
// These routes are unauthenticated; login is how a session is obtained.
func AuthRoutes(r chi.Router, a *app.Application, adminLimit int) {
	svcs := appsvcs.New(a, adminLimit)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(svcs).Execute)
		r.Post("/login", handlers.NewLoginHandler(svcs, a.SessionStore, a.Logger).Execute)
		r.Post("/logout", handlers.NewLogoutHandler(a.SessionStore, a.Logger).Execute)
	})
}
