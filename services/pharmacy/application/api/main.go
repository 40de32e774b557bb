package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/rxledger/pkg/app"
	"github.com/ghuser/rxledger/pkg/auth"
	"github.com/ghuser/rxledger/services/pharmacy/application/handlers"
	appsvcs "github.com/ghuser/rxledger/services/pharmacy/application/services"
	"github.com/ghuser/rxledger/services/pharmacy/domain/notifications"
)

// PharmacyRoutes registers inventory, billing, and ledger endpoints on the
// provided chi router. Callers mount this inside an authenticated group;
// every handler resolves its tenant from the session-derived context.
func PharmacyRoutes(r chi.Router, a *app.Application, notifier notifications.Notifier, sweepChunkSize int) {
	svcs := appsvcs.New(a, notifier, sweepChunkSize)

	r.Route("/medicines", func(r chi.Router) {
		r.Post("/", handlers.NewCreateMedicineHandler(svcs).Execute)
		r.Get("/", handlers.NewListMedicinesHandler(svcs).Execute)

		// On-demand sweep is operational, not tenant-scoped: it walks every
		// org's inventory. Restricted to admins.
		r.With(auth.RequireRole("admin", a.Logger)).
			Post("/expiry-sweep", handlers.NewExpirySweepHandler(svcs).Execute)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.NewGetMedicineHandler(svcs).Execute)
			r.Put("/", handlers.NewUpdateMedicineHandler(svcs).Execute)
			r.Delete("/", handlers.NewDeleteMedicineHandler(svcs).Execute)
			r.Post("/sell", handlers.NewSellMedicineHandler(svcs).Execute)
		})
	})

	r.Route("/suppliers", func(r chi.Router) {
		r.Post("/", handlers.NewCreateSupplierHandler(svcs).Execute)
		r.Get("/", handlers.NewListSuppliersHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteSupplierHandler(svcs).Execute)
	})

	r.Post("/billing", handlers.NewProcessBillingHandler(svcs).Execute)
	r.Get("/sales", handlers.NewListSalesHandler(svcs).Execute)
}
