package services

import (
	"github.com/ghuser/rxledger/pkg/app"
	"github.com/ghuser/rxledger/pkg/cache"
	"github.com/ghuser/rxledger/services/pharmacy/domain/notifications"
	"github.com/ghuser/rxledger/services/pharmacy/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Medicine *MedicineService
	Billing  *BillingService
	Sale     *SaleService
	Supplier *SupplierService
	Sweeper  *ExpirySweeper
}

// New wires all pharmacy application services with infrastructure from the
// Application container. The notifier is injected separately because the
// worker process runs the sweeper without SMTP access.
func New(a *app.Application, notifier notifications.Notifier, sweepChunkSize int) *Services {
	medicineRepo := postgres.NewMedicineRepository(a.Db, a.EventBus)
	saleRepo := postgres.NewSaleRepository(a.Db)
	supplierRepo := postgres.NewSupplierRepository(a.Db)
	medicineCache := cache.NewMedicineCache(a.Redis)
	return &Services{
		Medicine: NewMedicineService(medicineRepo, medicineCache, a.Logger),
		Billing:  NewBillingService(medicineRepo, notifier, medicineCache),
		Sale:     NewSaleService(saleRepo),
		Supplier: NewSupplierService(supplierRepo),
		Sweeper:  NewExpirySweeper(medicineRepo, sweepChunkSize, a.Logger),
	}
}
