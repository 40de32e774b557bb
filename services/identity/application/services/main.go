package services

import (
	"github.com/ghuser/rxledger/pkg/app"
	"github.com/ghuser/rxledger/services/identity/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Account *AccountService
}

// New wires the identity services with infrastructure from the Application
// container.
func New(a *app.Application, adminLimit int) *Services {
	accountRepo := postgres.NewAccountRepository(a.Db)
	return &Services{
		Account: NewAccountService(accountRepo, adminLimit),
	}
}
