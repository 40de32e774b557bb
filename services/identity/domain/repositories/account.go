package repositories

import (
	"context"

	"github.com/ghuser/rxledger/services/identity/domain/models"
)

// AccountRepository is the persistence interface for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByUsername(ctx context.Context, username string) (*models.Account, error)

	// CountByRole reports how many accounts hold the given role, across all
	// orgs. Used to enforce the admin registration cap.
	CountByRole(ctx context.Context, role models.Role) (int, error)
}
