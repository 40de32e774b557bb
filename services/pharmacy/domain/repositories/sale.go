package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/rxledger/services/pharmacy/domain/models"
)

// SaleRepository is the read interface for the append-only sale ledger.
// Writes happen exclusively through MedicineRepository.CommitSale so a ledger
// entry can never exist without its stock mutation.
type SaleRepository interface {
	// FindByOrgID retrieves a paginated list of sales for the given org,
	// newest first. Returns the sales slice and the total count.
	FindByOrgID(ctx context.Context, orgID uuid.UUID, opts QueryOpts) ([]*models.Sale, int, error)
}
