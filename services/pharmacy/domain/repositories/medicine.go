package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/rxledger/services/pharmacy/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
// The zero value means no pagination: everything, from the start.
type QueryOpts struct {
	Limit  int // Maximum number of records to return; 0 means no limit
	Offset int // Number of records to skip
}

// MedicineRepository is the persistence interface for the Medicine aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Every query is scoped by orgID. An id that exists under a different org
// must behave exactly like a missing id (ErrMedicineNotFound).
type MedicineRepository interface {
	Create(ctx context.Context, m *models.Medicine) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Medicine, error)
	GetByName(ctx context.Context, orgID uuid.UUID, name string) (*models.Medicine, error)

	// FindByOrgID retrieves a paginated list of medicines for the given org.
	// Returns the medicines slice and the total count (ignoring pagination).
	FindByOrgID(ctx context.Context, orgID uuid.UUID, opts QueryOpts) ([]*models.Medicine, int, error)

	// Update persists name/description/price/quantity changes to an existing medicine.
	Update(ctx context.Context, m *models.Medicine) error

	// Delete removes a medicine by ID scoped to the given org.
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	// DecrementStock atomically subtracts quantity units, failing with
	// InsufficientStockError when fewer units are on hand. The row is kept
	// even when the quantity reaches zero. Returns the updated medicine.
	// This is the direct-sale path; it writes no ledger entry.
	DecrementStock(ctx context.Context, orgID, id uuid.UUID, quantity int) (*models.Medicine, error)

	// CommitSale performs the billing commit in a single transaction:
	// atomically decrement stock, delete the medicine row when its quantity
	// reaches exactly zero, append the ledger entry, and publish
	// SaleRecordedEvent through the transactional outbox. Either all of it
	// happens or none of it does.
	CommitSale(ctx context.Context, medicineID uuid.UUID, sale *models.Sale) error

	// ListChunk returns up to limit medicines across ALL orgs ordered by id,
	// starting strictly after afterID (pass uuid.Nil to start from the
	// beginning). Used by the expiry reconciliation sweep.
	ListChunk(ctx context.Context, afterID uuid.UUID, limit int) ([]*models.Medicine, error)

	// MarkExpired stamps the sticky expired flag on the given medicines.
	// Already-flagged ids are a no-op.
	MarkExpired(ctx context.Context, ids []uuid.UUID) error
}
