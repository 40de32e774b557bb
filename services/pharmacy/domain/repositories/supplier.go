package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/rxledger/services/pharmacy/domain/models"
)

// SupplierRepository is the persistence interface for Supplier records.
// Every query is scoped by orgID; an id owned by another org behaves like a
// missing id (ErrSupplierNotFound).
type SupplierRepository interface {
	Create(ctx context.Context, s *models.Supplier) error

	// FindByOrgID retrieves all suppliers for the given org, ordered by name.
	FindByOrgID(ctx context.Context, orgID uuid.UUID) ([]*models.Supplier, error)

	// Delete removes a supplier by ID scoped to the given org.
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}
