package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pharmdomain "github.com/ghuser/rxledger/services/pharmacy/domain"
	"github.com/ghuser/rxledger/services/pharmacy/domain/models"
	"github.com/ghuser/rxledger/services/pharmacy/domain/repositories"
)

// SupplierService manages the org's vendor contact records.
type SupplierService struct {
	repo repositories.SupplierRepository
}

// NewSupplierService returns a SupplierService wired with the given repository.
func NewSupplierService(repo repositories.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

// Create validates and persists a supplier under the caller's org.
func (s *SupplierService) Create(ctx context.Context, orgID uuid.UUID, name, contactNumber, email, address string) (*models.Supplier, error) {
	sup, err := models.NewSupplier(orgID, name, contactNumber, email, address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pharmdomain.ErrInvalidSupplier, err)
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return sup, nil
}

// List returns all suppliers for the org, ordered by name.
func (s *SupplierService) List(ctx context.Context, orgID uuid.UUID) ([]*models.Supplier, error) {
	suppliers, err := s.repo.FindByOrgID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, nil
}

// Delete removes a supplier by ID scoped to the given org.
// Returns ErrSupplierNotFound if no matching supplier exists.
func (s *SupplierService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
