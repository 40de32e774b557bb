package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/rxledger/services/pharmacy/domain/models"
	"github.com/ghuser/rxledger/services/pharmacy/domain/repositories"
)

// SaleService exposes read access to the sale ledger. The ledger is
// append-only and written solely by the billing commit, so there are no
// mutation methods here.
type SaleService struct {
	repo repositories.SaleRepository
}

// NewSaleService returns a SaleService backed by the given repository.
func NewSaleService(repo repositories.SaleRepository) *SaleService {
	return &SaleService{repo: repo}
}

// List returns a paginated slice of the org's sales plus total count.
func (s *SaleService) List(ctx context.Context, orgID uuid.UUID, opts repositories.QueryOpts) ([]*models.Sale, int, error) {
	sales, total, err := s.repo.FindByOrgID(ctx, orgID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	return sales, total, nil
}
