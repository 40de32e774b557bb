package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	pharmdomain "github.com/ghuser/rxledger/services/pharmacy/domain"
	"github.com/ghuser/rxledger/services/pharmacy/domain/models"
	"github.com/ghuser/rxledger/services/pharmacy/domain/notifications"
	"github.com/ghuser/rxledger/services/pharmacy/domain/repositories"
	domainsvcs "github.com/ghuser/rxledger/services/pharmacy/domain/services"
)

// BillingService runs the ledger-producing sale workflow. Unlike the direct
// Sell path it dispatches a receipt, appends to the sale ledger, and deletes
// the medicine when its stock reaches exactly zero.
type BillingService struct {
	repo     repositories.MedicineRepository
	notifier notifications.Notifier
	cache    MedicineReadCache
	now      func() time.Time
}

// NewBillingService returns a BillingService wired with the given repository,
// notifier, and cache.
func NewBillingService(repo repositories.MedicineRepository, notifier notifications.Notifier, medicineCache MedicineReadCache) *BillingService {
	return &BillingService{repo: repo, notifier: notifier, cache: medicineCache, now: time.Now}
}

// ProcessBilling executes the billing workflow for the caller's org:
//
//	validate quantity → resolve by name → stock check → expiry check →
//	send receipt → commit (decrement, delete-at-zero, ledger, event).
//
// Each step is an abort point. The first four are pure validation and leave
// no trace on failure. Receipt dispatch gates the commit: if it fails, the
// workflow aborts with ErrNotificationFailed and neither stock nor ledger
// changes. The commit itself is a single transaction, so a sale record
// exists iff the stock mutation happened.
//
// The quantity check here orders the failure kinds for the caller; the
// commit re-checks it atomically, so two concurrent billings racing for the
// same stock cannot oversell — the loser gets InsufficientStockError.
func (s *BillingService) ProcessBilling(ctx context.Context, orgID uuid.UUID, medicineName string, quantity int, customerEmail string) (*models.Sale, error) {
	if quantity <= 0 {
		return nil, pharmdomain.ErrInvalidQuantity
	}

	m, err := s.repo.GetByName(ctx, orgID, medicineName)
	if err != nil {
		return nil, fmt.Errorf("resolve medicine: %w", err)
	}

	if m.Quantity < quantity {
		return nil, &pharmdomain.InsufficientStockError{Available: m.Quantity}
	}

	if domainsvcs.IsExpired(m, s.now()) {
		return nil, fmt.Errorf("%w: %s", pharmdomain.ErrMedicineExpired, m.Name)
	}

	totalPrice := m.UnitPrice * float64(quantity)

	// Receipt dispatch is a precondition for committing the sale, not a
	// best-effort side effect. A failure here must leave stock and ledger
	// untouched.
	if err := s.notifier.SendReceipt(ctx, notifications.Receipt{
		To:           customerEmail,
		MedicineName: m.Name.String(),
		Description:  m.Description,
		UnitPrice:    m.UnitPrice,
		Quantity:     quantity,
		TotalPrice:   totalPrice,
	}); err != nil {
		return nil, fmt.Errorf("%w: %w", pharmdomain.ErrNotificationFailed, err)
	}

	sale, err := models.NewSale(orgID, m.Name.String(), quantity, m.UnitPrice, s.now())
	if err != nil {
		return nil, fmt.Errorf("build sale: %w", err)
	}

	if err := s.repo.CommitSale(ctx, m.ID, sale); err != nil {
		return nil, fmt.Errorf("commit sale: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), orgID, m.ID)
	}

	return sale, nil
}
