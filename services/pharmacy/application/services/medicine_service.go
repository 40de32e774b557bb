package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/rxledger/pkg/cache"
	"github.com/ghuser/rxledger/pkg/logger"
	pharmdomain "github.com/ghuser/rxledger/services/pharmacy/domain"
	"github.com/ghuser/rxledger/services/pharmacy/domain/models"
	"github.com/ghuser/rxledger/services/pharmacy/domain/repositories"
	domainsvcs "github.com/ghuser/rxledger/services/pharmacy/domain/services"
)

// MedicineReadCache is the read-model store consulted before Postgres.
// *cache.MedicineCache implements it; Get must return redis.Nil on a miss.
type MedicineReadCache interface {
	Get(ctx context.Context, orgID, medicineID uuid.UUID) (*pkgcache.CachedMedicine, error)
	Set(ctx context.Context, m *pkgcache.CachedMedicine) error
	Delete(ctx context.Context, orgID, medicineID uuid.UUID) error
}

// MedicineService orchestrates inventory operations: CRUD plus the direct
// (ledger-less) sale path. Reads are served from Redis cache when available.
type MedicineService struct {
	repo  repositories.MedicineRepository
	cache MedicineReadCache
	log   logger.Logger
	now   func() time.Time
}

// NewMedicineService returns a MedicineService wired with the given
// repository and cache. A nil cache disables caching.
func NewMedicineService(repo repositories.MedicineRepository, medicineCache MedicineReadCache, log logger.Logger) *MedicineService {
	return &MedicineService{repo: repo, cache: medicineCache, log: log, now: time.Now}
}

// Create validates and persists a medicine under the caller's org.
func (s *MedicineService) Create(ctx context.Context, orgID uuid.UUID, name, description string, unitPrice float64, quantity int, expiryDate string) (*models.Medicine, error) {
	medicineName, err := models.NewMedicineName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pharmdomain.ErrInvalidMedicine, err)
	}

	m, err := models.NewMedicine(orgID, medicineName, description, unitPrice, quantity, expiryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pharmdomain.ErrInvalidMedicine, err)
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create medicine: %w", err)
	}

	return m, nil
}

// GetByID retrieves a medicine using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *MedicineService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Medicine, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, orgID, id)
		switch {
		case err == nil:
			return &models.Medicine{
				ID:          cached.ID,
				OrgID:       cached.OrgID,
				Name:        models.MedicineName(cached.Name),
				Description: cached.Description,
				UnitPrice:   cached.UnitPrice,
				Quantity:    cached.Quantity,
				ExpiryDate:  cached.ExpiryDate,
				Expired:     cached.Expired,
			}, nil
		case !errors.Is(err, redis.Nil):
			// Degraded cache, not a miss. Postgres is authoritative either way.
			s.log.WarnContext(ctx, "medicine cache read failed", "error", err)
		}
	}

	m, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("get medicine: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), toCached(m))
		}()
	}

	return m, nil
}

// GetByName resolves a medicine by its org-unique name.
func (s *MedicineService) GetByName(ctx context.Context, orgID uuid.UUID, name string) (*models.Medicine, error) {
	m, err := s.repo.GetByName(ctx, orgID, name)
	if err != nil {
		return nil, fmt.Errorf("get medicine by name: %w", err)
	}
	return m, nil
}

// List returns a paginated slice of medicines for the org plus total count.
func (s *MedicineService) List(ctx context.Context, orgID uuid.UUID, opts repositories.QueryOpts) ([]*models.Medicine, int, error) {
	medicines, total, err := s.repo.FindByOrgID(ctx, orgID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list medicines: %w", err)
	}
	return medicines, total, nil
}

// Update replaces name, description, price, and quantity on an existing
// org-owned medicine. The expiry date and sticky expired flag are untouched.
func (s *MedicineService) Update(ctx context.Context, orgID, id uuid.UUID, name, description string, unitPrice float64, quantity int) (*models.Medicine, error) {
	medicineName, err := models.NewMedicineName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pharmdomain.ErrInvalidMedicine, err)
	}
	if unitPrice < 0 {
		return nil, fmt.Errorf("%w: unit price must be non-negative", pharmdomain.ErrInvalidMedicine)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be non-negative", pharmdomain.ErrInvalidMedicine)
	}

	m, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("get medicine: %w", err)
	}

	m.Name = medicineName
	m.Description = description
	m.UnitPrice = unitPrice
	m.Quantity = quantity
	m.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("update medicine: %w", err)
	}

	s.invalidate(orgID, id)
	return m, nil
}

// Delete removes a medicine by ID scoped to the given org.
// Returns ErrMedicineNotFound if no matching medicine exists.
func (s *MedicineService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return fmt.Errorf("delete medicine: %w", err)
	}
	s.invalidate(orgID, id)
	return nil
}

// Sell is the direct stock-adjustment path: it decrements quantity without
// writing a ledger entry, and a quantity that reaches zero keeps its row
// (unlike billing, which deletes at zero).
//
// Preconditions are checked in order, first failure wins, no side effects on
// failure: positive quantity, medicine exists, sufficient stock, not expired.
// The final decrement is a conditional update, so a concurrent sale that
// drains the stock first surfaces as InsufficientStockError rather than
// driving the quantity negative.
func (s *MedicineService) Sell(ctx context.Context, orgID, id uuid.UUID, quantity int) (*models.Medicine, error) {
	if quantity <= 0 {
		return nil, pharmdomain.ErrInvalidQuantity
	}

	m, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("get medicine: %w", err)
	}

	if m.Quantity < quantity {
		return nil, &pharmdomain.InsufficientStockError{Available: m.Quantity}
	}

	if domainsvcs.IsExpired(m, s.now()) {
		return nil, pharmdomain.ErrMedicineExpired
	}

	updated, err := s.repo.DecrementStock(ctx, orgID, id, quantity)
	if err != nil {
		return nil, fmt.Errorf("decrement stock: %w", err)
	}

	s.invalidate(orgID, id)
	return updated, nil
}

// invalidate drops the cached entry so a stale quantity is never served.
// Best-effort: a failed invalidation only delays freshness by the TTL.
func (s *MedicineService) invalidate(orgID, id uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), orgID, id)
	}
}

func toCached(m *models.Medicine) *pkgcache.CachedMedicine {
	return &pkgcache.CachedMedicine{
		ID:          m.ID,
		OrgID:       m.OrgID,
		Name:        m.Name.String(),
		Description: m.Description,
		UnitPrice:   m.UnitPrice,
		Quantity:    m.Quantity,
		ExpiryDate:  m.ExpiryDate,
		Expired:     m.Expired,
	}
}
