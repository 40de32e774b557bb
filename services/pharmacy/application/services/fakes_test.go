package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/rxledger/pkg/cache"
	pharmdomain "github.com/ghuser/rxledger/services/pharmacy/domain"
	"github.com/ghuser/rxledger/services/pharmacy/domain/models"
	"github.com/ghuser/rxledger/services/pharmacy/domain/notifications"
	"github.com/ghuser/rxledger/services/pharmacy/domain/repositories"
)

// fakeMedicineRepo is an in-memory MedicineRepository with the same semantics
// as the Postgres implementation: org scoping, conditional decrements, and
// the delete-at-zero billing commit.
type fakeMedicineRepo struct {
	mu        sync.Mutex
	medicines map[uuid.UUID]*models.Medicine
	sales     []*models.Sale

	failDecrement error // forced error for DecrementStock/CommitSale
	markedExpired [][]uuid.UUID
}

func newFakeMedicineRepo() *fakeMedicineRepo {
	return &fakeMedicineRepo{medicines: make(map[uuid.UUID]*models.Medicine)}
}

func (f *fakeMedicineRepo) put(m *models.Medicine) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *m
	f.medicines[m.ID] = &cp
}

func (f *fakeMedicineRepo) get(id uuid.UUID) *models.Medicine {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.medicines[id]
	if !ok {
		return nil
	}
	cp := *m
	return &cp
}

func (f *fakeMedicineRepo) Create(_ context.Context, m *models.Medicine) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.medicines {
		if existing.OrgID == m.OrgID && existing.Name == m.Name {
			return pharmdomain.ErrMedicineAlreadyExists
		}
	}
	cp := *m
	f.medicines[m.ID] = &cp
	return nil
}

func (f *fakeMedicineRepo) GetByID(_ context.Context, orgID, id uuid.UUID) (*models.Medicine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.medicines[id]
	if !ok || m.OrgID != orgID {
		return nil, pharmdomain.ErrMedicineNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMedicineRepo) GetByName(_ context.Context, orgID uuid.UUID, name string) (*models.Medicine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.medicines {
		if m.OrgID == orgID && m.Name.String() == name {
			cp := *m
			return &cp, nil
		}
	}
	return nil, pharmdomain.ErrMedicineNotFound
}

func (f *fakeMedicineRepo) FindByOrgID(_ context.Context, orgID uuid.UUID, opts repositories.QueryOpts) ([]*models.Medicine, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*models.Medicine
	for _, m := range f.medicines {
		if m.OrgID == orgID {
			cp := *m
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := len(all)
	if opts.Offset >= len(all) {
		return nil, total, nil
	}
	all = all[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(all) {
		all = all[:opts.Limit]
	}
	return all, total, nil
}

func (f *fakeMedicineRepo) Update(_ context.Context, m *models.Medicine) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.medicines[m.ID]
	if !ok || existing.OrgID != m.OrgID {
		return pharmdomain.ErrMedicineNotFound
	}
	cp := *m
	f.medicines[m.ID] = &cp
	return nil
}

func (f *fakeMedicineRepo) Delete(_ context.Context, orgID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.medicines[id]
	if !ok || m.OrgID != orgID {
		return pharmdomain.ErrMedicineNotFound
	}
	delete(f.medicines, id)
	return nil
}

func (f *fakeMedicineRepo) DecrementStock(_ context.Context, orgID, id uuid.UUID, quantity int) (*models.Medicine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDecrement != nil {
		return nil, f.failDecrement
	}
	m, ok := f.medicines[id]
	if !ok || m.OrgID != orgID {
		return nil, pharmdomain.ErrMedicineNotFound
	}
	if m.Quantity < quantity {
		return nil, &pharmdomain.InsufficientStockError{Available: m.Quantity}
	}
	m.Quantity -= quantity
	cp := *m
	return &cp, nil
}

func (f *fakeMedicineRepo) CommitSale(_ context.Context, medicineID uuid.UUID, sale *models.Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDecrement != nil {
		return f.failDecrement
	}
	m, ok := f.medicines[medicineID]
	if !ok || m.OrgID != sale.OrgID {
		return pharmdomain.ErrMedicineNotFound
	}
	if m.Quantity < sale.Quantity {
		return &pharmdomain.InsufficientStockError{Available: m.Quantity}
	}
	m.Quantity -= sale.Quantity
	if m.Quantity == 0 {
		delete(f.medicines, medicineID)
	}
	cp := *sale
	f.sales = append(f.sales, &cp)
	return nil
}

func (f *fakeMedicineRepo) ListChunk(_ context.Context, afterID uuid.UUID, limit int) ([]*models.Medicine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*models.Medicine
	for _, m := range f.medicines {
		cp := *m
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID.String() < all[j].ID.String()
	})
	var out []*models.Medicine
	for _, m := range all {
		if afterID != uuid.Nil && m.ID.String() <= afterID.String() {
			continue
		}
		out = append(out, m)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeMedicineRepo) MarkExpired(_ context.Context, ids []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markedExpired = append(f.markedExpired, ids)
	for _, id := range ids {
		if m, ok := f.medicines[id]; ok {
			m.Expired = true
		}
	}
	return nil
}

var _ repositories.MedicineRepository = (*fakeMedicineRepo)(nil)

// fakeNotifier records receipts; set failWith to simulate delivery failure.
type fakeNotifier struct {
	mu       sync.Mutex
	sent     []notifications.Receipt
	failWith error
}

func (f *fakeNotifier) SendReceipt(_ context.Context, r notifications.Receipt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.sent = append(f.sent, r)
	return nil
}

var _ notifications.Notifier = (*fakeNotifier)(nil)

var errSMTPDown = errors.New("smtp connection refused")

// fakeMedicineCache is an in-memory MedicineReadCache; set getErr to
// simulate a degraded Redis.
type fakeMedicineCache struct {
	mu      sync.Mutex
	entries map[string]*pkgcache.CachedMedicine
	getErr  error
	deletes int
}

func newFakeMedicineCache() *fakeMedicineCache {
	return &fakeMedicineCache{entries: make(map[string]*pkgcache.CachedMedicine)}
}

func (f *fakeMedicineCache) Get(_ context.Context, orgID, medicineID uuid.UUID) (*pkgcache.CachedMedicine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	m, ok := f.entries[orgID.String()+":"+medicineID.String()]
	if !ok {
		return nil, redis.Nil
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMedicineCache) Set(_ context.Context, m *pkgcache.CachedMedicine) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *m
	f.entries[m.OrgID.String()+":"+m.ID.String()] = &cp
	return nil
}

func (f *fakeMedicineCache) Delete(_ context.Context, orgID, medicineID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	delete(f.entries, orgID.String()+":"+medicineID.String())
	return nil
}

var _ MedicineReadCache = (*fakeMedicineCache)(nil)
