package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgcache "github.com/ghuser/rxledger/pkg/cache"
	pharmdomain "github.com/ghuser/rxledger/services/pharmacy/domain"
	"github.com/ghuser/rxledger/services/pharmacy/domain/repositories"
)

func newMedicineFixture(t *testing.T) (*MedicineService, *fakeMedicineRepo) {
	t.Helper()
	repo := newFakeMedicineRepo()
	svc := NewMedicineService(repo, nil, newTestLogger())
	svc.now = func() time.Time {
		return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc, repo
}

func TestMedicineService_Create(t *testing.T) {
	svc, repo := newMedicineFixture(t)
	orgID := uuid.New()

	t.Run("creates and persists", func(t *testing.T) {
		m, err := svc.Create(context.Background(), orgID, "Paracetamol", "500mg", 10.5, 100, "2027-01-31")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := repo.get(m.ID); got == nil {
			t.Fatal("medicine not persisted")
		}
	})

	t.Run("duplicate name in org is rejected", func(t *testing.T) {
		_, err := svc.Create(context.Background(), orgID, "Paracetamol", "", 1, 1, "")
		if !errors.Is(err, pharmdomain.ErrMedicineAlreadyExists) {
			t.Fatalf("expected ErrMedicineAlreadyExists, got %v", err)
		}
	})

	t.Run("same name in another org is fine", func(t *testing.T) {
		if _, err := svc.Create(context.Background(), uuid.New(), "Paracetamol", "", 1, 1, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty name is invalid", func(t *testing.T) {
		_, err := svc.Create(context.Background(), orgID, "", "", 1, 1, "")
		if !errors.Is(err, pharmdomain.ErrInvalidMedicine) {
			t.Fatalf("expected ErrInvalidMedicine, got %v", err)
		}
	})

	t.Run("negative price is invalid", func(t *testing.T) {
		_, err := svc.Create(context.Background(), orgID, "Neg", "", -1, 1, "")
		if !errors.Is(err, pharmdomain.ErrInvalidMedicine) {
			t.Fatalf("expected ErrInvalidMedicine, got %v", err)
		}
	})
}

func TestMedicineService_Update_KeepsExpiryState(t *testing.T) {
	svc, repo := newMedicineFixture(t)
	orgID := uuid.New()
	m := seedMedicine(t, repo, orgID, "Original", 5.0, 10, "2026-01-01")
	m.Expired = true
	repo.put(m)

	updated, err := svc.Update(context.Background(), orgID, m.ID, "Renamed", "new desc", 6.0, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name.String() != "Renamed" || updated.Quantity != 20 {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.ExpiryDate != "2026-01-01" {
		t.Fatalf("expiry date must survive update, got %q", updated.ExpiryDate)
	}
	if !updated.Expired {
		t.Fatal("sticky expired flag must survive update")
	}
}

func TestMedicineService_GetByID_CrossTenant(t *testing.T) {
	svc, repo := newMedicineFixture(t)
	m := seedMedicine(t, repo, uuid.New(), "Private", 5.0, 10, "")

	_, err := svc.GetByID(context.Background(), uuid.New(), m.ID)
	if !errors.Is(err, pharmdomain.ErrMedicineNotFound) {
		t.Fatalf("cross-tenant read must be not found, got %v", err)
	}
}

func TestMedicineService_GetByID_CacheBehavior(t *testing.T) {
	t.Run("hit is served from the cache", func(t *testing.T) {
		repo := newFakeMedicineRepo()
		cache := newFakeMedicineCache()
		svc := NewMedicineService(repo, cache, newTestLogger())

		orgID := uuid.New()
		id := uuid.New()
		if err := cache.Set(context.Background(), &pkgcache.CachedMedicine{
			ID: id, OrgID: orgID, Name: "Cached", UnitPrice: 2.5, Quantity: 7,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// The repo has no such row, so a hit is the only way this succeeds.
		m, err := svc.GetByID(context.Background(), orgID, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Name.String() != "Cached" || m.Quantity != 7 {
			t.Fatalf("expected the cached entry, got %+v", m)
		}
	})

	t.Run("degraded cache falls through to the repository", func(t *testing.T) {
		repo := newFakeMedicineRepo()
		cache := newFakeMedicineCache()
		cache.getErr = errors.New("dial tcp 127.0.0.1:6379: connection refused")
		svc := NewMedicineService(repo, cache, newTestLogger())

		orgID := uuid.New()
		m := seedMedicine(t, repo, orgID, "Authoritative", 5.0, 10, "")

		got, err := svc.GetByID(context.Background(), orgID, m.ID)
		if err != nil {
			t.Fatalf("cache failure must not fail the read, got %v", err)
		}
		if got.Name.String() != "Authoritative" {
			t.Fatalf("expected the repository row, got %+v", got)
		}
	})
}

func TestMedicineService_Delete(t *testing.T) {
	svc, repo := newMedicineFixture(t)
	orgID := uuid.New()
	m := seedMedicine(t, repo, orgID, "ToDelete", 5.0, 10, "")

	if err := svc.Delete(context.Background(), orgID, m.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), orgID, m.ID); !errors.Is(err, pharmdomain.ErrMedicineNotFound) {
		t.Fatalf("second delete must be not found, got %v", err)
	}
}

func TestMedicineService_Sell(t *testing.T) {
	t.Run("decrements and keeps row at zero", func(t *testing.T) {
		svc, repo := newMedicineFixture(t)
		orgID := uuid.New()
		m := seedMedicine(t, repo, orgID, "Direct", 5.0, 10, "2030-01-01")

		updated, err := svc.Sell(context.Background(), orgID, m.ID, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Quantity != 0 {
			t.Fatalf("expected quantity 0, got %d", updated.Quantity)
		}
		// Unlike billing, the direct path keeps the drained row.
		if repo.get(m.ID) == nil {
			t.Fatal("direct sale must keep the zero-quantity row")
		}
	})

	t.Run("zero or negative quantity", func(t *testing.T) {
		svc, repo := newMedicineFixture(t)
		orgID := uuid.New()
		m := seedMedicine(t, repo, orgID, "Direct", 5.0, 10, "")

		for _, qty := range []int{0, -1} {
			if _, err := svc.Sell(context.Background(), orgID, m.ID, qty); !errors.Is(err, pharmdomain.ErrInvalidQuantity) {
				t.Fatalf("quantity %d: expected ErrInvalidQuantity, got %v", qty, err)
			}
		}
	})

	t.Run("insufficient stock reports available", func(t *testing.T) {
		svc, repo := newMedicineFixture(t)
		orgID := uuid.New()
		m := seedMedicine(t, repo, orgID, "Direct", 5.0, 4, "")

		_, err := svc.Sell(context.Background(), orgID, m.ID, 5)
		var stockErr *pharmdomain.InsufficientStockError
		if !errors.As(err, &stockErr) {
			t.Fatalf("expected InsufficientStockError, got %v", err)
		}
		if stockErr.Available != 4 {
			t.Fatalf("expected available 4, got %d", stockErr.Available)
		}
		if got := repo.get(m.ID); got.Quantity != 4 {
			t.Fatalf("stock must be untouched, got %d", got.Quantity)
		}
	})

	t.Run("expired medicine cannot be sold", func(t *testing.T) {
		svc, repo := newMedicineFixture(t)
		orgID := uuid.New()
		m := seedMedicine(t, repo, orgID, "Old", 5.0, 10, "2026-03-14")

		if _, err := svc.Sell(context.Background(), orgID, m.ID, 1); !errors.Is(err, pharmdomain.ErrMedicineExpired) {
			t.Fatalf("expected ErrMedicineExpired, got %v", err)
		}
	})

	t.Run("stock check precedes expiry check", func(t *testing.T) {
		svc, repo := newMedicineFixture(t)
		orgID := uuid.New()
		m := seedMedicine(t, repo, orgID, "OldAndLow", 5.0, 2, "2026-03-14")

		_, err := svc.Sell(context.Background(), orgID, m.ID, 5)
		if !errors.Is(err, pharmdomain.ErrInsufficientStock) {
			t.Fatalf("insufficient stock must win over expiry, got %v", err)
		}
	})

	t.Run("cross-tenant sell is not found", func(t *testing.T) {
		svc, repo := newMedicineFixture(t)
		m := seedMedicine(t, repo, uuid.New(), "Private", 5.0, 10, "")

		if _, err := svc.Sell(context.Background(), uuid.New(), m.ID, 1); !errors.Is(err, pharmdomain.ErrMedicineNotFound) {
			t.Fatalf("expected ErrMedicineNotFound, got %v", err)
		}
	})
}

func TestMedicineService_List_Pagination(t *testing.T) {
	svc, repo := newMedicineFixture(t)
	orgID := uuid.New()
	for _, name := range []string{"Alpha", "Bravo", "Charlie", "Delta"} {
		seedMedicine(t, repo, orgID, name, 1.0, 1, "")
	}
	seedMedicine(t, repo, uuid.New(), "OtherOrg", 1.0, 1, "")

	medicines, total, err := svc.List(context.Background(), orgID, repositories.QueryOpts{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected total 4, got %d", total)
	}
	if len(medicines) != 2 {
		t.Fatalf("expected page of 2, got %d", len(medicines))
	}
	if medicines[0].Name.String() != "Charlie" {
		t.Fatalf("expected Charlie first on page 2, got %q", medicines[0].Name)
	}

	// Zero opts means no pagination: the whole inventory comes back.
	all, total, err := svc.List(context.Background(), orgID, repositories.QueryOpts{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 4 || len(all) != 4 {
		t.Fatalf("expected the full list of 4, got %d of %d", len(all), total)
	}
}
