package cache

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Integration tests — skipped unless REDIS_URL is set.
func TestMedicineCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	mc := NewMedicineCache(rc)
	ctx := context.Background()

	entry := &CachedMedicine{
		ID:          uuid.New(),
		OrgID:       uuid.New(),
		Name:        "Paracetamol",
		Description: "500mg tablets",
		UnitPrice:   10.5,
		Quantity:    100,
		ExpiryDate:  "2027-01-31",
		Expired:     false,
	}

	t.Run("SetGet_RoundTrip", func(t *testing.T) {
		if err := mc.Set(ctx, entry); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		got, err := mc.Get(ctx, entry.OrgID, entry.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if *got != *entry {
			t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, entry)
		}
	})

	t.Run("Get_MissIsRedisNil", func(t *testing.T) {
		_, err := mc.Get(ctx, entry.OrgID, uuid.New())
		if !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil for missing key, got %v", err)
		}
	})

	t.Run("Get_CrossOrgIsMiss", func(t *testing.T) {
		// Keys are org-scoped; the same medicine id under another org must miss.
		_, err := mc.Get(ctx, uuid.New(), entry.ID)
		if !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil across orgs, got %v", err)
		}
	})

	t.Run("Delete_RemovesEntry", func(t *testing.T) {
		if err := mc.Delete(ctx, entry.OrgID, entry.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := mc.Get(ctx, entry.OrgID, entry.ID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after delete, got %v", err)
		}
	})

	t.Run("Delete_MissingIsNoop", func(t *testing.T) {
		if err := mc.Delete(ctx, uuid.New(), uuid.New()); err != nil {
			t.Fatalf("deleting a missing key must not error: %v", err)
		}
	})
}
