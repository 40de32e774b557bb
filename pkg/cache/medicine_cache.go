package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// MedicineCacheTTL is the time-to-live for cached medicines.
	MedicineCacheTTL = 24 * time.Hour

	medicineCacheKeyPrefix = "medicine"
)

// CachedMedicine is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash. Quantity and the expired flag are
// included so read-heavy list screens can render without hitting Postgres.
type CachedMedicine struct {
	ID          uuid.UUID `json:"id"`
	OrgID       uuid.UUID `json:"org_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UnitPrice   float64   `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	ExpiryDate  string    `json:"expiry_date"`
	Expired     bool      `json:"expired"`
}

// MedicineCache provides structured read/write operations for medicine cache
// entries. Keys are scoped by orgID to prevent cross-tenant data leakage.
// Key format: "medicine:{orgID}:{medicineID}"
type MedicineCache struct {
	client *RedisClient
}

// NewMedicineCache creates a new MedicineCache backed by the given RedisClient.
func NewMedicineCache(r *RedisClient) *MedicineCache {
	return &MedicineCache{client: r}
}

// Get retrieves a cached medicine by org + medicine ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *MedicineCache) Get(ctx context.Context, orgID, medicineID uuid.UUID) (*CachedMedicine, error) {
	key := c.key(orgID, medicineID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	oid, err := uuid.Parse(vals["org_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse org_id: %w", err)
	}
	price, err := strconv.ParseFloat(vals["unit_price"], 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse unit_price: %w", err)
	}
	qty, err := strconv.Atoi(vals["quantity"])
	if err != nil {
		return nil, fmt.Errorf("cache parse quantity: %w", err)
	}
	expired, err := strconv.ParseBool(vals["expired"])
	if err != nil {
		return nil, fmt.Errorf("cache parse expired: %w", err)
	}

	return &CachedMedicine{
		ID:          id,
		OrgID:       oid,
		Name:        vals["name"],
		Description: vals["description"],
		UnitPrice:   price,
		Quantity:    qty,
		ExpiryDate:  vals["expiry_date"],
		Expired:     expired,
	}, nil
}

// Set writes a cached medicine as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *MedicineCache) Set(ctx context.Context, m *CachedMedicine) error {
	key := c.key(m.OrgID, m.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", m.ID.String(),
		"org_id", m.OrgID.String(),
		"name", m.Name,
		"description", m.Description,
		"unit_price", strconv.FormatFloat(m.UnitPrice, 'f', -1, 64),
		"quantity", strconv.Itoa(m.Quantity),
		"expiry_date", m.ExpiryDate,
		"expired", strconv.FormatBool(m.Expired),
	)
	pipe.Expire(ctx, key, MedicineCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached medicine. Called after every stock mutation so a
// stale quantity is never served.
func (c *MedicineCache) Delete(ctx context.Context, orgID, medicineID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(orgID, medicineID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "medicine:{orgID}:{medicineID}"
func (c *MedicineCache) key(orgID, medicineID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", medicineCacheKeyPrefix, orgID, medicineID)
}
