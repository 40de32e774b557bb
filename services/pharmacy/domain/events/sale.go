package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicSaleRecorded is the Watermill topic published when a billing commits.
const TopicSaleRecorded = "sale.recorded"

// SaleRecordedEvent is published in the same transaction that decrements
// stock and appends the ledger entry, so an event exists iff the sale
// committed. Consumers subscribe via EventBus.Subscribe(ctx, events.TopicSaleRecorded).
type SaleRecordedEvent struct {
	EventID         uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version         int       `json:"version"`  // Schema version; increment on breaking changes
	SaleID          uuid.UUID `json:"sale_id"`
	OrgID           uuid.UUID `json:"org_id"`
	MedicineID      uuid.UUID `json:"medicine_id"`
	MedicineName    string    `json:"medicine_name"`
	Quantity        int       `json:"quantity"`
	UnitPrice       float64   `json:"unit_price"`
	TotalPrice      float64   `json:"total_price"`
	MedicineDeleted bool      `json:"medicine_deleted"` // stock reached zero and the row was removed
	OccurredAt      time.Time `json:"occurred_at"`
}
