package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sale is an immutable ledger entry recorded once per completed billing.
// MedicineName is a denormalized snapshot, not a reference — the entry
// survives deletion of the medicine it was sold from.
type Sale struct {
	ID           uuid.UUID
	OrgID        uuid.UUID
	MedicineName string
	Quantity     int
	UnitPrice    float64 // price at the moment of sale
	TotalPrice   float64
	SoldAt       time.Time
}

// NewSale constructs a ledger entry stamped with the given sale instant.
// TotalPrice is derived, never supplied.
func NewSale(orgID uuid.UUID, medicineName string, quantity int, unitPrice float64, soldAt time.Time) (*Sale, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("sale quantity must be positive, got %d", quantity)
	}
	return &Sale{
		ID:           uuid.New(),
		OrgID:        orgID,
		MedicineName: medicineName,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		TotalPrice:   unitPrice * float64(quantity),
		SoldAt:       soldAt.UTC(),
	}, nil
}
