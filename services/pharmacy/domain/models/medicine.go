package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Medicine is the core inventory aggregate for this bounded context.
//
// ExpiryDate is stored as supplied by the caller; it is only interpreted when
// it parses as an ISO date (see the expiry policy in domain/services).
// Expired is a sticky flag: the reconciliation sweep sets it and nothing
// clears it.
type Medicine struct {
	ID          uuid.UUID
	OrgID       uuid.UUID // tenant scope — always filter by this in queries
	Name        MedicineName
	Description string
	UnitPrice   float64
	Quantity    int // invariant: never negative
	ExpiryDate  string
	Expired     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewMedicine constructs a valid Medicine aggregate with generated ID and current timestamp.
func NewMedicine(orgID uuid.UUID, name MedicineName, description string, unitPrice float64, quantity int, expiryDate string) (*Medicine, error) {
	if unitPrice < 0 {
		return nil, fmt.Errorf("unit price must be non-negative, got %v", unitPrice)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must be non-negative, got %d", quantity)
	}
	now := time.Now().UTC()
	return &Medicine{
		ID:          uuid.New(),
		OrgID:       orgID,
		Name:        name,
		Description: description,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		ExpiryDate:  expiryDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
