package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Supplier is a tenant-scoped vendor contact record. It carries no stock
// linkage; medicines reference suppliers informally through their names.
type Supplier struct {
	ID            uuid.UUID
	OrgID         uuid.UUID
	Name          string
	ContactNumber string
	Email         string // optional
	Address       string // optional
	CreatedAt     time.Time
}

// NewSupplier constructs a valid Supplier with generated ID and current timestamp.
func NewSupplier(orgID uuid.UUID, name, contactNumber, email, address string) (*Supplier, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("supplier name is required")
	}
	if strings.TrimSpace(contactNumber) == "" {
		return nil, fmt.Errorf("contact number is required")
	}
	return &Supplier{
		ID:            uuid.New(),
		OrgID:         orgID,
		Name:          name,
		ContactNumber: contactNumber,
		Email:         email,
		Address:       address,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
