package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pharmacy domain. Use errors.Is() to check these.
var (
	// ErrMedicineNotFound indicates the requested medicine does not exist for
	// the caller's org. A medicine owned by another org surfaces identically,
	// so existence never leaks across tenants.
	ErrMedicineNotFound = errors.New("medicine not found")

	// ErrMedicineAlreadyExists indicates an org already has a medicine with that name.
	ErrMedicineAlreadyExists = errors.New("medicine already exists")

	// ErrInvalidMedicine indicates the medicine violates domain constraints.
	ErrInvalidMedicine = errors.New("invalid medicine")

	// ErrInvalidQuantity indicates a requested sale quantity of zero or less.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrInsufficientStock indicates the requested quantity exceeds stock on hand.
	// Returned wrapped in InsufficientStockError, which carries the available quantity.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrMedicineExpired indicates the medicine failed the expiry check.
	ErrMedicineExpired = errors.New("cannot sell expired medicine")

	// ErrNotificationFailed indicates the receipt could not be dispatched.
	// Billing aborts without touching stock or the sale ledger.
	ErrNotificationFailed = errors.New("failed to send receipt")

	// ErrSupplierNotFound indicates the requested supplier does not exist for
	// the caller's org. Like medicines, another org's supplier surfaces
	// identically.
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrInvalidSupplier indicates the supplier violates domain constraints.
	ErrInvalidSupplier = errors.New("invalid supplier")
)

// InsufficientStockError reports how many units are actually available.
// Matches ErrInsufficientStock under errors.Is.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock. Available: %d", e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
