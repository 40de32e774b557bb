package models

import "fmt"

// MedicineName is a value object representing a valid medicine name.
// Encapsulates validation rules: 1 <= len(name) <= 255.
type MedicineName string

const (
	minMedicineNameLength = 1
	maxMedicineNameLength = 255
)

// NewMedicineName constructs a valid MedicineName or returns an error if constraints are violated.
func NewMedicineName(s string) (MedicineName, error) {
	if len(s) < minMedicineNameLength {
		return "", fmt.Errorf("medicine name must be at least %d character", minMedicineNameLength)
	}
	if len(s) > maxMedicineNameLength {
		return "", fmt.Errorf("medicine name must not exceed %d characters", maxMedicineNameLength)
	}
	return MedicineName(s), nil
}

// String returns the underlying string value.
func (n MedicineName) String() string {
	return string(n)
}
