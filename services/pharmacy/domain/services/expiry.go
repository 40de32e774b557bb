// Package services contains stateless domain services for the pharmacy bounded
// context. Domain services enforce business rules that operate purely on domain
// types and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"time"

	"github.com/ghuser/rxledger/services/pharmacy/domain/models"
)

// ExpiryDateLayout is the only layout an expiry date is interpreted with.
// Anything else is treated as unparseable.
const ExpiryDateLayout = "2006-01-02"

// IsExpired reports whether a medicine may no longer be sold as of the given
// instant. Two independent checks are applied:
//
//  1. The sticky Expired flag, stamped by the reconciliation sweep. Once set
//     it always wins, regardless of the stored date.
//  2. A live recomputation from ExpiryDate, which catches medicines the sweep
//     has not visited yet.
//
// An absent, empty, or unparseable expiry date means "not expired" — sellers
// routinely enter free-form dates, and a malformed date must never block a
// sale or fail the sweep. The comparison is date-precision and strict: a
// medicine expiring today is still sellable today.
//
// Pure and side-effect free; never returns an error.
func IsExpired(m *models.Medicine, asOf time.Time) bool {
	if m.Expired {
		return true
	}
	if m.ExpiryDate == "" {
		return false
	}
	expiry, err := time.Parse(ExpiryDateLayout, m.ExpiryDate)
	if err != nil {
		return false
	}
	y, mo, d := asOf.UTC().Date()
	today := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	return expiry.Before(today)
}
