package services

import (
	"testing"
	"time"

	"github.com/ghuser/rxledger/services/pharmacy/domain/models"
)

func TestIsExpired(t *testing.T) {
	asOf := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expiryDate string
		expired    bool
		want       bool
	}{
		{"date in the past", "2026-03-14", false, true},
		{"date far in the past", "2020-01-01", false, true},
		{"expiring today is still sellable", "2026-03-15", false, false},
		{"date in the future", "2026-03-16", false, false},
		{"date far in the future", "2030-12-31", false, false},
		{"empty date", "", false, false},
		{"unparseable free-form date", "next summer", false, false},
		{"wrong layout day-first", "15-03-2020", false, false},
		{"wrong layout with slashes", "2020/01/01", false, false},
		{"timestamp instead of date", "2020-01-01T00:00:00Z", false, false},
		{"sticky flag wins over future date", "2030-12-31", true, true},
		{"sticky flag wins over empty date", "", true, true},
		{"sticky flag wins over garbage date", "garbage", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &models.Medicine{ExpiryDate: tt.expiryDate, Expired: tt.expired}
			if got := IsExpired(m, asOf); got != tt.want {
				t.Fatalf("IsExpired(%q, expired=%v) = %v, want %v",
					tt.expiryDate, tt.expired, got, tt.want)
			}
		})
	}
}

func TestIsExpired_DatePrecision(t *testing.T) {
	// The wall-clock time of asOf must not matter, only its date.
	m := &models.Medicine{ExpiryDate: "2026-03-15"}

	startOfDay := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	endOfDay := time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)

	if IsExpired(m, startOfDay) {
		t.Fatal("medicine expiring today must be sellable at start of day")
	}
	if IsExpired(m, endOfDay) {
		t.Fatal("medicine expiring today must be sellable at end of day")
	}
	if !IsExpired(m, endOfDay.Add(time.Second)) {
		t.Fatal("medicine must be expired the day after its expiry date")
	}
}
