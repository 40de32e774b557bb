package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewSale(t *testing.T) {
	orgID := uuid.New()
	soldAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("derives total price", func(t *testing.T) {
		s, err := NewSale(orgID, "Paracetamol", 5, 10.0, soldAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalPrice != 50.0 {
			t.Fatalf("expected total 50.0, got %v", s.TotalPrice)
		}
		if s.ID == uuid.Nil {
			t.Fatal("expected generated ID")
		}
	})

	t.Run("stamps the supplied instant in UTC", func(t *testing.T) {
		est := time.FixedZone("EST", -5*3600)
		s, err := NewSale(orgID, "Paracetamol", 1, 10.0, soldAt.In(est))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.SoldAt.Equal(soldAt) {
			t.Fatalf("expected SoldAt %v, got %v", soldAt, s.SoldAt)
		}
		if s.SoldAt.Location() != time.UTC {
			t.Fatalf("expected UTC SoldAt, got %v", s.SoldAt.Location())
		}
	})

	t.Run("zero quantity returns error", func(t *testing.T) {
		if _, err := NewSale(orgID, "Paracetamol", 0, 10.0, soldAt); err == nil {
			t.Fatal("expected error for zero quantity")
		}
	})

	t.Run("negative quantity returns error", func(t *testing.T) {
		if _, err := NewSale(orgID, "Paracetamol", -3, 10.0, soldAt); err == nil {
			t.Fatal("expected error for negative quantity")
		}
	})
}
