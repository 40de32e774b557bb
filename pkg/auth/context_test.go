package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestOrgIDFromCtx_RoundTrip(t *testing.T) {
	orgID := uuid.New()
	ctx := WithOrgID(context.Background(), orgID)

	got, err := OrgIDFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != orgID {
		t.Fatalf("expected %v, got %v", orgID, got)
	}
}

func TestOrgIDFromCtx_Missing(t *testing.T) {
	_, err := OrgIDFromCtx(context.Background())
	if !errors.Is(err, ErrOrgIDNotFound) {
		t.Fatalf("expected ErrOrgIDNotFound, got %v", err)
	}
}

func TestOrgIDFromCtx_NilUUID(t *testing.T) {
	ctx := WithOrgID(context.Background(), uuid.Nil)
	_, err := OrgIDFromCtx(ctx)
	if !errors.Is(err, ErrOrgIDNotFound) {
		t.Fatalf("expected ErrOrgIDNotFound for nil UUID, got %v", err)
	}
}

func TestAccountIDFromCtx(t *testing.T) {
	accountID := uuid.New()
	ctx := WithAccountID(context.Background(), accountID)
	if got := AccountIDFromCtx(ctx); got != accountID {
		t.Fatalf("expected %v, got %v", accountID, got)
	}
	if got := AccountIDFromCtx(context.Background()); got != uuid.Nil {
		t.Fatalf("expected uuid.Nil for empty context, got %v", got)
	}
}

func TestRoleFromCtx(t *testing.T) {
	ctx := WithRole(context.Background(), "admin")
	role, err := RoleFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != "admin" {
		t.Fatalf("expected admin, got %q", role)
	}

	if _, err := RoleFromCtx(context.Background()); !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}
