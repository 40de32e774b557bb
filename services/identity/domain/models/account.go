package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role classifies an account's privileges.
type Role string

const (
	// RoleAdmin owns a tenant: its inventory and sale ledger.
	RoleAdmin Role = "admin"
	// RoleStaff is an unprivileged account.
	RoleStaff Role = "staff"
)

// ParseRole validates a role string (case-sensitive).
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleStaff:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Account is an authenticated identity. OrgID is the tenant every inventory
// and ledger query is scoped by; each registration gets a fresh one.
type Account struct {
	ID           uuid.UUID
	OrgID        uuid.UUID
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// NewAccount constructs an Account with a generated ID and its own org.
func NewAccount(username, passwordHash string, role Role) (*Account, error) {
	if username == "" {
		return nil, fmt.Errorf("username must not be empty")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash must not be empty")
	}
	return &Account{
		ID:           uuid.New(),
		OrgID:        uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
