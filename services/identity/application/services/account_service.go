package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	identitydomain "github.com/ghuser/rxledger/services/identity/domain"
	"github.com/ghuser/rxledger/services/identity/domain/models"
	"github.com/ghuser/rxledger/services/identity/domain/repositories"
)

// AccountService handles registration and credential checks.
type AccountService struct {
	repo       repositories.AccountRepository
	adminLimit int
}

// NewAccountService returns an AccountService. adminLimit caps how many
// admin accounts may ever be registered.
func NewAccountService(repo repositories.AccountRepository, adminLimit int) *AccountService {
	return &AccountService{repo: repo, adminLimit: adminLimit}
}

// Register creates a new account. Admin registrations are capped at the
// configured limit; a registration at the cap fails with ErrAdminLimitReached
// before any account is written.
func (s *AccountService) Register(ctx context.Context, username, password, role string) (*models.Account, error) {
	parsedRole, err := models.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", identitydomain.ErrInvalidRole, role)
	}

	if parsedRole == models.RoleAdmin {
		count, err := s.repo.CountByRole(ctx, models.RoleAdmin)
		if err != nil {
			return nil, fmt.Errorf("count admins: %w", err)
		}
		if count >= s.adminLimit {
			return nil, identitydomain.ErrAdminLimitReached
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account, err := models.NewAccount(username, string(hash), parsedRole)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Authenticate verifies a username/password pair. Both an unknown username
// and a wrong password come back as ErrInvalidCredentials so the response
// does not leak which usernames exist.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*models.Account, error) {
	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, identitydomain.ErrAccountNotFound) {
			return nil, identitydomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, identitydomain.ErrInvalidCredentials
	}
	return account, nil
}
