package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/rxledger/pkg/database"
	identitydomain "github.com/ghuser/rxledger/services/identity/domain"
	"github.com/ghuser/rxledger/services/identity/domain/models"
)

const accountColumns = "id, org_id, username, password_hash, role, created_at"

// AccountRepository implements repositories.AccountRepository against PostgreSQL.
type AccountRepository struct {
	db *database.Database
}

// NewAccountRepository returns an AccountRepository backed by the given pool.
func NewAccountRepository(db *database.Database) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create persists a new account. Returns ErrUsernameTaken when the username
// is already registered.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		account.ID, account.OrgID, account.Username, account.PasswordHash,
		string(account.Role), account.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return identitydomain.ErrUsernameTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByUsername retrieves an account by its globally unique username.
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	var a models.Account
	var role string
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE username = $1`,
		username,
	).Scan(&a.ID, &a.OrgID, &a.Username, &a.PasswordHash, &role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identitydomain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("query account: %w", err)
	}
	a.Role = models.Role(role)
	return &a, nil
}

// CountByRole reports how many accounts hold the given role.
func (r *AccountRepository) CountByRole(ctx context.Context, role models.Role) (int, error) {
	var count int
	if err := r.db.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts WHERE role = $1`, string(role),
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count accounts by role: %w", err)
	}
	return count, nil
}
