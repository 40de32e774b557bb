package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/rxledger/pkg/database"
	pharmdomain "github.com/ghuser/rxledger/services/pharmacy/domain"
	"github.com/ghuser/rxledger/services/pharmacy/domain/models"
)

const supplierColumns = "id, org_id, name, contact_number, email, address, created_at"

// SupplierRepository implements repositories.SupplierRepository against PostgreSQL.
type SupplierRepository struct {
	db *database.Database
}

// NewSupplierRepository returns a SupplierRepository backed by the given connection pool.
func NewSupplierRepository(db *database.Database) *SupplierRepository {
	return &SupplierRepository{db: db}
}

// Create persists a new supplier.
func (r *SupplierRepository) Create(ctx context.Context, s *models.Supplier) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO suppliers (`+supplierColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.OrgID, s.Name, s.ContactNumber, s.Email, s.Address, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// FindByOrgID retrieves all suppliers for the given org, ordered by name.
func (r *SupplierRepository) FindByOrgID(ctx context.Context, orgID uuid.UUID) ([]*models.Supplier, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+supplierColumns+` FROM suppliers
		WHERE org_id = $1
		ORDER BY name`,
		orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("query suppliers: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var suppliers []*models.Supplier
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(
			&s.ID, &s.OrgID, &s.Name, &s.ContactNumber, &s.Email, &s.Address, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers = append(suppliers, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suppliers: %w", err)
	}
	return suppliers, nil
}

// Delete removes a supplier by ID scoped to the given org.
func (r *SupplierRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM suppliers WHERE id = $1 AND org_id = $2`, id, orgID,
	)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return pharmdomain.ErrSupplierNotFound
	}
	return nil
}
