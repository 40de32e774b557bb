package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/rxledger/pkg/database"
	"github.com/ghuser/rxledger/services/pharmacy/domain/models"
	"github.com/ghuser/rxledger/services/pharmacy/domain/repositories"
)

// SaleRepository implements repositories.SaleRepository against PostgreSQL.
// Inserts happen in MedicineRepository.CommitSale; this type only reads.
type SaleRepository struct {
	db *database.Database
}

// NewSaleRepository returns a SaleRepository backed by the given connection pool.
func NewSaleRepository(db *database.Database) *SaleRepository {
	return &SaleRepository{db: db}
}

// FindByOrgID retrieves a list of sales, newest first, plus the total count
// for the given org. A zero opts.Limit returns every row.
func (r *SaleRepository) FindByOrgID(ctx context.Context, orgID uuid.UUID, opts repositories.QueryOpts) ([]*models.Sale, int, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, org_id, medicine_name, quantity, unit_price, total_price, sold_at
		FROM sales
		WHERE org_id = $1
		ORDER BY sold_at DESC, id
		LIMIT NULLIF($2, 0) OFFSET $3`,
		orgID, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var sales []*models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.OrgID, &s.MedicineName, &s.Quantity, &s.UnitPrice, &s.TotalPrice, &s.SoldAt); err != nil {
			return nil, 0, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate sales: %w", err)
	}

	var total int
	if err := r.db.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sales WHERE org_id = $1`, orgID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}

	return sales, total, nil
}
