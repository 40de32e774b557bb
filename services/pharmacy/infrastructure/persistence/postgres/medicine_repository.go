package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/rxledger/pkg/database"
	"github.com/ghuser/rxledger/pkg/events"
	pharmdomain "github.com/ghuser/rxledger/services/pharmacy/domain"
	domainevents "github.com/ghuser/rxledger/services/pharmacy/domain/events"
	"github.com/ghuser/rxledger/services/pharmacy/domain/models"
	"github.com/ghuser/rxledger/services/pharmacy/domain/repositories"
)

const medicineColumns = "id, org_id, name, description, unit_price, quantity, expiry_date, expired, created_at, updated_at"

// MedicineRepository implements repositories.MedicineRepository against PostgreSQL.
type MedicineRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewMedicineRepository returns a MedicineRepository backed by the given
// connection pool and event bus. The bus is used to publish SaleRecordedEvents
// inside the billing commit transaction.
func NewMedicineRepository(db *database.Database, bus *events.EventBus) *MedicineRepository {
	return &MedicineRepository{db: db, bus: bus}
}

// Create persists a new medicine. Returns ErrMedicineAlreadyExists when the
// org already has a medicine with that name.
func (r *MedicineRepository) Create(ctx context.Context, m *models.Medicine) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO medicines (`+medicineColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.OrgID, m.Name.String(), m.Description, m.UnitPrice, m.Quantity,
		m.ExpiryDate, m.Expired, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return pharmdomain.ErrMedicineAlreadyExists
		}
		return fmt.Errorf("insert medicine: %w", err)
	}
	return nil
}

// GetByID retrieves a medicine by ID scoped to the given org.
// Returns ErrMedicineNotFound if not found (including ids owned by other orgs).
func (r *MedicineRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Medicine, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+medicineColumns+` FROM medicines
		WHERE id = $1 AND org_id = $2`,
		id, orgID,
	)
	m, err := scanMedicine(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pharmdomain.ErrMedicineNotFound
		}
		return nil, fmt.Errorf("query medicine: %w", err)
	}
	return m, nil
}

// GetByName retrieves a medicine by its org-unique name.
func (r *MedicineRepository) GetByName(ctx context.Context, orgID uuid.UUID, name string) (*models.Medicine, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+medicineColumns+` FROM medicines
		WHERE org_id = $1 AND name = $2`,
		orgID, name,
	)
	m, err := scanMedicine(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pharmdomain.ErrMedicineNotFound
		}
		return nil, fmt.Errorf("query medicine by name: %w", err)
	}
	return m, nil
}

// FindByOrgID retrieves a list of medicines and total count for the given
// org. A zero opts.Limit returns every row (NULLIF makes the LIMIT a no-op).
func (r *MedicineRepository) FindByOrgID(ctx context.Context, orgID uuid.UUID, opts repositories.QueryOpts) ([]*models.Medicine, int, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+medicineColumns+` FROM medicines
		WHERE org_id = $1
		ORDER BY name
		LIMIT NULLIF($2, 0) OFFSET $3`,
		orgID, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query medicines: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var medicines []*models.Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan medicine: %w", err)
		}
		medicines = append(medicines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate medicines: %w", err)
	}

	var total int
	if err := r.db.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM medicines WHERE org_id = $1`, orgID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count medicines: %w", err)
	}

	return medicines, total, nil
}

// Update persists name/description/price/quantity changes to an existing medicine.
func (r *MedicineRepository) Update(ctx context.Context, m *models.Medicine) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE medicines
		SET name = $3, description = $4, unit_price = $5, quantity = $6, updated_at = $7
		WHERE id = $1 AND org_id = $2`,
		m.ID, m.OrgID, m.Name.String(), m.Description, m.UnitPrice, m.Quantity, m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return pharmdomain.ErrMedicineAlreadyExists
		}
		return fmt.Errorf("update medicine: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return pharmdomain.ErrMedicineNotFound
	}
	return nil
}

// Delete removes a medicine by ID scoped to the given org.
func (r *MedicineRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM medicines WHERE id = $1 AND org_id = $2`, id, orgID,
	)
	if err != nil {
		return fmt.Errorf("delete medicine: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return pharmdomain.ErrMedicineNotFound
	}
	return nil
}

// DecrementStock atomically subtracts quantity units. The WHERE guard makes
// the decrement conditional: a concurrent sale that drains the stock first
// simply leaves this statement matching zero rows, so quantity can never go
// negative. A row that reaches zero is kept — this is the direct-sale path.
func (r *MedicineRepository) DecrementStock(ctx context.Context, orgID, id uuid.UUID, quantity int) (*models.Medicine, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		UPDATE medicines
		SET quantity = quantity - $3, updated_at = $4
		WHERE id = $1 AND org_id = $2 AND quantity >= $3
		RETURNING `+medicineColumns,
		id, orgID, quantity, time.Now().UTC(),
	)
	m, err := scanMedicine(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.decrementFailure(ctx, r.db.DB(), orgID, id)
		}
		return nil, fmt.Errorf("decrement stock: %w", err)
	}
	return m, nil
}

// CommitSale performs the billing commit: conditional stock decrement,
// delete-at-zero, ledger append, and transactional event publish — all in
// one transaction. A crash cannot leave a decrement without its ledger
// entry, and a SaleRecordedEvent exists iff the sale committed.
func (r *MedicineRepository) CommitSale(ctx context.Context, medicineID uuid.UUID, sale *models.Sale) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var remaining int
		err := tx.QueryRowContext(ctx, `
			UPDATE medicines
			SET quantity = quantity - $3, updated_at = $4
			WHERE id = $1 AND org_id = $2 AND quantity >= $3
			RETURNING quantity`,
			medicineID, sale.OrgID, sale.Quantity, time.Now().UTC(),
		).Scan(&remaining)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return r.decrementFailure(ctx, tx, sale.OrgID, medicineID)
			}
			return fmt.Errorf("decrement stock: %w", err)
		}

		deleted := remaining == 0
		if deleted {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM medicines WHERE id = $1 AND org_id = $2`,
				medicineID, sale.OrgID,
			); err != nil {
				return fmt.Errorf("delete drained medicine: %w", err)
			}
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO sales (id, org_id, medicine_name, quantity, unit_price, total_price, sold_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			sale.ID, sale.OrgID, sale.MedicineName, sale.Quantity, sale.UnitPrice, sale.TotalPrice, sale.SoldAt,
		); err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}

		if r.bus != nil {
			if err := r.publishSaleRecorded(tx, medicineID, sale, deleted); err != nil {
				return fmt.Errorf("publish sale recorded: %w", err)
			}
		}
		return nil
	})
}

// decrementFailure distinguishes "no such medicine" from "not enough stock"
// after a conditional decrement matched zero rows.
func (r *MedicineRepository) decrementFailure(ctx context.Context, q interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}, orgID, id uuid.UUID) error {
	var available int
	err := q.QueryRowContext(ctx,
		`SELECT quantity FROM medicines WHERE id = $1 AND org_id = $2`, id, orgID,
	).Scan(&available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pharmdomain.ErrMedicineNotFound
		}
		return fmt.Errorf("check stock: %w", err)
	}
	return &pharmdomain.InsufficientStockError{Available: available}
}

// ListChunk returns up to limit medicines across all orgs, ordered by id,
// strictly after afterID. Pass uuid.Nil to start from the beginning.
func (r *MedicineRepository) ListChunk(ctx context.Context, afterID uuid.UUID, limit int) ([]*models.Medicine, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+medicineColumns+` FROM medicines
		WHERE id > $1
		ORDER BY id
		LIMIT $2`,
		afterID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sweep chunk: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var medicines []*models.Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan medicine: %w", err)
		}
		medicines = append(medicines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sweep chunk: %w", err)
	}
	return medicines, nil
}

// MarkExpired stamps the sticky expired flag on the given medicines.
func (r *MedicineRepository) MarkExpired(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, 0, len(ids)+1)
	args = append(args, time.Now().UTC())
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, id)
	}

	if _, err := r.db.DB().ExecContext(ctx,
		`UPDATE medicines SET expired = TRUE, updated_at = $1 WHERE id IN (`+strings.Join(placeholders, ", ")+`)`,
		args...,
	); err != nil {
		return fmt.Errorf("mark expired: %w", err)
	}
	return nil
}

func (r *MedicineRepository) publishSaleRecorded(tx *sql.Tx, medicineID uuid.UUID, sale *models.Sale, deleted bool) error {
	event := domainevents.SaleRecordedEvent{
		EventID:         uuid.New(),
		Version:         1,
		SaleID:          sale.ID,
		OrgID:           sale.OrgID,
		MedicineID:      medicineID,
		MedicineName:    sale.MedicineName,
		Quantity:        sale.Quantity,
		UnitPrice:       sale.UnitPrice,
		TotalPrice:      sale.TotalPrice,
		MedicineDeleted: deleted,
		OccurredAt:      sale.SoldAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicSaleRecorded, msg)
}

// scanner abstracts *sql.Row and *sql.Rows for scanMedicine.
type scanner interface {
	Scan(dest ...any) error
}

func scanMedicine(s scanner) (*models.Medicine, error) {
	var m models.Medicine
	var name string
	if err := s.Scan(
		&m.ID, &m.OrgID, &name, &m.Description, &m.UnitPrice, &m.Quantity,
		&m.ExpiryDate, &m.Expired, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	m.Name = models.MedicineName(name)
	return &m, nil
}
