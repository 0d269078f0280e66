package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jefftricks/shamba-api/internal/domain"
	"github.com/jefftricks/shamba-api/internal/domain/entity"
	"github.com/jefftricks/shamba-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

const purchaseColumns = `id, item_name, COALESCE(category, ''), COALESCE(supplier, ''),
	quantity, unit_cost, total_cost, purchase_date, received_date, payment_status,
	COALESCE(notes, ''), created_by, created_at, updated_at`

// PurchaseRepo implements PurchaseRepository over PostgreSQL.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository builds the purchases adapter. Pass a pool or tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

func (r *PurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, item_name, category, supplier, quantity, unit_cost, total_cost, purchase_date, received_date, payment_status, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		purchase.ID, purchase.ItemName, purchase.Category, purchase.Supplier,
		purchase.Quantity, purchase.UnitCost, purchase.TotalCost, purchase.PurchaseDate,
		purchase.ReceivedDate, purchase.PaymentStatus, purchase.Notes,
		purchase.CreatedBy, purchase.CreatedAt, purchase.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) GetByID(ctx context.Context, id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ItemName, &p.Category, &p.Supplier, &p.Quantity,
		&p.UnitCost, &p.TotalCost, &p.PurchaseDate, &p.ReceivedDate,
		&p.PaymentStatus, &p.Notes, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

func (r *PurchaseRepo) List(ctx context.Context) ([]*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases ORDER BY purchase_date DESC`
	return r.queryMany(ctx, query)
}

func (r *PurchaseRepo) ListByPeriod(ctx context.Context, start, end *time.Time, category string) ([]*entity.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + ` FROM purchases
		WHERE ($1::timestamptz IS NULL OR purchase_date >= $1)
		  AND ($2::timestamptz IS NULL OR purchase_date <= $2)
		  AND ($3 = '' OR category = $3)
		ORDER BY purchase_date DESC`
	return r.queryMany(ctx, query, start, end, category)
}

func (r *PurchaseRepo) Update(ctx context.Context, purchase *entity.Purchase) error {
	query := `
		UPDATE purchases SET item_name = $2, category = $3, supplier = $4, quantity = $5,
			unit_cost = $6, total_cost = $7, purchase_date = $8, received_date = $9,
			payment_status = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		purchase.ID, purchase.ItemName, purchase.Category, purchase.Supplier,
		purchase.Quantity, purchase.UnitCost, purchase.TotalCost, purchase.PurchaseDate,
		purchase.ReceivedDate, purchase.PaymentStatus, purchase.Notes, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PurchaseRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PurchaseRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Purchase, 0)
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(
			&p.ID, &p.ItemName, &p.Category, &p.Supplier, &p.Quantity,
			&p.UnitCost, &p.TotalCost, &p.PurchaseDate, &p.ReceivedDate,
			&p.PaymentStatus, &p.Notes, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
