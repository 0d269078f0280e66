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

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, product_name, COALESCE(product_type, ''), COALESCE(buyer, ''),
	quantity, unit_price, total_amount, sale_date, payment_status, COALESCE(notes, ''),
	created_by, created_at, updated_at`

// SaleRepo implements SaleRepository over PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the sales adapter. Pass a pool or tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_name, product_type, buyer, quantity, unit_price, total_amount, sale_date, payment_status, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.ProductName, sale.ProductType, sale.Buyer, sale.Quantity,
		sale.UnitPrice, sale.TotalAmount, sale.SaleDate, sale.PaymentStatus,
		sale.Notes, sale.CreatedBy, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ProductName, &s.ProductType, &s.Buyer, &s.Quantity,
		&s.UnitPrice, &s.TotalAmount, &s.SaleDate, &s.PaymentStatus,
		&s.Notes, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY sale_date DESC`
	return r.queryMany(ctx, query)
}

func (r *SaleRepo) ListByPeriod(ctx context.Context, start, end *time.Time, category string) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + ` FROM sales
		WHERE ($1::timestamptz IS NULL OR sale_date >= $1)
		  AND ($2::timestamptz IS NULL OR sale_date <= $2)
		  AND ($3 = '' OR product_type = $3)
		ORDER BY sale_date DESC`
	return r.queryMany(ctx, query, start, end, category)
}

func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	query := `
		UPDATE sales SET product_name = $2, product_type = $3, buyer = $4, quantity = $5,
			unit_price = $6, total_amount = $7, sale_date = $8, payment_status = $9,
			notes = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		sale.ID, sale.ProductName, sale.ProductType, sale.Buyer, sale.Quantity,
		sale.UnitPrice, sale.TotalAmount, sale.SaleDate, sale.PaymentStatus,
		sale.Notes, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Sale, 0)
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.ProductName, &s.ProductType, &s.Buyer, &s.Quantity,
			&s.UnitPrice, &s.TotalAmount, &s.SaleDate, &s.PaymentStatus,
			&s.Notes, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
