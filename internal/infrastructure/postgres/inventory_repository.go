package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jefftricks/shamba-api/internal/domain"
	"github.com/jefftricks/shamba-api/internal/domain/entity"
	"github.com/jefftricks/shamba-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// Nullable min_threshold and unit_cost are coalesced to 0 so the low-stock
// math never sees NULL.
const inventoryColumns = `id, item_name, category, quantity, unit, COALESCE(unit_cost, 0),
	COALESCE(min_threshold, 0), COALESCE(location, ''), COALESCE(supplier, ''),
	created_by, created_at, last_updated`

// bulkUpdatableColumns are the only fields a partial update may touch.
var bulkUpdatableColumns = map[string]bool{
	"quantity":      true,
	"unit_cost":     true,
	"min_threshold": true,
	"location":      true,
	"supplier":      true,
	"last_updated":  true,
}

// InventoryRepo implements InventoryRepository over PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the inventory adapter. Pass a pool or tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory (id, item_name, category, quantity, unit, unit_cost, min_threshold, location, supplier, created_by, created_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.ItemName, item.Category, item.Quantity, item.Unit,
		item.UnitCost, item.MinThreshold, item.Location, item.Supplier,
		item.CreatedBy, item.CreatedAt, item.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1`
	item, err := scanInventoryRow(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return item, nil
}

func (r *InventoryRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory ORDER BY category, item_name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.InventoryItem, 0)
	for rows.Next() {
		item, err := scanInventoryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func (r *InventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		UPDATE inventory SET item_name = $2, category = $3, quantity = $4, unit = $5,
			unit_cost = $6, min_threshold = $7, location = $8, supplier = $9, last_updated = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		item.ID, item.ItemName, item.Category, item.Quantity, item.Unit,
		item.UnitCost, item.MinThreshold, item.Location, item.Supplier, item.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateFields applies a partial update built from the allowed column set and
// returns the updated row, or nil when the id does not exist.
func (r *InventoryRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) (*entity.InventoryItem, error) {
	sets := make([]string, 0, len(fields))
	args := []any{id}
	for col, val := range fields {
		if !bulkUpdatableColumns[col] {
			return nil, fmt.Errorf("update inventory fields: column %q not allowed", col)
		}
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(
		`UPDATE inventory SET %s WHERE id = $1 RETURNING `+inventoryColumns,
		strings.Join(sets, ", "),
	)
	item, err := scanInventoryRow(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update inventory fields: %w", err)
	}
	return item, nil
}

func (r *InventoryRepo) SetLocation(ctx context.Context, id, location string, ts time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE inventory SET location = $2, last_updated = $3 WHERE id = $1`,
		id, location, ts,
	)
	if err != nil {
		return fmt.Errorf("set inventory location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanInventoryRow(row pgx.Row) (*entity.InventoryItem, error) {
	var i entity.InventoryItem
	err := row.Scan(
		&i.ID, &i.ItemName, &i.Category, &i.Quantity, &i.Unit, &i.UnitCost,
		&i.MinThreshold, &i.Location, &i.Supplier, &i.CreatedBy, &i.CreatedAt, &i.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
