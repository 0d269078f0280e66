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

var _ repository.LivestockRepository = (*LivestockRepo)(nil)

const livestockColumns = `id, type, COALESCE(breed, ''), COALESCE(gender, ''), health_status,
	COALESCE(weight, 0), date_of_birth, date_of_birth_on_farm, date_of_arrival_at_farm,
	COALESCE(purchase_price, 0), COALESCE(farm_location, ''), COALESCE(notes, ''),
	created_by, created_at, updated_at`

// LivestockRepo implements LivestockRepository over PostgreSQL.
type LivestockRepo struct {
	q Querier
}

// NewLivestockRepository builds the livestock adapter. Pass a pool or tx (Querier).
func NewLivestockRepository(q Querier) *LivestockRepo {
	return &LivestockRepo{q: q}
}

func (r *LivestockRepo) Create(ctx context.Context, animal *entity.Livestock) error {
	query := `
		INSERT INTO livestock (id, type, breed, gender, health_status, weight, date_of_birth, date_of_birth_on_farm, date_of_arrival_at_farm, purchase_price, farm_location, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		animal.ID, animal.Type, animal.Breed, animal.Gender, animal.HealthStatus,
		animal.Weight, animal.DateOfBirth, animal.DateOfBirthOnFarm, animal.DateOfArrivalAtFarm,
		animal.PurchasePrice, animal.FarmLocation, animal.Notes,
		animal.CreatedBy, animal.CreatedAt, animal.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert livestock: %w", err)
	}
	return nil
}

func (r *LivestockRepo) GetByID(ctx context.Context, id string) (*entity.Livestock, error) {
	query := `SELECT ` + livestockColumns + ` FROM livestock WHERE id = $1`
	animal, err := scanLivestockRow(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get livestock: %w", err)
	}
	return animal, nil
}

func (r *LivestockRepo) List(ctx context.Context) ([]*entity.Livestock, error) {
	query := `SELECT ` + livestockColumns + ` FROM livestock ORDER BY type, created_at DESC`
	return r.queryMany(ctx, query)
}

func (r *LivestockRepo) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*entity.Livestock, error) {
	query := `
		SELECT ` + livestockColumns + ` FROM livestock
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at DESC`
	return r.queryMany(ctx, query, start, end)
}

func (r *LivestockRepo) Update(ctx context.Context, animal *entity.Livestock) error {
	query := `
		UPDATE livestock SET type = $2, breed = $3, gender = $4, health_status = $5,
			weight = $6, date_of_birth = $7, date_of_birth_on_farm = $8,
			date_of_arrival_at_farm = $9, purchase_price = $10, farm_location = $11,
			notes = $12, updated_at = $13
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		animal.ID, animal.Type, animal.Breed, animal.Gender, animal.HealthStatus,
		animal.Weight, animal.DateOfBirth, animal.DateOfBirthOnFarm, animal.DateOfArrivalAtFarm,
		animal.PurchasePrice, animal.FarmLocation, animal.Notes, animal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update livestock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LivestockRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM livestock WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete livestock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LivestockRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Livestock, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list livestock: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Livestock, 0)
	for rows.Next() {
		animal, err := scanLivestockRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan livestock: %w", err)
		}
		list = append(list, animal)
	}
	return list, rows.Err()
}

func scanLivestockRow(row pgx.Row) (*entity.Livestock, error) {
	var l entity.Livestock
	err := row.Scan(
		&l.ID, &l.Type, &l.Breed, &l.Gender, &l.HealthStatus, &l.Weight,
		&l.DateOfBirth, &l.DateOfBirthOnFarm, &l.DateOfArrivalAtFarm,
		&l.PurchasePrice, &l.FarmLocation, &l.Notes,
		&l.CreatedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
