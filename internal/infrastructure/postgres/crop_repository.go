package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jefftricks/shamba-api/internal/domain"
	"github.com/jefftricks/shamba-api/internal/domain/entity"
	"github.com/jefftricks/shamba-api/internal/domain/repository"
)

var _ repository.CropRepository = (*CropRepo)(nil)

const cropColumns = `id, name, type, farm_location, status, COALESCE(season, ''),
	COALESCE(yield_quantity, 0), COALESCE(yield_unit, ''), planting_date, harvest_date,
	COALESCE(notes, ''), created_by, created_at, updated_at`

// CropRepo implements CropRepository over PostgreSQL.
type CropRepo struct {
	q Querier
}

// NewCropRepository builds the crops adapter. Pass a pool or tx (Querier).
func NewCropRepository(q Querier) *CropRepo {
	return &CropRepo{q: q}
}

func (r *CropRepo) Create(ctx context.Context, crop *entity.Crop) error {
	query := `
		INSERT INTO crops (id, name, type, farm_location, status, season, yield_quantity, yield_unit, planting_date, harvest_date, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		crop.ID, crop.Name, crop.Type, crop.FarmLocation, crop.Status, crop.Season,
		crop.YieldQuantity, crop.YieldUnit, crop.PlantingDate, crop.HarvestDate,
		crop.Notes, crop.CreatedBy, crop.CreatedAt, crop.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert crop: %w", err)
	}
	return nil
}

func (r *CropRepo) GetByID(ctx context.Context, id string) (*entity.Crop, error) {
	query := `SELECT ` + cropColumns + ` FROM crops WHERE id = $1`
	crop, err := scanCropRow(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get crop: %w", err)
	}
	return crop, nil
}

func (r *CropRepo) List(ctx context.Context) ([]*entity.Crop, error) {
	query := `SELECT ` + cropColumns + ` FROM crops ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Crop, 0)
	for rows.Next() {
		crop, err := scanCropRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan crop: %w", err)
		}
		list = append(list, crop)
	}
	return list, rows.Err()
}

func (r *CropRepo) Update(ctx context.Context, crop *entity.Crop) error {
	query := `
		UPDATE crops SET name = $2, type = $3, farm_location = $4, status = $5, season = $6,
			yield_quantity = $7, yield_unit = $8, planting_date = $9, harvest_date = $10,
			notes = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		crop.ID, crop.Name, crop.Type, crop.FarmLocation, crop.Status, crop.Season,
		crop.YieldQuantity, crop.YieldUnit, crop.PlantingDate, crop.HarvestDate,
		crop.Notes, crop.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update crop: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CropRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM crops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete crop: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCropRow(row pgx.Row) (*entity.Crop, error) {
	var c entity.Crop
	err := row.Scan(
		&c.ID, &c.Name, &c.Type, &c.FarmLocation, &c.Status, &c.Season,
		&c.YieldQuantity, &c.YieldUnit, &c.PlantingDate, &c.HarvestDate,
		&c.Notes, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
