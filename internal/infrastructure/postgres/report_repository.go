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

var _ repository.ReportRepository = (*ReportRepo)(nil)

const reportColumns = `id, report_type, title, content, period_start, period_end, created_by, created_at`

// ReportRepo implements ReportRepository over PostgreSQL. Reports are
// append-only; the adapter deliberately has no update or delete statement.
type ReportRepo struct {
	q Querier
}

// NewReportRepository builds the reports adapter. Pass a pool or tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

func (r *ReportRepo) Create(ctx context.Context, report *entity.Report) error {
	query := `
		INSERT INTO reports (id, report_type, title, content, period_start, period_end, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		report.ID, report.ReportType, report.Title, report.Content,
		report.PeriodStart, report.PeriodEnd, report.CreatedBy, report.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (r *ReportRepo) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`
	var rep entity.Report
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rep.ID, &rep.ReportType, &rep.Title, &rep.Content,
		&rep.PeriodStart, &rep.PeriodEnd, &rep.CreatedBy, &rep.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &rep, nil
}

func (r *ReportRepo) List(ctx context.Context) ([]*entity.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Report, 0)
	for rows.Next() {
		var rep entity.Report
		if err := rows.Scan(
			&rep.ID, &rep.ReportType, &rep.Title, &rep.Content,
			&rep.PeriodStart, &rep.PeriodEnd, &rep.CreatedBy, &rep.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}
