package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.ProgressReportRepository = (*ProgressReportRepo)(nil)

type ProgressReportRepo struct {
	q Querier
}

func NewProgressReportRepository(q Querier) *ProgressReportRepo {
	return &ProgressReportRepo{q: q}
}

func scanProgress(row pgx.Row) (*entity.ProgressReport, error) {
	var p entity.ProgressReport
	if err := row.Scan(&p.ID, &p.ProjectID, &p.Title, &p.Description, &p.PercentageComplete, &p.ReportDate, &p.CreatedAt, &p.CreatedBy); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgressReportRepo) Create(ctx context.Context, p *entity.ProgressReport) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO progress_reports (id, project_id, title, description, percentage_complete, report_date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.ProjectID, p.Title, p.Description, p.PercentageComplete, p.ReportDate, p.CreatedAt, p.CreatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("insert progress report: %w", err)
	}
	return nil
}

// ListByProject el más reciente primero.
func (r *ProgressReportRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.ProgressReport, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, project_id, title, description, percentage_complete, report_date, created_at, created_by
		FROM progress_reports WHERE project_id = $1 ORDER BY report_date DESC, created_at DESC, id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list progress reports: %w", err)
	}
	return collect(rows, scanProgress)
}

func (r *ProgressReportRepo) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.q, `DELETE FROM progress_reports WHERE id = $1`, id, domain.ErrReportNotFound)
}
