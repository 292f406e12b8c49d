package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.DailyReportRepository = (*DailyReportRepo)(nil)

// DailyReportRepo bitácora diaria de obra. Asistentes y fotos se guardan como JSONB.
type DailyReportRepo struct {
	q Querier
}

func NewDailyReportRepository(q Querier) *DailyReportRepo {
	return &DailyReportRepo{q: q}
}

const dailyReportColumns = `id, project_id, report_date, weather, temperature, work_performed, attendees, equipment,
	materials, issues, photos, notes, created_at, updated_at, created_by`

func scanDailyReport(row pgx.Row) (*entity.DailyReport, error) {
	var d entity.DailyReport
	err := row.Scan(
		&d.ID, &d.ProjectID, &d.ReportDate, &d.Weather, &d.Temperature, &d.WorkPerformed, &d.Attendees, &d.Equipment,
		&d.Materials, &d.Issues, &d.Photos, &d.Notes, &d.CreatedAt, &d.UpdatedAt, &d.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DailyReportRepo) Create(ctx context.Context, d *entity.DailyReport) error {
	query := `INSERT INTO daily_reports (` + dailyReportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.ProjectID, d.ReportDate, d.Weather, d.Temperature, d.WorkPerformed, nonNil(d.Attendees), d.Equipment,
		d.Materials, d.Issues, nonNil(d.Photos), d.Notes, d.CreatedAt, d.UpdatedAt, d.CreatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("insert daily report: %w", err)
	}
	return nil
}

func (r *DailyReportRepo) GetByID(ctx context.Context, id string) (*entity.DailyReport, error) {
	d, err := scanDailyReport(r.q.QueryRow(ctx, `SELECT `+dailyReportColumns+` FROM daily_reports WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get daily report: %w", err)
	}
	return d, nil
}

func (r *DailyReportRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.DailyReport, error) {
	rows, err := r.q.Query(ctx, `SELECT `+dailyReportColumns+` FROM daily_reports
		WHERE project_id = $1 ORDER BY report_date DESC, id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list daily reports: %w", err)
	}
	return collect(rows, scanDailyReport)
}

func (r *DailyReportRepo) Update(ctx context.Context, d *entity.DailyReport) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE daily_reports SET report_date = $2, weather = $3, temperature = $4, work_performed = $5,
			attendees = $6, equipment = $7, materials = $8, issues = $9, photos = $10, notes = $11, updated_at = $12
		WHERE id = $1`,
		d.ID, d.ReportDate, d.Weather, d.Temperature, d.WorkPerformed, nonNil(d.Attendees), d.Equipment,
		d.Materials, d.Issues, nonNil(d.Photos), d.Notes, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update daily report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

func (r *DailyReportRepo) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.q, `DELETE FROM daily_reports WHERE id = $1`, id, domain.ErrReportNotFound)
}
