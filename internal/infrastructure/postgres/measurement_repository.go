package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.MeasurementRepository = (*MeasurementRepo)(nil)

type MeasurementRepo struct {
	q Querier
}

func NewMeasurementRepository(q Querier) *MeasurementRepo {
	return &MeasurementRepo{q: q}
}

const measurementColumns = `id, project_id, description, quantity, unit, unit_price, location, measured_date, notes,
	created_at, created_by`

func scanMeasurement(row pgx.Row) (*entity.Measurement, error) {
	var m entity.Measurement
	err := row.Scan(
		&m.ID, &m.ProjectID, &m.Description, &m.Quantity, &m.Unit, &m.UnitPrice, &m.Location, &m.MeasuredDate,
		&m.Notes, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MeasurementRepo) Create(ctx context.Context, m *entity.Measurement) error {
	query := `INSERT INTO measurements (` + measurementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ProjectID, m.Description, m.Quantity, m.Unit, m.UnitPrice, m.Location, m.MeasuredDate,
		m.Notes, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("insert measurement: %w", err)
	}
	return nil
}

func (r *MeasurementRepo) GetByID(ctx context.Context, id string) (*entity.Measurement, error) {
	m, err := scanMeasurement(r.q.QueryRow(ctx, `SELECT `+measurementColumns+` FROM measurements WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get measurement: %w", err)
	}
	return m, nil
}

func (r *MeasurementRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.Measurement, error) {
	rows, err := r.q.Query(ctx, `SELECT `+measurementColumns+` FROM measurements
		WHERE project_id = $1 ORDER BY measured_date DESC, id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	return collect(rows, scanMeasurement)
}

func (r *MeasurementRepo) Update(ctx context.Context, m *entity.Measurement) error {
	query := `
		UPDATE measurements SET description = $2, quantity = $3, unit = $4, unit_price = $5, location = $6,
			measured_date = $7, notes = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		m.ID, m.Description, m.Quantity, m.Unit, m.UnitPrice, m.Location, m.MeasuredDate, m.Notes,
	)
	if err != nil {
		return fmt.Errorf("update measurement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMeasurementNotFound
	}
	return nil
}

func (r *MeasurementRepo) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.q, `DELETE FROM measurements WHERE id = $1`, id, domain.ErrMeasurementNotFound)
}
