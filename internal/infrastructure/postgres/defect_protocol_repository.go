package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.DefectProtocolRepository = (*DefectProtocolRepo)(nil)

type DefectProtocolRepo struct {
	q Querier
}

func NewDefectProtocolRepository(q Querier) *DefectProtocolRepo {
	return &DefectProtocolRepo{q: q}
}

const defectColumns = `id, project_id, title, description, location, severity, status, assigned_to, due_date,
	resolved_at, photos, notes, created_at, updated_at, created_by`

func scanDefect(row pgx.Row) (*entity.DefectProtocol, error) {
	var d entity.DefectProtocol
	err := row.Scan(
		&d.ID, &d.ProjectID, &d.Title, &d.Description, &d.Location, &d.Severity, &d.Status, &d.AssignedTo,
		&d.DueDate, &d.ResolvedAt, &d.Photos, &d.Notes, &d.CreatedAt, &d.UpdatedAt, &d.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DefectProtocolRepo) Create(ctx context.Context, d *entity.DefectProtocol) error {
	query := `INSERT INTO defect_protocols (` + defectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.ProjectID, d.Title, d.Description, d.Location, d.Severity, d.Status, d.AssignedTo,
		d.DueDate, d.ResolvedAt, nonNil(d.Photos), d.Notes, d.CreatedAt, d.UpdatedAt, d.CreatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: proyecto o empleado inexistente", domain.ErrNotFound)
		}
		return fmt.Errorf("insert defect: %w", err)
	}
	return nil
}

func (r *DefectProtocolRepo) GetByID(ctx context.Context, id string) (*entity.DefectProtocol, error) {
	d, err := scanDefect(r.q.QueryRow(ctx, `SELECT `+defectColumns+` FROM defect_protocols WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get defect: %w", err)
	}
	return d, nil
}

// List críticos primero, luego por fecha de creación.
func (r *DefectProtocolRepo) List(ctx context.Context, filter entity.DefectFilter) ([]*entity.DefectProtocol, error) {
	rows, err := r.q.Query(ctx, `SELECT `+defectColumns+` FROM defect_protocols
		WHERE ($1 = '' OR project_id::text = $1)
		  AND ($2 = '' OR severity = $2)
		  AND ($3 = '' OR status = $3)
		ORDER BY CASE severity WHEN 'critical' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END,
			created_at DESC, id`, filter.ProjectID, filter.Severity, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("list defects: %w", err)
	}
	return collect(rows, scanDefect)
}

func (r *DefectProtocolRepo) Update(ctx context.Context, d *entity.DefectProtocol) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE defect_protocols SET title = $2, description = $3, location = $4, severity = $5, status = $6,
			assigned_to = $7, due_date = $8, resolved_at = $9, photos = $10, notes = $11, updated_at = $12
		WHERE id = $1`,
		d.ID, d.Title, d.Description, d.Location, d.Severity, d.Status, d.AssignedTo, d.DueDate, d.ResolvedAt,
		nonNil(d.Photos), d.Notes, d.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmployeeNotFound
		}
		return fmt.Errorf("update defect: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDefectNotFound
	}
	return nil
}

func (r *DefectProtocolRepo) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.q, `DELETE FROM defect_protocols WHERE id = $1`, id, domain.ErrDefectNotFound)
}
