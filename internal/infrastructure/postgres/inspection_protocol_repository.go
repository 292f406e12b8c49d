package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.InspectionProtocolRepository = (*InspectionProtocolRepo)(nil)

type InspectionProtocolRepo struct {
	q Querier
}

func NewInspectionProtocolRepository(q Querier) *InspectionProtocolRepo {
	return &InspectionProtocolRepo{q: q}
}

const inspectionColumns = `id, project_id, title, inspection_type, status, inspection_date, inspector, participants,
	areas, findings, notes, created_at, updated_at, created_by`

func scanInspection(row pgx.Row) (*entity.InspectionProtocol, error) {
	var p entity.InspectionProtocol
	err := row.Scan(
		&p.ID, &p.ProjectID, &p.Title, &p.InspectionType, &p.Status, &p.InspectionDate, &p.Inspector, &p.Participants,
		&p.Areas, &p.Findings, &p.Notes, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *InspectionProtocolRepo) Create(ctx context.Context, p *entity.InspectionProtocol) error {
	query := `INSERT INTO inspection_protocols (` + inspectionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.ProjectID, p.Title, p.InspectionType, p.Status, p.InspectionDate, p.Inspector, nonNil(p.Participants),
		nonNil(p.Areas), nonNil(p.Findings), p.Notes, p.CreatedAt, p.UpdatedAt, p.CreatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("insert inspection protocol: %w", err)
	}
	return nil
}

func (r *InspectionProtocolRepo) GetByID(ctx context.Context, id string) (*entity.InspectionProtocol, error) {
	p, err := scanInspection(r.q.QueryRow(ctx, `SELECT `+inspectionColumns+` FROM inspection_protocols WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inspection protocol: %w", err)
	}
	return p, nil
}

func (r *InspectionProtocolRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.InspectionProtocol, error) {
	rows, err := r.q.Query(ctx, `SELECT `+inspectionColumns+` FROM inspection_protocols
		WHERE project_id = $1 ORDER BY inspection_date DESC, id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list inspection protocols: %w", err)
	}
	return collect(rows, scanInspection)
}

func (r *InspectionProtocolRepo) Update(ctx context.Context, p *entity.InspectionProtocol) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE inspection_protocols SET title = $2, inspection_type = $3, status = $4, inspection_date = $5,
			inspector = $6, participants = $7, areas = $8, findings = $9, notes = $10, updated_at = $11
		WHERE id = $1`,
		p.ID, p.Title, p.InspectionType, p.Status, p.InspectionDate, p.Inspector, nonNil(p.Participants),
		nonNil(p.Areas), nonNil(p.Findings), p.Notes, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inspection protocol: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInspectionNotFound
	}
	return nil
}

func (r *InspectionProtocolRepo) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.q, `DELETE FROM inspection_protocols WHERE id = $1`, id, domain.ErrInspectionNotFound)
}
