package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.RFIRepository = (*RFIRepo)(nil)

type RFIRepo struct {
	q Querier
}

func NewRFIRepository(q Querier) *RFIRepo {
	return &RFIRepo{q: q}
}

const rfiColumns = `id, project_id, rfi_number, subject, question, answer, status, priority, due_date,
	answered_at, answered_by, created_at, updated_at, created_by`

func scanRFI(row pgx.Row) (*entity.RFI, error) {
	var x entity.RFI
	err := row.Scan(
		&x.ID, &x.ProjectID, &x.RFINumber, &x.Subject, &x.Question, &x.Answer, &x.Status, &x.Priority,
		&x.DueDate, &x.AnsweredAt, &x.AnsweredBy, &x.CreatedAt, &x.UpdatedAt, &x.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &x, nil
}

// Create número de RFI repetido dentro del proyecto -> ErrDuplicate.
func (r *RFIRepo) Create(ctx context.Context, x *entity.RFI) error {
	query := `INSERT INTO rfis (` + rfiColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		x.ID, x.ProjectID, x.RFINumber, x.Subject, x.Question, x.Answer, x.Status, x.Priority,
		x.DueDate, x.AnsweredAt, x.AnsweredBy, x.CreatedAt, x.UpdatedAt, x.CreatedBy,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("%w: número de RFI %q", domain.ErrDuplicate, x.RFINumber)
		case isForeignKeyViolation(err):
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("insert rfi: %w", err)
	}
	return nil
}

func (r *RFIRepo) GetByID(ctx context.Context, id string) (*entity.RFI, error) {
	x, err := scanRFI(r.q.QueryRow(ctx, `SELECT `+rfiColumns+` FROM rfis WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rfi: %w", err)
	}
	return x, nil
}

func (r *RFIRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.RFI, error) {
	rows, err := r.q.Query(ctx, `SELECT `+rfiColumns+` FROM rfis WHERE project_id = $1 ORDER BY created_at DESC, id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list rfis: %w", err)
	}
	return collect(rows, scanRFI)
}

func (r *RFIRepo) Update(ctx context.Context, x *entity.RFI) error {
	query := `
		UPDATE rfis SET subject = $2, question = $3, answer = $4, status = $5, priority = $6, due_date = $7,
			answered_at = $8, answered_by = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		x.ID, x.Subject, x.Question, x.Answer, x.Status, x.Priority, x.DueDate, x.AnsweredAt, x.AnsweredBy, x.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rfi: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRFINotFound
	}
	return nil
}

func (r *RFIRepo) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.q, `DELETE FROM rfis WHERE id = $1`, id, domain.ErrRFINotFound)
}
