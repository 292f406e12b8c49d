package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.ProjectTaskRepository = (*ProjectTaskRepo)(nil)

type ProjectTaskRepo struct {
	q Querier
}

func NewProjectTaskRepository(q Querier) *ProjectTaskRepo {
	return &ProjectTaskRepo{q: q}
}

const taskColumns = `id, project_id, title, description, assigned_to, status, priority, due_date, completed_at,
	created_at, updated_at, created_by`

func scanTask(row pgx.Row) (*entity.ProjectTask, error) {
	var t entity.ProjectTask
	err := row.Scan(
		&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.AssignedTo, &t.Status, &t.Priority, &t.DueDate,
		&t.CompletedAt, &t.CreatedAt, &t.UpdatedAt, &t.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ProjectTaskRepo) Create(ctx context.Context, t *entity.ProjectTask) error {
	query := `INSERT INTO project_tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.ProjectID, t.Title, t.Description, t.AssignedTo, t.Status, t.Priority, t.DueDate,
		t.CompletedAt, t.CreatedAt, t.UpdatedAt, t.CreatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: proyecto o empleado inexistente", domain.ErrNotFound)
		}
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *ProjectTaskRepo) GetByID(ctx context.Context, id string) (*entity.ProjectTask, error) {
	t, err := scanTask(r.q.QueryRow(ctx, `SELECT `+taskColumns+` FROM project_tasks WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// ListByProject ordena por vencimiento (sin fecha al final).
func (r *ProjectTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.ProjectTask, error) {
	rows, err := r.q.Query(ctx, `SELECT `+taskColumns+` FROM project_tasks
		WHERE project_id = $1 ORDER BY due_date NULLS LAST, created_at, id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return collect(rows, scanTask)
}

func (r *ProjectTaskRepo) Update(ctx context.Context, t *entity.ProjectTask) error {
	query := `
		UPDATE project_tasks SET title = $2, description = $3, assigned_to = $4, status = $5, priority = $6,
			due_date = $7, completed_at = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		t.ID, t.Title, t.Description, t.AssignedTo, t.Status, t.Priority, t.DueDate, t.CompletedAt, t.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmployeeNotFound
		}
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *ProjectTaskRepo) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.q, `DELETE FROM project_tasks WHERE id = $1`, id, domain.ErrTaskNotFound)
}
