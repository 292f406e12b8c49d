package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.CapacityPlanRepository = (*CapacityPlanRepo)(nil)

// CapacityPlanRepo planificación de horas por empleado y proyecto.
type CapacityPlanRepo struct {
	q Querier
}

func NewCapacityPlanRepository(q Querier) *CapacityPlanRepo {
	return &CapacityPlanRepo{q: q}
}

const capacitySelect = `
	SELECT c.id, c.employee_id, c.project_id, c.start_date, c.end_date, c.hours_per_day, c.notes,
		c.created_at, c.updated_at, c.created_by,
		e.first_name || ' ' || e.last_name, COALESCE(p.name, '')
	FROM capacity_plans c
	JOIN employees e ON e.id = c.employee_id
	LEFT JOIN projects p ON p.id = c.project_id`

func scanCapacity(row pgx.Row) (*entity.CapacityPlan, error) {
	var c entity.CapacityPlan
	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.ProjectID, &c.StartDate, &c.EndDate, &c.HoursPerDay, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.EmployeeName, &c.ProjectName,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CapacityPlanRepo) Create(ctx context.Context, c *entity.CapacityPlan) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO capacity_plans (id, employee_id, project_id, start_date, end_date, hours_per_day, notes,
			created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.EmployeeID, c.ProjectID, c.StartDate, c.EndDate, c.HoursPerDay, c.Notes,
		c.CreatedAt, c.UpdatedAt, c.CreatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: empleado o proyecto inexistente", domain.ErrNotFound)
		}
		return fmt.Errorf("insert capacity plan: %w", err)
	}
	return nil
}

func (r *CapacityPlanRepo) GetByID(ctx context.Context, id string) (*entity.CapacityPlan, error) {
	c, err := scanCapacity(r.q.QueryRow(ctx, capacitySelect+` WHERE c.id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get capacity plan: %w", err)
	}
	return c, nil
}

// List planes que se solapan con [From, To]; límites nulos no filtran.
func (r *CapacityPlanRepo) List(ctx context.Context, filter entity.CapacityFilter) ([]*entity.CapacityPlan, error) {
	rows, err := r.q.Query(ctx, capacitySelect+`
		WHERE ($1 = '' OR c.employee_id::text = $1)
		  AND ($2::date IS NULL OR c.end_date >= $2::date)
		  AND ($3::date IS NULL OR c.start_date <= $3::date)
		ORDER BY c.start_date, c.id`, filter.EmployeeID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("list capacity plans: %w", err)
	}
	return collect(rows, scanCapacity)
}

func (r *CapacityPlanRepo) Update(ctx context.Context, c *entity.CapacityPlan) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE capacity_plans SET project_id = $2, start_date = $3, end_date = $4, hours_per_day = $5, notes = $6,
			updated_at = $7
		WHERE id = $1`,
		c.ID, c.ProjectID, c.StartDate, c.EndDate, c.HoursPerDay, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("update capacity plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCapacityNotFound
	}
	return nil
}

func (r *CapacityPlanRepo) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.q, `DELETE FROM capacity_plans WHERE id = $1`, id, domain.ErrCapacityNotFound)
}
