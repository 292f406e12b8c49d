package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo proyectos y su equipo. Tareas, documentos y registros de obra caen en cascada
// al borrar el proyecto.
type ProjectRepo struct {
	q Querier
}

func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

const projectColumns = `id, name, description, client_name, location, start_date, end_date, status, budget,
	project_manager_id, created_at, updated_at, created_by`

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.ClientName, &p.Location, &p.StartDate, &p.EndDate, &p.Status, &p.Budget,
		&p.ProjectManagerID, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.ClientName, p.Location, p.StartDate, p.EndDate, p.Status, p.Budget,
		p.ProjectManagerID, p.CreatedAt, p.UpdatedAt, p.CreatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmployeeNotFound
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	p, err := scanProject(r.q.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// List más recientes primero; status vacío no filtra.
func (r *ProjectRepo) List(ctx context.Context, status string) ([]*entity.Project, error) {
	rows, err := r.q.Query(ctx, `SELECT `+projectColumns+` FROM projects
		WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC, id`, status)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProjectRepo) Update(ctx context.Context, p *entity.Project) error {
	query := `
		UPDATE projects SET name = $2, description = $3, client_name = $4, location = $5, start_date = $6,
			end_date = $7, status = $8, budget = $9, project_manager_id = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.ClientName, p.Location, p.StartDate, p.EndDate, p.Status, p.Budget,
		p.ProjectManagerID, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmployeeNotFound
		}
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.q, `DELETE FROM projects WHERE id = $1`, id, domain.ErrProjectNotFound)
}

// AddTeamMember ErrDuplicate si el empleado ya pertenece al equipo.
func (r *ProjectRepo) AddTeamMember(ctx context.Context, m *entity.ProjectTeamMember) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO project_team_members (id, project_id, employee_id, role, added_at)
		VALUES ($1, $2, $3, $4, $5)`, m.ID, m.ProjectID, m.EmployeeID, m.Role, m.AddedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("%w: el empleado ya está en el equipo", domain.ErrDuplicate)
		case isForeignKeyViolation(err):
			return domain.ErrEmployeeNotFound
		}
		return fmt.Errorf("insert team member: %w", err)
	}
	return nil
}

func (r *ProjectRepo) ListTeamMembers(ctx context.Context, projectID string) ([]*entity.ProjectTeamMember, error) {
	rows, err := r.q.Query(ctx, `
		SELECT m.id, m.project_id, m.employee_id, m.role, m.added_at, e.first_name || ' ' || e.last_name
		FROM project_team_members m
		JOIN employees e ON e.id = m.employee_id
		WHERE m.project_id = $1
		ORDER BY m.added_at, m.id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProjectTeamMember
	for rows.Next() {
		var m entity.ProjectTeamMember
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.EmployeeID, &m.Role, &m.AddedAt, &m.EmployeeName); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *ProjectRepo) RemoveTeamMember(ctx context.Context, id string) error {
	return execDelete(ctx, r.q, `DELETE FROM project_team_members WHERE id = $1`, id, domain.ErrTeamMemberNotFound)
}
