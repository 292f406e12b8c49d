package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, first_name, last_name, email, phone, position, department, employee_number,
	status, hire_date, created_at, updated_at, created_by`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Position, &e.Department, &e.EmployeeNumber,
		&e.Status, &e.HireDate, &e.CreatedAt, &e.UpdatedAt, &e.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.FirstName, e.LastName, e.Email, e.Phone, e.Position, e.Department, e.EmployeeNumber,
		e.Status, e.HireDate, e.CreatedAt, e.UpdatedAt, e.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de empleado %q", domain.ErrDuplicate, e.EmployeeNumber)
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// List ordena por apellido; Query busca en nombre, apellido, email y número de empleado.
func (r *EmployeeRepo) List(ctx context.Context, filter entity.EmployeeFilter) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees
		WHERE ($1 = '' OR status = $1)
		  AND ($2::text IS NULL OR first_name ILIKE $2 OR last_name ILIKE $2 OR email ILIKE $2 OR employee_number ILIKE $2)
		ORDER BY last_name, id`
	rows, err := r.q.Query(ctx, query, filter.Status, nullableLike(filter.Query))
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET first_name = $2, last_name = $3, email = $4, phone = $5, position = $6,
			department = $7, employee_number = $8, status = $9, hire_date = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		e.ID, e.FirstName, e.LastName, e.Email, e.Phone, e.Position, e.Department, e.EmployeeNumber,
		e.Status, e.HireDate, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de empleado %q", domain.ErrDuplicate, e.EmployeeNumber)
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// Delete falla con ErrEmployeeInUse si alguna asignación lo referencia (FK RESTRICT).
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return domain.ErrEmployeeInUse
		case isMissing(err):
			return domain.ErrEmployeeNotFound
		}
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
