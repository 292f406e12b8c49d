package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.InventoryAssignmentRepository = (*InventoryAssignmentRepo)(nil)

// InventoryAssignmentRepo historial de asignaciones sobre PostgreSQL. El índice único parcial
// ux_inventory_assignments_open_item garantiza una sola fila abierta por ítem.
type InventoryAssignmentRepo struct {
	q Querier
}

// NewInventoryAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryAssignmentRepository(q Querier) *InventoryAssignmentRepo {
	return &InventoryAssignmentRepo{q: q}
}

const assignmentSelect = `
	SELECT a.id, a.item_id, a.employee_id, a.assigned_date, a.returned_date, a.notes, a.created_at, a.created_by,
		i.name, e.first_name || ' ' || e.last_name
	FROM inventory_assignments a
	JOIN inventory_items i ON i.id = a.item_id
	JOIN employees e ON e.id = a.employee_id`

func scanAssignment(row pgx.Row) (*entity.InventoryAssignment, error) {
	var a entity.InventoryAssignment
	err := row.Scan(
		&a.ID, &a.ItemID, &a.EmployeeID, &a.AssignedDate, &a.ReturnedDate, &a.Notes, &a.CreatedAt, &a.CreatedBy,
		&a.ItemName, &a.EmployeeName,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserta la asignación. La violación del índice parcial se traduce a ErrItemAlreadyAssigned.
func (r *InventoryAssignmentRepo) Create(ctx context.Context, a *entity.InventoryAssignment) error {
	query := `
		INSERT INTO inventory_assignments (id, item_id, employee_id, assigned_date, returned_date, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.ItemID, a.EmployeeID, a.AssignedDate, a.ReturnedDate, a.Notes, a.CreatedAt, a.CreatedBy,
	)
	if err == nil {
		return nil
	}
	switch {
	case isUniqueViolation(err) && constraintName(err) == "ux_inventory_assignments_open_item":
		return domain.ErrItemAlreadyAssigned
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err) && strings.Contains(constraintName(err), "employee"):
		return domain.ErrEmployeeNotFound
	case isForeignKeyViolation(err):
		return domain.ErrItemNotFound
	}
	return fmt.Errorf("insert inventory assignment: %w", err)
}

func (r *InventoryAssignmentRepo) one(ctx context.Context, query string, arg any) (*entity.InventoryAssignment, error) {
	a, err := scanAssignment(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory assignment: %w", err)
	}
	return a, nil
}

// GetByID (nil, nil) si no existe.
func (r *InventoryAssignmentRepo) GetByID(ctx context.Context, id string) (*entity.InventoryAssignment, error) {
	return r.one(ctx, assignmentSelect+` WHERE a.id = $1`, id)
}

// GetForUpdate bloquea solo la fila de la asignación.
func (r *InventoryAssignmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryAssignment, error) {
	return r.one(ctx, assignmentSelect+` WHERE a.id = $1 FOR UPDATE OF a`, id)
}

func (r *InventoryAssignmentRepo) GetOpenByItem(ctx context.Context, itemID string) (*entity.InventoryAssignment, error) {
	return r.one(ctx, assignmentSelect+` WHERE a.item_id = $1 AND a.returned_date IS NULL`, itemID)
}

// MarkReturned solo cierra filas abiertas. Si no afecta ninguna distingue inexistente de ya devuelta.
func (r *InventoryAssignmentRepo) MarkReturned(ctx context.Context, id string, at time.Time) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE inventory_assignments SET returned_date = $2 WHERE id = $1 AND returned_date IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("mark assignment returned: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM inventory_assignments WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check assignment: %w", err)
	}
	if !exists {
		return domain.ErrAssignmentNotFound
	}
	return domain.ErrAlreadyReturned
}

func (r *InventoryAssignmentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.InventoryAssignment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory assignments: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory assignment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// ListAll historial completo, más reciente primero.
func (r *InventoryAssignmentRepo) ListAll(ctx context.Context) ([]*entity.InventoryAssignment, error) {
	return r.list(ctx, assignmentSelect+` ORDER BY a.assigned_date DESC, a.id DESC`)
}

// ListOpen asignaciones abiertas, más antigua primero.
func (r *InventoryAssignmentRepo) ListOpen(ctx context.Context, filter entity.AssignmentFilter) ([]*entity.InventoryAssignment, error) {
	return r.list(ctx, assignmentSelect+`
		WHERE a.returned_date IS NULL
		  AND ($1 = '' OR a.employee_id::text = $1)
		  AND ($2 = '' OR a.item_id::text = $2)
		ORDER BY a.assigned_date ASC, a.id ASC`, filter.EmployeeID, filter.ItemID)
}

func (r *InventoryAssignmentRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.InventoryAssignment, error) {
	return r.list(ctx, assignmentSelect+` WHERE a.item_id = $1 ORDER BY a.assigned_date DESC, a.id DESC`, itemID)
}

func (r *InventoryAssignmentRepo) CountByItem(ctx context.Context, itemID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_assignments WHERE item_id = $1`, itemID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count inventory assignments: %w", err)
	}
	return n, nil
}
