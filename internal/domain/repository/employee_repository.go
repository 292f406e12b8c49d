package repository

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// GetByID devuelve (nil, nil) si no existe.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	List(ctx context.Context, filter entity.EmployeeFilter) ([]*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	// Delete devuelve domain.ErrEmployeeInUse si hay asignaciones que lo referencian.
	Delete(ctx context.Context, id string) error
}
