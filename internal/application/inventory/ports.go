package inventory

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error no se persiste nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		assignmentRepo repository.InventoryAssignmentRepository,
		employeeRepo repository.EmployeeRepository,
	) error) error
}
