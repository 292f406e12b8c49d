package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// InventoryAssignmentRepository define el puerto del historial de asignaciones (solo inserción
// y cierre; nunca borra).
type InventoryAssignmentRepository interface {
	// Create devuelve domain.ErrItemAlreadyAssigned si ya hay una asignación abierta para el ítem.
	Create(ctx context.Context, a *entity.InventoryAssignment) error
	GetByID(ctx context.Context, id string) (*entity.InventoryAssignment, error)
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryAssignment, error)
	GetOpenByItem(ctx context.Context, itemID string) (*entity.InventoryAssignment, error)
	// MarkReturned cierra la asignación; domain.ErrAlreadyReturned si ya estaba cerrada.
	MarkReturned(ctx context.Context, id string, at time.Time) error
	// ListAll ordena por assigned_date DESC, id DESC.
	ListAll(ctx context.Context) ([]*entity.InventoryAssignment, error)
	// ListOpen ordena por assigned_date ASC, id ASC.
	ListOpen(ctx context.Context, filter entity.AssignmentFilter) ([]*entity.InventoryAssignment, error)
	// ListByItem historial del ítem, más reciente primero.
	ListByItem(ctx context.Context, itemID string) ([]*entity.InventoryAssignment, error)
	CountByItem(ctx context.Context, itemID string) (int, error)
}
