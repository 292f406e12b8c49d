package repository

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

type CapacityPlanRepository interface {
	Create(ctx context.Context, p *entity.CapacityPlan) error
	GetByID(ctx context.Context, id string) (*entity.CapacityPlan, error)
	// List devuelve los planes que se solapan con la ventana From..To, por fecha de inicio.
	List(ctx context.Context, filter entity.CapacityFilter) ([]*entity.CapacityPlan, error)
	Update(ctx context.Context, p *entity.CapacityPlan) error
	Delete(ctx context.Context, id string) error
}
