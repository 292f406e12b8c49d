package repository

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// ProjectTaskRepository define el puerto de persistencia para ProjectTask.
type ProjectTaskRepository interface {
	Create(ctx context.Context, t *entity.ProjectTask) error
	GetByID(ctx context.Context, id string) (*entity.ProjectTask, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.ProjectTask, error)
	Update(ctx context.Context, t *entity.ProjectTask) error
	Delete(ctx context.Context, id string) error
}
