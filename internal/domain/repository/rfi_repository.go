package repository

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

type RFIRepository interface {
	Create(ctx context.Context, r *entity.RFI) error
	GetByID(ctx context.Context, id string) (*entity.RFI, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.RFI, error)
	Update(ctx context.Context, r *entity.RFI) error
	Delete(ctx context.Context, id string) error
}
