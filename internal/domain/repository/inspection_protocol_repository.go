package repository

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

type InspectionProtocolRepository interface {
	Create(ctx context.Context, p *entity.InspectionProtocol) error
	GetByID(ctx context.Context, id string) (*entity.InspectionProtocol, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.InspectionProtocol, error)
	Update(ctx context.Context, p *entity.InspectionProtocol) error
	Delete(ctx context.Context, id string) error
}
