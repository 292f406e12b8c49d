package repository

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

type DefectProtocolRepository interface {
	Create(ctx context.Context, d *entity.DefectProtocol) error
	GetByID(ctx context.Context, id string) (*entity.DefectProtocol, error)
	List(ctx context.Context, filter entity.DefectFilter) ([]*entity.DefectProtocol, error)
	Update(ctx context.Context, d *entity.DefectProtocol) error
	Delete(ctx context.Context, id string) error
}
