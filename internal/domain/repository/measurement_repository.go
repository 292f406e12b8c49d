package repository

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

type MeasurementRepository interface {
	Create(ctx context.Context, m *entity.Measurement) error
	GetByID(ctx context.Context, id string) (*entity.Measurement, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.Measurement, error)
	Update(ctx context.Context, m *entity.Measurement) error
	Delete(ctx context.Context, id string) error
}
