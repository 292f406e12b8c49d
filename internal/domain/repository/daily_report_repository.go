package repository

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

type DailyReportRepository interface {
	Create(ctx context.Context, r *entity.DailyReport) error
	GetByID(ctx context.Context, id string) (*entity.DailyReport, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.DailyReport, error)
	Update(ctx context.Context, r *entity.DailyReport) error
	Delete(ctx context.Context, id string) error
}
