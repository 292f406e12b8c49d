package repository

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

type ProgressReportRepository interface {
	Create(ctx context.Context, r *entity.ProgressReport) error
	ListByProject(ctx context.Context, projectID string) ([]*entity.ProgressReport, error)
	Delete(ctx context.Context, id string) error
}
