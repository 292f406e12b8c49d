package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// ProgressUseCase informes de avance. Emite progress_report.
type ProgressUseCase struct {
	repo     repository.ProgressReportRepository
	projects repository.ProjectRepository
	notifier ports.Notifier
}

func NewProgressUseCase(repo repository.ProgressReportRepository, projects repository.ProjectRepository, notifier ports.Notifier) *ProgressUseCase {
	return &ProgressUseCase{repo: repo, projects: projects, notifier: orNop(notifier)}
}

func (uc *ProgressUseCase) Create(ctx context.Context, userID string, in dto.CreateProgressReportRequest) (*dto.ProgressReportResponse, error) {
	project, err := loadProject(ctx, uc.projects, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if in.PercentageComplete < 0 || in.PercentageComplete > 100 {
		return nil, domain.Invalid("percentage_complete debe estar entre 0 y 100")
	}
	now := time.Now().UTC()
	r := &entity.ProgressReport{
		ID:                 uuid.New().String(),
		ProjectID:          project.ID,
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		PercentageComplete: in.PercentageComplete,
		ReportDate:         dayOr(in.ReportDate, now),
		CreatedAt:          now,
		CreatedBy:          userID,
	}
	if r.Title == "" {
		return nil, domain.Invalid("title es obligatorio")
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	recipient := userID
	if project.ProjectManagerID != nil {
		recipient = *project.ProjectManagerID
	}
	uc.notifier.Notify(ctx, &entity.Notification{
		UserID:      recipient,
		Type:        entity.NotificationProgressReport,
		Title:       "Informe de avance",
		Message:     fmt.Sprintf("%s va en %d%%", project.Name, r.PercentageComplete),
		RelatedID:   r.ID,
		RelatedType: "progress_report",
	})
	out := toProgressReportResponse(r)
	return &out, nil
}

// ListByProject más reciente primero.
func (uc *ProgressUseCase) ListByProject(ctx context.Context, projectID string) ([]dto.ProgressReportResponse, error) {
	if _, err := loadProject(ctx, uc.projects, projectID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return mapList(list, toProgressReportResponse), nil
}

func (uc *ProgressUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
