package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// DailyReportUseCase bitácoras diarias de obra.
type DailyReportUseCase struct {
	repo     repository.DailyReportRepository
	projects repository.ProjectRepository
}

func NewDailyReportUseCase(repo repository.DailyReportRepository, projects repository.ProjectRepository) *DailyReportUseCase {
	return &DailyReportUseCase{repo: repo, projects: projects}
}

func (uc *DailyReportUseCase) Create(ctx context.Context, userID string, in dto.CreateDailyReportRequest) (*dto.DailyReportResponse, error) {
	if _, err := loadProject(ctx, uc.projects, in.ProjectID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	r := &entity.DailyReport{
		ID:            uuid.New().String(),
		ProjectID:     in.ProjectID,
		ReportDate:    dayOr(in.ReportDate, now),
		Weather:       in.Weather,
		Temperature:   in.Temperature,
		WorkPerformed: strings.TrimSpace(in.WorkPerformed),
		Attendees:     cleanList(in.Attendees),
		Equipment:     in.Equipment,
		Materials:     in.Materials,
		Issues:        in.Issues,
		Photos:        cleanList(in.Photos),
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     userID,
	}
	if r.WorkPerformed == "" {
		return nil, domain.Invalid("work_performed es obligatorio")
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	out := toDailyReportResponse(r)
	return &out, nil
}

func (uc *DailyReportUseCase) GetByID(ctx context.Context, id string) (*dto.DailyReportResponse, error) {
	r, err := uc.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toDailyReportResponse(r)
	return &out, nil
}

// Load entidad completa, para exportaciones y resúmenes.
func (uc *DailyReportUseCase) Load(ctx context.Context, id string) (*entity.DailyReport, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrReportNotFound
	}
	return r, nil
}

// ListByProject más reciente primero.
func (uc *DailyReportUseCase) ListByProject(ctx context.Context, projectID string) ([]dto.DailyReportResponse, error) {
	if _, err := loadProject(ctx, uc.projects, projectID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return mapList(list, toDailyReportResponse), nil
}

// Update las listas llegan completas: una lista enviada reemplaza a la guardada.
func (uc *DailyReportUseCase) Update(ctx context.Context, id string, in dto.UpdateDailyReportRequest) (*dto.DailyReportResponse, error) {
	r, err := uc.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ReportDate != nil {
		r.ReportDate = dayOr(in.ReportDate, r.ReportDate)
	}
	if in.Weather != nil {
		r.Weather = *in.Weather
	}
	if in.Temperature != nil {
		r.Temperature = *in.Temperature
	}
	if in.WorkPerformed != nil {
		if strings.TrimSpace(*in.WorkPerformed) == "" {
			return nil, domain.Invalid("work_performed no puede quedar vacío")
		}
		r.WorkPerformed = strings.TrimSpace(*in.WorkPerformed)
	}
	if in.Attendees != nil {
		r.Attendees = cleanList(in.Attendees)
	}
	if in.Equipment != nil {
		r.Equipment = *in.Equipment
	}
	if in.Materials != nil {
		r.Materials = *in.Materials
	}
	if in.Issues != nil {
		r.Issues = *in.Issues
	}
	if in.Photos != nil {
		r.Photos = cleanList(in.Photos)
	}
	if in.Notes != nil {
		r.Notes = *in.Notes
	}
	r.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	out := toDailyReportResponse(r)
	return &out, nil
}

func (uc *DailyReportUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
