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

// DefectUseCase protocolos de defectos. Asignar un defecto emite defect_assigned.
type DefectUseCase struct {
	repo      repository.DefectProtocolRepository
	projects  repository.ProjectRepository
	employees repository.EmployeeRepository
	notifier  ports.Notifier
}

func NewDefectUseCase(repo repository.DefectProtocolRepository, projects repository.ProjectRepository, employees repository.EmployeeRepository, notifier ports.Notifier) *DefectUseCase {
	return &DefectUseCase{repo: repo, projects: projects, employees: employees, notifier: orNop(notifier)}
}

func (uc *DefectUseCase) Create(ctx context.Context, userID string, in dto.CreateDefectRequest) (*dto.DefectResponse, error) {
	if _, err := loadProject(ctx, uc.projects, in.ProjectID); err != nil {
		return nil, err
	}
	severity := in.Severity
	if severity == "" {
		severity = entity.DefectSeverityMedium
	}
	if !entity.IsValidDefectSeverity(severity) {
		return nil, domain.Invalid("severidad desconocida %q", severity)
	}
	assignee := emptyToNil(in.AssignedTo)
	if err := checkEmployee(ctx, uc.employees, assignee); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	d := &entity.DefectProtocol{
		ID:          uuid.New().String(),
		ProjectID:   in.ProjectID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Location:    in.Location,
		Severity:    severity,
		Status:      entity.DefectStatusOpen,
		AssignedTo:  assignee,
		DueDate:     in.DueDate,
		Photos:      cleanList(in.Photos),
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   userID,
	}
	if d.Title == "" {
		return nil, domain.Invalid("title es obligatorio")
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	uc.notifyAssigned(ctx, d)
	out := toDefectResponse(d)
	return &out, nil
}

func (uc *DefectUseCase) GetByID(ctx context.Context, id string) (*dto.DefectResponse, error) {
	d, err := uc.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toDefectResponse(d)
	return &out, nil
}

func (uc *DefectUseCase) Load(ctx context.Context, id string) (*entity.DefectProtocol, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrDefectNotFound
	}
	return d, nil
}

// List por obra, severidad y estado; los más graves primero.
func (uc *DefectUseCase) List(ctx context.Context, filter entity.DefectFilter) ([]dto.DefectResponse, error) {
	list, err := uc.LoadList(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapList(list, toDefectResponse), nil
}

// LoadList entidades filtradas, para el PDF.
func (uc *DefectUseCase) LoadList(ctx context.Context, filter entity.DefectFilter) ([]*entity.DefectProtocol, error) {
	if filter.Severity != "" && !entity.IsValidDefectSeverity(filter.Severity) {
		return nil, domain.Invalid("severidad desconocida %q", filter.Severity)
	}
	if filter.Status != "" && !entity.IsValidDefectStatus(filter.Status) {
		return nil, domain.Invalid("estado de defecto desconocido %q", filter.Status)
	}
	return uc.repo.List(ctx, filter)
}

// Update resolved fija resolved_at; volver a open o in_progress lo limpia.
func (uc *DefectUseCase) Update(ctx context.Context, id string, in dto.UpdateDefectRequest) (*dto.DefectResponse, error) {
	d, err := uc.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	prevAssignee := d.AssignedTo
	now := time.Now().UTC()
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, domain.Invalid("title no puede quedar vacío")
		}
		d.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.Location != nil {
		d.Location = *in.Location
	}
	if in.Severity != nil {
		if !entity.IsValidDefectSeverity(*in.Severity) {
			return nil, domain.Invalid("severidad desconocida %q", *in.Severity)
		}
		d.Severity = *in.Severity
	}
	if in.Status != nil {
		if !entity.IsValidDefectStatus(*in.Status) {
			return nil, domain.Invalid("estado de defecto desconocido %q", *in.Status)
		}
		switch *in.Status {
		case entity.DefectStatusOpen, entity.DefectStatusInProgress:
			d.ResolvedAt = nil
		default:
			if d.ResolvedAt == nil {
				d.ResolvedAt = &now
			}
		}
		d.Status = *in.Status
	}
	if in.AssignedTo != nil {
		assignee := emptyToNil(in.AssignedTo)
		if err := checkEmployee(ctx, uc.employees, assignee); err != nil {
			return nil, err
		}
		d.AssignedTo = assignee
	}
	if in.DueDate != nil {
		d.DueDate = in.DueDate
	}
	if in.Photos != nil {
		d.Photos = cleanList(in.Photos)
	}
	if in.Notes != nil {
		d.Notes = *in.Notes
	}
	d.UpdatedAt = now
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	if d.AssignedTo != nil && (prevAssignee == nil || *prevAssignee != *d.AssignedTo) {
		uc.notifyAssigned(ctx, d)
	}
	out := toDefectResponse(d)
	return &out, nil
}

func (uc *DefectUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *DefectUseCase) notifyAssigned(ctx context.Context, d *entity.DefectProtocol) {
	if d.AssignedTo == nil {
		return
	}
	uc.notifier.Notify(ctx, &entity.Notification{
		UserID:      *d.AssignedTo,
		Type:        entity.NotificationDefectAssigned,
		Title:       "Defecto asignado",
		Message:     fmt.Sprintf("[%s] %s", d.Severity, d.Title),
		RelatedID:   d.ID,
		RelatedType: "defect_protocol",
	})
}
