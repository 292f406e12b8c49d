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

// RFIUseCase solicitudes de información por obra.
type RFIUseCase struct {
	repo     repository.RFIRepository
	projects repository.ProjectRepository
	notifier ports.Notifier
}

func NewRFIUseCase(repo repository.RFIRepository, projects repository.ProjectRepository, notifier ports.Notifier) *RFIUseCase {
	return &RFIUseCase{repo: repo, projects: projects, notifier: orNop(notifier)}
}

// Create numera la RFI (RFI-001, RFI-002...) cuando no llega número y avisa al director de obra.
func (uc *RFIUseCase) Create(ctx context.Context, userID string, in dto.CreateRFIRequest) (*dto.RFIResponse, error) {
	project, err := loadProject(ctx, uc.projects, in.ProjectID)
	if err != nil {
		return nil, err
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.IsValidPriority(priority) {
		return nil, domain.Invalid("prioridad desconocida %q", priority)
	}
	number := strings.TrimSpace(in.RFINumber)
	if number == "" {
		existing, err := uc.repo.ListByProject(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		number = fmt.Sprintf("RFI-%03d", len(existing)+1)
	}
	now := time.Now().UTC()
	r := &entity.RFI{
		ID:        uuid.New().String(),
		ProjectID: project.ID,
		RFINumber: number,
		Subject:   strings.TrimSpace(in.Subject),
		Question:  strings.TrimSpace(in.Question),
		Status:    entity.RFIStatusOpen,
		Priority:  priority,
		DueDate:   in.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: userID,
	}
	if r.Subject == "" || r.Question == "" {
		return nil, domain.Invalid("subject y question son obligatorios")
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
		Type:        entity.NotificationRFICreated,
		Title:       "Nueva RFI " + r.RFINumber,
		Message:     fmt.Sprintf("%s: %s", project.Name, r.Subject),
		RelatedID:   r.ID,
		RelatedType: "rfi",
	})
	out := toRFIResponse(r)
	return &out, nil
}

func (uc *RFIUseCase) GetByID(ctx context.Context, id string) (*dto.RFIResponse, error) {
	r, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toRFIResponse(r)
	return &out, nil
}

func (uc *RFIUseCase) ListByProject(ctx context.Context, projectID string) ([]dto.RFIResponse, error) {
	if _, err := loadProject(ctx, uc.projects, projectID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return mapList(list, toRFIResponse), nil
}

// Update registrar una respuesta pasa la RFI a answered si estaba abierta.
func (uc *RFIUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateRFIRequest) (*dto.RFIResponse, error) {
	r, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if in.Subject != nil {
		r.Subject = strings.TrimSpace(*in.Subject)
	}
	if in.Question != nil {
		r.Question = strings.TrimSpace(*in.Question)
	}
	if in.Priority != nil {
		if !entity.IsValidPriority(*in.Priority) {
			return nil, domain.Invalid("prioridad desconocida %q", *in.Priority)
		}
		r.Priority = *in.Priority
	}
	if in.DueDate != nil {
		r.DueDate = in.DueDate
	}
	if in.Answer != nil {
		r.Answer = strings.TrimSpace(*in.Answer)
		if r.Answer != "" {
			r.AnsweredAt = &now
			r.AnsweredBy = &userID
			if r.Status == entity.RFIStatusOpen {
				r.Status = entity.RFIStatusAnswered
			}
		}
	}
	if in.Status != nil {
		if !entity.IsValidRFIStatus(*in.Status) {
			return nil, domain.Invalid("estado de RFI desconocido %q", *in.Status)
		}
		if *in.Status == entity.RFIStatusAnswered && r.Answer == "" {
			return nil, domain.Invalid("una RFI sin respuesta no puede quedar como answered")
		}
		r.Status = *in.Status
	}
	if r.Subject == "" || r.Question == "" {
		return nil, domain.Invalid("subject y question son obligatorios")
	}
	r.UpdatedAt = now
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	out := toRFIResponse(r)
	return &out, nil
}

func (uc *RFIUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *RFIUseCase) get(ctx context.Context, id string) (*entity.RFI, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrRFINotFound
	}
	return r, nil
}
