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

// TaskUseCase tareas de obra. Asignar una tarea a un empleado emite task_assigned.
type TaskUseCase struct {
	repo      repository.ProjectTaskRepository
	projects  repository.ProjectRepository
	employees repository.EmployeeRepository
	notifier  ports.Notifier
}

func NewTaskUseCase(repo repository.ProjectTaskRepository, projects repository.ProjectRepository, employees repository.EmployeeRepository, notifier ports.Notifier) *TaskUseCase {
	return &TaskUseCase{repo: repo, projects: projects, employees: employees, notifier: orNop(notifier)}
}

func (uc *TaskUseCase) Create(ctx context.Context, userID, projectID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if _, err := loadProject(ctx, uc.projects, projectID); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.TaskStatusTodo
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.IsValidTaskStatus(status) {
		return nil, domain.Invalid("estado de tarea desconocido %q", status)
	}
	if !entity.IsValidPriority(priority) {
		return nil, domain.Invalid("prioridad desconocida %q", priority)
	}
	assignee := emptyToNil(in.AssignedTo)
	if err := checkEmployee(ctx, uc.employees, assignee); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	t := &entity.ProjectTask{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		AssignedTo:  assignee,
		Status:      status,
		Priority:    priority,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   userID,
	}
	if t.Title == "" {
		return nil, domain.Invalid("title es obligatorio")
	}
	if status == entity.TaskStatusCompleted {
		t.CompletedAt = &now
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	uc.notifyAssigned(ctx, t)
	out := toTaskResponse(t)
	return &out, nil
}

func (uc *TaskUseCase) GetByID(ctx context.Context, id string) (*dto.TaskResponse, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toTaskResponse(t)
	return &out, nil
}

// ListByProject ordenadas por vencimiento; las que no vencen al final.
func (uc *TaskUseCase) ListByProject(ctx context.Context, projectID string) ([]dto.TaskResponse, error) {
	if _, err := loadProject(ctx, uc.projects, projectID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return mapList(list, toTaskResponse), nil
}

// Update actualización parcial. completed_at se fija al pasar a completed y se limpia al salir.
func (uc *TaskUseCase) Update(ctx context.Context, id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	prevAssignee := t.AssignedTo
	now := time.Now().UTC()
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, domain.Invalid("title no puede quedar vacío")
		}
		t.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.AssignedTo != nil {
		assignee := emptyToNil(in.AssignedTo)
		if err := checkEmployee(ctx, uc.employees, assignee); err != nil {
			return nil, err
		}
		t.AssignedTo = assignee
	}
	if in.Status != nil {
		if !entity.IsValidTaskStatus(*in.Status) {
			return nil, domain.Invalid("estado de tarea desconocido %q", *in.Status)
		}
		switch {
		case *in.Status == entity.TaskStatusCompleted && t.Status != entity.TaskStatusCompleted:
			t.CompletedAt = &now
		case *in.Status != entity.TaskStatusCompleted:
			t.CompletedAt = nil
		}
		t.Status = *in.Status
	}
	if in.Priority != nil {
		if !entity.IsValidPriority(*in.Priority) {
			return nil, domain.Invalid("prioridad desconocida %q", *in.Priority)
		}
		t.Priority = *in.Priority
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	t.UpdatedAt = now
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	if t.AssignedTo != nil && (prevAssignee == nil || *prevAssignee != *t.AssignedTo) {
		uc.notifyAssigned(ctx, t)
	}
	out := toTaskResponse(t)
	return &out, nil
}

func (uc *TaskUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *TaskUseCase) notifyAssigned(ctx context.Context, t *entity.ProjectTask) {
	if t.AssignedTo == nil {
		return
	}
	uc.notifier.Notify(ctx, &entity.Notification{
		UserID:      *t.AssignedTo,
		Type:        entity.NotificationTaskAssigned,
		Title:       "Nueva tarea asignada",
		Message:     fmt.Sprintf("Se te asignó la tarea %s", t.Title),
		RelatedID:   t.ID,
		RelatedType: "project_task",
	})
}

func (uc *TaskUseCase) get(ctx context.Context, id string) (*entity.ProjectTask, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrTaskNotFound
	}
	return t, nil
}
