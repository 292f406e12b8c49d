package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// ProjectUseCase obras y su equipo.
type ProjectUseCase struct {
	repo      repository.ProjectRepository
	employees repository.EmployeeRepository
	notifier  ports.Notifier
}

func NewProjectUseCase(repo repository.ProjectRepository, employees repository.EmployeeRepository, notifier ports.Notifier) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, employees: employees, notifier: orNop(notifier)}
}

// Create da de alta la obra y emite project_created para el creador.
func (uc *ProjectUseCase) Create(ctx context.Context, userID string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.ProjectStatusPlanning
	}
	if !entity.IsValidProjectStatus(status) {
		return nil, domain.Invalid("estado de obra desconocido %q", status)
	}
	if err := validateProjectDates(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}
	if err := validateBudget(in.Budget); err != nil {
		return nil, err
	}
	manager := emptyToNil(in.ProjectManagerID)
	if err := checkEmployee(ctx, uc.employees, manager); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &entity.Project{
		ID:               uuid.New().String(),
		Name:             strings.TrimSpace(in.Name),
		Description:      in.Description,
		ClientName:       in.ClientName,
		Location:         in.Location,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		Status:           status,
		Budget:           in.Budget,
		ProjectManagerID: manager,
		CreatedAt:        now,
		UpdatedAt:        now,
		CreatedBy:        userID,
	}
	if p.Name == "" {
		return nil, domain.Invalid("name es obligatorio")
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, &entity.Notification{
		UserID:      userID,
		Type:        entity.NotificationProjectCreated,
		Title:       "Obra creada",
		Message:     fmt.Sprintf("Se creó la obra %s", p.Name),
		RelatedID:   p.ID,
		RelatedType: "project",
	})
	out := toProjectResponse(p)
	return &out, nil
}

func (uc *ProjectUseCase) GetByID(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	p, err := loadProject(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	out := toProjectResponse(p)
	return &out, nil
}

// List obras, opcionalmente por estado.
func (uc *ProjectUseCase) List(ctx context.Context, status string) ([]dto.ProjectResponse, error) {
	if status != "" && !entity.IsValidProjectStatus(status) {
		return nil, domain.Invalid("estado de obra desconocido %q", status)
	}
	list, err := uc.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	return mapList(list, toProjectResponse), nil
}

func (uc *ProjectUseCase) Update(ctx context.Context, id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	p, err := loadProject(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.Invalid("name no puede quedar vacío")
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ClientName != nil {
		p.ClientName = *in.ClientName
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.StartDate != nil {
		p.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		p.EndDate = in.EndDate
	}
	if err := validateProjectDates(p.StartDate, p.EndDate); err != nil {
		return nil, err
	}
	if in.Status != nil {
		if !entity.IsValidProjectStatus(*in.Status) {
			return nil, domain.Invalid("estado de obra desconocido %q", *in.Status)
		}
		p.Status = *in.Status
	}
	if in.Budget != nil {
		if err := validateBudget(in.Budget); err != nil {
			return nil, err
		}
		p.Budget = in.Budget
	}
	if in.ProjectManagerID != nil {
		manager := emptyToNil(in.ProjectManagerID)
		if err := checkEmployee(ctx, uc.employees, manager); err != nil {
			return nil, err
		}
		p.ProjectManagerID = manager
	}
	p.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toProjectResponse(p)
	return &out, nil
}

// Delete borra la obra con sus tareas, documentos y registros de campo.
func (uc *ProjectUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// AddTeamMember ErrDuplicate si el empleado ya está en el equipo.
func (uc *ProjectUseCase) AddTeamMember(ctx context.Context, projectID string, in dto.AddTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	if _, err := loadProject(ctx, uc.repo, projectID); err != nil {
		return nil, err
	}
	emp, err := uc.employees.GetByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	m := &entity.ProjectTeamMember{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		EmployeeID:   emp.ID,
		Role:         strings.TrimSpace(in.Role),
		AddedAt:      time.Now().UTC(),
		EmployeeName: emp.FullName(),
	}
	if err := uc.repo.AddTeamMember(ctx, m); err != nil {
		return nil, err
	}
	out := toTeamMemberResponse(m)
	return &out, nil
}

func (uc *ProjectUseCase) ListTeamMembers(ctx context.Context, projectID string) ([]dto.TeamMemberResponse, error) {
	if _, err := loadProject(ctx, uc.repo, projectID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListTeamMembers(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return mapList(list, toTeamMemberResponse), nil
}

func (uc *ProjectUseCase) RemoveTeamMember(ctx context.Context, memberID string) error {
	return uc.repo.RemoveTeamMember(ctx, memberID)
}

func validateProjectDates(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return domain.Invalid("end_date no puede ser anterior a start_date")
	}
	return nil
}

func validateBudget(b *decimal.Decimal) error {
	if b != nil && b.IsNegative() {
		return domain.Invalid("budget no puede ser negativo")
	}
	return nil
}
