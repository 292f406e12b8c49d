package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var maxHoursPerDay = decimal.NewFromInt(24)

// CapacityUseCase planificación de horas por empleado y obra.
type CapacityUseCase struct {
	repo      repository.CapacityPlanRepository
	employees repository.EmployeeRepository
	projects  repository.ProjectRepository
}

func NewCapacityUseCase(repo repository.CapacityPlanRepository, employees repository.EmployeeRepository, projects repository.ProjectRepository) *CapacityUseCase {
	return &CapacityUseCase{repo: repo, employees: employees, projects: projects}
}

func (uc *CapacityUseCase) Create(ctx context.Context, userID string, in dto.CreateCapacityPlanRequest) (*dto.CapacityPlanResponse, error) {
	emp, err := uc.employees.GetByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	projectID := emptyToNil(in.ProjectID)
	projectName, err := uc.projectName(ctx, projectID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &entity.CapacityPlan{
		ID:           uuid.New().String(),
		EmployeeID:   emp.ID,
		ProjectID:    projectID,
		StartDate:    dayOr(&in.StartDate, now),
		EndDate:      dayOr(&in.EndDate, now),
		HoursPerDay:  in.HoursPerDay,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
		CreatedBy:    userID,
		EmployeeName: emp.FullName(),
		ProjectName:  projectName,
	}
	if err := validatePlan(p); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := toCapacityPlanResponse(p)
	return &out, nil
}

// List planes que se solapan con la ventana; sin empleado devuelve los de todos.
func (uc *CapacityUseCase) List(ctx context.Context, filter entity.CapacityFilter) ([]dto.CapacityPlanResponse, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, domain.Invalid("to no puede ser anterior a from")
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapList(list, toCapacityPlanResponse), nil
}

func (uc *CapacityUseCase) Update(ctx context.Context, id string, in dto.UpdateCapacityPlanRequest) (*dto.CapacityPlanResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrCapacityNotFound
	}
	if in.ProjectID != nil {
		p.ProjectID = emptyToNil(in.ProjectID)
		if p.ProjectName, err = uc.projectName(ctx, p.ProjectID); err != nil {
			return nil, err
		}
	}
	if in.StartDate != nil {
		p.StartDate = dayOr(in.StartDate, p.StartDate)
	}
	if in.EndDate != nil {
		p.EndDate = dayOr(in.EndDate, p.EndDate)
	}
	if in.HoursPerDay != nil {
		p.HoursPerDay = *in.HoursPerDay
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	if err := validatePlan(p); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toCapacityPlanResponse(p)
	return &out, nil
}

func (uc *CapacityUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *CapacityUseCase) projectName(ctx context.Context, id *string) (string, error) {
	if id == nil {
		return "", nil
	}
	p, err := loadProject(ctx, uc.projects, *id)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

func validatePlan(p *entity.CapacityPlan) error {
	if p.EndDate.Before(p.StartDate) {
		return domain.Invalid("end_date no puede ser anterior a start_date")
	}
	if !p.HoursPerDay.IsPositive() || p.HoursPerDay.GreaterThan(maxHoursPerDay) {
		return domain.Invalid("hours_per_day debe estar entre 0 y 24")
	}
	return nil
}

// totalHours horas por día por días calendario del rango.
func totalHours(p *entity.CapacityPlan) decimal.Decimal {
	return p.HoursPerDay.Mul(decimal.NewFromInt(int64(p.Days())))
}
