package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/inventory"
	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// ActiveAssignmentLister lo que el empleado tiene en su poder (lo implementa el ledger).
type ActiveAssignmentLister interface {
	ListActiveByEmployee(ctx context.Context, employeeID string) ([]*entity.InventoryAssignment, error)
}

// EmployeeUseCase CRUD de empleados.
type EmployeeUseCase struct {
	repo        repository.EmployeeRepository
	assignments ActiveAssignmentLister
	notifier    ports.Notifier
}

func NewEmployeeUseCase(repo repository.EmployeeRepository, assignments ActiveAssignmentLister, notifier ports.Notifier) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, assignments: assignments, notifier: orNop(notifier)}
}

// Create da de alta al empleado y avisa a quien lo registró.
func (uc *EmployeeUseCase) Create(ctx context.Context, userID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.EmployeeStatusActive
	}
	if !entity.IsValidEmployeeStatus(status) {
		return nil, domain.Invalid("estado de empleado desconocido %q", status)
	}
	now := time.Now().UTC()
	e := &entity.Employee{
		ID:             uuid.New().String(),
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:          in.Phone,
		Position:       in.Position,
		Department:     in.Department,
		EmployeeNumber: strings.TrimSpace(in.EmployeeNumber),
		Status:         status,
		HireDate:       in.HireDate,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      userID,
	}
	if e.FirstName == "" || e.LastName == "" {
		return nil, domain.Invalid("nombre y apellido son obligatorios")
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, &entity.Notification{
		UserID:      userID,
		Type:        entity.NotificationEmployeeAdded,
		Title:       "Empleado registrado",
		Message:     fmt.Sprintf("%s fue agregado al personal", e.FullName()),
		RelatedID:   e.ID,
		RelatedType: "employee",
	})
	out := toEmployeeResponse(e)
	return &out, nil
}

func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toEmployeeResponse(e)
	return &out, nil
}

func (uc *EmployeeUseCase) List(ctx context.Context, filter entity.EmployeeFilter) ([]dto.EmployeeResponse, error) {
	if filter.Status != "" && !entity.IsValidEmployeeStatus(filter.Status) {
		return nil, domain.Invalid("estado de empleado desconocido %q", filter.Status)
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapList(list, toEmployeeResponse), nil
}

// Update actualización parcial.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		e.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		e.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		e.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Phone != nil {
		e.Phone = *in.Phone
	}
	if in.Position != nil {
		e.Position = *in.Position
	}
	if in.Department != nil {
		e.Department = *in.Department
	}
	if in.EmployeeNumber != nil {
		e.EmployeeNumber = strings.TrimSpace(*in.EmployeeNumber)
	}
	if in.Status != nil {
		if !entity.IsValidEmployeeStatus(*in.Status) {
			return nil, domain.Invalid("estado de empleado desconocido %q", *in.Status)
		}
		e.Status = *in.Status
	}
	if in.HireDate != nil {
		e.HireDate = in.HireDate
	}
	e.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	out := toEmployeeResponse(e)
	return &out, nil
}

// Delete falla con ErrEmployeeInUse si tiene asignaciones registradas.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// ActiveAssignments asignaciones abiertas del empleado, la más antigua primero.
func (uc *EmployeeUseCase) ActiveAssignments(ctx context.Context, id string) ([]dto.AssignmentResponse, error) {
	if _, err := uc.get(ctx, id); err != nil {
		return nil, err
	}
	list, err := uc.assignments.ListActiveByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return inventory.ToAssignmentResponses(list), nil
}

func (uc *EmployeeUseCase) get(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return e, nil
}
