package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// MeasurementUseCase mediciones de obra ejecutada.
type MeasurementUseCase struct {
	repo     repository.MeasurementRepository
	projects repository.ProjectRepository
}

func NewMeasurementUseCase(repo repository.MeasurementRepository, projects repository.ProjectRepository) *MeasurementUseCase {
	return &MeasurementUseCase{repo: repo, projects: projects}
}

func (uc *MeasurementUseCase) Create(ctx context.Context, userID string, in dto.CreateMeasurementRequest) (*dto.MeasurementResponse, error) {
	if _, err := loadProject(ctx, uc.projects, in.ProjectID); err != nil {
		return nil, err
	}
	if err := validateQuantities(&in.Quantity, in.UnitPrice); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	m := &entity.Measurement{
		ID:           uuid.New().String(),
		ProjectID:    in.ProjectID,
		Description:  strings.TrimSpace(in.Description),
		Quantity:     in.Quantity,
		Unit:         strings.TrimSpace(in.Unit),
		UnitPrice:    in.UnitPrice,
		Location:     in.Location,
		MeasuredDate: dayOr(in.MeasuredDate, now),
		Notes:        in.Notes,
		CreatedAt:    now,
		CreatedBy:    userID,
	}
	if m.Description == "" || m.Unit == "" {
		return nil, domain.Invalid("description y unit son obligatorios")
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := toMeasurementResponse(m)
	return &out, nil
}

func (uc *MeasurementUseCase) ListByProject(ctx context.Context, projectID string) ([]dto.MeasurementResponse, error) {
	if _, err := loadProject(ctx, uc.projects, projectID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return mapList(list, toMeasurementResponse), nil
}

func (uc *MeasurementUseCase) Update(ctx context.Context, id string, in dto.UpdateMeasurementRequest) (*dto.MeasurementResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrMeasurementNotFound
	}
	if in.Description != nil {
		m.Description = strings.TrimSpace(*in.Description)
	}
	if in.Quantity != nil {
		m.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		m.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.UnitPrice != nil {
		m.UnitPrice = in.UnitPrice
	}
	if in.Location != nil {
		m.Location = *in.Location
	}
	if in.MeasuredDate != nil {
		m.MeasuredDate = dayOr(in.MeasuredDate, time.Now().UTC())
	}
	if in.Notes != nil {
		m.Notes = *in.Notes
	}
	if err := validateQuantities(&m.Quantity, m.UnitPrice); err != nil {
		return nil, err
	}
	if m.Description == "" || m.Unit == "" {
		return nil, domain.Invalid("description y unit son obligatorios")
	}
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	out := toMeasurementResponse(m)
	return &out, nil
}

func (uc *MeasurementUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func validateQuantities(qty, price *decimal.Decimal) error {
	if qty != nil && qty.IsNegative() {
		return domain.Invalid("quantity no puede ser negativa")
	}
	if price != nil && price.IsNegative() {
		return domain.Invalid("unit_price no puede ser negativo")
	}
	return nil
}
