package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestCapacityCreate_TotalHorasYNombres(t *testing.T) {
	f := newProjectFixture(t)
	uc := NewCapacityUseCase(newFakeCapacity(), f.store.Employees(), f.projects)

	plan, err := uc.Create(f.ctx, "user-1", dto.CreateCapacityPlanRequest{
		EmployeeID:  f.employee.ID,
		ProjectID:   &f.projectID,
		StartDate:   day(2026, 3, 2),
		EndDate:     day(2026, 3, 6),
		HoursPerDay: decimal.NewFromInt(8),
	})
	require.NoError(t, err)
	assert.True(t, plan.TotalHours.Equal(decimal.NewFromInt(40)), plan.TotalHours.String())
	assert.Equal(t, "Ana Pérez", plan.EmployeeName)
	assert.Equal(t, "Torre Norte", plan.ProjectName)
}

func TestCapacityCreate_Validaciones(t *testing.T) {
	f := newProjectFixture(t)
	uc := NewCapacityUseCase(newFakeCapacity(), f.store.Employees(), f.projects)

	cases := map[string]dto.CreateCapacityPlanRequest{
		"fin antes de inicio": {EmployeeID: f.employee.ID, StartDate: day(2026, 3, 6), EndDate: day(2026, 3, 2), HoursPerDay: decimal.NewFromInt(8)},
		"cero horas":          {EmployeeID: f.employee.ID, StartDate: day(2026, 3, 2), EndDate: day(2026, 3, 2), HoursPerDay: decimal.Zero},
		"más de 24 horas":     {EmployeeID: f.employee.ID, StartDate: day(2026, 3, 2), EndDate: day(2026, 3, 2), HoursPerDay: decimal.NewFromInt(25)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(f.ctx, "u", in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := uc.Create(f.ctx, "u", dto.CreateCapacityPlanRequest{EmployeeID: "x", StartDate: day(2026, 3, 2), EndDate: day(2026, 3, 2), HoursPerDay: decimal.NewFromInt(4)})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestCapacityList_VentanaSolapada(t *testing.T) {
	f := newProjectFixture(t)
	uc := NewCapacityUseCase(newFakeCapacity(), f.store.Employees(), f.projects)
	for _, r := range [][2]time.Time{{day(2026, 1, 5), day(2026, 1, 9)}, {day(2026, 2, 2), day(2026, 2, 6)}} {
		_, err := uc.Create(f.ctx, "u", dto.CreateCapacityPlanRequest{EmployeeID: f.employee.ID, StartDate: r[0], EndDate: r[1], HoursPerDay: decimal.NewFromInt(6)})
		require.NoError(t, err)
	}

	from, to := day(2026, 1, 8), day(2026, 1, 31)
	list, err := uc.List(f.ctx, entity.CapacityFilter{EmployeeID: f.employee.ID, From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, day(2026, 1, 5), list[0].StartDate)

	_, err = uc.List(f.ctx, entity.CapacityFilter{From: &to, To: &from})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDefectLifecycle_ResolvedAtYAviso(t *testing.T) {
	f := newProjectFixture(t)
	uc := NewDefectUseCase(newFakeDefects(), f.projects, f.store.Employees(), f.notifier)

	d, err := uc.Create(f.ctx, "user-1", dto.CreateDefectRequest{
		ProjectID:  f.projectID,
		Title:      "Fisura en losa",
		AssignedTo: strPtr(f.employee.ID),
		Photos:     []string{" uploads/a.jpg ", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefectSeverityMedium, d.Severity)
	assert.Equal(t, entity.DefectStatusOpen, d.Status)
	assert.Equal(t, []string{"uploads/a.jpg"}, d.Photos)
	sent := f.notifier.ofType(entity.NotificationDefectAssigned)
	require.Len(t, sent, 1)
	assert.Equal(t, f.employee.ID, sent[0].UserID)

	resolved, err := uc.Update(f.ctx, d.ID, dto.UpdateDefectRequest{Status: strPtr(entity.DefectStatusResolved)})
	require.NoError(t, err)
	require.NotNil(t, resolved.ResolvedAt)
	first := *resolved.ResolvedAt

	verified, err := uc.Update(f.ctx, d.ID, dto.UpdateDefectRequest{Status: strPtr(entity.DefectStatusVerified)})
	require.NoError(t, err)
	require.NotNil(t, verified.ResolvedAt)
	assert.True(t, first.Equal(*verified.ResolvedAt))

	reopened, err := uc.Update(f.ctx, d.ID, dto.UpdateDefectRequest{Status: strPtr(entity.DefectStatusOpen)})
	require.NoError(t, err)
	assert.Nil(t, reopened.ResolvedAt)

	assert.Len(t, f.notifier.ofType(entity.NotificationDefectAssigned), 1)
}

func TestDefectList_FiltrosInvalidos(t *testing.T) {
	f := newProjectFixture(t)
	uc := NewDefectUseCase(newFakeDefects(), f.projects, f.store.Employees(), nil)

	_, err := uc.List(f.ctx, entity.DefectFilter{Severity: "grave"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.List(f.ctx, entity.DefectFilter{Status: "pendiente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), "u", dto.CreateDefectRequest{ProjectID: f.projectID, Title: "x", Severity: "grave"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
