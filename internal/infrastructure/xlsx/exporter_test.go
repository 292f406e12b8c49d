package xlsx

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

func open(t *testing.T, b []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestAssignments_UnaFilaPorAsignacion(t *testing.T) {
	ret := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	rows := []*entity.InventoryAssignment{
		{ID: "a-2", ItemName: "Taladro", EmployeeName: "Bob", AssignedDate: time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)},
		{ID: "a-1", ItemName: "Taladro", EmployeeName: "Alice", AssignedDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), ReturnedDate: &ret},
	}

	out, err := NewExporter().Assignments(context.Background(), rows)
	require.NoError(t, err)

	f := open(t, out)
	got, err := f.GetRows("Asignaciones")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Ítem", got[0][1])
	assert.Equal(t, []string{"a-2", "Taladro", "Bob", "2026-02-11", "", "abierta"}, got[1][:6])
	assert.Equal(t, "2026-02-10", got[2][4])
	assert.Equal(t, "devuelta", got[2][5])
}

func TestCapacityPlan_FormulasDeTotales(t *testing.T) {
	emp := &entity.Employee{FirstName: "Ana", LastName: "Pérez"}
	plans := []*entity.CapacityPlan{
		{
			ProjectName: "Torre Norte",
			StartDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
			HoursPerDay: decimal.RequireFromString("8"),
		},
	}

	out, err := NewExporter().CapacityPlan(context.Background(), emp, plans)
	require.NoError(t, err)

	f := open(t, out)
	days, err := f.GetCellValue("Capacidad", "D2")
	require.NoError(t, err)
	assert.Equal(t, "5", days)

	formula, err := f.GetCellFormula("Capacidad", "F2")
	require.NoError(t, err)
	assert.Equal(t, "D2*E2", formula)

	total, err := f.GetCellFormula("Capacidad", "F3")
	require.NoError(t, err)
	assert.Equal(t, "SUM(F2:F2)", total)
}

func TestCapacityPlan_SinFilas(t *testing.T) {
	out, err := NewExporter().CapacityPlan(context.Background(), &entity.Employee{FirstName: "Ana"}, nil)
	require.NoError(t, err)

	f := open(t, out)
	v, err := f.GetCellValue("Capacidad", "F2")
	require.NoError(t, err)
	assert.Equal(t, "0", v)
}
