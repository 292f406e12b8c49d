package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

func testProject() *entity.Project {
	return &entity.Project{
		ID: "p-1", Name: "Edificio Central", ClientName: "Constructora Andina",
		Location: "Bogotá", Status: entity.ProjectStatusActive,
	}
}

func TestDailyReport_GeneraPDF(t *testing.T) {
	g := NewReportGenerator("obras-api")
	r := &entity.DailyReport{
		ID: "dr-1", ProjectID: "p-1", ReportDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Weather: "Soleado", Temperature: "22°C",
		WorkPerformed: "Vaciado de placa piso 3\nArmado de columnas eje B",
		Attendees:     []string{"Ana Pérez", "Luis Gómez"},
		Issues:        "Retraso en entrega de concreto",
	}

	out, err := g.DailyReport(context.Background(), testProject(), r)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestInspectionProtocol_GeneraPDF(t *testing.T) {
	g := NewReportGenerator("obras-api")
	p := &entity.InspectionProtocol{
		ID: "ip-1", Title: "Inspección estructura", InspectionType: entity.InspectionTypeRegular,
		Status: entity.InspectionStatusCompleted, InspectionDate: time.Now(),
		Areas: []string{"Piso 1", "Piso 2"},
		Findings: []entity.InspectionFinding{
			{Area: "Piso 1", Description: "Fisura en muro", Severity: entity.DefectSeverityHigh},
		},
	}

	out, err := g.InspectionProtocol(context.Background(), testProject(), p)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestDefectList_GeneraPDFSinDefectos(t *testing.T) {
	g := NewReportGenerator("obras-api")

	out, err := g.DefectList(context.Background(), testProject(),
		entity.DefectFilter{ProjectID: "p-1", Severity: entity.DefectSeverityCritical}, nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "—", nonEmpty("  ", "—"))
	assert.Equal(t, "• a\n• b", bulletList([]string{"a", "", "b"}))
	assert.Equal(t, "x · y", joinNonEmpty(" · ", "x", "", "y"))
	assert.Equal(t, "", prefixed("Estado: ", ""))
	assert.Equal(t, colorAlert, severityColor(entity.DefectSeverityCritical))
	assert.Nil(t, severityColor(entity.DefectSeverityLow))
}
