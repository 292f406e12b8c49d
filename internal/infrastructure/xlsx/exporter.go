// Package xlsx exporta el ledger de asignaciones y la planificación de capacidad a libros Excel.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

var _ ports.SpreadsheetRenderer = (*Exporter)(nil)

const dateLayout = "2006-01-02"

// Exporter implementa ports.SpreadsheetRenderer con excelize.
type Exporter struct{}

func NewExporter() *Exporter { return &Exporter{} }

// Assignments una fila por asignación, en el orden recibido.
func (e *Exporter) Assignments(_ context.Context, rows []*entity.InventoryAssignment) ([]byte, error) {
	const sheet = "Asignaciones"
	headers := []any{"ID", "Ítem", "Empleado", "Asignado", "Devuelto", "Estado", "Notas"}

	return build(sheet, headers, []float64{38, 28, 28, 14, 14, 12, 40}, func(f *excelize.File) error {
		for i, a := range rows {
			returned, state := "", "abierta"
			if a.ReturnedDate != nil {
				returned, state = a.ReturnedDate.Format(dateLayout), "devuelta"
			}
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			vals := []any{a.ID, a.ItemName, a.EmployeeName, a.AssignedDate.Format(dateLayout), returned, state, a.Notes}
			if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
				return err
			}
		}
		return nil
	})
}

// CapacityPlan planificación de un empleado con total de horas por fila y total general.
func (e *Exporter) CapacityPlan(_ context.Context, emp *entity.Employee, plans []*entity.CapacityPlan) ([]byte, error) {
	const sheet = "Capacidad"
	headers := []any{"Obra", "Desde", "Hasta", "Días", "Horas/día", "Horas totales", "Notas"}

	return build(sheet, headers, []float64{30, 12, 12, 8, 10, 14, 40}, func(f *excelize.File) error {
		if err := f.SetDocProps(&excelize.DocProperties{
			Title:   "Planificación de capacidad",
			Subject: emp.FullName(),
			Creator: "obras-api",
		}); err != nil {
			return err
		}
		last := 1
		for i, p := range plans {
			r := i + 2
			days := p.Days()
			project := p.ProjectName
			if project == "" {
				project = "(sin obra)"
			}
			cell, _ := excelize.CoordinatesToCellName(1, r)
			vals := []any{
				project, p.StartDate.Format(dateLayout), p.EndDate.Format(dateLayout), days,
				p.HoursPerDay.InexactFloat64(), nil, p.Notes,
			}
			if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
				return err
			}
			if err := f.SetCellFormula(sheet, fmt.Sprintf("F%d", r), fmt.Sprintf("D%d*E%d", r, r)); err != nil {
				return err
			}
			last = r
		}
		totalRow := last + 1
		if err := f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), "Total"); err != nil {
			return err
		}
		if last == 1 {
			return f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), 0)
		}
		return f.SetCellFormula(sheet, fmt.Sprintf("F%d", totalRow), fmt.Sprintf("SUM(F2:F%d)", last))
	})
}

// build crea un libro de una hoja con cabecera fija y filtro, y delega las filas a fill.
func build(sheet string, headers []any, widths []float64, fill func(*excelize.File) error) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", style); err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	for i, w := range widths {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return nil, fmt.Errorf("xlsx: ancho columna: %w", err)
		}
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("xlsx: fijar cabecera: %w", err)
	}

	if err := fill(f); err != nil {
		return nil, fmt.Errorf("xlsx: filas: %w", err)
	}
	if err := f.AutoFilter(sheet, "A1:"+lastCol+"1", nil); err != nil {
		return nil, fmt.Errorf("xlsx: filtro: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
