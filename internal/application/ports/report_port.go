package ports

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// PDFRenderer genera los documentos PDF de obra.
type PDFRenderer interface {
	DailyReport(ctx context.Context, project *entity.Project, report *entity.DailyReport) ([]byte, error)
	InspectionProtocol(ctx context.Context, project *entity.Project, protocol *entity.InspectionProtocol) ([]byte, error)
	DefectList(ctx context.Context, project *entity.Project, filter entity.DefectFilter, defects []*entity.DefectProtocol) ([]byte, error)
}

// SpreadsheetRenderer genera libros XLSX.
type SpreadsheetRenderer interface {
	Assignments(ctx context.Context, rows []*entity.InventoryAssignment) ([]byte, error)
	CapacityPlan(ctx context.Context, employee *entity.Employee, plans []*entity.CapacityPlan) ([]byte, error)
}
