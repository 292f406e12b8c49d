package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// File documento generado listo para descargar.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// AssignmentHistory lectura del ledger completo (lo implementa el ledger).
type AssignmentHistory interface {
	ListAll(ctx context.Context) ([]*entity.InventoryAssignment, error)
}

// ExportRepos repositorios de lectura que usan las exportaciones.
type ExportRepos struct {
	Projects     repository.ProjectRepository
	DailyReports repository.DailyReportRepository
	Inspections  repository.InspectionProtocolRepository
	Defects      repository.DefectProtocolRepository
	Employees    repository.EmployeeRepository
	Capacity     repository.CapacityPlanRepository
}

// ExportUseCase arma PDFs y libros XLSX a partir de registros ya guardados.
type ExportUseCase struct {
	repos       ExportRepos
	assignments AssignmentHistory
	pdf         ports.PDFRenderer
	xlsx        ports.SpreadsheetRenderer
}

func NewExportUseCase(repos ExportRepos, assignments AssignmentHistory, pdf ports.PDFRenderer, xlsx ports.SpreadsheetRenderer) *ExportUseCase {
	return &ExportUseCase{repos: repos, assignments: assignments, pdf: pdf, xlsx: xlsx}
}

func (uc *ExportUseCase) DailyReportPDF(ctx context.Context, id string) (*File, error) {
	r, err := uc.repos.DailyReports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrReportNotFound
	}
	project, err := loadProject(ctx, uc.repos.Projects, r.ProjectID)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdf.DailyReport(ctx, project, r)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("bitacora-%s-%s.pdf", project.Name, r.ReportDate.Format("2006-01-02"))
	return &File{Name: SafeFileName(name), ContentType: ContentTypePDF, Data: data}, nil
}

func (uc *ExportUseCase) InspectionPDF(ctx context.Context, id string) (*File, error) {
	p, err := uc.repos.Inspections.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrInspectionNotFound
	}
	project, err := loadProject(ctx, uc.repos.Projects, p.ProjectID)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdf.InspectionProtocol(ctx, project, p)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("inspeccion-%s-%s.pdf", p.Title, p.InspectionDate.Format("2006-01-02"))
	return &File{Name: SafeFileName(name), ContentType: ContentTypePDF, Data: data}, nil
}

// DefectsPDF exige obra; severidad y estado son opcionales.
func (uc *ExportUseCase) DefectsPDF(ctx context.Context, filter entity.DefectFilter) (*File, error) {
	project, err := loadProject(ctx, uc.repos.Projects, filter.ProjectID)
	if err != nil {
		return nil, err
	}
	if filter.Severity != "" && !entity.IsValidDefectSeverity(filter.Severity) {
		return nil, domain.Invalid("severidad desconocida %q", filter.Severity)
	}
	if filter.Status != "" && !entity.IsValidDefectStatus(filter.Status) {
		return nil, domain.Invalid("estado de defecto desconocido %q", filter.Status)
	}
	defects, err := uc.repos.Defects.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdf.DefectList(ctx, project, filter, defects)
	if err != nil {
		return nil, err
	}
	return &File{Name: SafeFileName("defectos-" + project.Name + ".pdf"), ContentType: ContentTypePDF, Data: data}, nil
}

// AssignmentsXLSX ledger completo, la asignación más reciente primero.
func (uc *ExportUseCase) AssignmentsXLSX(ctx context.Context) (*File, error) {
	rows, err := uc.assignments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	data, err := uc.xlsx.Assignments(ctx, rows)
	if err != nil {
		return nil, err
	}
	name := "asignaciones-" + time.Now().UTC().Format("2006-01-02") + ".xlsx"
	return &File{Name: name, ContentType: ContentTypeXLSX, Data: data}, nil
}

func (uc *ExportUseCase) CapacityXLSX(ctx context.Context, filter entity.CapacityFilter) (*File, error) {
	emp, err := uc.repos.Employees.GetByID(ctx, filter.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	plans, err := uc.repos.Capacity.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data, err := uc.xlsx.CapacityPlan(ctx, emp, plans)
	if err != nil {
		return nil, err
	}
	return &File{Name: SafeFileName("capacidad-" + emp.FullName() + ".xlsx"), ContentType: ContentTypeXLSX, Data: data}, nil
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SafeFileName quita tildes y deja solo caracteres ASCII seguros para Content-Disposition.
func SafeFileName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(t, name)
	if err != nil {
		ascii = name
	}
	ascii = unsafeFileChars.ReplaceAllString(ascii, "-")
	ascii = strings.Trim(ascii, "-.")
	if ascii == "" {
		return "archivo"
	}
	return strings.ToLower(ascii)
}
