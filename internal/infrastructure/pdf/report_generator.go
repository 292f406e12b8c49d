// Package pdf genera los documentos de obra en PDF: bitácora diaria, protocolo de
// inspección y listado de defectos.
//
// Layout común de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del documento │  Obra + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: cliente / ubicación / responsable                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUERPO: secciones o tabla según el documento                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: referencia + QR                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

var _ ports.PDFRenderer = (*ReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator implementa ports.PDFRenderer usando Maroto v2.
type ReportGenerator struct {
	author string
}

// NewReportGenerator author aparece en los metadatos del PDF.
func NewReportGenerator(author string) *ReportGenerator {
	return &ReportGenerator{author: author}
}

func (g *ReportGenerator) newDoc(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.author, true).
		Build()
	return maroto.New(cfg)
}

func render(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// DailyReport bitácora de un día de obra.
func (g *ReportGenerator) DailyReport(_ context.Context, project *entity.Project, r *entity.DailyReport) ([]byte, error) {
	m := g.newDoc("Bitácora diaria de obra")

	m.AddRows(headerRow("BITÁCORA DIARIA", project.Name, r.ReportDate))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(projectRow(project))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(keyValueRow("Clima", joinNonEmpty(" · ", r.Weather, r.Temperature)))
	m.AddRows(sectionRows("Trabajos realizados", r.WorkPerformed)...)
	m.AddRows(sectionRows("Personal en obra", bulletList(r.Attendees))...)
	m.AddRows(sectionRows("Equipos", r.Equipment)...)
	m.AddRows(sectionRows("Materiales", r.Materials)...)
	m.AddRows(sectionRows("Incidencias", r.Issues)...)
	m.AddRows(sectionRows("Observaciones", r.Notes)...)
	if len(r.Photos) > 0 {
		m.AddRows(keyValueRow("Fotos adjuntas", fmt.Sprintf("%d", len(r.Photos))))
	}

	m.AddRows(footerRows("daily-report", r.ID)...)
	return render(m)
}

// InspectionProtocol acta de inspección con sus hallazgos.
func (g *ReportGenerator) InspectionProtocol(_ context.Context, project *entity.Project, p *entity.InspectionProtocol) ([]byte, error) {
	m := g.newDoc("Protocolo de inspección")

	m.AddRows(headerRow("PROTOCOLO DE INSPECCIÓN", project.Name, p.InspectionDate))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(projectRow(project))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(keyValueRow("Título", p.Title))
	m.AddRows(keyValueRow("Tipo / Estado", p.InspectionType+" / "+p.Status))
	m.AddRows(keyValueRow("Inspector", nonEmpty(p.Inspector, "—")))
	m.AddRows(sectionRows("Participantes", bulletList(p.Participants))...)
	m.AddRows(sectionRows("Áreas inspeccionadas", bulletList(p.Areas))...)

	if len(p.Findings) > 0 {
		m.AddRows(tableHeaderRow([]headerCell{
			{"Área", 3, align.Left}, {"Hallazgo", 7, align.Left}, {"Severidad", 2, align.Center},
		}))
		for _, f := range p.Findings {
			m.AddRows(row.New(7).Add(
				col.New(3).Add(text.New(f.Area, props.Text{Size: 8, Top: 1, Left: 1})),
				col.New(7).Add(text.New(f.Description, props.Text{Size: 8, Top: 1, Left: 1})),
				col.New(2).Add(text.New(f.Severity, props.Text{Size: 8, Top: 1, Align: align.Center, Color: severityColor(f.Severity)})),
			))
		}
	}
	m.AddRows(sectionRows("Observaciones", p.Notes)...)

	m.AddRows(footerRows("inspection", p.ID)...)
	return render(m)
}

// DefectList listado de defectos filtrado; el filtro aplicado se imprime en la cabecera.
func (g *ReportGenerator) DefectList(_ context.Context, project *entity.Project, filter entity.DefectFilter, defects []*entity.DefectProtocol) ([]byte, error) {
	m := g.newDoc("Listado de defectos")

	m.AddRows(headerRow("LISTADO DE DEFECTOS", project.Name, time.Now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(projectRow(project))
	m.AddRows(keyValueRow("Filtro", joinNonEmpty(" · ",
		prefixed("Severidad: ", filter.Severity), prefixed("Estado: ", filter.Status))))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow([]headerCell{
		{"Defecto", 4, align.Left}, {"Ubicación", 3, align.Left}, {"Severidad", 2, align.Center},
		{"Estado", 2, align.Center}, {"Vence", 1, align.Right},
	}))
	for _, d := range defects {
		due := "—"
		if d.DueDate != nil {
			due = d.DueDate.Format("02/01")
		}
		m.AddRows(row.New(7).Add(
			col.New(4).Add(text.New(d.Title, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(d.Location, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(d.Severity, props.Text{Size: 8, Top: 1, Align: align.Center, Color: severityColor(d.Severity)})),
			col.New(2).Add(text.New(d.Status, props.Text{Size: 8, Top: 1, Align: align.Center})),
			col.New(1).Add(text.New(due, props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	m.AddRows(keyValueRow("Total", fmt.Sprintf("%d defectos", len(defects))))

	m.AddRows(footerRows("defects", project.ID)...)
	return render(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del documento (izq) y obra + fecha (der).
func headerRow(title, projectName string, date time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(projectName, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func projectRow(p *entity.Project) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Cliente: %s   |   Ubicación: %s   |   Estado: %s",
				nonEmpty(p.ClientName, "—"),
				nonEmpty(p.Location, "—"),
				p.Status,
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

func keyValueRow(key, value string) core.Row {
	return row.New(6).Add(
		col.New(3).Add(text.New(key+":", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
		col.New(9).Add(text.New(nonEmpty(value, "—"), props.Text{Size: 8, Top: 1})),
	)
}

// sectionRows título + texto libre; secciones vacías no se imprimen.
func sectionRows(title, body string) []core.Row {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil
	}
	lines := strings.Count(body, "\n") + 1 + len(body)/110
	return []core.Row{
		row.New(6).Add(col.New(12).Add(text.New(strings.ToUpper(title), props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}))),
		row.New(float64(4*lines + 2)).Add(col.New(12).Add(text.New(body, props.Text{Size: 8, Top: 1, Left: 2}))),
	}
}

type headerCell struct {
	label string
	size  int
	align align.Type
}

// tableHeaderRow: cabecera de tabla con texto blanco sobre el color primario.
func tableHeaderRow(cells []headerCell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// footerRows referencia del documento y QR con la misma referencia.
func footerRows(kind, id string) []core.Row {
	ref := fmt.Sprintf("obras:%s:%s", kind, id)
	return []core.Row{
		line.NewRow(3),
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
		row.New(30).Add(
			col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 90, Center: true})),
			col.New(9).Add(
				text.New("Referencia: "+ref, props.Text{Size: 7, Top: 4, Left: 3, Color: colorGray}),
				text.New("Generado: "+time.Now().UTC().Format("02/01/2006 15:04")+" UTC", props.Text{
					Size: 7, Top: 10, Left: 3, Color: colorGray,
				}),
			),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func severityColor(s string) *props.Color {
	switch s {
	case entity.DefectSeverityHigh, entity.DefectSeverityCritical:
		return colorAlert
	}
	return nil
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

func bulletList(items []string) string {
	var b strings.Builder
	for _, it := range items {
		if strings.TrimSpace(it) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• " + it)
	}
	return b.String()
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func prefixed(prefix, v string) string {
	if v == "" {
		return ""
	}
	return prefix + v
}
