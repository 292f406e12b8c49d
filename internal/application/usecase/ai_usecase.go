package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

const aiSystemPrompt = "Eres un asistente técnico de dirección de obra. Respondes en español, " +
	"de forma concreta y profesional, usando solo los datos proporcionados."

// AIRepos lecturas que alimentan los prompts.
type AIRepos struct {
	Projects     repository.ProjectRepository
	Tasks        repository.ProjectTaskRepository
	DailyReports repository.DailyReportRepository
	Inspections  repository.InspectionProtocolRepository
	Defects      repository.DefectProtocolRepository
	Progress     repository.ProgressReportRepository
}

// AIUseCase resúmenes e informes asistidos por LLM.
// Cada llamada al modelo queda acotada por timeout para no bloquear goroutines del servidor.
type AIUseCase struct {
	llm     ports.LLMService
	repos   AIRepos
	timeout time.Duration
}

// NewAIUseCase llm puede ser nil: todas las operaciones responden ErrUnavailable.
func NewAIUseCase(llm ports.LLMService, repos AIRepos, timeout time.Duration) *AIUseCase {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AIUseCase{llm: llm, repos: repos, timeout: timeout}
}

// Enabled indica si hay proveedor configurado.
func (uc *AIUseCase) Enabled() bool { return uc.llm != nil }

// DailyReportSummary resumen ejecutivo de una bitácora.
func (uc *AIUseCase) DailyReportSummary(ctx context.Context, reportID string) (*dto.AITextResponse, error) {
	if err := uc.ready(); err != nil {
		return nil, err
	}
	r, err := uc.repos.DailyReports.GetByID(ctx, reportID)
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

	var b strings.Builder
	fmt.Fprintf(&b, "Resume en un párrafo la bitácora del %s de la obra %q.\n", r.ReportDate.Format("02/01/2006"), project.Name)
	fmt.Fprintf(&b, "Clima: %s %s\n", r.Weather, r.Temperature)
	fmt.Fprintf(&b, "Trabajos realizados: %s\n", r.WorkPerformed)
	fmt.Fprintf(&b, "Personal: %s\n", strings.Join(r.Attendees, ", "))
	fmt.Fprintf(&b, "Equipos: %s\nMateriales: %s\n", r.Equipment, r.Materials)
	fmt.Fprintf(&b, "Incidencias: %s\nObservaciones: %s\n", r.Issues, r.Notes)
	b.WriteString("Destaca riesgos o incidencias que requieran seguimiento.")

	return uc.text(ctx, b.String(), 600)
}

// defectAnalysisPayload estimated_cost puede llegar como número o texto.
type defectAnalysisPayload struct {
	Severity        string   `json:"severity"`
	Category        string   `json:"category"`
	ProbableCause   string   `json:"probable_cause"`
	Recommendations []string `json:"recommendations"`
	EstimatedCost   any      `json:"estimated_cost"`
}

// AnalyzeDefect clasificación estructurada del defecto.
func (uc *AIUseCase) AnalyzeDefect(ctx context.Context, defectID string) (*dto.DefectAnalysisResponse, error) {
	if err := uc.ready(); err != nil {
		return nil, err
	}
	d, err := uc.repos.Defects.GetByID(ctx, defectID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrDefectNotFound
	}

	prompt := fmt.Sprintf(`Analiza el siguiente defecto de construcción.
Título: %s
Descripción: %s
Ubicación: %s
Severidad registrada: %s

Responde con un objeto JSON con las claves:
"severity" (low|medium|high|critical), "category" (estructural, acabados, instalaciones, impermeabilización u otra),
"probable_cause" (texto), "recommendations" (lista de textos), "estimated_cost" (texto con rango aproximado).`,
		d.Title, d.Description, d.Location, d.Severity)

	var payload defectAnalysisPayload
	if err := uc.jsonCompletion(ctx, prompt, 800, &payload); err != nil {
		return nil, err
	}
	severity := strings.ToLower(strings.TrimSpace(payload.Severity))
	if !entity.IsValidDefectSeverity(severity) {
		severity = d.Severity
	}
	out := &dto.DefectAnalysisResponse{
		Severity:        severity,
		Category:        payload.Category,
		ProbableCause:   payload.ProbableCause,
		Recommendations: strings0(payload.Recommendations),
	}
	if payload.EstimatedCost != nil {
		out.EstimatedCost = fmt.Sprint(payload.EstimatedCost)
	}
	return out, nil
}

// InspectionReport informe narrativo del protocolo de inspección.
func (uc *AIUseCase) InspectionReport(ctx context.Context, inspectionID string) (*dto.AITextResponse, error) {
	if err := uc.ready(); err != nil {
		return nil, err
	}
	p, err := uc.repos.Inspections.GetByID(ctx, inspectionID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrInspectionNotFound
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Redacta un informe de inspección (%s) titulado %q del %s.\n",
		p.InspectionType, p.Title, p.InspectionDate.Format("02/01/2006"))
	fmt.Fprintf(&b, "Inspector: %s. Participantes: %s.\n", p.Inspector, strings.Join(p.Participants, ", "))
	fmt.Fprintf(&b, "Áreas: %s.\nHallazgos:\n", strings.Join(p.Areas, ", "))
	for _, f := range p.Findings {
		fmt.Fprintf(&b, "- [%s] %s: %s\n", f.Severity, f.Area, f.Description)
	}
	if len(p.Findings) == 0 {
		b.WriteString("- Sin hallazgos.\n")
	}
	b.WriteString("Incluye conclusiones y acciones correctivas priorizadas.")

	return uc.text(ctx, b.String(), 1200)
}

// ProjectSummary estado general de la obra: avance, tareas y defectos abiertos.
func (uc *AIUseCase) ProjectSummary(ctx context.Context, projectID string) (*dto.AITextResponse, error) {
	if err := uc.ready(); err != nil {
		return nil, err
	}
	project, err := loadProject(ctx, uc.repos.Projects, projectID)
	if err != nil {
		return nil, err
	}
	tasks, err := uc.repos.Tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	defects, err := uc.repos.Defects.List(ctx, entity.DefectFilter{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	progress, err := uc.repos.Progress.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	pending := 0
	for _, t := range tasks {
		if t.Status != entity.TaskStatusCompleted {
			pending++
		}
	}
	openDefects := 0
	for _, d := range defects {
		if d.Status == entity.DefectStatusOpen || d.Status == entity.DefectStatusInProgress {
			openDefects++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Resume el estado de la obra %q (cliente %s, %s), estado %s.\n",
		project.Name, project.ClientName, project.Location, project.Status)
	if len(progress) > 0 {
		fmt.Fprintf(&b, "Último avance: %d%% al %s (%s).\n",
			progress[0].PercentageComplete, progress[0].ReportDate.Format("02/01/2006"), progress[0].Title)
	}
	fmt.Fprintf(&b, "Tareas: %d en total, %d pendientes.\n", len(tasks), pending)
	fmt.Fprintf(&b, "Defectos: %d registrados, %d abiertos.\n", len(defects), openDefects)
	for _, d := range defects {
		if d.Severity == entity.DefectSeverityCritical || d.Severity == entity.DefectSeverityHigh {
			fmt.Fprintf(&b, "- Defecto %s: %s (%s)\n", d.Severity, d.Title, d.Status)
		}
	}
	b.WriteString("Señala riesgos de plazo y próximos pasos.")

	return uc.text(ctx, b.String(), 800)
}

type taskPrioritiesPayload struct {
	Suggestions []dto.TaskPriorityResponse `json:"suggestions"`
}

// SuggestTaskPriorities prioridades sugeridas para las tareas no completadas.
// Se descartan sugerencias de tareas desconocidas o con prioridad inválida.
func (uc *AIUseCase) SuggestTaskPriorities(ctx context.Context, projectID string) ([]dto.TaskPriorityResponse, error) {
	if err := uc.ready(); err != nil {
		return nil, err
	}
	project, err := loadProject(ctx, uc.repos.Projects, projectID)
	if err != nil {
		return nil, err
	}
	tasks, err := uc.repos.Tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(tasks))
	var b strings.Builder
	fmt.Fprintf(&b, "Obra %q. Sugiere la prioridad (low|medium|high|urgent) de cada tarea pendiente:\n", project.Name)
	for _, t := range tasks {
		if t.Status == entity.TaskStatusCompleted {
			continue
		}
		known[t.ID] = true
		due := "sin fecha"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		fmt.Fprintf(&b, "- id=%s | %s | estado %s | prioridad actual %s | vence %s\n", t.ID, t.Title, t.Status, t.Priority, due)
	}
	if len(known) == 0 {
		return []dto.TaskPriorityResponse{}, nil
	}
	b.WriteString(`Responde con {"suggestions":[{"task_id":"...","suggested_priority":"...","reason":"..."}]}.`)

	var payload taskPrioritiesPayload
	if err := uc.jsonCompletion(ctx, b.String(), 1200, &payload); err != nil {
		return nil, err
	}
	out := make([]dto.TaskPriorityResponse, 0, len(payload.Suggestions))
	for _, s := range payload.Suggestions {
		s.SuggestedPriority = strings.ToLower(strings.TrimSpace(s.SuggestedPriority))
		if !known[s.TaskID] || !entity.IsValidPriority(s.SuggestedPriority) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (uc *AIUseCase) ready() error {
	if uc.llm == nil {
		return fmt.Errorf("IA no configurada: %w", domain.ErrUnavailable)
	}
	return nil
}

func (uc *AIUseCase) complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	req.System = aiSystemPrompt
	out, err := uc.llm.Complete(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("IA: tiempo de espera agotado: %w", domain.ErrUnavailable)
		}
		return "", fmt.Errorf("IA: %w", err)
	}
	return out, nil
}

func (uc *AIUseCase) text(ctx context.Context, prompt string, maxTokens int) (*dto.AITextResponse, error) {
	out, err := uc.complete(ctx, ports.CompletionRequest{Prompt: prompt, MaxTokens: maxTokens})
	if err != nil {
		return nil, err
	}
	return &dto.AITextResponse{Text: strings.TrimSpace(out)}, nil
}

func (uc *AIUseCase) jsonCompletion(ctx context.Context, prompt string, maxTokens int, dst any) error {
	raw, err := uc.complete(ctx, ports.CompletionRequest{Prompt: prompt, MaxTokens: maxTokens, JSON: true})
	if err != nil {
		return err
	}
	clean := extractJSON(raw)
	if clean == "" {
		return fmt.Errorf("IA: no se encontró JSON válido en la respuesta del modelo")
	}
	if err := json.Unmarshal([]byte(clean), dst); err != nil {
		return fmt.Errorf("IA: parsear JSON: %w", err)
	}
	return nil
}

var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON extrae el primer objeto JSON de un texto libre.
// Primero quita bloques markdown (```json … ```); si no queda un objeto, busca { … } con regex.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}
