package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Obras-api/internal/application/usecase"
)

// AIHandler resúmenes, informes y análisis generados por el LLM.
// Sin proveedor configurado todas las rutas devuelven 503 UNAVAILABLE.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// DailyReportSummary godoc
// @Summary      Resumen IA del parte diario
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del parte diario"
// @Success      200  {object}  dto.AITextResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/daily-reports/{id}/ai-summary [post]
func (h *AIHandler) DailyReportSummary(c *fiber.Ctx) error {
	out, err := h.uc.DailyReportSummary(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// InspectionReport godoc
// @Summary      Informe IA de la inspección
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la inspección"
// @Success      200  {object}  dto.AITextResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/inspections/{id}/ai-report [post]
func (h *AIHandler) InspectionReport(c *fiber.Ctx) error {
	out, err := h.uc.InspectionReport(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AnalyzeDefect godoc
// @Summary      Análisis IA de un defecto
// @Description  Severidad, categoría, causa probable, recomendaciones y costo estimado.
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del defecto"
// @Success      200  {object}  dto.DefectAnalysisResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/defects/{id}/ai-analysis [post]
func (h *AIHandler) AnalyzeDefect(c *fiber.Ctx) error {
	out, err := h.uc.AnalyzeDefect(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProjectSummary godoc
// @Summary      Resumen ejecutivo IA de la obra
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la obra"
// @Success      200  {object}  dto.AITextResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/ai/projects/{id}/summary [post]
func (h *AIHandler) ProjectSummary(c *fiber.Ctx) error {
	out, err := h.uc.ProjectSummary(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TaskPriorities godoc
// @Summary      Prioridades sugeridas para las tareas abiertas
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la obra"
// @Success      200  {array}   dto.TaskPriorityResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/ai/projects/{id}/task-priorities [post]
func (h *AIHandler) TaskPriorities(c *fiber.Ctx) error {
	out, err := h.uc.SuggestTaskPriorities(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
