package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/usecase"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// FieldHandler registros de campo: partes diarios, inspecciones y defectos, con su exportación PDF.
type FieldHandler struct {
	reports     *usecase.DailyReportUseCase
	inspections *usecase.InspectionUseCase
	defects     *usecase.DefectUseCase
	export      *usecase.ExportUseCase
}

// FieldUseCases dependencias de FieldHandler.
type FieldUseCases struct {
	DailyReports *usecase.DailyReportUseCase
	Inspections  *usecase.InspectionUseCase
	Defects      *usecase.DefectUseCase
	Export       *usecase.ExportUseCase
}

func NewFieldHandler(uc FieldUseCases) *FieldHandler {
	return &FieldHandler{
		reports:     uc.DailyReports,
		inspections: uc.Inspections,
		defects:     uc.Defects,
		export:      uc.Export,
	}
}

// ── Partes diarios ────────────────────────────────────────────────────────────

func (h *FieldHandler) ListDailyReports(c *fiber.Ctx) error {
	out, err := h.reports.ListByProject(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateDailyReport godoc
// @Summary      Crear parte diario
// @Tags         daily-reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDailyReportRequest  true  "fecha, clima, personal, trabajos, fotos"
// @Success      201   {object}  dto.DailyReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/daily-reports [post]
func (h *FieldHandler) CreateDailyReport(c *fiber.Ctx) error {
	var in dto.CreateDailyReportRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.reports.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *FieldHandler) GetDailyReport(c *fiber.Ctx) error {
	out, err := h.reports.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *FieldHandler) UpdateDailyReport(c *fiber.Ctx) error {
	var in dto.UpdateDailyReportRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.reports.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *FieldHandler) DeleteDailyReport(c *fiber.Ctx) error {
	if err := h.reports.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(success)
}

// DailyReportPDF godoc
// @Summary      Parte diario en PDF
// @Tags         daily-reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del parte diario"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/daily-reports/{id}/pdf [get]
func (h *FieldHandler) DailyReportPDF(c *fiber.Ctx) error {
	f, err := h.export.DailyReportPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, f)
}

// ── Inspecciones ──────────────────────────────────────────────────────────────

func (h *FieldHandler) ListInspections(c *fiber.Ctx) error {
	out, err := h.inspections.ListByProject(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateInspection godoc
// @Summary      Crear protocolo de inspección
// @Description  Tipo regular, special, final o acceptance; estado draft, completed o approved.
// @Tags         inspections
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInspectionRequest  true  "tipo, fecha, checklist"
// @Success      201   {object}  dto.InspectionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inspections [post]
func (h *FieldHandler) CreateInspection(c *fiber.Ctx) error {
	var in dto.CreateInspectionRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.inspections.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *FieldHandler) GetInspection(c *fiber.Ctx) error {
	out, err := h.inspections.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *FieldHandler) UpdateInspection(c *fiber.Ctx) error {
	var in dto.UpdateInspectionRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.inspections.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *FieldHandler) DeleteInspection(c *fiber.Ctx) error {
	if err := h.inspections.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(success)
}

func (h *FieldHandler) InspectionPDF(c *fiber.Ctx) error {
	f, err := h.export.InspectionPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, f)
}

// ── Defectos ──────────────────────────────────────────────────────────────────

func defectFilter(c *fiber.Ctx) entity.DefectFilter {
	return entity.DefectFilter{
		ProjectID: c.Query("project_id"),
		Severity:  c.Query("severity"),
		Status:    c.Query("status"),
	}
}

// ListDefects godoc
// @Summary      Listar defectos
// @Tags         defects
// @Security     Bearer
// @Produce      json
// @Param        project_id  query  string  false  "obra"
// @Param        severity    query  string  false  "low | medium | high | critical"
// @Param        status      query  string  false  "open | in_progress | resolved | verified | closed"
// @Success      200  {array}   dto.DefectResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/defects [get]
func (h *FieldHandler) ListDefects(c *fiber.Ctx) error {
	out, err := h.defects.List(c.UserContext(), defectFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *FieldHandler) CreateDefect(c *fiber.Ctx) error {
	var in dto.CreateDefectRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.defects.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *FieldHandler) GetDefect(c *fiber.Ctx) error {
	out, err := h.defects.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateDefect godoc
// @Summary      Actualizar defecto
// @Description  Al pasar a resolved se registra resolved_at; cambiar el responsable lo notifica.
// @Tags         defects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del defecto"
// @Param        body  body  dto.UpdateDefectRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.DefectResponse
// @Router       /api/defects/{id} [put]
func (h *FieldHandler) UpdateDefect(c *fiber.Ctx) error {
	var in dto.UpdateDefectRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.defects.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *FieldHandler) DeleteDefect(c *fiber.Ctx) error {
	if err := h.defects.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(success)
}

// ExportDefects godoc
// @Summary      Listado de defectos en PDF
// @Tags         defects
// @Security     Bearer
// @Produce      application/pdf
// @Param        project_id  query  string  false  "obra"
// @Param        severity    query  string  false  "severidad"
// @Param        status      query  string  false  "estado"
// @Success      200  {file}  binary
// @Router       /api/defects/export [get]
func (h *FieldHandler) ExportDefects(c *fiber.Ctx) error {
	f, err := h.export.DefectsPDF(c.UserContext(), defectFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, f)
}
