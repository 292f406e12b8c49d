package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/usecase"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// SiteHandler seguimiento de obra: RFIs, mediciones, avances y planificación de capacidad.
type SiteHandler struct {
	rfis         *usecase.RFIUseCase
	measurements *usecase.MeasurementUseCase
	progress     *usecase.ProgressUseCase
	capacity     *usecase.CapacityUseCase
	export       *usecase.ExportUseCase
}

// SiteUseCases dependencias de SiteHandler.
type SiteUseCases struct {
	RFIs         *usecase.RFIUseCase
	Measurements *usecase.MeasurementUseCase
	Progress     *usecase.ProgressUseCase
	Capacity     *usecase.CapacityUseCase
	Export       *usecase.ExportUseCase
}

func NewSiteHandler(uc SiteUseCases) *SiteHandler {
	return &SiteHandler{
		rfis:         uc.RFIs,
		measurements: uc.Measurements,
		progress:     uc.Progress,
		capacity:     uc.Capacity,
		export:       uc.Export,
	}
}

// ── RFIs ──────────────────────────────────────────────────────────────────────

func (h *SiteHandler) ListRFIs(c *fiber.Ctx) error {
	out, err := h.rfis.ListByProject(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateRFI godoc
// @Summary      Crear RFI
// @Description  El número (RFI-001, RFI-002...) se asigna por obra.
// @Tags         rfis
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRFIRequest  true  "pregunta"
// @Success      201   {object}  dto.RFIResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rfis [post]
func (h *SiteHandler) CreateRFI(c *fiber.Ctx) error {
	var in dto.CreateRFIRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.rfis.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *SiteHandler) GetRFI(c *fiber.Ctx) error {
	out, err := h.rfis.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateRFI godoc
// @Summary      Actualizar o responder un RFI
// @Description  Al enviar answer el RFI pasa a answered y registra quién respondió.
// @Tags         rfis
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del RFI"
// @Param        body  body  dto.UpdateRFIRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.RFIResponse
// @Router       /api/rfis/{id} [put]
func (h *SiteHandler) UpdateRFI(c *fiber.Ctx) error {
	var in dto.UpdateRFIRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.rfis.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SiteHandler) DeleteRFI(c *fiber.Ctx) error {
	if err := h.rfis.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(success)
}

// ── Mediciones ────────────────────────────────────────────────────────────────

func (h *SiteHandler) ListMeasurements(c *fiber.Ctx) error {
	out, err := h.measurements.ListByProject(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateMeasurement godoc
// @Summary      Registrar medición de obra
// @Description  El total es cantidad por precio unitario.
// @Tags         measurements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMeasurementRequest  true  "partida medida"
// @Success      201   {object}  dto.MeasurementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/measurements [post]
func (h *SiteHandler) CreateMeasurement(c *fiber.Ctx) error {
	var in dto.CreateMeasurementRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.measurements.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *SiteHandler) UpdateMeasurement(c *fiber.Ctx) error {
	var in dto.UpdateMeasurementRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.measurements.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SiteHandler) DeleteMeasurement(c *fiber.Ctx) error {
	if err := h.measurements.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(success)
}

// ── Avances ───────────────────────────────────────────────────────────────────

func (h *SiteHandler) ListProgress(c *fiber.Ctx) error {
	out, err := h.progress.ListByProject(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateProgress godoc
// @Summary      Registrar informe de avance
// @Tags         progress
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProgressReportRequest  true  "porcentaje 0-100 y descripción"
// @Success      201   {object}  dto.ProgressReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/progress-reports [post]
func (h *SiteHandler) CreateProgress(c *fiber.Ctx) error {
	var in dto.CreateProgressReportRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.progress.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *SiteHandler) DeleteProgress(c *fiber.Ctx) error {
	if err := h.progress.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(success)
}

// ── Capacidad ─────────────────────────────────────────────────────────────────

func capacityFilter(c *fiber.Ctx) (entity.CapacityFilter, error) {
	f := entity.CapacityFilter{EmployeeID: c.Query("employee_id")}
	var err error
	if f.From, err = queryDate(c, "from"); err != nil {
		return f, err
	}
	if f.To, err = queryDate(c, "to"); err != nil {
		return f, err
	}
	return f, nil
}

// ListCapacity godoc
// @Summary      Listar planificación de capacidad
// @Description  Devuelve los planes que se solapan con la ventana [from, to].
// @Tags         capacity
// @Security     Bearer
// @Produce      json
// @Param        employee_id  query  string  false  "empleado"
// @Param        from         query  string  false  "YYYY-MM-DD"
// @Param        to           query  string  false  "YYYY-MM-DD"
// @Success      200  {array}   dto.CapacityPlanResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/capacity [get]
func (h *SiteHandler) ListCapacity(c *fiber.Ctx) error {
	f, err := capacityFilter(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.capacity.List(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SiteHandler) CreateCapacity(c *fiber.Ctx) error {
	var in dto.CreateCapacityPlanRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.capacity.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *SiteHandler) UpdateCapacity(c *fiber.Ctx) error {
	var in dto.UpdateCapacityPlanRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.capacity.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SiteHandler) DeleteCapacity(c *fiber.Ctx) error {
	if err := h.capacity.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(success)
}

// ExportCapacity godoc
// @Summary      Exportar planificación a XLSX
// @Tags         capacity
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        employee_id  query  string  false  "empleado"
// @Param        from         query  string  false  "YYYY-MM-DD"
// @Param        to           query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Router       /api/capacity/export [get]
func (h *SiteHandler) ExportCapacity(c *fiber.Ctx) error {
	f, err := capacityFilter(c)
	if err != nil {
		return respondError(c, err)
	}
	file, err := h.export.CapacityXLSX(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}
