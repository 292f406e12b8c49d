package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/inventory"
	"github.com/jhoicas/Obras-api/internal/application/usecase"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// InventoryHandler ítems de inventario y el ledger de asignaciones (protegido).
type InventoryHandler struct {
	items  *inventory.ItemUseCase
	ledger *inventory.AssignmentLedger
	export *usecase.ExportUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(items *inventory.ItemUseCase, ledger *inventory.AssignmentLedger, export *usecase.ExportUseCase) *InventoryHandler {
	return &InventoryHandler{items: items, ledger: ledger, export: export}
}

// List godoc
// @Summary      Listar ítems de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        status    query  string  false  "available | assigned | maintenance | retired"
// @Param        category  query  string  false  "tool | it_equipment | vehicle | other"
// @Param        q         query  string  false  "busca en nombre y número de serie"
// @Success      200  {array}   dto.InventoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.items.List(c.UserContext(), entity.InventoryItemFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Query:    c.Query("q"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener ítem
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {object}  dto.InventoryItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.items.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ítem
// @Description  El estado inicial es available; no se acepta assigned (solo el ledger asigna).
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryItemRequest  true  "datos del ítem"
// @Success      201   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.items.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar ítem
// @Description  Cambiar el estado a available con una asignación abierta, o a assigned sin ella, devuelve 409.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID del ítem"
// @Param        body  body  dto.UpdateInventoryItemRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryItemRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.items.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ítem (admin)
// @Description  409 si el ítem tiene una asignación abierta o historial; en ese caso se retira.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.items.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(success)
}

// History godoc
// @Summary      Historial de asignaciones de un ítem
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {array}   dto.AssignmentResponse
// @Router       /api/inventory/{id}/history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	list, err := h.ledger.History(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventory.ToAssignmentResponses(list))
}

// Assign godoc
// @Summary      Entregar un ítem a un empleado
// @Description  El ítem debe estar available. Si otro pedido gana la carrera la respuesta es 409.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssignItemRequest  true  "item_id, employee_id, notes"
// @Success      201   {object}  dto.AssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/assignments [post]
func (h *InventoryHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignItemRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	a, err := h.ledger.Assign(c.UserContext(), inventory.AssignInput{
		ItemID:     in.ItemID,
		EmployeeID: in.EmployeeID,
		Notes:      in.Notes,
		UserID:     GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inventory.ToAssignmentResponse(a))
}

// Return godoc
// @Summary      Registrar la devolución
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "ALREADY_RETURNED"
// @Router       /api/inventory/assignments/{id}/return [post]
func (h *InventoryHandler) Return(c *fiber.Ctx) error {
	if _, err := h.ledger.Return(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(success)
}

// ListAssignments godoc
// @Summary      Listar asignaciones
// @Description  Sin filtros devuelve el ledger completo, la más reciente primero.
// @Description  Con active=true solo las abiertas, la más antigua primero.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        active       query  bool    false  "solo abiertas"
// @Param        employee_id  query  string  false  "filtra abiertas por empleado"
// @Param        item_id      query  string  false  "filtra abiertas por ítem"
// @Success      200  {array}  dto.AssignmentResponse
// @Router       /api/inventory/assignments [get]
func (h *InventoryHandler) ListAssignments(c *fiber.Ctx) error {
	var (
		list []*entity.InventoryAssignment
		err  error
	)
	if c.QueryBool("active") || c.Query("employee_id") != "" || c.Query("item_id") != "" {
		list, err = h.ledger.ListActive(c.UserContext(), entity.AssignmentFilter{
			EmployeeID: c.Query("employee_id"),
			ItemID:     c.Query("item_id"),
		})
	} else {
		list, err = h.ledger.ListAll(c.UserContext())
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventory.ToAssignmentResponses(list))
}

// ExportAssignments godoc
// @Summary      Exportar el ledger a XLSX
// @Tags         inventory
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/inventory/assignments/export [get]
func (h *InventoryHandler) ExportAssignments(c *fiber.Ctx) error {
	f, err := h.export.AssignmentsXLSX(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, f)
}
