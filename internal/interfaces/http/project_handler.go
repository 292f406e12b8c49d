package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/usecase"
	"github.com/jhoicas/Obras-api/internal/domain"
)

// ProjectHandler obras, equipo, tareas y documentos.
type ProjectHandler struct {
	projects  *usecase.ProjectUseCase
	tasks     *usecase.TaskUseCase
	documents *usecase.DocumentUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(projects *usecase.ProjectUseCase, tasks *usecase.TaskUseCase, documents *usecase.DocumentUseCase) *ProjectHandler {
	return &ProjectHandler{projects: projects, tasks: tasks, documents: documents}
}

// List godoc
// @Summary      Listar obras
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "planning | active | on_hold | completed | cancelled"
// @Success      200  {array}   dto.ProjectResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	out, err := h.projects.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	out, err := h.projects.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear obra
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProjectRequest  true  "datos de la obra"
// @Success      201   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.projects.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProjectRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.projects.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.projects.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(success)
}

// ── Equipo ────────────────────────────────────────────────────────────────────

func (h *ProjectHandler) ListTeam(c *fiber.Ctx) error {
	out, err := h.projects.ListTeamMembers(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddTeamMember godoc
// @Summary      Agregar empleado al equipo de la obra
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la obra"
// @Param        body  body  dto.AddTeamMemberRequest  true  "employee_id y rol"
// @Success      201   {object}  dto.TeamMemberResponse
// @Failure      409   {object}  dto.ErrorResponse  "ya es miembro"
// @Router       /api/projects/{id}/team [post]
func (h *ProjectHandler) AddTeamMember(c *fiber.Ctx) error {
	var in dto.AddTeamMemberRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.projects.AddTeamMember(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ProjectHandler) RemoveTeamMember(c *fiber.Ctx) error {
	if err := h.projects.RemoveTeamMember(c.UserContext(), c.Params("memberId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(success)
}

// ── Tareas ────────────────────────────────────────────────────────────────────

func (h *ProjectHandler) ListTasks(c *fiber.Ctx) error {
	out, err := h.tasks.ListByProject(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateTask godoc
// @Summary      Crear tarea en la obra
// @Description  Si tiene responsable se le notifica.
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la obra"
// @Param        body  body  dto.CreateTaskRequest  true  "datos de la tarea"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/tasks [post]
func (h *ProjectHandler) CreateTask(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.tasks.Create(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ProjectHandler) GetTask(c *fiber.Ctx) error {
	out, err := h.tasks.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ProjectHandler) UpdateTask(c *fiber.Ctx) error {
	var in dto.UpdateTaskRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.tasks.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ProjectHandler) DeleteTask(c *fiber.Ctx) error {
	if err := h.tasks.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(success)
}

// ── Documentos ────────────────────────────────────────────────────────────────

func (h *ProjectHandler) ListDocuments(c *fiber.Ctx) error {
	out, err := h.documents.ListByProject(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UploadDocument godoc
// @Summary      Subir documento a la obra
// @Description  multipart/form-data con el campo file. El tipo se valida por contenido, no por extensión.
// @Tags         documents
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path      string  true   "ID de la obra"
// @Param        file         formData  file    true   "archivo"
// @Param        description  formData  string  false  "descripción"
// @Param        category     formData  string  false  "plano, contrato, foto..."
// @Success      201  {object}  dto.DocumentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/documents [post]
func (h *ProjectHandler) UploadDocument(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return respondError(c, domain.Invalid("falta el archivo (campo file)"))
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, domain.Invalid("no se pudo leer el archivo"))
	}
	defer f.Close()

	out, err := h.documents.Upload(c.UserContext(), GetUserID(c), c.Params("id"), usecase.DocumentUpload{
		FileName:    fh.Filename,
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DownloadDocument godoc
// @Summary      Descargar documento
// @Description  Redirige a un enlace firmado de vigencia limitada.
// @Tags         documents
// @Security     Bearer
// @Param        id   path  string  true  "ID del documento"
// @Success      302
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/download [get]
func (h *ProjectHandler) DownloadDocument(c *fiber.Ctx) error {
	link, err := h.documents.DownloadURL(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Redirect(link, fiber.StatusFound)
}

func (h *ProjectHandler) DeleteDocument(c *fiber.Ctx) error {
	if err := h.documents.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(success)
}
