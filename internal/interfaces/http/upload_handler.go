package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/application/usecase"
	"github.com/jhoicas/Obras-api/internal/domain"
)

// UploadHandler fotos de campo subidas como data URL.
type UploadHandler struct {
	uc *usecase.UploadUseCase
}

func NewUploadHandler(uc *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// UploadPhoto godoc
// @Summary      Subir foto
// @Description  Recibe data:image/...;base64,... y devuelve la llave y un enlace temporal.
// @Tags         uploads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UploadPhotoRequest  true  "data_url"
// @Success      201   {object}  dto.UploadPhotoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/uploads/photos [post]
func (h *UploadHandler) UploadPhoto(c *fiber.Ctx) error {
	var in dto.UploadPhotoRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UploadPhoto(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PhotoURL godoc
// @Summary      Enlace temporal de una foto
// @Tags         uploads
// @Security     Bearer
// @Produce      json
// @Param        key  query  string  true  "llave devuelta al subir"
// @Success      200  {object}  dto.UploadPhotoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/uploads/url [get]
func (h *UploadHandler) PhotoURL(c *fiber.Ctx) error {
	key := c.Query("key")
	link, err := h.uc.PhotoURL(c.UserContext(), key)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.UploadPhotoResponse{Key: key, URL: link})
}

// FileServer sirve los objetos del blob store en memoria. Solo se monta con BLOB_DRIVER=memory;
// con S3 los enlaces firmados apuntan directamente al bucket.
func FileServer(store ports.BlobStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := url.PathUnescape(strings.TrimPrefix(c.Params("*"), "/"))
		if err != nil || key == "" || strings.Contains(key, "..") {
			return respondError(c, domain.Invalid("llave de archivo inválida"))
		}
		rc, info, err := store.Get(c.UserContext(), key)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, info.ContentType)
		return c.SendStream(rc, int(info.Size))
	}
}
