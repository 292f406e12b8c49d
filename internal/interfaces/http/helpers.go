package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/usecase"
	"github.com/jhoicas/Obras-api/internal/domain"
)

const dateLayout = "2006-01-02"

var success = dto.SuccessResponse{Success: true}

// queryDate fecha opcional en formato YYYY-MM-DD.
func queryDate(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, domain.Invalid("%s debe tener formato YYYY-MM-DD", key)
	}
	return &t, nil
}

func queryInt(c *fiber.Ctx, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return n
}

// sendFile responde un archivo generado como adjunto.
func sendFile(c *fiber.Ctx, f *usecase.File) error {
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+usecase.SafeFileName(f.Name)+`"`)
	return c.Send(f.Data)
}
