package blob

import (
	"context"
	"fmt"

	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/pkg/config"
)

// Open elige el driver según BLOB_DRIVER. memoryBaseURL es la ruta de descarga usada por el
// driver en memoria.
func Open(ctx context.Context, cfg config.BlobConfig, memoryBaseURL string) (ports.BlobStore, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewMemoryStore(memoryBaseURL), nil
	case "s3":
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("blob: driver desconocido %q", cfg.Driver)
	}
}
