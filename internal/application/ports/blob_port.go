package ports

import (
	"context"
	"io"
	"time"
)

// BlobInfo metadatos de un objeto almacenado.
type BlobInfo struct {
	Key         string
	Size        int64
	ContentType string
	UpdatedAt   time.Time
}

// BlobStore almacenamiento de binarios (documentos de obra, fotos).
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (BlobInfo, error)
	Get(ctx context.Context, key string) (io.ReadCloser, BlobInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignURL URL temporal de descarga.
	PresignURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Driver() string
}
