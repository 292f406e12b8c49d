package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/domain"
)

var photoTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif", "image/heic", "image/heif"}

// UploadUseCase fotos de obra recibidas como data URL (bitácoras, defectos, inspecciones).
type UploadUseCase struct {
	store   ports.BlobStore
	ttl     time.Duration
	maxSize int
	now     func() time.Time
}

func NewUploadUseCase(store ports.BlobStore, ttl time.Duration, maxSize int) *UploadUseCase {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &UploadUseCase{store: store, ttl: ttl, maxSize: maxSize, now: time.Now}
}

// UploadPhoto decodifica data:<mime>;base64,<datos>, valida que sea imagen por contenido y la guarda
// en uploads/<unix-ms>-<aleatorio>.<ext>.
func (uc *UploadUseCase) UploadPhoto(ctx context.Context, in dto.UploadPhotoRequest) (*dto.UploadPhotoResponse, error) {
	data, err := decodeDataURL(in.DataURL)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, domain.Invalid("imagen vacía")
	}
	if uc.maxSize > 0 && len(data) > uc.maxSize {
		return nil, domain.Invalid("la imagen supera el máximo de %d MB", uc.maxSize>>20)
	}
	mt := mimetype.Detect(data)
	if !allowedType(mt, photoTypes) {
		return nil, domain.Invalid("solo se aceptan imágenes, se recibió %s", mt.String())
	}

	key := fmt.Sprintf("uploads/%d-%s%s", uc.now().UnixMilli(), strings.ReplaceAll(uuid.New().String(), "-", "")[:12], mt.Extension())
	info, err := uc.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), baseMime(mt))
	if err != nil {
		return nil, fmt.Errorf("upload: guardar imagen: %w", err)
	}
	url, err := uc.store.PresignURL(ctx, key, uc.ttl)
	if err != nil {
		return nil, fmt.Errorf("upload: firmar enlace: %w", err)
	}
	return &dto.UploadPhotoResponse{Key: key, URL: url, ContentType: info.ContentType, Size: info.Size}, nil
}

// PhotoURL enlace de descarga de una foto ya subida.
func (uc *UploadUseCase) PhotoURL(ctx context.Context, key string) (string, error) {
	if !strings.HasPrefix(key, "uploads/") || strings.Contains(key, "..") {
		return "", domain.Invalid("llave de archivo inválida")
	}
	return uc.store.PresignURL(ctx, key, uc.ttl)
}

func decodeDataURL(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "data:") {
		return nil, domain.Invalid("se esperaba una data URL")
	}
	comma := strings.IndexByte(s, ',')
	if comma < 0 {
		return nil, domain.Invalid("data URL sin datos")
	}
	meta := s[len("data:"):comma]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, domain.Invalid("la data URL debe venir en base64")
	}
	data, err := base64.StdEncoding.DecodeString(s[comma+1:])
	if err != nil {
		return nil, domain.Invalid("base64 inválido")
	}
	return data, nil
}
