package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

// sniffLen bytes leídos para detectar el tipo real del archivo.
const sniffLen = 3072

// documentTypes tipos aceptados para documentos de obra.
var documentTypes = []string{
	"application/pdf",
	"image/jpeg", "image/png", "image/webp", "image/gif", "image/heic",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/msword", "application/vnd.ms-excel",
	"application/zip",
	"image/vnd.dwg", "image/vnd.dxf",
	"text/plain", "text/csv",
}

// DocumentUpload archivo recibido por el handler.
type DocumentUpload struct {
	FileName    string
	Description string
	Category    string
	Size        int64
	Body        io.Reader
}

// DocumentUseCase documentos de obra. El binario va al blob store; la BD guarda los metadatos.
type DocumentUseCase struct {
	repo     repository.ProjectDocumentRepository
	projects repository.ProjectRepository
	store    ports.BlobStore
	notifier ports.Notifier
	ttl      time.Duration
	maxSize  int64
}

// NewDocumentUseCase ttl es la vigencia de los enlaces de descarga; maxSize el tamaño máximo en bytes.
func NewDocumentUseCase(
	repo repository.ProjectDocumentRepository,
	projects repository.ProjectRepository,
	store ports.BlobStore,
	notifier ports.Notifier,
	ttl time.Duration,
	maxSize int64,
) *DocumentUseCase {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &DocumentUseCase{repo: repo, projects: projects, store: store, notifier: orNop(notifier), ttl: ttl, maxSize: maxSize}
}

// Upload valida el tipo por contenido, guarda el binario y registra el documento.
func (uc *DocumentUseCase) Upload(ctx context.Context, userID, projectID string, in DocumentUpload) (*dto.DocumentResponse, error) {
	project, err := loadProject(ctx, uc.projects, projectID)
	if err != nil {
		return nil, err
	}
	if in.Body == nil || in.Size == 0 {
		return nil, domain.Invalid("archivo vacío")
	}
	if uc.maxSize > 0 && in.Size > uc.maxSize {
		return nil, domain.Invalid("el archivo supera el máximo de %d MB", uc.maxSize>>20)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(in.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("documento: leer archivo: %w", err)
	}
	head = head[:n]
	mt := mimetype.Detect(head)
	if !allowedType(mt, documentTypes) {
		return nil, domain.Invalid("tipo de archivo no permitido: %s", mt.String())
	}

	name := strings.TrimSpace(path.Base(in.FileName))
	if name == "" || name == "." || name == "/" {
		name = "documento" + mt.Extension()
	}
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		ext = mt.Extension()
	}
	id := uuid.New().String()
	key := fmt.Sprintf("uploads/%s/%s%s", project.ID, id, ext)

	info, err := uc.store.Put(ctx, key, io.MultiReader(bytes.NewReader(head), in.Body), in.Size, baseMime(mt))
	if err != nil {
		return nil, fmt.Errorf("documento: guardar archivo: %w", err)
	}

	doc := &entity.ProjectDocument{
		ID:          id,
		ProjectID:   project.ID,
		Name:        name,
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		FileKey:     key,
		FileSize:    info.Size,
		MimeType:    baseMime(mt),
		UploadedBy:  userID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, doc); err != nil {
		if delErr := uc.store.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("no se pudo borrar el archivo huérfano")
		}
		return nil, err
	}

	uc.notifier.Notify(ctx, &entity.Notification{
		UserID:      userID,
		Type:        entity.NotificationDocumentUploaded,
		Title:       "Documento subido",
		Message:     fmt.Sprintf("%s se agregó a %s", doc.Name, project.Name),
		RelatedID:   doc.ID,
		RelatedType: "project_document",
	})
	return uc.withURL(ctx, doc)
}

// ListByProject documentos con enlace de descarga vigente.
func (uc *DocumentUseCase) ListByProject(ctx context.Context, projectID string) ([]dto.DocumentResponse, error) {
	if _, err := loadProject(ctx, uc.projects, projectID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		r, err := uc.withURL(ctx, d)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, nil
}

// DownloadURL enlace prefirmado del documento.
func (uc *DocumentUseCase) DownloadURL(ctx context.Context, id string) (string, error) {
	d, err := uc.get(ctx, id)
	if err != nil {
		return "", err
	}
	return uc.store.PresignURL(ctx, d.FileKey, uc.ttl)
}

// Delete borra los metadatos y después el binario; un fallo en el blob store solo se registra.
func (uc *DocumentUseCase) Delete(ctx context.Context, id string) error {
	d, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := uc.store.Delete(ctx, d.FileKey); err != nil {
		log.Warn().Err(err).Str("key", d.FileKey).Msg("no se pudo borrar el archivo del documento")
	}
	return nil
}

func (uc *DocumentUseCase) withURL(ctx context.Context, d *entity.ProjectDocument) (*dto.DocumentResponse, error) {
	url, err := uc.store.PresignURL(ctx, d.FileKey, uc.ttl)
	if err != nil {
		return nil, fmt.Errorf("documento: firmar enlace: %w", err)
	}
	d.FileURL = url
	out := toDocumentResponse(d)
	return &out, nil
}

func (uc *DocumentUseCase) get(ctx context.Context, id string) (*entity.ProjectDocument, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrDocumentNotFound
	}
	return d, nil
}

// allowedType compara el tipo detectado, sin parámetros, contra la lista.
func allowedType(mt *mimetype.MIME, allowed []string) bool {
	return mimetype.EqualsAny(baseMime(mt), allowed...)
}

func baseMime(mt *mimetype.MIME) string {
	s := mt.String()
	if i := strings.IndexByte(s, ';'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
