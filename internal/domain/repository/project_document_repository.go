package repository

import (
	"context"

	"github.com/jhoicas/Obras-api/internal/domain/entity"
)

// ProjectDocumentRepository metadatos de documentos; el binario vive en el blob store.
type ProjectDocumentRepository interface {
	Create(ctx context.Context, d *entity.ProjectDocument) error
	GetByID(ctx context.Context, id string) (*entity.ProjectDocument, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.ProjectDocument, error)
	Delete(ctx context.Context, id string) error
}
