package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/domain/repository"
)

var _ repository.ProjectDocumentRepository = (*ProjectDocumentRepo)(nil)

// ProjectDocumentRepo solo metadatos; el archivo vive en el blob store bajo file_key.
type ProjectDocumentRepo struct {
	q Querier
}

func NewProjectDocumentRepository(q Querier) *ProjectDocumentRepo {
	return &ProjectDocumentRepo{q: q}
}

const documentColumns = `id, project_id, name, description, category, file_key, file_url, file_size, mime_type,
	uploaded_by, created_at`

func scanDocument(row pgx.Row) (*entity.ProjectDocument, error) {
	var d entity.ProjectDocument
	err := row.Scan(
		&d.ID, &d.ProjectID, &d.Name, &d.Description, &d.Category, &d.FileKey, &d.FileURL, &d.FileSize,
		&d.MimeType, &d.UploadedBy, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *ProjectDocumentRepo) Create(ctx context.Context, d *entity.ProjectDocument) error {
	query := `INSERT INTO project_documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.ProjectID, d.Name, d.Description, d.Category, d.FileKey, d.FileURL, d.FileSize,
		d.MimeType, d.UploadedBy, d.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *ProjectDocumentRepo) GetByID(ctx context.Context, id string) (*entity.ProjectDocument, error) {
	d, err := scanDocument(r.q.QueryRow(ctx, `SELECT `+documentColumns+` FROM project_documents WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

func (r *ProjectDocumentRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.ProjectDocument, error) {
	rows, err := r.q.Query(ctx, `SELECT `+documentColumns+` FROM project_documents
		WHERE project_id = $1 ORDER BY created_at DESC, id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return collect(rows, scanDocument)
}

func (r *ProjectDocumentRepo) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.q, `DELETE FROM project_documents WHERE id = $1`, id, domain.ErrDocumentNotFound)
}
