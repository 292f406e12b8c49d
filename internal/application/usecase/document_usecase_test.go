package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/infrastructure/blob"
)

var (
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
)

func upload(name string, body []byte) DocumentUpload {
	return DocumentUpload{FileName: name, Size: int64(len(body)), Body: bytes.NewReader(body)}
}

func TestDocumentUpload_PDFSeGuardaYNotifica(t *testing.T) {
	f := newProjectFixture(t)
	store := blob.NewMemoryStore("http://localhost/api/files/")
	docs := newFakeDocuments()
	uc := NewDocumentUseCase(docs, f.projects, store, f.notifier, time.Minute, 1<<20)

	d, err := uc.Upload(f.ctx, "user-1", f.projectID, upload("Planos/../estructura.PDF", pdfBytes))
	require.NoError(t, err)
	assert.Equal(t, "estructura.PDF", d.Name)
	assert.Equal(t, "application/pdf", d.MimeType)
	assert.True(t, strings.HasPrefix(d.FileKey, "uploads/"+f.projectID+"/"))
	assert.True(t, strings.HasSuffix(d.FileKey, ".pdf"))
	assert.Equal(t, int64(len(pdfBytes)), d.FileSize)
	assert.Equal(t, "http://localhost/api/files/"+d.FileKey, d.URL)

	rc, _, err := store.Get(f.ctx, d.FileKey)
	require.NoError(t, err)
	stored, _ := io.ReadAll(rc)
	assert.Equal(t, pdfBytes, stored)

	require.Len(t, f.notifier.ofType(entity.NotificationDocumentUploaded), 1)

	list, err := uc.ListByProject(f.ctx, f.projectID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, uc.Delete(f.ctx, d.ID))
	_, _, err = store.Get(f.ctx, d.FileKey)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentUpload_TiposRechazados(t *testing.T) {
	f := newProjectFixture(t)
	uc := NewDocumentUseCase(newFakeDocuments(), f.projects, blob.NewMemoryStore("/"), nil, 0, 1<<20)

	cases := map[string][]byte{
		"html":       []byte("<!DOCTYPE html><html><body><script>alert(1)</script></body></html>"),
		"ejecutable": append([]byte("MZ\x90\x00\x03\x00\x00\x00"), make([]byte, 64)...),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Upload(f.ctx, "u", f.projectID, upload("archivo.pdf", body))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := uc.Upload(f.ctx, "u", f.projectID, upload("vacio.pdf", nil))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	small := NewDocumentUseCase(newFakeDocuments(), f.projects, blob.NewMemoryStore("/"), nil, 0, 10)
	_, err = small.Upload(f.ctx, "u", f.projectID, upload("grande.pdf", pdfBytes))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentUpload_FalloEnBDBorraElArchivo(t *testing.T) {
	f := newProjectFixture(t)
	store := blob.NewMemoryStore("/")
	docs := newFakeDocuments()
	docs.failErr = errors.New("db caída")
	uc := NewDocumentUseCase(docs, f.projects, store, f.notifier, 0, 0)

	_, err := uc.Upload(f.ctx, "u", f.projectID, upload("a.pdf", pdfBytes))
	require.Error(t, err)
	assert.Empty(t, f.notifier.ofType(entity.NotificationDocumentUploaded))

	docs.failErr = nil
	d, err := uc.Upload(f.ctx, "u", f.projectID, upload("b.pdf", pdfBytes))
	require.NoError(t, err)
	_, _, err = store.Get(context.Background(), d.FileKey)
	assert.NoError(t, err)
}

func TestUploadPhoto_DataURL(t *testing.T) {
	store := blob.NewMemoryStore("http://localhost/api/files/")
	uc := NewUploadUseCase(store, time.Minute, 1<<20)
	uc.now = func() time.Time { return time.UnixMilli(1767225600000) }

	dataURL := "data:image/png;base64," + b64(pngBytes)
	out, err := uc.UploadPhoto(context.Background(), dto.UploadPhotoRequest{DataURL: dataURL})
	require.NoError(t, err)
	assert.Regexp(t, `^uploads/1767225600000-[0-9a-f]{12}\.png$`, out.Key)
	assert.Equal(t, "image/png", out.ContentType)
	assert.Equal(t, int64(len(pngBytes)), out.Size)

	url, err := uc.PhotoURL(context.Background(), out.Key)
	require.NoError(t, err)
	assert.Equal(t, out.URL, url)
}

func TestUploadPhoto_Rechazos(t *testing.T) {
	uc := NewUploadUseCase(blob.NewMemoryStore("/"), 0, 1<<20)
	ctx := context.Background()

	for name, in := range map[string]string{
		"texto":       "data:text/plain;base64," + b64([]byte("hola mundo")),
		"sin base64":  "data:image/png," + string(pngBytes),
		"no es data":  "https://example.com/a.png",
		"base64 roto": "data:image/png;base64,%%%",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := uc.UploadPhoto(ctx, dto.UploadPhotoRequest{DataURL: in})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := uc.PhotoURL(ctx, "uploads/../secreto")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.PhotoURL(ctx, "otros/a.png")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "bitacora-torre-norte-2026-03-02.pdf", SafeFileName("Bitácora Torre Norte 2026-03-02.pdf"))
	assert.Equal(t, "inspeccion-senalizacion.pdf", SafeFileName("Inspección señalización.pdf"))
	assert.Equal(t, "archivo", SafeFileName("///"))
}

func b64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }
