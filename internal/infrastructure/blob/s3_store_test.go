package blob

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/pkg/config"
)

func newTestS3(t *testing.T, endpoint string) *S3Store {
	t.Helper()
	s, err := NewS3Store(context.Background(), config.BlobConfig{
		Bucket:          "obras-docs",
		Region:          "us-east-1",
		Endpoint:        endpoint,
		AccessKeyID:     "AKIATEST",
		SecretAccessKey: "secret",
		UsePathStyle:    true,
	})
	require.NoError(t, err)
	return s
}

func TestS3Store_PresignURL(t *testing.T) {
	s := newTestS3(t, "http://minio.local:9000")

	u, err := s.PresignURL(context.Background(), "uploads/p1/plano.pdf", 5*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, u, "http://minio.local:9000/obras-docs/uploads/p1/plano.pdf")
	assert.Contains(t, u, "X-Amz-Signature=")
	assert.Contains(t, u, "X-Amz-Expires=300")
}

func TestS3Store_GetInexistenteEsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
	}))
	defer srv.Close()

	_, _, err := newTestS3(t, srv.URL).Get(context.Background(), "uploads/nada.pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewS3Store_SinBucketFalla(t *testing.T) {
	_, err := NewS3Store(context.Background(), config.BlobConfig{})
	assert.Error(t, err)
}
