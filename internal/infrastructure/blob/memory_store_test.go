package blob

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/domain"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("/api/files/")

	info, err := s.Put(ctx, "uploads/p1/plano.pdf", strings.NewReader("%PDF-1.4"), 8, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(8), info.Size)

	rc, got, err := s.Get(ctx, "uploads/p1/plano.pdf")
	require.NoError(t, err)
	body, _ := io.ReadAll(rc)
	assert.Equal(t, "%PDF-1.4", string(body))
	assert.Equal(t, "application/pdf", got.ContentType)

	url, err := s.PresignURL(ctx, "uploads/p1/plano.pdf", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "/api/files/uploads/p1/plano.pdf", url)

	require.NoError(t, s.Delete(ctx, "uploads/p1/plano.pdf"))
	_, _, err = s.Get(ctx, "uploads/p1/plano.pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
