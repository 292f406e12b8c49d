package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/jhoicas/Obras-api/internal/application/ports"
	"github.com/jhoicas/Obras-api/internal/domain"
)

var _ ports.BlobStore = (*MemoryStore)(nil)

type memObject struct {
	data []byte
	info ports.BlobInfo
}

// MemoryStore blob store en memoria para desarrollo y tests. Las URLs apuntan a la ruta de
// descarga de la propia API (baseURL + key).
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memObject
	baseURL string
}

func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{objects: make(map[string]memObject), baseURL: baseURL}
}

func (m *MemoryStore) Driver() string { return "memory" }

func (m *MemoryStore) Put(_ context.Context, key string, r io.Reader, _ int64, contentType string) (ports.BlobInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ports.BlobInfo{}, fmt.Errorf("memory blob: leer %s: %w", key, err)
	}
	info := ports.BlobInfo{Key: key, Size: int64(len(data)), ContentType: contentType, UpdatedAt: time.Now().UTC()}
	m.mu.Lock()
	m.objects[key] = memObject{data: data, info: info}
	m.mu.Unlock()
	return info, nil
}

func (m *MemoryStore) Get(_ context.Context, key string) (io.ReadCloser, ports.BlobInfo, error) {
	m.mu.RLock()
	obj, ok := m.objects[key]
	m.mu.RUnlock()
	if !ok {
		return nil, ports.BlobInfo{}, fmt.Errorf("archivo %s: %w", key, domain.ErrNotFound)
	}
	return io.NopCloser(bytes.NewReader(obj.data)), obj.info, nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.objects, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) PresignURL(_ context.Context, key string, _ time.Duration) (string, error) {
	m.mu.RLock()
	_, ok := m.objects[key]
	m.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("archivo %s: %w", key, domain.ErrNotFound)
	}
	return m.baseURL + (&url.URL{Path: key}).EscapedPath(), nil
}
