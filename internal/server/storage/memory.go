package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/Camilo-Usuga/xxi-storage/internal/common"
)

type memoryObject struct {
	data        []byte
	contentType string
}

// MemoryStore keeps objects in process memory. Its URLs use the memory://
// scheme and cannot be fetched over the network.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
	expiry  time.Duration
	now     func() time.Time
}

func NewMemoryStore(expiry time.Duration) *MemoryStore {
	return &MemoryStore{
		objects: make(map[string]memoryObject),
		expiry:  expiry,
		now:     time.Now,
	}
}

func (m *MemoryStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read object body: %w", err)
	}
	if size >= 0 && int64(len(data)) != size {
		return fmt.Errorf("%w: size mismatch: declared %d, read %d", common.ErrorInvalidArgument, size, len(data))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = memoryObject{data: data, contentType: contentType}
	return nil
}

func (m *MemoryStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *MemoryStore) PresignGet(ctx context.Context, key string, name string) (string, error) {
	m.mu.RLock()
	_, ok := m.objects[key]
	m.mu.RUnlock()
	if !ok {
		return "", common.ErrorNotFound
	}

	q := url.Values{}
	q.Set("filename", name)
	q.Set("expires", fmt.Sprint(m.now().Add(m.expiry).Unix()))
	u := url.URL{Scheme: "memory", Host: "objects", Path: "/" + key, RawQuery: q.Encode()}
	return u.String(), nil
}

// Len reports the number of stored objects.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
