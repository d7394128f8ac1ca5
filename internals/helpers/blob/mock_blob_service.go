package blob

import (
	"context"
	"errors"
	"mime/multipart"
	"sync"
)

// --------------------------------------------------
// Mock for unit tests
// --------------------------------------------------

type MockBlobService struct {
	SaveFn              func(ctx context.Context, fh *multipart.FileHeader) (StoredFile, error)
	DeleteByPublicURLFn func(ctx context.Context, publicURL string) error

	mu      sync.Mutex
	Deleted []string
}

func (m *MockBlobService) Save(ctx context.Context, fh *multipart.FileHeader) (StoredFile, error) {
	if m.SaveFn == nil {
		return StoredFile{}, errors.New("not implemented")
	}
	return m.SaveFn(ctx, fh)
}

func (m *MockBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	m.mu.Lock()
	m.Deleted = append(m.Deleted, publicURL)
	m.mu.Unlock()
	if m.DeleteByPublicURLFn == nil {
		return nil
	}
	return m.DeleteByPublicURLFn(ctx, publicURL)
}

// DeletedURLs returns a copy of every URL passed to DeleteByPublicURL.
func (m *MockBlobService) DeletedURLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Deleted...)
}
