package report

import (
	"context"
	"slices"
	"sync"

	"github.com/iho/txdash/internal/domain"
)

// MemoryStore keeps the latest report per file name in process memory.
// It backs the web host when no Redis is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string][]byte)}
}

// Download stores content under fileName.
func (s *MemoryStore) Download(_ context.Context, fileName string, content []byte) error {
	s.mu.Lock()
	s.reports[fileName] = slices.Clone(content)
	s.mu.Unlock()
	return nil
}

// Latest returns the last report stored under fileName.
func (s *MemoryStore) Latest(_ context.Context, fileName string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.reports[fileName]
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	return slices.Clone(content), nil
}
