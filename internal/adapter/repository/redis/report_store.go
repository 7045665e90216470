package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/txdash/internal/domain"
)

// ReportStore keeps the latest upload error report per file name in Redis.
type ReportStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewReportStore creates a new ReportStore. Reports expire after ttl.
func NewReportStore(client *redis.Client, ttl time.Duration) *ReportStore {
	return &ReportStore{
		client: client,
		prefix: "report:",
		ttl:    ttl,
	}
}

// Download stores content under fileName, replacing any earlier report.
func (s *ReportStore) Download(ctx context.Context, fileName string, content []byte) error {
	return s.client.Set(ctx, s.prefix+fileName, content, s.ttl).Err()
}

// Latest returns the report stored under fileName.
func (s *ReportStore) Latest(ctx context.Context, fileName string) ([]byte, error) {
	content, err := s.client.Get(ctx, s.prefix+fileName).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return content, nil
}
