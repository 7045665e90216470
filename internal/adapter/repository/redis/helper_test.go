package redis

import (
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
)

// newTestReportStore returns a store backed by an in-memory Redis that is
// torn down with the test.
func newTestReportStore(t *testing.T, ttl time.Duration) (*ReportStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{
		Addr:       mr.Addr(),
		MaxRetries: -1,
	})
	t.Cleanup(func() { client.Close() })

	return NewReportStore(client, ttl), mr
}
