package notify

import (
	"context"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iho/txdash/internal/infrastructure/metrics"
)

// Kind is the tone of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindFailure Kind = "failure"
)

// DefaultQueueSize bounds how many unread notifications are kept.
const DefaultQueueSize = 100

// Notification is one message waiting to be shown.
type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Queue buffers notifications until a client drains them. When full the
// oldest notification is dropped.
type Queue struct {
	mu      sync.Mutex
	items   []Notification
	size    int
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewQueue creates a Queue holding at most size notifications. m may be nil.
func NewQueue(size int, m *metrics.Metrics) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{size: size, metrics: m, now: time.Now}
}

// Success enqueues a success notification.
func (q *Queue) Success(_ context.Context, message string) {
	q.push(KindSuccess, message)
}

// Failure enqueues a failure notification.
func (q *Queue) Failure(_ context.Context, message string) {
	q.push(KindFailure, message)
}

// Drain returns every pending notification, oldest first, and empties the queue.
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = nil
	if items == nil {
		return []Notification{}
	}
	return items
}

func (q *Queue) push(kind Kind, message string) {
	now := q.now()
	n := Notification{
		ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
	}

	q.mu.Lock()
	if len(q.items) == q.size {
		q.items = q.items[1:]
	}
	q.items = append(q.items, n)
	q.mu.Unlock()

	if q.metrics != nil {
		q.metrics.Notifications.WithLabelValues(string(kind)).Inc()
	}
}
