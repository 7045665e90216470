package handler

import (
	"net/http"

	"github.com/iho/txdash/internal/adapter/notify"
)

// NotificationSource hands out pending notifications.
type NotificationSource interface {
	Drain() []notify.Notification
}

// NotificationHandler serves queued notifications.
type NotificationHandler struct {
	source NotificationSource
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(source NotificationSource) *NotificationHandler {
	return &NotificationHandler{source: source}
}

// List handles GET /api/v1/notifications. Returned notifications are
// removed from the queue.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": h.source.Drain(),
	})
}
