package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/iho/txdash/internal/domain"
)

// ReportReader returns the latest stored error report.
type ReportReader interface {
	Latest(ctx context.Context, fileName string) ([]byte, error)
}

// ReportHandler serves upload error reports as CSV downloads.
type ReportHandler struct {
	reports ReportReader
	logger  zerolog.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports ReportReader, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, logger: logger}
}

// Download handles GET /api/v1/reports/{name}.
func (h *ReportHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name != domain.ReportFileName {
		writeDomainError(w, domain.ErrReportNotFound)
		return
	}

	content, err := h.reports.Latest(r.Context(), name)
	if err != nil {
		if mapDomainError(err) == http.StatusInternalServerError {
			h.logger.Error().Err(err).Str("report", name).Msg("failed to read error report")
		}
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(name))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
