package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/iho/txdash/internal/adapter/confirm"
	"github.com/iho/txdash/internal/adapter/http/dto"
	"github.com/iho/txdash/internal/domain"
	"github.com/iho/txdash/internal/usecase"
)

// uploadFormOverhead is the room left for multipart framing on top of the
// file itself.
const uploadFormOverhead = 64 << 10

// DashboardService is the dashboard as seen by the HTTP host.
type DashboardService interface {
	State() usecase.DashboardState
	Refresh(ctx context.Context, page, pageSize int) error
	ChangePage(ctx context.Context, page int) error
	ChangePageSize(ctx context.Context, size int) error
	CreateTransaction(ctx context.Context, data domain.TransactionFormData) error
	EditTransaction(ctx context.Context, id int64, data domain.TransactionFormData) error
	DeleteTransaction(ctx context.Context, id int64) error
	DeleteSelected(ctx context.Context) error
	ToggleSelect(id int64)
	SelectAll(ids []int64)
	UploadCSV(ctx context.Context, file domain.UploadFile) error
	OpenForm(mode usecase.FormMode, target *domain.Transaction) error
	CloseForm()
}

// DashboardHandler exposes dashboard intents over HTTP. Every successful
// intent answers with the resulting dashboard snapshot.
type DashboardHandler struct {
	dashboard DashboardService
	logger    zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, logger: logger}
}

// Get handles GET /api/v1/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeState(w)
}

// Refresh handles POST /api/v1/dashboard/refresh. Query parameters page and
// pageSize default to the current pagination.
func (h *DashboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	current := h.dashboard.State().Page
	page := parseIntQuery(r, "page", current.CurrentPage)
	pageSize := parseIntQuery(r, "pageSize", current.PageSize)

	if !domain.IsValidPageSize(pageSize) {
		writeDomainError(w, domain.ErrInvalidPageSize)
		return
	}

	h.respond(w, h.dashboard.Refresh(r.Context(), page, pageSize))
}

// ChangePage handles PUT /api/v1/dashboard/page.
func (h *DashboardHandler) ChangePage(w http.ResponseWriter, r *http.Request) {
	var req dto.PageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Page < 1 {
		writeError(w, http.StatusBadRequest, "invalid page", "page must be at least 1")
		return
	}

	h.respond(w, h.dashboard.ChangePage(r.Context(), req.Page))
}

// ChangePageSize handles PUT /api/v1/dashboard/page-size.
func (h *DashboardHandler) ChangePageSize(w http.ResponseWriter, r *http.Request) {
	var req dto.PageSizeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	h.respond(w, h.dashboard.ChangePageSize(r.Context(), req.PageSize))
}

// Create handles POST /api/v1/transactions.
func (h *DashboardHandler) Create(w http.ResponseWriter, r *http.Request) {
	data, ok := h.decodeForm(w, r)
	if !ok {
		return
	}

	h.respond(w, h.dashboard.CreateTransaction(r.Context(), data))
}

// Edit handles PUT /api/v1/transactions/{id}.
func (h *DashboardHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid transaction id", "")
		return
	}

	data, ok := h.decodeForm(w, r)
	if !ok {
		return
	}

	h.respond(w, h.dashboard.EditTransaction(r.Context(), id, data))
}

// Delete handles DELETE /api/v1/transactions/{id}?confirm=true.
func (h *DashboardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid transaction id", "")
		return
	}

	h.respond(w, h.dashboard.DeleteTransaction(withConfirmation(r), id))
}

// DeleteSelected handles DELETE /api/v1/selection?confirm=true.
func (h *DashboardHandler) DeleteSelected(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.dashboard.DeleteSelected(withConfirmation(r)))
}

// SelectAll handles PUT /api/v1/selection. An empty id list clears it.
func (h *DashboardHandler) SelectAll(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	h.dashboard.SelectAll(req.IDs)
	h.writeState(w)
}

// ToggleSelect handles POST /api/v1/selection/{id}/toggle.
func (h *DashboardHandler) ToggleSelect(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid transaction id", "")
		return
	}

	h.dashboard.ToggleSelect(id)
	h.writeState(w)
}

// Upload handles POST /api/v1/uploads with a multipart "file" field.
func (h *DashboardHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxUploadSize+uploadFormOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large", domain.ErrFileTooLarge.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "invalid upload", err.Error())
		return
	}
	defer file.Close()

	h.respond(w, h.dashboard.UploadCSV(r.Context(), domain.UploadFile{
		Name:    header.Filename,
		Size:    header.Size,
		Content: file,
	}))
}

// OpenForm handles PUT /api/v1/form. In edit mode the target must be one of
// the visible transactions.
func (h *DashboardHandler) OpenForm(w http.ResponseWriter, r *http.Request) {
	var req dto.FormRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	mode, ok := req.FormMode()
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid form mode", req.Mode)
		return
	}

	var target *domain.Transaction
	if mode == usecase.FormEdit {
		target = findVisible(h.dashboard.State(), req.TargetID)
		if target == nil {
			writeError(w, http.StatusNotFound, "transaction not visible", strconv.FormatInt(req.TargetID, 10))
			return
		}
	}

	h.respond(w, h.dashboard.OpenForm(mode, target))
}

// CloseForm handles DELETE /api/v1/form.
func (h *DashboardHandler) CloseForm(w http.ResponseWriter, r *http.Request) {
	h.dashboard.CloseForm()
	h.writeState(w)
}

func (h *DashboardHandler) decodeForm(w http.ResponseWriter, r *http.Request) (domain.TransactionFormData, bool) {
	var req dto.TransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return domain.TransactionFormData{}, false
	}

	data, err := req.ToFormData()
	if err != nil {
		writeDomainError(w, err)
		return domain.TransactionFormData{}, false
	}

	return data, true
}

func (h *DashboardHandler) respond(w http.ResponseWriter, err error) {
	if err != nil {
		h.logger.Debug().Err(err).Msg("dashboard intent failed")
		writeDomainError(w, err)
		return
	}
	h.writeState(w)
}

func (h *DashboardHandler) writeState(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, dto.DashboardFromState(h.dashboard.State()))
}

func withConfirmation(r *http.Request) context.Context {
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return confirm.WithConfirmation(r.Context(), confirmed)
}

func findVisible(state usecase.DashboardState, id int64) *domain.Transaction {
	for i := range state.Transactions {
		if state.Transactions[i].ID == id {
			return &state.Transactions[i]
		}
	}
	return nil
}
