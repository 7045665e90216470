package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/iho/txdash/internal/domain"
)

// FormMode tells whether the transaction form creates or edits.
type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

func (m FormMode) String() string {
	if m == FormEdit {
		return "edit"
	}
	return "create"
}

// FormState is the visibility of the transaction form and its edit target.
type FormState struct {
	Open   bool
	Mode   FormMode
	Target *domain.Transaction
}

// DashboardState is a consistent snapshot of the dashboard.
// While Loading is true the list is not authoritative.
type DashboardState struct {
	Loading      bool
	Transactions []domain.Transaction
	Page         domain.PageState
	Selection    []int64
	Form         FormState
}

// IsSelected reports whether id is in the selection.
func (s DashboardState) IsSelected(id int64) bool {
	_, found := slices.BinarySearch(s.Selection, id)
	return found
}

// AllSelected reports whether every visible transaction is selected.
func (s DashboardState) AllSelected() bool {
	if len(s.Transactions) == 0 {
		return false
	}
	for _, t := range s.Transactions {
		if !s.IsSelected(t.ID) {
			return false
		}
	}
	return true
}

// VisibleIDs returns the ids of the loaded page.
func (s DashboardState) VisibleIDs() []int64 {
	ids := make([]int64, len(s.Transactions))
	for i, t := range s.Transactions {
		ids[i] = t.ID
	}
	return ids
}

// DashboardConfig wires the collaborators of a Dashboard.
type DashboardConfig struct {
	Client     TransactionClient
	Notifier   Notifier
	Confirmer  Confirmer
	Encoder    ReportEncoder
	Downloader ReportDownloader
	Logger     zerolog.Logger
	PageSize   int
}

// Dashboard owns transaction, pagination, selection and form state and
// sequences every operation against the transaction service.
//
// Overlapping operations are not de-duplicated or cancelled: the response
// that resolves last decides what is displayed.
type Dashboard struct {
	client     TransactionClient
	notifier   Notifier
	confirmer  Confirmer
	encoder    ReportEncoder
	downloader ReportDownloader
	logger     zerolog.Logger

	mu           sync.Mutex
	initialized  bool
	settled      bool
	inflight     int
	transactions []domain.Transaction
	page         domain.PageState
	selection    map[int64]struct{}
	form         FormState
}

// NewDashboard creates a Dashboard in the Loading state. Call Initialize
// once the host is ready to show it.
func NewDashboard(cfg DashboardConfig) *Dashboard {
	pageSize := cfg.PageSize
	if !domain.IsValidPageSize(pageSize) {
		pageSize = domain.DefaultPageSize
	}

	return &Dashboard{
		client:       cfg.Client,
		notifier:     cfg.Notifier,
		confirmer:    cfg.Confirmer,
		encoder:      cfg.Encoder,
		downloader:   cfg.Downloader,
		logger:       cfg.Logger,
		transactions: []domain.Transaction{},
		page:         domain.InitialPageState(pageSize),
		selection:    make(map[int64]struct{}),
	}
}

// State returns a copy of the current snapshot.
func (d *Dashboard) State() DashboardState {
	d.mu.Lock()
	defer d.mu.Unlock()

	state := DashboardState{
		Loading:      d.inflight > 0 || !d.settled,
		Transactions: slices.Clone(d.transactions),
		Page:         d.page,
		Selection:    d.selectedIDsLocked(),
		Form:         FormState{Open: d.form.Open, Mode: d.form.Mode},
	}
	if d.form.Target != nil {
		target := *d.form.Target
		state.Form.Target = &target
	}
	return state
}

// Initialize performs the first fetch. Only the first call has an effect.
func (d *Dashboard) Initialize(ctx context.Context) error {
	d.mu.Lock()
	if d.initialized {
		d.mu.Unlock()
		return nil
	}
	d.initialized = true
	pageSize := d.page.PageSize
	d.mu.Unlock()

	return d.Refresh(ctx, 1, pageSize)
}

// Refresh fetches one page. On failure the previous list and pagination are
// kept and the returned error wraps domain.ErrFetchFailed.
func (d *Dashboard) Refresh(ctx context.Context, page, pageSize int) error {
	d.beginLoading()
	defer d.endLoading()

	result, err := d.client.List(ctx, page, pageSize)
	if err != nil {
		d.logger.Error().Err(err).
			Int("page", page).
			Int("page_size", pageSize).
			Msg("fetch transactions failed")
		d.notifier.Failure(ctx, MsgFetchFailed)
		return fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	transactions := slices.Clone(result.Transactions)
	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	snapshot := domain.PageState{
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
		TotalCount:  result.TotalCount,
		PageSize:    pageSize,
	}
	if !snapshot.Valid() {
		d.logger.Warn().
			Int("current_page", snapshot.CurrentPage).
			Int("total_pages", snapshot.TotalPages).
			Msg("service returned an out-of-range page, clamping")
		snapshot = snapshot.Clamped()
	}

	d.mu.Lock()
	d.transactions = transactions
	d.page = snapshot
	d.pruneSelectionLocked()
	d.mu.Unlock()

	d.logger.Debug().
		Int("page", result.CurrentPage).
		Int("total_pages", result.TotalPages).
		Int("count", len(transactions)).
		Msg("transactions fetched")

	return nil
}

// ChangePage fetches page at the current page size.
func (d *Dashboard) ChangePage(ctx context.Context, page int) error {
	d.mu.Lock()
	clear(d.selection)
	pageSize := d.page.PageSize
	d.mu.Unlock()

	return d.Refresh(ctx, page, pageSize)
}

// ChangePageSize switches the page size and fetches page 1.
func (d *Dashboard) ChangePageSize(ctx context.Context, size int) error {
	if !domain.IsValidPageSize(size) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPageSize, size)
	}

	d.mu.Lock()
	d.page.PageSize = size
	clear(d.selection)
	d.mu.Unlock()

	return d.Refresh(ctx, 1, size)
}

// CreateTransaction submits a new transaction. The form stays open on failure.
func (d *Dashboard) CreateTransaction(ctx context.Context, data domain.TransactionFormData) error {
	message, err := d.client.Create(ctx, data)
	if err != nil {
		return d.fail(ctx, "create", err, MsgAddFailed)
	}

	d.CloseForm()
	d.refreshCurrent(ctx)
	d.notifier.Success(ctx, orDefault(message, MsgAddSuccess))

	return nil
}

// EditTransaction updates the transaction open in the edit form. Without a
// matching edit target nothing is sent and domain.ErrNoEditTarget is returned.
func (d *Dashboard) EditTransaction(ctx context.Context, id int64, data domain.TransactionFormData) error {
	d.mu.Lock()
	target := d.form.Target
	d.mu.Unlock()

	if target == nil || target.ID != id {
		d.logger.Warn().Int64("id", id).Msg("edit ignored, no matching edit target")
		return domain.ErrNoEditTarget
	}

	if _, err := d.client.Update(ctx, id, data); err != nil {
		return d.fail(ctx, "edit", err, MsgEditFailed)
	}

	d.CloseForm()
	d.refreshCurrent(ctx)
	d.notifier.Success(ctx, MsgEditSuccess)

	return nil
}

// DeleteTransaction deletes one transaction after confirmation.
func (d *Dashboard) DeleteTransaction(ctx context.Context, id int64) error {
	if !d.confirmer.Confirm(ctx, PromptDeleteOne) {
		return domain.ErrNotConfirmed
	}

	message, err := d.client.Delete(ctx, id)
	if err != nil {
		return d.fail(ctx, "delete", err, MsgDeleteFailed)
	}

	d.refreshCurrent(ctx)
	d.notifier.Success(ctx, orDefault(message, MsgDeleteSuccess))

	return nil
}

// DeleteSelected deletes every selected transaction after confirmation.
// The selection survives a failure so the user can retry.
func (d *Dashboard) DeleteSelected(ctx context.Context) error {
	d.mu.Lock()
	ids := d.selectedIDsLocked()
	d.mu.Unlock()

	if len(ids) == 0 {
		return nil
	}

	if !d.confirmer.Confirm(ctx, fmt.Sprintf(PromptDeleteSelected, len(ids))) {
		return domain.ErrNotConfirmed
	}

	message, err := d.client.DeleteMany(ctx, ids)
	if err != nil {
		return d.fail(ctx, "delete_many", err, MsgDeleteSelectedFailed)
	}

	d.mu.Lock()
	clear(d.selection)
	d.mu.Unlock()

	d.refreshCurrent(ctx)
	d.notifier.Success(ctx, orDefault(message, MsgDeleteSelectedSuccess))

	return nil
}

// ToggleSelect flips the selection of one visible transaction.
func (d *Dashboard) ToggleSelect(id int64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.visibleLocked(id) {
		return
	}
	if _, ok := d.selection[id]; ok {
		delete(d.selection, id)
		return
	}
	d.selection[id] = struct{}{}
}

// SelectAll replaces the selection with ids. An empty list clears it.
func (d *Dashboard) SelectAll(ids []int64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	clear(d.selection)
	for _, id := range ids {
		if d.visibleLocked(id) {
			d.selection[id] = struct{}{}
		}
	}
}

// UploadCSV imports a CSV file. A rejection carrying row errors produces a
// report named domain.ReportFileName.
func (d *Dashboard) UploadCSV(ctx context.Context, file domain.UploadFile) error {
	if err := domain.ValidateUploadFile(file.Name, file.Size); err != nil {
		return err
	}

	d.beginLoading()
	defer d.endLoading()

	message, err := d.client.Upload(ctx, file)
	if err != nil {
		return d.failUpload(ctx, err)
	}

	d.refreshCurrent(ctx)
	d.notifier.Success(ctx, orDefault(message, MsgUploadSuccess))

	return nil
}

// OpenForm shows the form. Edit mode requires a target; create mode drops
// any previous target.
func (d *Dashboard) OpenForm(mode FormMode, target *domain.Transaction) error {
	if mode == FormEdit && target == nil {
		return domain.ErrEditTargetRequired
	}

	form := FormState{Open: true, Mode: mode}
	if mode == FormEdit {
		t := *target
		form.Target = &t
	}

	d.mu.Lock()
	d.form = form
	d.mu.Unlock()

	return nil
}

// CloseForm hides the form and clears the edit target.
func (d *Dashboard) CloseForm() {
	d.mu.Lock()
	d.form = FormState{}
	d.mu.Unlock()
}

func (d *Dashboard) refreshCurrent(ctx context.Context) {
	d.mu.Lock()
	page, pageSize := d.page.CurrentPage, d.page.PageSize
	d.mu.Unlock()

	// Refresh notifies on its own failure.
	_ = d.Refresh(ctx, page, pageSize)
}

func (d *Dashboard) fail(ctx context.Context, op string, err error, fallback string) error {
	callErr := domain.ClassifyError(err)

	d.logger.Error().Err(err).
		Str("operation", op).
		Str("failure", callErr.Kind.String()).
		Int("status", callErr.Status).
		Msg("transaction service call failed")

	d.notifier.Failure(ctx, callErr.ServiceMessage(fallback))
	return callErr
}

func (d *Dashboard) failUpload(ctx context.Context, err error) error {
	callErr := domain.ClassifyError(err)

	d.logger.Error().Err(err).
		Str("operation", "upload").
		Str("failure", callErr.Kind.String()).
		Int("status", callErr.Status).
		Int("rejected_rows", len(callErr.Rows)).
		Msg("transaction import failed")

	switch callErr.Kind {
	case domain.FailureImport:
		d.notifier.Failure(ctx, callErr.ServiceMessage(MsgUploadRejected))
		if reportErr := d.deliverReport(ctx, callErr.Rows); reportErr != nil {
			d.logger.Error().Err(reportErr).Msg("error report delivery failed")
			d.notifier.Failure(ctx, MsgReportFailed)
		}
	case domain.FailureRejected:
		d.notifier.Failure(ctx, callErr.ServiceMessage(MsgUploadRejected))
	default:
		d.notifier.Failure(ctx, MsgUploadFailed)
	}

	return callErr
}

func (d *Dashboard) deliverReport(ctx context.Context, rows []domain.ImportErrorRow) error {
	content, err := d.encoder.Encode(rows)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := d.downloader.Download(ctx, domain.ReportFileName, content); err != nil {
		return fmt.Errorf("download report: %w", err)
	}
	return nil
}

func (d *Dashboard) beginLoading() {
	d.mu.Lock()
	d.inflight++
	d.mu.Unlock()
}

func (d *Dashboard) endLoading() {
	d.mu.Lock()
	d.inflight--
	d.settled = true
	d.mu.Unlock()
}

func (d *Dashboard) visibleLocked(id int64) bool {
	return slices.ContainsFunc(d.transactions, func(t domain.Transaction) bool {
		return t.ID == id
	})
}

func (d *Dashboard) pruneSelectionLocked() {
	for id := range d.selection {
		if !d.visibleLocked(id) {
			delete(d.selection, id)
		}
	}
}

func (d *Dashboard) selectedIDsLocked() []int64 {
	ids := make([]int64, 0, len(d.selection))
	for id := range d.selection {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
