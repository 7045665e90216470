package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/txdash/internal/domain"
	"github.com/iho/txdash/internal/usecase"
	"github.com/iho/txdash/internal/usecase/mocks"
)

type dashboardFixture struct {
	client     *mocks.MockTransactionClient
	notifier   *mocks.MockNotifier
	confirmer  *mocks.MockConfirmer
	encoder    *mocks.MockReportEncoder
	downloader *mocks.MockReportDownloader
	dashboard  *usecase.Dashboard
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &dashboardFixture{
		client:     mocks.NewMockTransactionClient(ctrl),
		notifier:   mocks.NewMockNotifier(ctrl),
		confirmer:  mocks.NewMockConfirmer(ctrl),
		encoder:    mocks.NewMockReportEncoder(ctrl),
		downloader: mocks.NewMockReportDownloader(ctrl),
	}
	f.dashboard = usecase.NewDashboard(usecase.DashboardConfig{
		Client:     f.client,
		Notifier:   f.notifier,
		Confirmer:  f.confirmer,
		Encoder:    f.encoder,
		Downloader: f.downloader,
		Logger:     zerolog.Nop(),
	})
	return f
}

// loaded initializes the dashboard with page.
func (f *dashboardFixture) loaded(t *testing.T, page *domain.TransactionPage, pageSize int) {
	t.Helper()

	f.client.EXPECT().List(gomock.Any(), page.CurrentPage, pageSize).Return(page, nil)
	if err := f.dashboard.Refresh(context.Background(), page.CurrentPage, pageSize); err != nil {
		t.Fatalf("unexpected refresh error: %v", err)
	}
}

func txn(id int64) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Date:        "15-03-2024",
		Description: "Test Transaction",
		Amount:      "100",
		Currency:    "USD",
		AmountINR:   decimal.NewFromInt(8250),
	}
}

func pageOf(current, totalPages, totalCount int, ids ...int64) *domain.TransactionPage {
	page := &domain.TransactionPage{CurrentPage: current, TotalPages: totalPages, TotalCount: totalCount}
	for _, id := range ids {
		page.Transactions = append(page.Transactions, txn(id))
	}
	return page
}

var formData = domain.TransactionFormData{
	Date:        "15-03-2024",
	Description: "Test Transaction",
	Amount:      "100",
	Currency:    "USD",
}

func TestDashboard_Initialize(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	if !f.dashboard.State().Loading {
		t.Fatal("expected dashboard to start loading")
	}

	f.client.EXPECT().List(gomock.Any(), 1, domain.DefaultPageSize).Return(pageOf(1, 2, 15, 1), nil).Times(1)

	if err := f.dashboard.Initialize(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.dashboard.Initialize(ctx); err != nil {
		t.Fatalf("unexpected error on second initialize: %v", err)
	}

	state := f.dashboard.State()
	if state.Loading {
		t.Error("expected loading to be cleared")
	}

	want := domain.PageState{CurrentPage: 1, TotalPages: 2, TotalCount: 15, PageSize: domain.DefaultPageSize}
	if state.Page != want {
		t.Errorf("expected page %+v, got %+v", want, state.Page)
	}
	if len(state.Transactions) != 1 || !sameTransaction(state.Transactions[0], txn(1)) {
		t.Errorf("expected list [T1], got %+v", state.Transactions)
	}
}

// sameTransaction compares field by field; decimals are compared by value.
func sameTransaction(a, b domain.Transaction) bool {
	return a.ID == b.ID &&
		a.Date == b.Date &&
		a.Description == b.Description &&
		a.Amount == b.Amount &&
		a.Currency == b.Currency &&
		a.AmountINR.Equal(b.AmountINR) &&
		a.IsDeleted == b.IsDeleted &&
		a.CreatedAt == b.CreatedAt &&
		a.UpdatedAt == b.UpdatedAt
}

func TestDashboard_RefreshReplacesListWithFetchedData(t *testing.T) {
	f := newDashboardFixture(t)

	fetched := txn(7)
	fetched.AmountINR = decimal.RequireFromString("8250.00")
	f.client.EXPECT().List(gomock.Any(), 1, 10).Return(&domain.TransactionPage{
		Transactions: []domain.Transaction{fetched},
		CurrentPage:  1,
		TotalPages:   1,
		TotalCount:   1,
	}, nil)

	if err := f.dashboard.Refresh(context.Background(), 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := f.dashboard.State()
	if len(state.Transactions) != 1 || !sameTransaction(state.Transactions[0], fetched) {
		t.Fatalf("expected list [T7], got %+v", state.Transactions)
	}
	if !state.Transactions[0].AmountINR.Equal(decimal.NewFromInt(8250)) {
		t.Errorf("expected amount in INR 8250, got %s", state.Transactions[0].AmountINR)
	}
}

func TestDashboard_RefreshSuccessIsSilent(t *testing.T) {
	f := newDashboardFixture(t)

	f.client.EXPECT().List(gomock.Any(), 1, 10).Return(pageOf(1, 1, 1, 1), nil)
	f.notifier.EXPECT().Success(gomock.Any(), gomock.Any()).Times(0)
	f.notifier.EXPECT().Failure(gomock.Any(), gomock.Any()).Times(0)

	if err := f.dashboard.Refresh(context.Background(), 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDashboard_RefreshClampsOutOfRangePage(t *testing.T) {
	tests := []struct {
		name   string
		result *domain.TransactionPage
		want   domain.PageState
	}{
		{
			name:   "empty result with page zero",
			result: &domain.TransactionPage{CurrentPage: 0, TotalPages: 0, TotalCount: 0},
			want:   domain.PageState{CurrentPage: 1, TotalPages: 0, TotalCount: 0, PageSize: 10},
		},
		{
			name:   "page past the end",
			result: pageOf(5, 2, 15),
			want:   domain.PageState{CurrentPage: 2, TotalPages: 2, TotalCount: 15, PageSize: 10},
		},
		{
			name:   "valid page is stored as sent",
			result: pageOf(2, 2, 15, 11),
			want:   domain.PageState{CurrentPage: 2, TotalPages: 2, TotalCount: 15, PageSize: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDashboardFixture(t)
			f.client.EXPECT().List(gomock.Any(), tt.result.CurrentPage, 10).Return(tt.result, nil)

			if err := f.dashboard.Refresh(context.Background(), tt.result.CurrentPage, 10); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			state := f.dashboard.State()
			if state.Page != tt.want {
				t.Errorf("expected page %+v, got %+v", tt.want, state.Page)
			}
			if !state.Page.Valid() {
				t.Errorf("expected a valid page snapshot, got %+v", state.Page)
			}
		})
	}
}

func TestDashboard_LoadingWhileCallInFlight(t *testing.T) {
	t.Run("refresh", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.loaded(t, pageOf(1, 1, 1, 1), 10)

		var loadingDuringCall bool
		f.client.EXPECT().List(gomock.Any(), 1, 10).DoAndReturn(
			func(ctx context.Context, page, limit int) (*domain.TransactionPage, error) {
				loadingDuringCall = f.dashboard.State().Loading
				return pageOf(1, 1, 1, 1), nil
			})

		if err := f.dashboard.Refresh(context.Background(), 1, 10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !loadingDuringCall {
			t.Error("expected loading while the list call is pending")
		}
		if f.dashboard.State().Loading {
			t.Error("expected loading cleared after the call")
		}
	})

	t.Run("upload", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.loaded(t, pageOf(1, 1, 1, 1), 10)

		file := domain.UploadFile{Name: "transactions.csv", Size: 64, Content: strings.NewReader("x")}

		var loadingDuringUpload bool
		f.client.EXPECT().Upload(gomock.Any(), file).DoAndReturn(
			func(ctx context.Context, file domain.UploadFile) (string, error) {
				loadingDuringUpload = f.dashboard.State().Loading
				return "", domain.NewTransportError(errors.New("connection refused"))
			})
		f.notifier.EXPECT().Failure(gomock.Any(), usecase.MsgUploadFailed)

		if err := f.dashboard.UploadCSV(context.Background(), file); err == nil {
			t.Fatal("expected error")
		}
		if !loadingDuringUpload {
			t.Error("expected loading while the upload is pending")
		}
		if f.dashboard.State().Loading {
			t.Error("expected loading cleared after a failed upload")
		}
	})
}

func TestDashboard_RefreshFailureKeepsLastGoodSnapshot(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()
	f.loaded(t, pageOf(1, 2, 15, 1, 2), 10)
	before := f.dashboard.State()

	f.client.EXPECT().List(gomock.Any(), 2, 10).Return(nil, domain.NewTransportError(errors.New("connection reset")))
	f.notifier.EXPECT().Failure(gomock.Any(), usecase.MsgFetchFailed)

	err := f.dashboard.ChangePage(ctx, 2)
	if !errors.Is(err, domain.ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}

	after := f.dashboard.State()
	if after.Loading {
		t.Error("expected loading to be cleared after failure")
	}
	if after.Page != before.Page {
		t.Errorf("expected pagination to be untouched, got %+v", after.Page)
	}
	if !slices.Equal(after.VisibleIDs(), before.VisibleIDs()) {
		t.Errorf("expected list to be untouched, got %v", after.VisibleIDs())
	}
}

func TestDashboard_ChangePageSize(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()
	f.loaded(t, pageOf(3, 5, 45, 21, 22), 10)
	f.dashboard.ToggleSelect(21)

	f.client.EXPECT().List(gomock.Any(), 1, 20).Return(pageOf(1, 3, 45, 1, 2), nil)

	if err := f.dashboard.ChangePageSize(ctx, 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := f.dashboard.State()
	if state.Page.PageSize != 20 || state.Page.CurrentPage != 1 {
		t.Errorf("expected page 1 at size 20, got %+v", state.Page)
	}
	if len(state.Selection) != 0 {
		t.Errorf("expected selection cleared, got %v", state.Selection)
	}
}

func TestDashboard_ChangePageSizeRejectsUnknownSize(t *testing.T) {
	f := newDashboardFixture(t)
	f.loaded(t, pageOf(1, 1, 1, 1), 10)

	err := f.dashboard.ChangePageSize(context.Background(), 15)
	if !errors.Is(err, domain.ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
	if f.dashboard.State().Page.PageSize != 10 {
		t.Error("expected page size to stay at 10")
	}
}

func TestDashboard_ChangePageUsesCurrentSize(t *testing.T) {
	f := newDashboardFixture(t)
	f.loaded(t, pageOf(1, 4, 80, 1, 2), 20)
	f.dashboard.SelectAll([]int64{1, 2})

	f.client.EXPECT().List(gomock.Any(), 2, 20).Return(pageOf(2, 4, 80, 3, 4), nil)

	if err := f.dashboard.ChangePage(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := f.dashboard.State()
	if state.Page.CurrentPage != 2 {
		t.Errorf("expected page 2, got %d", state.Page.CurrentPage)
	}
	if len(state.Selection) != 0 {
		t.Errorf("expected selection cleared on navigation, got %v", state.Selection)
	}
}

func TestDashboard_CreateTransaction(t *testing.T) {
	tests := []struct {
		name        string
		createErr   error
		message     string
		wantNotice  string
		wantSuccess bool
	}{
		{
			name:        "success shows service message",
			message:     "Transaction added",
			wantNotice:  "Transaction added",
			wantSuccess: true,
		},
		{
			name:        "success without message uses fallback",
			wantNotice:  usecase.MsgAddSuccess,
			wantSuccess: true,
		},
		{
			name:       "rejection shows service error",
			createErr:  domain.NewStatusError(http.StatusBadRequest, "Duplicate transaction", nil),
			wantNotice: "Duplicate transaction",
		},
		{
			name:       "rejection without message uses fallback",
			createErr:  domain.NewStatusError(http.StatusBadRequest, "", nil),
			wantNotice: usecase.MsgAddFailed,
		},
		{
			name:       "transport failure is generic",
			createErr:  domain.NewTransportError(errors.New("dial tcp: refused")),
			wantNotice: usecase.MsgAddFailed,
		},
		{
			name:       "server error is generic",
			createErr:  domain.NewStatusError(http.StatusInternalServerError, "stack trace", nil),
			wantNotice: usecase.MsgAddFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDashboardFixture(t)
			ctx := context.Background()
			f.loaded(t, pageOf(2, 3, 25, 11), 10)
			if err := f.dashboard.OpenForm(usecase.FormCreate, nil); err != nil {
				t.Fatalf("open form: %v", err)
			}

			if tt.wantSuccess {
				gomock.InOrder(
					f.client.EXPECT().Create(gomock.Any(), formData).Return(tt.message, nil),
					f.client.EXPECT().List(gomock.Any(), 2, 10).Return(pageOf(2, 3, 26, 11, 12), nil).Times(1),
					f.notifier.EXPECT().Success(gomock.Any(), tt.wantNotice),
				)
			} else {
				f.client.EXPECT().Create(gomock.Any(), formData).Return("", tt.createErr)
				f.notifier.EXPECT().Failure(gomock.Any(), tt.wantNotice)
			}

			err := f.dashboard.CreateTransaction(ctx, formData)

			state := f.dashboard.State()
			if tt.wantSuccess {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if state.Form.Open {
					t.Error("expected form closed after success")
				}
				if !slices.Equal(state.VisibleIDs(), []int64{11, 12}) {
					t.Errorf("expected refetched list, got %v", state.VisibleIDs())
				}
				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !state.Form.Open {
				t.Error("expected form to stay open after failure")
			}
			if !slices.Equal(state.VisibleIDs(), []int64{11}) {
				t.Errorf("expected list untouched, got %v", state.VisibleIDs())
			}
		})
	}
}

func TestDashboard_EditTransactionShowsFixedMessage(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()
	f.loaded(t, pageOf(1, 1, 1, 7), 10)

	target := txn(7)
	if err := f.dashboard.OpenForm(usecase.FormEdit, &target); err != nil {
		t.Fatalf("open form: %v", err)
	}

	edited := formData
	edited.Amount = "250"

	gomock.InOrder(
		f.client.EXPECT().Update(gomock.Any(), int64(7), edited).Return("Row 7 changed", nil),
		f.client.EXPECT().List(gomock.Any(), 1, 10).Return(pageOf(1, 1, 1, 7), nil),
		f.notifier.EXPECT().Success(gomock.Any(), usecase.MsgEditSuccess),
	)

	if err := f.dashboard.EditTransaction(ctx, 7, edited); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := f.dashboard.State()
	if state.Form.Open || state.Form.Target != nil {
		t.Errorf("expected form closed and target cleared, got %+v", state.Form)
	}
}

func TestDashboard_EditTransactionFailure(t *testing.T) {
	f := newDashboardFixture(t)
	f.loaded(t, pageOf(1, 1, 1, 7), 10)

	target := txn(7)
	_ = f.dashboard.OpenForm(usecase.FormEdit, &target)

	f.client.EXPECT().Update(gomock.Any(), int64(7), formData).Return("", domain.NewStatusError(http.StatusBadRequest, "", nil))
	f.notifier.EXPECT().Failure(gomock.Any(), usecase.MsgEditFailed)

	if err := f.dashboard.EditTransaction(context.Background(), 7, formData); err == nil {
		t.Fatal("expected error")
	}

	state := f.dashboard.State()
	if !state.Form.Open || state.Form.Target == nil || state.Form.Target.ID != 7 {
		t.Errorf("expected edit form to stay open on target 7, got %+v", state.Form)
	}
}

func TestDashboard_EditWithoutTargetIsNoop(t *testing.T) {
	f := newDashboardFixture(t)
	f.loaded(t, pageOf(1, 1, 2, 7, 8), 10)

	err := f.dashboard.EditTransaction(context.Background(), 7, formData)
	if !errors.Is(err, domain.ErrNoEditTarget) {
		t.Fatalf("expected ErrNoEditTarget, got %v", err)
	}

	target := txn(8)
	_ = f.dashboard.OpenForm(usecase.FormEdit, &target)

	err = f.dashboard.EditTransaction(context.Background(), 7, formData)
	if !errors.Is(err, domain.ErrNoEditTarget) {
		t.Fatalf("expected ErrNoEditTarget for mismatched id, got %v", err)
	}
}

func TestDashboard_DeleteDeclinedSendsNothing(t *testing.T) {
	f := newDashboardFixture(t)
	f.loaded(t, pageOf(1, 1, 2, 1, 2), 10)
	f.dashboard.ToggleSelect(2)
	before := f.dashboard.State()

	f.confirmer.EXPECT().Confirm(gomock.Any(), usecase.PromptDeleteOne).Return(false)

	err := f.dashboard.DeleteTransaction(context.Background(), 1)
	if !errors.Is(err, domain.ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}

	after := f.dashboard.State()
	if after.Page != before.Page || !slices.Equal(after.Selection, before.Selection) || !slices.Equal(after.VisibleIDs(), before.VisibleIDs()) {
		t.Errorf("expected state unchanged, before %+v after %+v", before, after)
	}
}

func TestDashboard_DeleteTransaction(t *testing.T) {
	t.Run("confirmed success", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.loaded(t, pageOf(1, 1, 2, 1, 2), 10)

		gomock.InOrder(
			f.confirmer.EXPECT().Confirm(gomock.Any(), usecase.PromptDeleteOne).Return(true),
			f.client.EXPECT().Delete(gomock.Any(), int64(1)).Return("Transaction deleted", nil),
			f.client.EXPECT().List(gomock.Any(), 1, 10).Return(pageOf(1, 1, 1, 2), nil),
			f.notifier.EXPECT().Success(gomock.Any(), "Transaction deleted"),
		)

		if err := f.dashboard.DeleteTransaction(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ids := f.dashboard.State().VisibleIDs(); !slices.Equal(ids, []int64{2}) {
			t.Errorf("expected refetched list [2], got %v", ids)
		}
	})

	t.Run("confirmed rejection", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.loaded(t, pageOf(1, 1, 2, 1, 2), 10)

		f.confirmer.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(true)
		f.client.EXPECT().Delete(gomock.Any(), int64(1)).Return("", domain.NewStatusError(http.StatusNotFound, "Transaction not found", nil))
		f.notifier.EXPECT().Failure(gomock.Any(), "Transaction not found")

		if err := f.dashboard.DeleteTransaction(context.Background(), 1); !errors.Is(err, domain.ErrRequestRejected) {
			t.Fatalf("expected rejection, got %v", err)
		}
	})
}

func TestDashboard_DeleteSelected(t *testing.T) {
	t.Run("empty selection is a no-op", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.loaded(t, pageOf(1, 1, 2, 1, 2), 10)

		if err := f.dashboard.DeleteSelected(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("success clears selection", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.loaded(t, pageOf(1, 1, 3, 1, 2, 3), 10)
		f.dashboard.ToggleSelect(3)
		f.dashboard.ToggleSelect(1)

		gomock.InOrder(
			f.confirmer.EXPECT().Confirm(gomock.Any(), "Are you sure you want to delete 2 selected transactions?").Return(true),
			f.client.EXPECT().DeleteMany(gomock.Any(), []int64{1, 3}).Return("2 transactions deleted", nil),
			f.client.EXPECT().List(gomock.Any(), 1, 10).Return(pageOf(1, 1, 1, 2), nil),
			f.notifier.EXPECT().Success(gomock.Any(), "2 transactions deleted"),
		)

		if err := f.dashboard.DeleteSelected(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel := f.dashboard.State().Selection; len(sel) != 0 {
			t.Errorf("expected empty selection, got %v", sel)
		}
	})

	t.Run("failure keeps selection", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.loaded(t, pageOf(1, 1, 2, 1, 2), 10)
		f.dashboard.SelectAll([]int64{1, 2})

		f.confirmer.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(true)
		f.client.EXPECT().DeleteMany(gomock.Any(), []int64{1, 2}).Return("", domain.NewTransportError(errors.New("timeout")))
		f.notifier.EXPECT().Failure(gomock.Any(), usecase.MsgDeleteSelectedFailed)

		if err := f.dashboard.DeleteSelected(context.Background()); err == nil {
			t.Fatal("expected error")
		}
		if sel := f.dashboard.State().Selection; !slices.Equal(sel, []int64{1, 2}) {
			t.Errorf("expected selection preserved, got %v", sel)
		}
	})

	t.Run("declined sends nothing", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.loaded(t, pageOf(1, 1, 2, 1, 2), 10)
		f.dashboard.ToggleSelect(1)

		f.confirmer.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(false)

		if err := f.dashboard.DeleteSelected(context.Background()); !errors.Is(err, domain.ErrNotConfirmed) {
			t.Fatalf("expected ErrNotConfirmed, got %v", err)
		}
	})
}

func TestDashboard_Selection(t *testing.T) {
	f := newDashboardFixture(t)
	f.loaded(t, pageOf(1, 1, 3, 1, 2, 3), 10)

	f.dashboard.SelectAll([]int64{})
	if sel := f.dashboard.State().Selection; len(sel) != 0 {
		t.Fatalf("expected empty selection, got %v", sel)
	}

	f.dashboard.SelectAll([]int64{3, 1, 2})
	state := f.dashboard.State()
	if !slices.Equal(state.Selection, []int64{1, 2, 3}) {
		t.Fatalf("expected all visible selected, got %v", state.Selection)
	}
	if !state.AllSelected() {
		t.Error("expected AllSelected to be true")
	}

	f.dashboard.ToggleSelect(2)
	f.dashboard.ToggleSelect(99)
	state = f.dashboard.State()
	if !slices.Equal(state.Selection, []int64{1, 3}) {
		t.Fatalf("expected [1 3], got %v", state.Selection)
	}
	if state.AllSelected() || !state.IsSelected(3) || state.IsSelected(2) {
		t.Errorf("unexpected selection queries for %v", state.Selection)
	}

	f.dashboard.SelectAll([]int64{1, 42})
	if sel := f.dashboard.State().Selection; !slices.Equal(sel, []int64{1}) {
		t.Errorf("expected invisible ids to be ignored, got %v", sel)
	}
}

func TestDashboard_RefreshPrunesSelection(t *testing.T) {
	f := newDashboardFixture(t)
	f.loaded(t, pageOf(1, 1, 3, 1, 2, 3), 10)
	f.dashboard.SelectAll([]int64{1, 2})

	f.client.EXPECT().List(gomock.Any(), 1, 10).Return(pageOf(1, 1, 2, 2, 3), nil)
	if err := f.dashboard.Refresh(context.Background(), 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sel := f.dashboard.State().Selection; !slices.Equal(sel, []int64{2}) {
		t.Errorf("expected selection pruned to [2], got %v", sel)
	}
}

func TestDashboard_UploadCSVValidation(t *testing.T) {
	tests := []struct {
		name string
		file domain.UploadFile
	}{
		{name: "not a csv", file: domain.UploadFile{Name: "report.pdf", Size: 10}},
		{name: "too large", file: domain.UploadFile{Name: "big.csv", Size: domain.MaxUploadSize + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDashboardFixture(t)
			f.loaded(t, pageOf(1, 1, 1, 1), 10)

			err := f.dashboard.UploadCSV(context.Background(), tt.file)
			if !errors.Is(err, domain.ErrValidationRejected) {
				t.Fatalf("expected ErrValidationRejected, got %v", err)
			}
			if f.dashboard.State().Loading {
				t.Error("validation must not touch loading")
			}
		})
	}
}

func TestDashboard_UploadCSV(t *testing.T) {
	file := domain.UploadFile{Name: "transactions.csv", Size: 128, Content: strings.NewReader("Date,Description,Amount,Currency\n")}

	t.Run("success refreshes and notifies", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.loaded(t, pageOf(1, 1, 1, 1), 10)

		gomock.InOrder(
			f.client.EXPECT().Upload(gomock.Any(), file).Return("3 transactions uploaded", nil).Times(1),
			f.client.EXPECT().List(gomock.Any(), 1, 10).Return(pageOf(1, 1, 4, 1, 2, 3, 4), nil).Times(1),
			f.notifier.EXPECT().Success(gomock.Any(), "3 transactions uploaded"),
		)

		if err := f.dashboard.UploadCSV(context.Background(), file); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		state := f.dashboard.State()
		if state.Loading {
			t.Error("expected loading cleared")
		}
		if len(state.Transactions) != 4 {
			t.Errorf("expected 4 transactions, got %d", len(state.Transactions))
		}
	})

	t.Run("row rejection produces report", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.loaded(t, pageOf(1, 1, 1, 1), 10)

		rows := []domain.ImportErrorRow{{
			Row:             "1",
			TransactionData: domain.TransactionFormData{Date: "01-01-2024", Description: "x", Amount: "5", Currency: "USD"},
			Reason:          "bad row",
		}}
		report := []byte("Date,Description,Amount,Currency,Error Reason\n01-01-2024,x,5,USD,\"bad row\"")

		f.client.EXPECT().Upload(gomock.Any(), file).Return("", domain.NewStatusError(http.StatusBadRequest, "Some rows are invalid", rows))
		f.notifier.EXPECT().Failure(gomock.Any(), "Some rows are invalid")
		f.encoder.EXPECT().Encode(rows).Return(report, nil)
		f.downloader.EXPECT().Download(gomock.Any(), "upload_errors.csv", report).Return(nil)

		err := f.dashboard.UploadCSV(context.Background(), file)
		if !errors.Is(err, domain.ErrRequestRejected) {
			t.Fatalf("expected rejection, got %v", err)
		}
		if f.dashboard.State().Loading {
			t.Error("expected loading cleared")
		}
	})

	t.Run("report delivery failure is reported", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.loaded(t, pageOf(1, 1, 1, 1), 10)

		rows := []domain.ImportErrorRow{{Row: "2", Reason: "bad currency"}}

		f.client.EXPECT().Upload(gomock.Any(), file).Return("", domain.NewStatusError(http.StatusBadRequest, "", rows))
		f.notifier.EXPECT().Failure(gomock.Any(), usecase.MsgUploadRejected)
		f.encoder.EXPECT().Encode(rows).Return([]byte("csv"), nil)
		f.downloader.EXPECT().Download(gomock.Any(), domain.ReportFileName, []byte("csv")).Return(errors.New("disk full"))
		f.notifier.EXPECT().Failure(gomock.Any(), usecase.MsgReportFailed)

		if err := f.dashboard.UploadCSV(context.Background(), file); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("rejection without rows produces no report", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.loaded(t, pageOf(1, 1, 1, 1), 10)

		f.client.EXPECT().Upload(gomock.Any(), file).Return("", domain.NewStatusError(http.StatusBadRequest, "Empty file", nil))
		f.notifier.EXPECT().Failure(gomock.Any(), "Empty file")

		if err := f.dashboard.UploadCSV(context.Background(), file); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("transport failure is generic", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.loaded(t, pageOf(1, 1, 1, 1), 10)

		f.client.EXPECT().Upload(gomock.Any(), file).Return("", domain.NewTransportError(errors.New("EOF")))
		f.notifier.EXPECT().Failure(gomock.Any(), usecase.MsgUploadFailed)

		if err := f.dashboard.UploadCSV(context.Background(), file); err == nil {
			t.Fatal("expected error")
		}
		if f.dashboard.State().Loading {
			t.Error("expected loading cleared")
		}
	})
}

func TestDashboard_Forms(t *testing.T) {
	f := newDashboardFixture(t)

	if err := f.dashboard.OpenForm(usecase.FormEdit, nil); !errors.Is(err, domain.ErrEditTargetRequired) {
		t.Fatalf("expected ErrEditTargetRequired, got %v", err)
	}

	target := txn(5)
	if err := f.dashboard.OpenForm(usecase.FormEdit, &target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	target.Description = "mutated by caller"

	state := f.dashboard.State()
	if !state.Form.Open || state.Form.Mode != usecase.FormEdit || state.Form.Target.Description != "Test Transaction" {
		t.Fatalf("expected edit form on a copy of the target, got %+v", state.Form)
	}

	if err := f.dashboard.OpenForm(usecase.FormCreate, &target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state = f.dashboard.State()
	if state.Form.Mode != usecase.FormCreate || state.Form.Target != nil {
		t.Fatalf("expected create form without target, got %+v", state.Form)
	}

	f.dashboard.CloseForm()
	if state = f.dashboard.State(); state.Form.Open || state.Form.Target != nil {
		t.Fatalf("expected closed form, got %+v", state.Form)
	}
}
