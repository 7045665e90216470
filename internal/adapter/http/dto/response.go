package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/txdash/internal/domain"
	"github.com/iho/txdash/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// TransactionResponse represents a transaction row in API responses.
type TransactionResponse struct {
	ID               int64           `json:"id"`
	Date             string          `json:"date"`
	DisplayDate      string          `json:"displayDate"`
	ISODate          string          `json:"isoDate"`
	Description      string          `json:"description"`
	Amount           string          `json:"amount"`
	Currency         string          `json:"currency"`
	DisplayAmount    string          `json:"displayAmount"`
	AmountINR        decimal.Decimal `json:"amountInr"`
	DisplayAmountINR string          `json:"displayAmountInr"`
	Selected         bool            `json:"selected"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t domain.Transaction, selected bool) TransactionResponse {
	displayAmount := t.Currency + " " + t.Amount
	if amount, err := domain.ParseAmount(t.Amount); err == nil {
		displayAmount = domain.FormatAmount(amount, t.Currency)
	}

	// Empty when the stored date is not canonical; date inputs start blank.
	isoDate, _ := domain.DateToISO(t.Date)

	return TransactionResponse{
		ID:               t.ID,
		Date:             t.Date,
		DisplayDate:      domain.DisplayDate(t.Date),
		ISODate:          isoDate,
		Description:      t.Description,
		Amount:           t.Amount,
		Currency:         t.Currency,
		DisplayAmount:    displayAmount,
		AmountINR:        t.AmountINR,
		DisplayAmountINR: domain.FormatAmount(t.AmountINR, "INR"),
		Selected:         selected,
	}
}

// FormResponse represents the transaction form.
type FormResponse struct {
	Open   bool                 `json:"open"`
	Mode   string               `json:"mode"`
	Target *TransactionResponse `json:"target,omitempty"`
}

// DashboardResponse is the full dashboard snapshot.
type DashboardResponse struct {
	Loading      bool                  `json:"loading"`
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   domain.PageState      `json:"pagination"`
	HasNext      bool                  `json:"hasNext"`
	HasPrev      bool                  `json:"hasPrev"`
	PageSizes    []int                 `json:"pageSizes"`
	Currencies   []string              `json:"currencies"`
	Selection    []int64               `json:"selection"`
	AllSelected  bool                  `json:"allSelected"`
	Form         FormResponse          `json:"form"`
}

// DashboardFromState converts a dashboard snapshot to a response.
func DashboardFromState(s usecase.DashboardState) DashboardResponse {
	transactions := make([]TransactionResponse, len(s.Transactions))
	for i, t := range s.Transactions {
		transactions[i] = TransactionFromDomain(t, s.IsSelected(t.ID))
	}

	form := FormResponse{Open: s.Form.Open, Mode: s.Form.Mode.String()}
	if s.Form.Target != nil {
		target := TransactionFromDomain(*s.Form.Target, false)
		form.Target = &target
	}

	selection := s.Selection
	if selection == nil {
		selection = []int64{}
	}

	return DashboardResponse{
		Loading:      s.Loading,
		Transactions: transactions,
		Pagination:   s.Page,
		HasNext:      s.Page.HasNext(),
		HasPrev:      s.Page.HasPrev(),
		PageSizes:    domain.PageSizes,
		Currencies:   domain.FormCurrencies,
		Selection:    selection,
		AllSelected:  s.AllSelected(),
		Form:         form,
	}
}
