package domain

import (
	"github.com/shopspring/decimal"
)

// Transaction is a single financial record owned by the transaction service.
// Identity and AmountINR are always server-assigned.
type Transaction struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      string          `json:"amount"`
	Currency    string          `json:"currency"`
	AmountINR   decimal.Decimal `json:"amountInr"`
	IsDeleted   bool            `json:"isDeleted"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// FormData returns the editable subset of the transaction.
func (t *Transaction) FormData() TransactionFormData {
	return TransactionFormData{
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Currency:    t.Currency,
	}
}

// TransactionFormData is the input shape for create and edit.
type TransactionFormData struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
}

// TransactionPage is one page of transactions as returned by the service.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	CurrentPage  int           `json:"currentPage"`
	TotalPages   int           `json:"totalPages"`
	TotalCount   int           `json:"totalCount"`
}
