package dto

import (
	"strings"
	"time"

	"github.com/iho/txdash/internal/domain"
	"github.com/iho/txdash/internal/usecase"
)

// TransactionRequest is the body of a create or edit request. Date may be
// given as DD-MM-YYYY or as YYYY-MM-DD from a date input.
type TransactionRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
}

// ToFormData converts the request to form data in canonical form.
func (r *TransactionRequest) ToFormData() (domain.TransactionFormData, error) {
	date := strings.TrimSpace(r.Date)
	if _, err := time.Parse(domain.ISODateLayout, date); err == nil {
		converted, err := domain.DateFromISO(date)
		if err != nil {
			return domain.TransactionFormData{}, err
		}
		date = converted
	}

	currency := strings.ToUpper(strings.TrimSpace(r.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	data := domain.TransactionFormData{
		Date:        date,
		Description: strings.TrimSpace(r.Description),
		Amount:      strings.TrimSpace(r.Amount),
		Currency:    currency,
	}

	if err := domain.ValidateFormData(data); err != nil {
		return domain.TransactionFormData{}, err
	}

	return data, nil
}

// PageRequest selects a page.
type PageRequest struct {
	Page int `json:"page"`
}

// PageSizeRequest selects a page size.
type PageSizeRequest struct {
	PageSize int `json:"pageSize"`
}

// SelectionRequest replaces the selection.
type SelectionRequest struct {
	IDs []int64 `json:"ids"`
}

// FormRequest opens the transaction form. TargetID is required in edit mode.
type FormRequest struct {
	Mode     string `json:"mode"`
	TargetID int64  `json:"targetId,omitempty"`
}

// FormMode parses Mode.
func (r *FormRequest) FormMode() (usecase.FormMode, bool) {
	switch r.Mode {
	case "", "create":
		return usecase.FormCreate, true
	case "edit":
		return usecase.FormEdit, true
	default:
		return usecase.FormCreate, false
	}
}
