package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Form validation errors
var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrEmptyDescription  = errors.New("description is required")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidCurrency   = errors.New("invalid currency code")
	ErrDescriptionLength = errors.New("description too long")
)

// Date layouts
const (
	DateLayout        = "02-01-2006"  // canonical DD-MM-YYYY
	ISODateLayout     = "2006-01-02"  // date input
	DisplayDateLayout = "02 Jan 2006" // list rendering
)

const (
	MaxDescriptionLength = 255
	DefaultCurrency      = "USD"
)

// FormCurrencies are the currencies offered by the transaction form.
var FormCurrencies = []string{"USD", "EUR", "GBP"}

// Valid currency codes (ISO 4217)
var validCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true,
	"CNY": true, "AUD": true, "CAD": true, "CHF": true,
	"SEK": true, "NZD": true, "KRW": true, "SGD": true,
	"NOK": true, "MXN": true, "INR": true, "BRL": true,
	"ZAR": true, "RUB": true, "TRY": true, "HKD": true,
}

// ValidateFormData checks a create/edit payload before it is sent.
func ValidateFormData(data TransactionFormData) error {
	if _, err := ParseDate(data.Date); err != nil {
		return err
	}

	desc := strings.TrimSpace(data.Description)
	if desc == "" {
		return ErrEmptyDescription
	}
	if len(desc) > MaxDescriptionLength {
		return fmt.Errorf("%w: exceeds %d characters", ErrDescriptionLength, MaxDescriptionLength)
	}

	if _, err := ParseAmount(data.Amount); err != nil {
		return err
	}

	return ValidateCurrency(data.Currency)
}

// ValidateCurrency validates currency code
func ValidateCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	if !validCurrencies[currency] {
		return fmt.Errorf("%w: %s is not a valid ISO 4217 currency code", ErrInvalidCurrency, currency)
	}

	return nil
}

// ParseAmount parses a decimal amount string.
func ParseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return d, nil
}

// ParseDate parses a canonical DD-MM-YYYY date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, expected DD-MM-YYYY", ErrInvalidDate, date)
	}
	return t, nil
}

// DateFromISO converts YYYY-MM-DD into the canonical DD-MM-YYYY form.
func DateFromISO(iso string) (string, error) {
	t, err := time.Parse(ISODateLayout, iso)
	if err != nil {
		return "", fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDate, iso)
	}
	return t.Format(DateLayout), nil
}

// DateToISO converts a canonical date to YYYY-MM-DD.
func DateToISO(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.Format(ISODateLayout), nil
}

// DisplayDate renders a canonical date as "15 Mar 2024". Unparseable input
// is returned unchanged.
func DisplayDate(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format(DisplayDateLayout)
}

// FormatAmount renders an amount with two decimals prefixed by its currency.
func FormatAmount(amount decimal.Decimal, currency string) string {
	return currency + " " + amount.StringFixed(2)
}
