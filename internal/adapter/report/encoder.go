package report

import (
	"strings"

	"github.com/iho/txdash/internal/domain"
)

var header = []string{"Date", "Description", "Amount", "Currency", "Error Reason"}

// CSVEncoder renders rejected import rows as the upload error report.
// Form fields are written verbatim; only the reason is quoted.
type CSVEncoder struct{}

// NewCSVEncoder creates a new CSVEncoder.
func NewCSVEncoder() *CSVEncoder {
	return &CSVEncoder{}
}

// Encode returns the header line followed by one line per row, joined with
// "\n" and without a trailing newline.
func (e *CSVEncoder) Encode(rows []domain.ImportErrorRow) ([]byte, error) {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(header, ","))

	for _, row := range rows {
		data := row.TransactionData
		lines = append(lines, strings.Join([]string{
			data.Date,
			data.Description,
			data.Amount,
			data.Currency,
			quote(row.Reason),
		}, ","))
	}

	return []byte(strings.Join(lines, "\n")), nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
