package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ReportFileName is the name of the error report produced for a rejected import.
const ReportFileName = "upload_errors.csv"

// ImportErrorRow is one CSV line the service refused to import.
type ImportErrorRow struct {
	Row             RowLabel            `json:"row"`
	TransactionData TransactionFormData `json:"transaction_data"`
	Reason          string              `json:"reason"`
}

// RowLabel identifies a rejected CSV line. The service sends either a line
// number or a free-form label.
type RowLabel string

// UnmarshalJSON accepts both JSON numbers and strings.
func (r *RowLabel) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RowLabel(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = RowLabel(n.String())
	return nil
}

// MarshalJSON writes labels in canonical integer form as numbers. Anything
// else, including "007" or "+5", is written as a string.
func (r RowLabel) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(r), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(r) {
		return []byte(r), nil
	}
	return json.Marshal(string(r))
}
