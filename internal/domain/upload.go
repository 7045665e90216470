package domain

import (
	"fmt"
	"io"
	"strings"
)

// MaxUploadSize is the largest CSV accepted for import (1MB).
const MaxUploadSize = 1048576

// UploadFile is a CSV chosen by the user for bulk import.
type UploadFile struct {
	Name    string
	Size    int64
	Content io.Reader
}

// ValidateUploadFile runs the pre-flight checks done before any request.
// Both failures wrap ErrValidationRejected.
func ValidateUploadFile(name string, size int64) error {
	if !strings.HasSuffix(name, ".csv") {
		return fmt.Errorf("%w: %w", ErrValidationRejected, ErrNotCSV)
	}

	if size > MaxUploadSize {
		return fmt.Errorf("%w: %w", ErrValidationRejected, ErrFileTooLarge)
	}

	return nil
}
