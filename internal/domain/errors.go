package domain

import "errors"

var (
	// Dashboard errors
	ErrFetchFailed        = errors.New("failed to fetch transactions")
	ErrInvalidPageSize    = errors.New("page size is not one of the allowed values")
	ErrEditTargetRequired = errors.New("edit form requires a target transaction")
	ErrNoEditTarget       = errors.New("no transaction selected for editing")
	ErrNotConfirmed       = errors.New("operation was not confirmed")

	// Upload errors
	ErrValidationRejected = errors.New("upload rejected before sending")
	ErrNotCSV             = errors.New("please upload a CSV file")
	ErrFileTooLarge       = errors.New("file size must be less than 1MB")

	// Remote service errors
	ErrRequestRejected = errors.New("request rejected by transaction service")
	ErrTransport       = errors.New("transaction service unavailable")
)

// Report errors
var ErrReportNotFound = errors.New("error report not found")
