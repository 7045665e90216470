package usecase

import (
	"context"

	"github.com/iho/txdash/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// TransactionClient is the remote transaction service.
// Every failure it returns is a *domain.CallError.
type TransactionClient interface {
	List(ctx context.Context, page, limit int) (*domain.TransactionPage, error)
	Create(ctx context.Context, data domain.TransactionFormData) (string, error)
	Update(ctx context.Context, id int64, data domain.TransactionFormData) (string, error)
	Delete(ctx context.Context, id int64) (string, error)
	DeleteMany(ctx context.Context, ids []int64) (string, error)
	Upload(ctx context.Context, file domain.UploadFile) (string, error)
}

// Notifier shows success and failure messages to the user.
type Notifier interface {
	Success(ctx context.Context, message string)
	Failure(ctx context.Context, message string)
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ReportEncoder turns rejected import rows into a downloadable artifact.
type ReportEncoder interface {
	Encode(rows []domain.ImportErrorRow) ([]byte, error)
}

// ReportDownloader hands an encoded report to the user under a file name.
type ReportDownloader interface {
	Download(ctx context.Context, fileName string, content []byte) error
}
