package usecase

// User-facing messages.
const (
	MsgFetchFailed = "Failed to fetch transactions"

	MsgAddSuccess = "Transaction added successfully"
	MsgAddFailed  = "Failed to add transaction"

	// MsgEditSuccess is shown for every successful edit, whatever the service says.
	MsgEditSuccess = "Transaction edited successfully"
	MsgEditFailed  = "Failed to update transaction"

	MsgDeleteSuccess = "Transaction deleted successfully"
	MsgDeleteFailed  = "Failed to delete transaction"

	MsgDeleteSelectedSuccess = "Transactions deleted successfully"
	MsgDeleteSelectedFailed  = "Failed to delete selected transactions"

	MsgUploadSuccess  = "Transactions uploaded successfully"
	MsgUploadFailed   = "Failed to upload file"
	MsgUploadRejected = "Failed to upload transactions"
	MsgReportFailed   = "Failed to produce the error report"

	PromptDeleteOne      = "Are you sure you want to delete this transaction?"
	PromptDeleteSelected = "Are you sure you want to delete %d selected transactions?"
)
