package confirm

import "context"

type confirmedKey struct{}

// WithConfirmation marks ctx as carrying the user's answer to any prompt
// raised while serving it.
func WithConfirmation(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, confirmedKey{}, confirmed)
}

// Request answers prompts from the confirmation carried by the request
// context. Without one every prompt is declined.
type Request struct{}

// NewRequest creates a Request confirmer.
func NewRequest() *Request {
	return &Request{}
}

// Confirm returns the answer stored with WithConfirmation.
func (Request) Confirm(ctx context.Context, _ string) bool {
	confirmed, _ := ctx.Value(confirmedKey{}).(bool)
	return confirmed
}
