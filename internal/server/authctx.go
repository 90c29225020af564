package server

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const accountIDKey ctxKey = "santescan.accountID"

// WithAccountID stores the authenticated account ID in context.
func WithAccountID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, accountIDKey, id)
}

// AccountIDFromCtx fetches the authenticated account ID from context.
// The second return is false for guest requests.
func AccountIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	v := ctx.Value(accountIDKey)
	if v == nil {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
