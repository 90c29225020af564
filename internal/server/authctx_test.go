package server

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestAccountIDCtxRoundTrip(t *testing.T) {
	t.Parallel()

	want := uuid.New()
	ctx := WithAccountID(context.Background(), want)

	got, ok := AccountIDFromCtx(ctx)
	if !ok || got != want {
		t.Fatalf("round trip failed: %v %v", got, ok)
	}
}

func TestAccountIDFromCtx_Empty(t *testing.T) {
	t.Parallel()

	if _, ok := AccountIDFromCtx(context.Background()); ok {
		t.Fatal("empty context must not yield an account id")
	}
}
