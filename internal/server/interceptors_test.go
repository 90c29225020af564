package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/santescan/santescan/internal/common"
	"github.com/santescan/santescan/internal/identity"
)

type fakeAddr struct{}

func (fakeAddr) Network() string { return "tcp" }
func (fakeAddr) String() string  { return "127.0.0.1:12345" }

func TestLoggingUnary_Passthrough(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	ic := LoggingUnary(log)

	ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: fakeAddr{}})
	info := &grpc.UnaryServerInfo{FullMethod: "/santescan.v1.AnalysesService/Upload"}

	h := func(ctx context.Context, req any) (any, error) {
		if common.RequestIDFromContext(ctx) == "" {
			t.Error("request id missing from handler context")
		}
		return "ok", nil
	}
	resp, err := ic(ctx, "req", info, h)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s, _ := resp.(string); s != "ok" {
		t.Fatalf("resp mismatch: %v", resp)
	}

	wantErr := errors.New("boom")
	hErr := func(ctx context.Context, req any) (any, error) { return nil, wantErr }
	_, err = ic(ctx, "req", info, hErr)
	if !errors.Is(err, wantErr) {
		t.Fatalf("want original error, got: %v", err)
	}
}

func TestRecoverUnary_CatchesPanic(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	ic := RecoverUnary(log)

	info := &grpc.UnaryServerInfo{FullMethod: "/santescan.v1.AnalysesService/Panic"}
	panicH := func(ctx context.Context, req any) (any, error) {
		panic("oh no")
	}

	_, err := ic(context.Background(), "req", info, panicH)
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got: %v", err)
	}
}

func TestAuthUnary_NoHeaderPassesThrough(t *testing.T) {
	t.Parallel()

	ic := AuthUnary([]byte("key"), zaptest.NewLogger(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/santescan.v1.AnalysesService/Upload"}

	called := false
	h := func(ctx context.Context, req any) (any, error) {
		called = true
		if _, ok := AccountIDFromCtx(ctx); ok {
			t.Fatal("no account id expected for anonymous call")
		}
		return nil, nil
	}
	_, err := ic(context.Background(), "req", info, h)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !called {
		t.Fatal("handler not invoked")
	}
}

func TestAuthUnary_ValidToken(t *testing.T) {
	t.Parallel()

	key := []byte("key")
	accountID := uuid.New()
	tok, _, err := identity.IssueAccessToken(key, accountID, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	ic := AuthUnary(key, zaptest.NewLogger(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/santescan.v1.AnalysesService/Upload"}
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer "+tok))

	h := func(ctx context.Context, req any) (any, error) {
		got, ok := AccountIDFromCtx(ctx)
		if !ok || got != accountID {
			t.Fatalf("account id not propagated: %v %v", got, ok)
		}
		return nil, nil
	}
	if _, err := ic(ctx, "req", info, h); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAuthUnary_BadTokenRejected(t *testing.T) {
	t.Parallel()

	ic := AuthUnary([]byte("key"), zaptest.NewLogger(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/santescan.v1.AnalysesService/Upload"}
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer garbage"))

	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler must not run")
		return nil, nil
	}
	_, err := ic(ctx, "req", info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got: %v", err)
	}
}

func TestAuthUnary_WrongKeyRejected(t *testing.T) {
	t.Parallel()

	tok, _, err := identity.IssueAccessToken([]byte("other-key"), uuid.New(), time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	ic := AuthUnary([]byte("key"), zaptest.NewLogger(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/santescan.v1.AuthService/Register"}
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer "+tok))

	_, err = ic(ctx, "req", info, func(context.Context, any) (any, error) { return nil, nil })
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got: %v", err)
	}
}
