package grpcserver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type fakeAddr struct{}

func (fakeAddr) Network() string { return "tcp" }
func (fakeAddr) String() string  { return "127.0.0.1:12345" }

func TestLoggingUnary_Passthrough(t *testing.T) {
	t.Parallel()

	ic := LoggingUnary(zaptest.NewLogger(t))
	ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: fakeAddr{}})
	ctx = WithUserID(ctx, uuid.Must(uuid.NewV4()))

	h := func(ctx context.Context, req any) (any, error) { return "ok", nil }
	info := &grpc.UnaryServerInfo{FullMethod: "/fitplan.v1.FitPlan/Me"}

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

	ic := RecoverUnary(zaptest.NewLogger(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/fitplan.v1.FitPlan/Panic"}
	panicH := func(ctx context.Context, req any) (any, error) {
		panic("oh no")
	}

	_, err := ic(context.Background(), "req", info, panicH)
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Internal {
		t.Fatalf("want codes.Internal, got: %v", err)
	}
}

func TestRecoverUnary_NoPanicPassThrough(t *testing.T) {
	t.Parallel()

	ic := RecoverUnary(zaptest.NewLogger(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/fitplan.v1.FitPlan/Ok"}
	h := func(ctx context.Context, req any) (any, error) { return 42, nil }

	resp, err := ic(context.Background(), "req", info, h)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.(int) != 42 {
		t.Fatalf("resp mismatch: %v", resp)
	}
}

func TestAuthUnary(t *testing.T) {
	t.Parallel()

	const (
		public  = "/fitplan.v1.FitPlan/Login"
		private = "/fitplan.v1.FitPlan/Me"
	)
	ic := AuthUnary(testKey, map[string]bool{public: true})
	uid := uuid.Must(uuid.NewV4())
	tok := makeJWT(t, uid.String(), testKey, jwt.SigningMethodHS256, time.Now(), time.Hour)

	var seen uuid.UUID
	h := func(ctx context.Context, req any) (any, error) {
		seen, _ = UserIDFromCtx(ctx)
		return "ok", nil
	}

	// public methods pass without a token
	if _, err := ic(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: public}, h); err != nil {
		t.Fatalf("public: %v", err)
	}
	if seen != uuid.Nil {
		t.Fatalf("public call must not carry a user id")
	}

	_, err := ic(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: private}, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated without token, got %v", err)
	}

	bad := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer nope"))
	_, err = ic(bad, nil, &grpc.UnaryServerInfo{FullMethod: private}, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated with bad token, got %v", err)
	}

	good := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+tok))
	if _, err := ic(good, nil, &grpc.UnaryServerInfo{FullMethod: private}, h); err != nil {
		t.Fatalf("private: %v", err)
	}
	if seen != uid {
		t.Fatalf("user id not propagated: %s", seen)
	}
}
