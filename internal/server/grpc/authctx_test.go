package grpcserver

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/metadata"
)

var testKey = []byte("secret")

func makeJWT(t *testing.T, sub string, key []byte, method jwt.SigningMethod, iat time.Time, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(iat),
		NotBefore: jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(iat.Add(ttl)),
	}
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return s
}

func TestWithUserID_And_UserIDFromCtx(t *testing.T) {
	t.Parallel()

	if id, ok := UserIDFromCtx(context.Background()); ok || id != uuid.Nil {
		t.Fatalf("expected no user id in empty ctx")
	}

	want := uuid.Must(uuid.NewV4())
	got, ok := UserIDFromCtx(WithUserID(context.Background(), want))
	if !ok || got != want {
		t.Fatalf("mismatch: got %s ok=%v, want %s", got, ok, want)
	}

	bad := context.WithValue(context.Background(), userIDKey, "not-uuid")
	if id, ok := UserIDFromCtx(bad); ok || id != uuid.Nil {
		t.Fatalf("expected miss on wrong typed value")
	}
}

func Test_bearerTokenFromMD_OkAndErrors(t *testing.T) {
	t.Parallel()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer abc.def.ghi"))
	got, err := bearerTokenFromMD(ctx)
	if err != nil || got != "abc.def.ghi" {
		t.Fatalf("ok: got=%q err=%v", got, err)
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic foo"))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on non-bearer")
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer   "))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on empty token")
	}

	if _, err := bearerTokenFromMD(context.Background()); err == nil {
		t.Fatalf("want error on no metadata")
	}
}

func Test_verifyToken(t *testing.T) {
	t.Parallel()

	sub := uuid.Must(uuid.NewV4()).String()
	now := time.Now().UTC()

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid", makeJWT(t, sub, testKey, jwt.SigningMethodHS256, now.Add(-time.Minute), 10*time.Minute), false},
		{"within leeway", makeJWT(t, sub, testKey, jwt.SigningMethodHS256, now.Add(-time.Hour), time.Hour-10*time.Second), false},
		{"expired", makeJWT(t, sub, testKey, jwt.SigningMethodHS256, now.Add(-2*time.Hour), time.Hour), true},
		{"wrong key", makeJWT(t, sub, []byte("other"), jwt.SigningMethodHS256, now, time.Hour), true},
		{"wrong alg", makeJWT(t, sub, testKey, jwt.SigningMethodHS384, now, time.Hour), true},
		{"bad subject", makeJWT(t, "not-a-uuid", testKey, jwt.SigningMethodHS256, now, time.Hour), true},
		{"garbage", "this-is-not-a-jwt", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			id, err := verifyToken(tt.token, testKey)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("want error, got id %s", id)
				}
				return
			}
			if err != nil {
				t.Fatalf("verifyToken: %v", err)
			}
			if id.String() != sub {
				t.Fatalf("uuid mismatch: %s vs %s", id, sub)
			}
		})
	}
}
