package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	pkgcrypto "github.com/and161185/fitplan/internal/crypto"
	"github.com/and161185/fitplan/internal/errs"
)

func newAuth(st *store, lim *fakeLimiter, ttl time.Duration) *AuthServiceImpl {
	return NewAuthService(fakeUsers{st}, fakeInventory{st}, []byte("secret"), ttl, lim)
}

func TestAuth_Register_Basics(t *testing.T) {
	t.Parallel()
	st := newStore()
	s := newAuth(st, &fakeLimiter{}, time.Minute)
	s.SetAdmins(" Root ")

	if _, err := s.Register(context.Background(), "", "secret1"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want ErrValidation on empty username, got %v", err)
	}
	if _, err := s.Register(context.Background(), "alice", "123"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want ErrValidation on short password, got %v", err)
	}

	id, err := s.Register(context.Background(), "alice", "password")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	uid := uuid.FromStringOrNil(id)
	u := st.users[uid]
	if u == nil || u.Avatar != DefaultAvatar || u.IsAdmin {
		t.Fatalf("bad stored user: %+v", u)
	}
	if ok, _ := pkgcrypto.VerifyPassword("password", u.PwdHash); !ok {
		t.Fatalf("stored hash does not verify")
	}

	if _, err := s.Register(context.Background(), "ALICE", "password2"); !errors.Is(err, errs.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists on duplicate username, got %v", err)
	}

	rootID, err := s.Register(context.Background(), "root", "password")
	if err != nil {
		t.Fatalf("Register root: %v", err)
	}
	if !st.users[uuid.FromStringOrNil(rootID)].IsAdmin {
		t.Fatalf("configured admin must get the admin flag")
	}

	st.createErr = errors.New("boom")
	if _, err := s.Register(context.Background(), "bob", "password"); err == nil {
		t.Fatalf("want propagated repo error")
	}
}

func TestAuth_LoginWithIP_RateLimiterAndCreds(t *testing.T) {
	t.Parallel()

	st := newStore()
	hash, err := pkgcrypto.HashPassword("correct")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	u := st.addUser("alice", 0)
	u.PwdHash = hash

	lim := &fakeLimiter{allowOK: true}
	s := newAuth(st, lim, 2*time.Minute)

	lim.allowErr = errors.New("lim-err")
	if _, _, err := s.LoginWithIP(context.Background(), "alice", "correct", "1.2.3.4"); err == nil {
		t.Fatalf("want limiter error propagate")
	}
	lim.allowErr = nil

	lim.allowOK = false
	if _, _, err := s.LoginWithIP(context.Background(), "alice", "correct", "1.2.3.4"); !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited, got %v", err)
	}
	lim.allowOK = true

	if _, _, err := s.LoginWithIP(context.Background(), "nope", "x", ""); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized on missing user, got %v", err)
	}

	st.getErr = errors.New("db down")
	if _, _, err := s.LoginWithIP(context.Background(), "alice", "correct", ""); err == nil || errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want storage error, got %v", err)
	}
	st.getErr = nil

	lim.failBlocked = true
	if _, _, err := s.LoginWithIP(context.Background(), "alice", "wrong", ""); !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited on blocked after failure, got %v", err)
	}

	lim.failBlocked = false
	if _, _, err := s.LoginWithIP(context.Background(), "alice", "wrong", ""); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized on wrong password, got %v", err)
	}

	tok, gotUser, err := s.LoginWithIP(context.Background(), "Alice", "correct", "127.0.0.1:123")
	if err != nil {
		t.Fatalf("LoginWithIP success: %v", err)
	}
	if tok.AccessToken == "" || tok.ExpiresAt.Before(time.Now()) {
		t.Fatalf("bad token: %+v", tok)
	}
	if gotUser.ID != u.ID {
		t.Fatalf("bad user returned: %+v", gotUser)
	}
	if lim.successCalls == 0 {
		t.Fatalf("expected Success() to be called")
	}
}

func TestAuth_TokenCarriesSubjectAndTTL(t *testing.T) {
	t.Parallel()

	st := newStore()
	hash, _ := pkgcrypto.HashPassword("p4ssword")
	u := st.addUser("bob", 0)
	u.PwdHash = hash

	s := newAuth(st, &fakeLimiter{allowOK: true}, 0)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	tk, _, err := s.LoginWithIP(context.Background(), "bob", "p4ssword", "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !tk.ExpiresAt.Equal(now.Add(DefaultAccessTTL)) {
		t.Fatalf("default TTL not applied: %v", tk.ExpiresAt)
	}

	var claims jwt.RegisteredClaims
	_, err = jwt.ParseWithClaims(tk.AccessToken, &claims, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != u.ID.String() {
		t.Fatalf("subject mismatch: %s", claims.Subject)
	}
}

func TestAuth_Me(t *testing.T) {
	t.Parallel()

	st := newStore()
	u := st.addUser("carol", 70)
	st.give(u.ID, SKUStreakSaver, 2)
	s := newAuth(st, &fakeLimiter{}, time.Minute)

	acc, err := s.Me(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if acc.Energy != 70 || acc.Quantity(SKUStreakSaver) != 2 {
		t.Fatalf("bad account: %+v", acc)
	}
	if _, err := s.Me(context.Background(), uuid.Must(uuid.NewV4())); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
