// Package service contains the application services behind the gRPC API:
// accounts and sessions, saved progress, plan generation, the shop and admin diagnostics.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	pkgcrypto "github.com/and161185/fitplan/internal/crypto"
	"github.com/and161185/fitplan/internal/errs"
	"github.com/and161185/fitplan/internal/limiter"
	"github.com/and161185/fitplan/internal/model"
	"github.com/and161185/fitplan/internal/repository"
)

// DefaultAccessTTL matches the client's cached session lifetime.
const DefaultAccessTTL = 7 * 24 * time.Hour

// DefaultAvatar is assigned at registration.
const DefaultAvatar = "default"

const (
	minPasswordLen = 6
	maxUsernameLen = 64
)

// AuthService defines authentication and account operations.
type AuthService interface {
	// Register creates a new user with secure password hashing.
	Register(ctx context.Context, username, password string) (userID string, err error)
	// LoginWithIP applies rate-limiting and authenticates the user.
	LoginWithIP(ctx context.Context, username, password string, ip string) (tokens model.Tokens, user model.User, err error)
	// Me returns the caller's account with inventory.
	Me(ctx context.Context, userID uuid.UUID) (model.Account, error)
}

type AuthServiceImpl struct {
	users     repository.UserRepository
	inventory repository.InventoryRepository
	signKey   []byte
	accessTTL time.Duration
	lim       limiter.Limiter
	admins    map[string]struct{}
	now       func() time.Time
}

// NewAuthService constructs AuthService with required dependencies. A non-positive
// accessTTL falls back to DefaultAccessTTL.
func NewAuthService(
	users repository.UserRepository,
	inventory repository.InventoryRepository,
	signKey []byte,
	accessTTL time.Duration,
	lim limiter.Limiter,
) *AuthServiceImpl {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	return &AuthServiceImpl{
		users:     users,
		inventory: inventory,
		signKey:   signKey,
		accessTTL: accessTTL,
		lim:       lim,
		admins:    map[string]struct{}{},
		now:       time.Now,
	}
}

// SetAdmins lists usernames that receive the admin flag when they register.
func (s *AuthServiceImpl) SetAdmins(names ...string) {
	for _, n := range names {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			s.admins[n] = struct{}{}
		}
	}
}

// Register creates a new user record.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || utf8.RuneCountInString(username) > maxUsernameLen {
		return "", fmt.Errorf("%w: username must be 1..%d characters", errs.ErrValidation, maxUsernameLen)
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return "", fmt.Errorf("%w: password must be at least %d characters", errs.ErrValidation, minPasswordLen)
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	hash, err := pkgcrypto.HashPassword(password)
	if err != nil {
		return "", err
	}

	_, admin := s.admins[strings.ToLower(username)]
	u := &model.User{
		ID:       uid,
		Username: username,
		PwdHash:  hash,
		Avatar:   DefaultAvatar,
		IsAdmin:  admin,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return "", err
	}
	return uid.String(), nil
}

// LoginWithIP authenticates with rate limiting by (username, ip).
func (s *AuthServiceImpl) LoginWithIP(ctx context.Context, username, password, ip string) (model.Tokens, model.User, error) {
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, username, ipHash)
	if err != nil {
		return model.Tokens{}, model.User{}, err
	}
	if !allowed {
		return model.Tokens{}, model.User{}, errs.ErrRateLimited
	}

	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return model.Tokens{}, model.User{}, err
	}
	if err != nil || !s.passwordMatches(password, u.PwdHash) {
		if blocked, _, ferr := s.lim.Failure(ctx, username, ipHash); ferr == nil && blocked {
			return model.Tokens{}, model.User{}, errs.ErrRateLimited
		}
		// unknown user and wrong password look the same
		return model.Tokens{}, model.User{}, errs.ErrUnauthorized
	}

	// best-effort reset
	_ = s.lim.Success(ctx, username, ipHash)

	access, exp, err := s.issueAccessToken(u.ID)
	if err != nil {
		return model.Tokens{}, model.User{}, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, *u, nil
}

// Me loads the account of userID.
func (s *AuthServiceImpl) Me(ctx context.Context, userID uuid.UUID) (model.Account, error) {
	return loadAccount(ctx, s.users, s.inventory, userID)
}

func (s *AuthServiceImpl) passwordMatches(password, encoded string) bool {
	ok, err := pkgcrypto.VerifyPassword(password, encoded)
	return err == nil && ok
}

// issueAccessToken creates a signed HS256 JWT for the given subject.
func (s *AuthServiceImpl) issueAccessToken(userID uuid.UUID) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.accessTTL)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	return signed, exp, err
}

func loadAccount(
	ctx context.Context, users repository.UserRepository, inv repository.InventoryRepository, userID uuid.UUID,
) (model.Account, error) {
	u, err := users.GetByID(ctx, userID)
	if err != nil {
		return model.Account{}, err
	}
	items, err := inv.List(ctx, userID)
	if err != nil {
		return model.Account{}, err
	}
	return model.Account{User: *u, Inventory: items}, nil
}
