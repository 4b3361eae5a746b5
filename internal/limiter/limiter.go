// Package limiter defines interfaces and implementations for login rate limiting.
package limiter

import (
	"context"
	"strings"
	"time"
)

// Limiter controls login attempts and temporary lockouts.
type Limiter interface {
	// Allow reports whether login is currently allowed and optional retry-after.
	Allow(ctx context.Context, username string, ipHash []byte) (bool, time.Duration, error)
	// Success resets counters after a successful login.
	Success(ctx context.Context, username string, ipHash []byte) error
	// Failure records a failed attempt; may place a temporary block.
	Failure(ctx context.Context, username string, ipHash []byte) (bool, time.Duration, error)
}

// Config tunes the sliding window and the lockout.
type Config struct {
	Window   time.Duration `yaml:"window"`
	MaxFails int           `yaml:"max_fails"`
	BlockFor time.Duration `yaml:"block_for"`
}

// DefaultConfig allows five failures per 15 minutes, then blocks for 15 minutes.
func DefaultConfig() Config {
	return Config{Window: 15 * time.Minute, MaxFails: 5, BlockFor: 15 * time.Minute}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Window <= 0 {
		c.Window = d.Window
	}
	if c.MaxFails <= 0 {
		c.MaxFails = d.MaxFails
	}
	if c.BlockFor <= 0 {
		c.BlockFor = d.BlockFor
	}
	return c
}

// key folds usernames so "Alice" and "alice" share one counter.
func key(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
