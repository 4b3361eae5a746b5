// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/fitplan/internal/model"
)

// UserRepository provides access to accounts and their counters.
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByUsername loads a user by username, case-insensitively.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// SetAvatar changes the displayed avatar.
	SetAvatar(ctx context.Context, id uuid.UUID, avatar string) error
	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}

// ProgressRepository stores the per-user saved payload.
type ProgressRepository interface {
	// Get returns the stored payload or errs.ErrNotFound.
	Get(ctx context.Context, userID uuid.UUID) (*model.Progress, error)
	// Save writes p (last write wins, version++) and applies stats in the
	// same transaction: the spent item, the reward ledger, the boost and the
	// user counters either all land or none do.
	Save(ctx context.Context, userID uuid.UUID, p model.Progress, stats model.Stats) (model.SaveResult, error)
	// Count returns the number of stored payloads.
	Count(ctx context.Context) (int64, error)
}

// InventoryRepository moves energy and shop items.
type InventoryRepository interface {
	// List returns the user's non-empty stacks ordered by SKU.
	List(ctx context.Context, userID uuid.UUID) ([]model.InventoryItem, error)
	// Purchase debits cost energy and credits qty units of sku atomically.
	// It returns the remaining energy and the new quantity.
	Purchase(ctx context.Context, userID uuid.UUID, sku string, qty, cost int64) (energy, quantity int64, err error)
}
