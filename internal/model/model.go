// Package model defines domain entities used by services and repositories.
package model

import (
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/fitplan/internal/workout"
)

// Tokens collects an issued access token and its expiry.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time
}

// User represents an account stored on the server. Passwords are never stored in plaintext.
type User struct {
	ID        uuid.UUID // PK
	Username  string    // unique, case-insensitive
	PwdHash   string    // PHC-encoded argon2id hash
	Avatar    string
	Energy    int64 // spendable currency, never negative
	Streak    int   // last computed streak
	IsAdmin   bool
	CreatedAt time.Time
}

// InventoryItem is a stack of one shop SKU owned by a user.
type InventoryItem struct {
	SKU      string
	Quantity int64
}

// Account is the user-facing view of a user together with inventory.
type Account struct {
	User
	Inventory []InventoryItem
}

// Quantity returns how many units of sku the account holds.
func (a Account) Quantity(sku string) int64 {
	for _, it := range a.Inventory {
		if it.SKU == sku {
			return it.Quantity
		}
	}
	return 0
}

// Progress is the per-user saved payload. Everything except the plan is opaque JSON
// owned by the client.
type Progress struct {
	QuestionnaireProgress json.RawMessage
	WorkoutPlan           *workout.Plan
	AssessmentData        json.RawMessage
	ChatHistory           json.RawMessage
	AcceptedTerms         bool
	AcceptedPrivacy       bool
	Version               int64 // bumped by every save
	UpdatedAt             time.Time
}

// Stats is the account delta written together with a progress save.
type Stats struct {
	Streak int
	// RewardDates are the complete days eligible for energy. A date pays
	// the first time it is stored and never again.
	RewardDates []string
	// Boost names an item spent to double a non-zero reward, if held.
	Boost string
	// Spend names an item the save requires. A missing item fails the save
	// with errs.ErrInsufficientFunds.
	Spend string
}

// SaveResult reports what a progress save changed.
type SaveResult struct {
	Version       int64
	Energy        int64
	Streak        int
	EnergyAwarded int64
	DoubledEnergy bool
}

// ShopItem is an entry of the static catalog.
type ShopItem struct {
	SKU         string
	Name        string
	Description string
	Price       int64
	// Consumable items stack; the rest can be owned once.
	Consumable bool
}

// Diagnostics is the admin view of server state.
type Diagnostics struct {
	Users     int64
	Progress  int64
	Version   string
	Model     string
	StartedAt time.Time
}
