package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/fitplan/internal/errs"
	"github.com/and161185/fitplan/internal/model"
	"github.com/and161185/fitplan/internal/repository"
	"github.com/and161185/fitplan/internal/workout"
)

// Shop SKUs.
const (
	SKUStreakSaver  = "streak_saver"
	SKUDoubleEnergy = "double_energy"
	SKUAvatarFrame  = "avatar_frame"
)

// FramedAvatar is applied when the avatar frame is bought.
const FramedAvatar = "framed"

// MaxPurchaseQty bounds a single purchase of a consumable.
const MaxPurchaseQty = 99

var catalog = []model.ShopItem{
	{
		SKU:         SKUStreakSaver,
		Name:        "Streak Saver",
		Description: "Bridges one missed day so your streak survives.",
		Price:       50,
		Consumable:  true,
	},
	{
		SKU:         SKUDoubleEnergy,
		Name:        "Double Energy",
		Description: "Doubles the energy of your next completed workout.",
		Price:       30,
		Consumable:  true,
	},
	{
		SKU:         SKUAvatarFrame,
		Name:        "Avatar Frame",
		Description: "A golden frame around your avatar.",
		Price:       120,
	},
}

// ShopService sells items for energy and applies consumables.
type ShopService interface {
	// Catalog lists the items for sale.
	Catalog() []model.ShopItem
	// Purchase buys qty units of sku and returns the updated account.
	Purchase(ctx context.Context, userID uuid.UUID, sku string, qty int64) (model.Account, error)
	// UseStreakSaver spends one streak saver on a missed past day.
	UseStreakSaver(ctx context.Context, userID uuid.UUID, date string) (model.SaveResult, error)
}

type ShopServiceImpl struct {
	users     repository.UserRepository
	inventory repository.InventoryRepository
	progress  ProgressService
	log       *zap.Logger
	now       func() time.Time
}

// NewShopService constructs ShopService. A nil logger disables logging.
func NewShopService(
	users repository.UserRepository,
	inventory repository.InventoryRepository,
	progress ProgressService,
	log *zap.Logger,
) *ShopServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &ShopServiceImpl{users: users, inventory: inventory, progress: progress, log: log, now: time.Now}
}

// Catalog returns a copy of the static catalog.
func (s *ShopServiceImpl) Catalog() []model.ShopItem {
	return append([]model.ShopItem(nil), catalog...)
}

// FindItem looks up a catalog entry by SKU.
func FindItem(sku string) (model.ShopItem, bool) {
	for _, it := range catalog {
		if it.SKU == sku {
			return it, true
		}
	}
	return model.ShopItem{}, false
}

// Purchase debits energy and credits the item. Non-consumables can be owned once.
func (s *ShopServiceImpl) Purchase(ctx context.Context, userID uuid.UUID, sku string, qty int64) (model.Account, error) {
	item, ok := FindItem(sku)
	if !ok {
		return model.Account{}, fmt.Errorf("%w: unknown sku %q", errs.ErrValidation, sku)
	}
	if qty <= 0 || qty > MaxPurchaseQty {
		return model.Account{}, fmt.Errorf("%w: quantity must be 1..%d", errs.ErrValidation, MaxPurchaseQty)
	}
	if !item.Consumable {
		if qty != 1 {
			return model.Account{}, fmt.Errorf("%w: %s can only be bought once", errs.ErrValidation, sku)
		}
		acc, err := loadAccount(ctx, s.users, s.inventory, userID)
		if err != nil {
			return model.Account{}, err
		}
		if acc.Quantity(sku) > 0 {
			return model.Account{}, fmt.Errorf("%s: %w", sku, errs.ErrAlreadyExists)
		}
	}

	energy, quantity, err := s.inventory.Purchase(ctx, userID, sku, qty, item.Price*qty)
	if err != nil {
		return model.Account{}, err
	}
	if sku == SKUAvatarFrame {
		if err := s.users.SetAvatar(ctx, userID, FramedAvatar); err != nil {
			return model.Account{}, err
		}
	}
	s.log.Info("purchase",
		zap.String("user", userID.String()),
		zap.String("sku", sku),
		zap.Int64("qty", qty),
		zap.Int64("owned", quantity),
		zap.Int64("energy", energy),
	)
	return loadAccount(ctx, s.users, s.inventory, userID)
}

// UseStreakSaver flags date so the streak walks over it. The date must be in
// the past and not already complete or saved.
func (s *ShopServiceImpl) UseStreakSaver(ctx context.Context, userID uuid.UUID, date string) (model.SaveResult, error) {
	if _, err := workout.ParseDate(date); err != nil {
		return model.SaveResult{}, fmt.Errorf("%w: %v", errs.ErrValidation, err)
	}
	if date >= workout.Today(s.now()) {
		return model.SaveResult{}, fmt.Errorf("%w: streak savers apply to past days only", errs.ErrValidation)
	}

	prog, err := s.progress.Load(ctx, userID)
	if err != nil {
		return model.SaveResult{}, err
	}
	if prog.WorkoutPlan == nil {
		return model.SaveResult{}, fmt.Errorf("workout plan: %w", errs.ErrNotFound)
	}
	if d, ok := prog.WorkoutPlan.Day(date); ok {
		switch {
		case d.CompleteForStreak():
			return model.SaveResult{}, fmt.Errorf("%w: %s is already complete", errs.ErrValidation, date)
		case d.StreakSaver:
			return model.SaveResult{}, fmt.Errorf("%s: %w", date, errs.ErrAlreadyExists)
		}
	}

	cal := workout.NewCalendar(*prog.WorkoutPlan, workout.DefaultPolicy)
	if err := cal.MarkStreakSaver(date); err != nil {
		return model.SaveResult{}, err
	}
	plan := cal.Plan()
	prog.WorkoutPlan = &plan
	return s.progress.SaveSpending(ctx, userID, *prog, SKUStreakSaver)
}
