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

// ProgressService stores the per-user payload and keeps streak and energy in step with it.
type ProgressService interface {
	// Save normalizes and stores p, awarding energy for newly completed days.
	Save(ctx context.Context, userID uuid.UUID, p model.Progress) (model.SaveResult, error)
	// SaveSpending is Save that also spends one unit of sku in the same
	// transaction. Without the item nothing is written and the error wraps
	// errs.ErrInsufficientFunds.
	SaveSpending(ctx context.Context, userID uuid.UUID, p model.Progress, sku string) (model.SaveResult, error)
	// Load returns the stored payload or errs.ErrNotFound.
	Load(ctx context.Context, userID uuid.UUID) (*model.Progress, error)
}

type ProgressServiceImpl struct {
	users    repository.UserRepository
	progress repository.ProgressRepository
	log      *zap.Logger
	now      func() time.Time
}

// NewProgressService constructs ProgressService. A nil logger disables logging.
func NewProgressService(
	users repository.UserRepository,
	progress repository.ProgressRepository,
	log *zap.Logger,
) *ProgressServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProgressServiceImpl{users: users, progress: progress, log: log, now: time.Now}
}

// Load returns the stored payload of userID.
func (s *ProgressServiceImpl) Load(ctx context.Context, userID uuid.UUID) (*model.Progress, error) {
	return s.progress.Get(ctx, userID)
}

// Save writes p with last-write-wins semantics. The streak is recomputed from
// the incoming plan. Complete days inside the reward window pay energy the
// first time they are stored, doubled once when the user holds a
// double_energy item.
func (s *ProgressServiceImpl) Save(ctx context.Context, userID uuid.UUID, p model.Progress) (model.SaveResult, error) {
	return s.save(ctx, userID, p, "")
}

// SaveSpending writes p and spends one unit of sku atomically with it.
func (s *ProgressServiceImpl) SaveSpending(
	ctx context.Context, userID uuid.UUID, p model.Progress, sku string,
) (model.SaveResult, error) {
	if sku == "" {
		return model.SaveResult{}, fmt.Errorf("%w: empty sku", errs.ErrValidation)
	}
	return s.save(ctx, userID, p, sku)
}

func (s *ProgressServiceImpl) save(
	ctx context.Context, userID uuid.UUID, p model.Progress, spend string,
) (model.SaveResult, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.SaveResult{}, err
	}

	stats := model.Stats{Streak: u.Streak, Spend: spend}
	if p.WorkoutPlan != nil {
		if err := workout.ValidatePlan(*p.WorkoutPlan); err != nil {
			return model.SaveResult{}, fmt.Errorf("%w: %v", errs.ErrValidation, err)
		}
		plan := workout.NormalizePlan(*p.WorkoutPlan)
		p.WorkoutPlan = &plan

		today := workout.Today(s.now())
		stats.Streak = workout.Streak(plan.DailyWorkouts, today)
		stats.RewardDates = workout.RewardDates(plan, today)
		stats.Boost = SKUDoubleEnergy
	}

	res, err := s.progress.Save(ctx, userID, p, stats)
	if err != nil {
		return model.SaveResult{}, err
	}
	if res.EnergyAwarded > 0 {
		s.log.Info("energy awarded",
			zap.String("user", userID.String()),
			zap.Int64("energy", res.EnergyAwarded),
			zap.Bool("doubled", res.DoubledEnergy),
			zap.Int("streak", res.Streak),
		)
	}
	if spend != "" {
		s.log.Info("item spent", zap.String("user", userID.String()), zap.String("sku", spend))
	}
	return res, nil
}
