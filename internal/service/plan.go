package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/and161185/fitplan/internal/errs"
	"github.com/and161185/fitplan/internal/model"
	"github.com/and161185/fitplan/internal/planner"
	"github.com/and161185/fitplan/internal/workout"
)

// PlanGenerator is the text-model backed plan builder.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req planner.PlanRequest) (workout.Plan, error)
	RegenerateDay(ctx context.Context, plan workout.Plan, date string, profile planner.Profile) (workout.DayWorkout, error)
}

// PlanService generates plans and merges them into the stored calendar.
type PlanService interface {
	// Generate builds a new plan and merges it with the stored one, keeping
	// completed and past days.
	Generate(ctx context.Context, userID uuid.UUID, req planner.PlanRequest) (workout.Plan, model.SaveResult, error)
	// RegenerateDay replaces one future, incomplete day.
	RegenerateDay(ctx context.Context, userID uuid.UUID, date string, profile planner.Profile) (workout.Plan, model.SaveResult, error)
}

// generateTimeout bounds model work once it is detached from the callers.
const generateTimeout = 3 * time.Minute

type PlanServiceImpl struct {
	gen      PlanGenerator
	progress ProgressService
	flights  userFlights
	log      *zap.Logger
	now      func() time.Time
}

// NewPlanService constructs PlanService. A nil logger disables logging.
func NewPlanService(gen PlanGenerator, progress ProgressService, log *zap.Logger) *PlanServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlanServiceImpl{
		gen:      gen,
		progress: progress,
		flights:  userFlights{running: map[uuid.UUID]*flightRef{}},
		log:      log,
		now:      time.Now,
	}
}

type planResult struct {
	plan workout.Plan
	save model.SaveResult
}

// Generate runs at most one generation per user at a time. Callers sending
// the same request share the result; a different request while one is in
// flight fails with errs.ErrLocked.
func (s *PlanServiceImpl) Generate(ctx context.Context, userID uuid.UUID, req planner.PlanRequest) (workout.Plan, model.SaveResult, error) {
	if req.StartDate == "" {
		req.StartDate = workout.Today(s.now())
	}
	key, err := flightKey("plan", userID, req)
	if err != nil {
		return workout.Plan{}, model.SaveResult{}, err
	}
	v, shared, err := s.flights.do(ctx, userID, key, func(ctx context.Context) (any, error) {
		next, err := s.gen.GeneratePlan(ctx, req)
		if err != nil {
			return nil, err
		}
		prog, err := s.loadOrEmpty(ctx, userID)
		if err != nil {
			return nil, err
		}
		var prev workout.Plan
		if prog.WorkoutPlan != nil {
			prev = *prog.WorkoutPlan
		}
		merged := workout.MergeRegenerated(prev, next, workout.Today(s.now()))
		prog.WorkoutPlan = &merged

		res, err := s.progress.Save(ctx, userID, prog)
		if err != nil {
			return nil, err
		}
		return planResult{plan: merged, save: res}, nil
	})
	if err != nil {
		return workout.Plan{}, model.SaveResult{}, err
	}
	if shared {
		s.log.Debug("plan generation shared", zap.String("user", userID.String()))
	}
	r := v.(planResult)
	return r.plan, r.save, nil
}

// RegenerateDay refuses completed days and days on or before today with errs.ErrLocked.
func (s *PlanServiceImpl) RegenerateDay(
	ctx context.Context, userID uuid.UUID, date string, profile planner.Profile,
) (workout.Plan, model.SaveResult, error) {
	if _, err := workout.ParseDate(date); err != nil {
		return workout.Plan{}, model.SaveResult{}, fmt.Errorf("%w: %v", errs.ErrValidation, err)
	}
	today := workout.Today(s.now())
	key, err := flightKey("day:"+date, userID, profile)
	if err != nil {
		return workout.Plan{}, model.SaveResult{}, err
	}
	v, _, err := s.flights.do(ctx, userID, key, func(ctx context.Context) (any, error) {
		prog, err := s.progress.Load(ctx, userID)
		if err != nil {
			return nil, err
		}
		if prog.WorkoutPlan == nil {
			return nil, fmt.Errorf("workout plan: %w", errs.ErrNotFound)
		}
		plan := *prog.WorkoutPlan
		if d, ok := plan.Day(date); (ok && workout.Locked(d, today)) || date <= today {
			return nil, fmt.Errorf("%s: %w", date, errs.ErrLocked)
		}

		day, err := s.gen.RegenerateDay(ctx, plan, date, profile)
		if err != nil {
			return nil, err
		}
		cal := workout.NewCalendar(plan, workout.DefaultPolicy)
		if err := cal.Upsert(day); err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrInvalidPlan, err)
		}
		next := cal.Plan()
		prog.WorkoutPlan = &next

		res, err := s.progress.Save(ctx, userID, *prog)
		if err != nil {
			return nil, err
		}
		return planResult{plan: next, save: res}, nil
	})
	if err != nil {
		return workout.Plan{}, model.SaveResult{}, err
	}
	r := v.(planResult)
	return r.plan, r.save, nil
}

func (s *PlanServiceImpl) loadOrEmpty(ctx context.Context, userID uuid.UUID) (model.Progress, error) {
	p, err := s.progress.Load(ctx, userID)
	if errors.Is(err, errs.ErrNotFound) {
		return model.Progress{}, nil
	}
	if err != nil {
		return model.Progress{}, err
	}
	return *p, nil
}

// flightKey identifies a request of one user by its content.
func flightKey(kind string, userID uuid.UUID, req any) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrValidation, err)
	}
	sum := sha256.Sum256(b)
	return kind + ":" + userID.String() + ":" + hex.EncodeToString(sum[:]), nil
}

// userFlights admits one request per user at a time. Callers with an equal
// key join the running work; the work runs detached from any single caller so
// one caller leaving does not fail the others.
type userFlights struct {
	mu      sync.Mutex
	group   singleflight.Group
	running map[uuid.UUID]*flightRef
}

type flightRef struct {
	key     string
	holders int
}

func (f *userFlights) do(
	ctx context.Context, userID uuid.UUID, key string, fn func(context.Context) (any, error),
) (any, bool, error) {
	if err := f.acquire(userID, key); err != nil {
		return nil, false, err
	}
	ch := f.group.DoChan(key, func() (any, error) {
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), generateTimeout)
		defer cancel()
		return fn(wctx)
	})
	select {
	case r := <-ch:
		f.release(userID)
		return r.Val, r.Shared, r.Err
	case <-ctx.Done():
		// the slot stays taken until the work it admitted has finished
		go func() {
			<-ch
			f.release(userID)
		}()
		return nil, false, ctx.Err()
	}
}

func (f *userFlights) acquire(userID uuid.UUID, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ref, ok := f.running[userID]
	if ok && ref.key != key {
		return fmt.Errorf("%w: another generation is running", errs.ErrLocked)
	}
	if !ok {
		ref = &flightRef{key: key}
		f.running[userID] = ref
	}
	ref.holders++
	return nil
}

func (f *userFlights) release(userID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ref, ok := f.running[userID]
	if !ok {
		return
	}
	if ref.holders--; ref.holders == 0 {
		delete(f.running, userID)
	}
}
