package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/fitplan/internal/errs"
	"github.com/and161185/fitplan/internal/limiter"
	"github.com/and161185/fitplan/internal/model"
	"github.com/and161185/fitplan/internal/planner"
	"github.com/and161185/fitplan/internal/repository"
	"github.com/and161185/fitplan/internal/workout"
)

// store is an in-memory backend shared by the repository fakes so a progress
// save can move energy the way the SQL transaction does.
type store struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*model.User
	progress  map[uuid.UUID]model.Progress
	inventory map[uuid.UUID]map[string]int64
	rewarded  map[uuid.UUID]map[string]bool

	createErr error
	getErr    error
	saveErr   error
	saveCalls int
}

func newStore() *store {
	return &store{
		users:     map[uuid.UUID]*model.User{},
		progress:  map[uuid.UUID]model.Progress{},
		inventory: map[uuid.UUID]map[string]int64{},
		rewarded:  map[uuid.UUID]map[string]bool{},
	}
}

func (s *store) addUser(name string, energy int64) *model.User {
	u := &model.User{ID: uuid.Must(uuid.NewV4()), Username: name, Energy: energy}
	s.users[u.ID] = u
	return u
}

func (s *store) give(id uuid.UUID, sku string, n int64) {
	if s.inventory[id] == nil {
		s.inventory[id] = map[string]int64{}
	}
	s.inventory[id][sku] += n
}

type fakeUsers struct{ *store }

var _ repository.UserRepository = fakeUsers{}

func (f fakeUsers) Create(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, x := range f.users {
		if strings.EqualFold(x.Username, u.Username) {
			return errs.ErrAlreadyExists
		}
	}
	cpy := *u
	f.users[u.ID] = &cpy
	return nil
}

func (f fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (f fakeUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if strings.EqualFold(u.Username, username) {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f fakeUsers) SetAvatar(_ context.Context, id uuid.UUID, avatar string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return errs.ErrNotFound
	}
	u.Avatar = avatar
	return nil
}

func (f fakeUsers) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

type fakeProgress struct{ *store }

var _ repository.ProgressRepository = fakeProgress{}

func (f fakeProgress) Get(_ context.Context, id uuid.UUID) (*model.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.progress[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if p.WorkoutPlan != nil {
		plan := workout.NormalizePlan(*p.WorkoutPlan)
		p.WorkoutPlan = &plan
	}
	return &p, nil
}

// Save mirrors the SQL transaction: nothing changes unless every step succeeds.
func (f fakeProgress) Save(_ context.Context, id uuid.UUID, p model.Progress, st model.Stats) (model.SaveResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.saveErr != nil {
		return model.SaveResult{}, f.saveErr
	}
	u, ok := f.users[id]
	if !ok {
		return model.SaveResult{}, errs.ErrNotFound
	}
	if st.Spend != "" && f.inventory[id][st.Spend] < 1 {
		return model.SaveResult{}, fmt.Errorf("%w: no %s left", errs.ErrInsufficientFunds, st.Spend)
	}

	var fresh []string
	for _, d := range st.RewardDates {
		if !f.rewarded[id][d] {
			fresh = append(fresh, d)
		}
	}
	res := model.SaveResult{Streak: st.Streak, EnergyAwarded: workout.Reward(len(fresh), st.Streak)}
	if res.EnergyAwarded > 0 && st.Boost != "" && f.inventory[id][st.Boost] > 0 {
		f.inventory[id][st.Boost]--
		res.EnergyAwarded *= 2
		res.DoubledEnergy = true
	}
	if st.Spend != "" {
		f.inventory[id][st.Spend]--
	}
	if f.rewarded[id] == nil {
		f.rewarded[id] = map[string]bool{}
	}
	for _, d := range fresh {
		f.rewarded[id][d] = true
	}

	p.Version = f.progress[id].Version + 1
	p.UpdatedAt = time.Now()
	f.progress[id] = p
	u.Energy += res.EnergyAwarded
	u.Streak = st.Streak
	res.Version, res.Energy = p.Version, u.Energy
	return res, nil
}

func (f fakeProgress) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.progress)), nil
}

type fakeInventory struct{ *store }

var _ repository.InventoryRepository = fakeInventory{}

func (f fakeInventory) List(_ context.Context, id uuid.UUID) ([]model.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.InventoryItem{}
	for _, sku := range []string{SKUAvatarFrame, SKUDoubleEnergy, SKUStreakSaver} {
		if n := f.inventory[id][sku]; n > 0 {
			out = append(out, model.InventoryItem{SKU: sku, Quantity: n})
		}
	}
	return out, nil
}

func (f fakeInventory) Purchase(_ context.Context, id uuid.UUID, sku string, qty, cost int64) (int64, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return 0, 0, errs.ErrNotFound
	}
	if u.Energy < cost {
		return 0, 0, errs.ErrInsufficientFunds
	}
	u.Energy -= cost
	f.give(id, sku, qty)
	return u.Energy, f.inventory[id][sku], nil
}

type fakeLimiter struct {
	allowOK  bool
	allowErr error

	failBlocked bool
	failErr     error

	successErr error

	allowCalls   int
	failureCalls int
	successCalls int
}

var _ limiter.Limiter = (*fakeLimiter)(nil)

func (l *fakeLimiter) Allow(context.Context, string, []byte) (bool, time.Duration, error) {
	l.allowCalls++
	return l.allowOK, 0, l.allowErr
}
func (l *fakeLimiter) Success(context.Context, string, []byte) error {
	l.successCalls++
	return l.successErr
}
func (l *fakeLimiter) Failure(context.Context, string, []byte) (bool, time.Duration, error) {
	l.failureCalls++
	return l.failBlocked, 0, l.failErr
}

// fakeGen returns plan, or a one-day plan on the request's start date when
// plan is empty.
type fakeGen struct {
	plan    workout.Plan
	day     workout.DayWorkout
	err     error
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}

	mu   sync.Mutex
	reqs []planner.PlanRequest
}

var _ PlanGenerator = (*fakeGen)(nil)

func (g *fakeGen) GeneratePlan(_ context.Context, req planner.PlanRequest) (workout.Plan, error) {
	g.calls.Add(1)
	g.mu.Lock()
	g.reqs = append(g.reqs, req)
	g.mu.Unlock()
	if g.started != nil {
		g.started <- struct{}{}
	}
	if g.release != nil {
		<-g.release
	}
	if g.err != nil || len(g.plan.DailyWorkouts) > 0 {
		return g.plan, g.err
	}
	return *planOf(day(req.StartDate, false, workout.TypeCardio)), nil
}

func (g *fakeGen) RegenerateDay(_ context.Context, _ workout.Plan, date string, _ planner.Profile) (workout.DayWorkout, error) {
	g.calls.Add(1)
	d := g.day
	d.Date = date
	return d, g.err
}

func clock(date string) func() time.Time {
	t, err := workout.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t.Add(12 * time.Hour) }
}

func day(date string, done bool, types ...workout.Type) workout.DayWorkout {
	d := workout.DayWorkout{
		Date:     date,
		Types:    types,
		Workouts: []workout.Exercise{{Name: "squat", Duration: "10 min"}},
	}
	if done {
		d.CompletedTypes = append([]workout.Type{}, types...)
	}
	return workout.NormalizeDay(d)
}

func planOf(days ...workout.DayWorkout) *workout.Plan {
	p := workout.NormalizePlan(workout.Plan{ID: "p", DailyWorkouts: days})
	return &p
}
