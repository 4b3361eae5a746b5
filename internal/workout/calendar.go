package workout

import "fmt"

// Calendar is the editable, date-keyed view over a plan. Days are kept sorted
// and unique by date. A Calendar is not safe for concurrent use.
type Calendar struct {
	plan   Plan
	policy Policy
}

// NewCalendar wraps a normalized copy of p.
func NewCalendar(p Plan, policy Policy) *Calendar {
	return &Calendar{plan: policy.NormalizePlan(p), policy: policy}
}

// Plan returns a normalized copy of the calendar's plan.
func (c *Calendar) Plan() Plan {
	return c.policy.NormalizePlan(clonePlan(c.plan))
}

// Days returns a copy of the calendar's days in date order.
func (c *Calendar) Days() []DayWorkout {
	return clonePlan(c.plan).DailyWorkouts
}

// Get returns the day stored under date.
func (c *Calendar) Get(date string) (DayWorkout, bool) {
	i := c.index(date)
	if i < 0 {
		return DayWorkout{}, false
	}
	return cloneDay(c.plan.DailyWorkouts[i]), true
}

// Replace swaps the whole plan, e.g. after a regeneration.
func (c *Calendar) Replace(p Plan) {
	c.plan = c.policy.NormalizePlan(p)
}

// Insert adds a new day. The date must be free and the day must pass the
// policy.
func (c *Calendar) Insert(d DayWorkout) error {
	if _, err := ParseDate(d.Date); err != nil {
		return err
	}
	if c.index(d.Date) >= 0 {
		return fmt.Errorf("%s: %w", d.Date, ErrDayExists)
	}
	d, err := c.policy.Admit(d, c.plan.DailyWorkouts)
	if err != nil {
		return err
	}
	c.plan.DailyWorkouts = append(c.plan.DailyWorkouts, d)
	c.commit()
	return nil
}

// Update replaces the day stored under d.Date.
func (c *Calendar) Update(d DayWorkout) error {
	i := c.index(d.Date)
	if i < 0 {
		return fmt.Errorf("%s: %w", d.Date, ErrDayNotFound)
	}
	d, err := c.policy.Admit(d, c.plan.DailyWorkouts)
	if err != nil {
		return err
	}
	c.plan.DailyWorkouts[i] = d
	c.commit()
	return nil
}

// Upsert inserts d or replaces the existing day under its date.
func (c *Calendar) Upsert(d DayWorkout) error {
	if _, err := ParseDate(d.Date); err != nil {
		return err
	}
	d, err := c.policy.Admit(d, c.plan.DailyWorkouts)
	if err != nil {
		return err
	}
	if i := c.index(d.Date); i >= 0 {
		c.plan.DailyWorkouts[i] = d
	} else {
		c.plan.DailyWorkouts = append(c.plan.DailyWorkouts, d)
	}
	c.commit()
	return nil
}

// Delete removes the day stored under date.
func (c *Calendar) Delete(date string) error {
	i := c.index(date)
	if i < 0 {
		return fmt.Errorf("%s: %w", date, ErrDayNotFound)
	}
	days := c.plan.DailyWorkouts
	c.plan.DailyWorkouts = append(days[:i:i], days[i+1:]...)
	c.commit()
	return nil
}

// Move re-dates the day at from to to. When to is occupied the two days swap
// payloads so both dates stay populated. Both days must pass the policy at
// their new dates.
func (c *Calendar) Move(from, to string) error {
	if _, err := ParseDate(to); err != nil {
		return err
	}
	i := c.index(from)
	if i < 0 {
		return fmt.Errorf("%s: %w", from, ErrDayNotFound)
	}
	if from == to {
		return nil
	}
	days := clonePlan(c.plan).DailyWorkouts
	moved := []int{i}
	days[i].Date = to
	if j := c.index(to); j >= 0 {
		days[j].Date = from
		moved = append(moved, j)
	}
	for _, k := range moved {
		if _, err := c.policy.Admit(days[k], days); err != nil {
			return err
		}
	}
	c.plan.DailyWorkouts = days
	c.commit()
	return nil
}

// AddType merges t into the day at date, creating the day when missing.
func (c *Calendar) AddType(date string, t Type) error {
	if _, err := ParseDate(date); err != nil {
		return err
	}
	rest := RestDaysInWeek(c.plan.DailyWorkouts, date)
	i := c.index(date)
	if i < 0 {
		d, err := c.policy.MergeType(DayWorkout{Date: date}, t, rest)
		if err != nil {
			return err
		}
		c.plan.DailyWorkouts = append(c.plan.DailyWorkouts, d)
		c.commit()
		return nil
	}
	d, err := c.policy.MergeType(c.plan.DailyWorkouts[i], t, rest)
	if err != nil {
		return err
	}
	c.plan.DailyWorkouts[i] = d
	c.commit()
	return nil
}

// AddExercise appends e to the day's main workouts. Rest days refuse it.
func (c *Calendar) AddExercise(date string, e Exercise) error {
	i := c.index(date)
	if i < 0 {
		return fmt.Errorf("%s: %w", date, ErrDayNotFound)
	}
	d := &c.plan.DailyWorkouts[i]
	if d.IsRest() {
		return fmt.Errorf("%s: %w", date, ErrRestExercises)
	}
	d.Workouts = append(d.Workouts, e)
	c.commit()
	return nil
}

// RemoveExercise drops the idx-th main exercise. A non-rest day left without
// exercises is deleted.
func (c *Calendar) RemoveExercise(date string, idx int) error {
	i := c.index(date)
	if i < 0 {
		return fmt.Errorf("%s: %w", date, ErrDayNotFound)
	}
	d := c.plan.DailyWorkouts[i]
	if idx < 0 || idx >= len(d.Workouts) {
		return fmt.Errorf("%s: exercise %d out of range", date, idx)
	}
	d.Workouts = append(d.Workouts[:idx:idx], d.Workouts[idx+1:]...)
	if len(d.Workouts) == 0 && !d.IsRest() {
		return c.Delete(date)
	}
	c.plan.DailyWorkouts[i] = d
	c.commit()
	return nil
}

// ToggleCompleted flips completion of type t on the day. An empty t toggles the
// whole day.
func (c *Calendar) ToggleCompleted(date string, t Type) error {
	i := c.index(date)
	if i < 0 {
		return fmt.Errorf("%s: %w", date, ErrDayNotFound)
	}
	d := c.plan.DailyWorkouts[i]
	switch {
	case t == "":
		if d.Completed {
			d.CompletedTypes = []Type{}
		} else {
			d.CompletedTypes = append([]Type{}, d.Types...)
		}
	case !d.HasType(t):
		return fmt.Errorf("%s: type %q not scheduled", date, t)
	case containsType(d.CompletedTypes, t):
		done := make([]Type, 0, len(d.CompletedTypes))
		for _, x := range d.CompletedTypes {
			if x != t {
				done = append(done, x)
			}
		}
		d.CompletedTypes = done
	default:
		d.CompletedTypes = append(append([]Type{}, d.CompletedTypes...), t)
	}
	c.plan.DailyWorkouts[i] = d
	c.commit()
	return nil
}

// MarkStreakSaver flags date as bridged by a streak saver. A missing date is
// filled with a rest placeholder that does not count toward the weekly rest
// cap.
func (c *Calendar) MarkStreakSaver(date string) error {
	if _, err := ParseDate(date); err != nil {
		return err
	}
	i := c.index(date)
	if i < 0 {
		c.plan.DailyWorkouts = append(c.plan.DailyWorkouts, DayWorkout{
			Date:        date,
			Types:       []Type{TypeRest},
			StreakSaver: true,
		})
	} else {
		c.plan.DailyWorkouts[i].StreakSaver = true
	}
	c.commit()
	return nil
}

func (c *Calendar) commit() {
	c.plan = c.policy.NormalizePlan(c.plan)
}

func (c *Calendar) index(date string) int {
	for i, d := range c.plan.DailyWorkouts {
		if d.Date == date {
			return i
		}
	}
	return -1
}

func clonePlan(p Plan) Plan {
	out := p
	out.WeeklyStructure = append([]string(nil), p.WeeklyStructure...)
	out.DailyWorkouts = make([]DayWorkout, len(p.DailyWorkouts))
	for i, d := range p.DailyWorkouts {
		out.DailyWorkouts[i] = cloneDay(d)
	}
	return out
}

func cloneDay(d DayWorkout) DayWorkout {
	out := d
	out.Types = append([]Type{}, d.Types...)
	out.CompletedTypes = append([]Type{}, d.CompletedTypes...)
	out.Workouts = cloneExercises(d.Workouts)
	out.AlternativeWorkouts = cloneExercises(d.AlternativeWorkouts)
	return out
}

func cloneExercises(es []Exercise) []Exercise {
	out := make([]Exercise, len(es))
	for i, e := range es {
		e.MuscleGroups = append([]string{}, e.MuscleGroups...)
		e.Equipment = append([]string{}, e.Equipment...)
		if e.Sets != nil {
			n := *e.Sets
			e.Sets = &n
		}
		out[i] = e
	}
	return out
}
