// Package planner turns questionnaire answers into workout plans via a hosted
// text model, repairing and strictly validating the model's JSON.
package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/fitplan/internal/errs"
	"github.com/and161185/fitplan/internal/workout"
)

// TextModel is a hosted text-generation API.
type TextModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// DefaultAttempts is the number of model calls per request: the plain prompt,
// then one retry with the strict suffix.
const DefaultAttempts = 2

// Generator builds plans and single days with bounded retry on bad output.
type Generator struct {
	model    TextModel
	attempts int
	log      *zap.Logger
}

// NewGenerator constructs a Generator. A nil logger disables logging.
func NewGenerator(model TextModel, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{model: model, attempts: DefaultAttempts, log: log}
}

// GeneratePlan asks the model for a full plan.
func (g *Generator) GeneratePlan(ctx context.Context, req PlanRequest) (workout.Plan, error) {
	if req.Days <= 0 {
		return workout.Plan{}, fmt.Errorf("%w: days must be positive", errs.ErrValidation)
	}
	if _, err := workout.ParseDate(req.StartDate); err != nil {
		return workout.Plan{}, fmt.Errorf("%w: %v", errs.ErrValidation, err)
	}

	var plan workout.Plan
	err := g.ask(ctx, "plan", BuildPlanPrompt(req), func(text string) error {
		p, err := DecodePlan(text)
		if err != nil {
			return err
		}
		plan = p
		return nil
	})
	if err != nil {
		return workout.Plan{}, err
	}
	if plan.ID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return workout.Plan{}, err
		}
		plan.ID = id.String()
	}
	return plan, nil
}

// RegenerateDay asks the model for a replacement of one date in plan.
func (g *Generator) RegenerateDay(ctx context.Context, plan workout.Plan, date string, profile Profile) (workout.DayWorkout, error) {
	if _, err := workout.ParseDate(date); err != nil {
		return workout.DayWorkout{}, fmt.Errorf("%w: %v", errs.ErrValidation, err)
	}
	var day workout.DayWorkout
	err := g.ask(ctx, "day", BuildDayPrompt(plan, date, profile), func(text string) error {
		d, err := DecodeDay(text, date)
		if err != nil {
			return err
		}
		day = d
		return nil
	})
	return day, err
}

// ask calls the model until decode accepts the output or attempts run out.
// Transport errors are returned at once; only unusable output is retried.
func (g *Generator) ask(ctx context.Context, kind, prompt string, decode func(string) error) error {
	var lastErr error
	for i := 0; i < g.attempts; i++ {
		p := prompt
		if i > 0 {
			p += strictSuffix
		}
		text, err := g.model.Generate(ctx, p)
		if err != nil {
			return fmt.Errorf("generate %s: %w", kind, err)
		}
		if lastErr = decode(text); lastErr == nil {
			return nil
		}
		g.log.Warn("unusable model output",
			zap.String("kind", kind),
			zap.Int("attempt", i+1),
			zap.Error(lastErr),
		)
	}
	if lastErr == nil {
		lastErr = errors.New("no attempts made")
	}
	return fmt.Errorf("%w: %s: %w", errs.ErrGenerationFailed, kind, lastErr)
}
