package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/and161185/fitplan/internal/errs"
	"github.com/and161185/fitplan/internal/model"
	"github.com/and161185/fitplan/internal/workout"
)

// ProgressRepo implements ProgressRepository using PostgreSQL.
type ProgressRepo struct{ db *DB }

// NewProgressRepo constructs a progress repository.
func NewProgressRepo(db *DB) *ProgressRepo { return &ProgressRepo{db: db} }

// Get returns the stored payload of a user.
func (r *ProgressRepo) Get(ctx context.Context, userID uuid.UUID) (*model.Progress, error) {
	const q = `
SELECT questionnaire_progress, workout_plan, assessment_data, chat_history,
       accepted_terms, accepted_privacy, version, updated_at
FROM progress WHERE user_id=$1`
	var (
		p                                 model.Progress
		questionnaire, plan, assess, chat []byte
	)
	err := r.db.Pool.QueryRow(ctx, q, userID).Scan(
		&questionnaire, &plan, &assess, &chat,
		&p.AcceptedTerms, &p.AcceptedPrivacy, &p.Version, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.QuestionnaireProgress = rawOrNil(questionnaire)
	p.AssessmentData = rawOrNil(assess)
	p.ChatHistory = rawOrNil(chat)
	if len(plan) > 0 && string(plan) != "null" {
		var wp workout.Plan
		if err := json.Unmarshal(plan, &wp); err != nil {
			return nil, fmt.Errorf("decode stored plan: %w", err)
		}
		p.WorkoutPlan = &wp
	}
	return &p, nil
}

// Save upserts the payload and applies stats in one transaction. Reward dates
// go through the rewarded_days ledger so a date pays out once however often
// it is toggled.
func (r *ProgressRepo) Save(
	ctx context.Context, userID uuid.UUID, p model.Progress, stats model.Stats,
) (model.SaveResult, error) {
	var plan any
	if p.WorkoutPlan != nil {
		b, err := json.Marshal(p.WorkoutPlan)
		if err != nil {
			return model.SaveResult{}, err
		}
		plan = b
	}

	const ups = `
INSERT INTO progress (user_id, questionnaire_progress, workout_plan, assessment_data, chat_history,
                      accepted_terms, accepted_privacy, version, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,1,now())
ON CONFLICT (user_id) DO UPDATE SET
  questionnaire_progress=EXCLUDED.questionnaire_progress,
  workout_plan=EXCLUDED.workout_plan,
  assessment_data=EXCLUDED.assessment_data,
  chat_history=EXCLUDED.chat_history,
  accepted_terms=EXCLUDED.accepted_terms,
  accepted_privacy=EXCLUDED.accepted_privacy,
  version=progress.version+1,
  updated_at=now()
RETURNING version`
	const ledger = `
WITH paid AS (
  INSERT INTO rewarded_days (user_id, day)
  SELECT $1, d::date FROM unnest($2::text[]) AS d
  ON CONFLICT DO NOTHING
  RETURNING day
)
SELECT count(*) FROM paid`
	const upd = `UPDATE users SET energy=energy+$2, streak=$3 WHERE id=$1 RETURNING energy`

	res := model.SaveResult{Streak: stats.Streak}
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if stats.Spend != "" {
			err := spendOne(ctx, tx, userID, stats.Spend)
			if errors.Is(err, errs.ErrNotFound) {
				return fmt.Errorf("%w: no %s left", errs.ErrInsufficientFunds, stats.Spend)
			}
			if err != nil {
				return err
			}
		}

		if err := tx.QueryRow(ctx, ups, userID,
			jsonArg(p.QuestionnaireProgress), plan, jsonArg(p.AssessmentData), jsonArg(p.ChatHistory),
			p.AcceptedTerms, p.AcceptedPrivacy,
		).Scan(&res.Version); err != nil {
			return err
		}

		if len(stats.RewardDates) > 0 {
			var paid int64
			if err := tx.QueryRow(ctx, ledger, userID, stats.RewardDates).Scan(&paid); err != nil {
				return err
			}
			res.EnergyAwarded = workout.Reward(int(paid), stats.Streak)
		}

		if res.EnergyAwarded > 0 && stats.Boost != "" {
			err := spendOne(ctx, tx, userID, stats.Boost)
			switch {
			case err == nil:
				res.EnergyAwarded *= 2
				res.DoubledEnergy = true
			case !errors.Is(err, errs.ErrNotFound):
				return err
			}
		}

		err := tx.QueryRow(ctx, upd, userID, res.EnergyAwarded, stats.Streak).Scan(&res.Energy)
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	})
	if err != nil {
		return model.SaveResult{}, err
	}
	return res, nil
}

// spendOne removes a single unit of sku inside tx.
func spendOne(ctx context.Context, tx pgx.Tx, userID uuid.UUID, sku string) error {
	const q = `UPDATE inventory SET quantity=quantity-1 WHERE user_id=$1 AND sku=$2 AND quantity>0 RETURNING quantity`
	var left int64
	err := tx.QueryRow(ctx, q, userID, sku).Scan(&left)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	return err
}

// Count returns the number of stored payloads.
func (r *ProgressRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.Pool.QueryRow(ctx, `SELECT count(*) FROM progress`).Scan(&n)
	return n, err
}

// jsonArg maps an empty document to SQL NULL.
func jsonArg(m json.RawMessage) any {
	if len(m) == 0 {
		return nil
	}
	return []byte(m)
}

func rawOrNil(b []byte) json.RawMessage {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	return json.RawMessage(b)
}
