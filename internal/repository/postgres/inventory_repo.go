package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/and161185/fitplan/internal/errs"
	"github.com/and161185/fitplan/internal/model"
)

// InventoryRepo implements InventoryRepository using PostgreSQL.
type InventoryRepo struct{ db *DB }

// NewInventoryRepo constructs an inventory repository.
func NewInventoryRepo(db *DB) *InventoryRepo { return &InventoryRepo{db: db} }

// List returns non-empty stacks ordered by SKU.
func (r *InventoryRepo) List(ctx context.Context, userID uuid.UUID) ([]model.InventoryItem, error) {
	const q = `
SELECT sku, quantity
FROM inventory
WHERE user_id=$1 AND quantity>0
ORDER BY sku ASC`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.InventoryItem{}
	for rows.Next() {
		var it model.InventoryItem
		if err := rows.Scan(&it.SKU, &it.Quantity); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Purchase locks the user row, debits energy and credits the item.
func (r *InventoryRepo) Purchase(
	ctx context.Context, userID uuid.UUID, sku string, qty, cost int64,
) (energy, quantity int64, err error) {
	const sel = `SELECT energy FROM users WHERE id=$1 FOR UPDATE`
	const debit = `UPDATE users SET energy=energy-$2 WHERE id=$1`
	const credit = `
INSERT INTO inventory (user_id, sku, quantity) VALUES ($1,$2,$3)
ON CONFLICT (user_id, sku) DO UPDATE SET quantity=inventory.quantity+EXCLUDED.quantity
RETURNING quantity`

	err = r.db.inTx(ctx, func(tx pgx.Tx) error {
		var balance int64
		if err := tx.QueryRow(ctx, sel, userID).Scan(&balance); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if balance < cost {
			return errs.ErrInsufficientFunds
		}
		if _, err := tx.Exec(ctx, debit, userID, cost); err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, credit, userID, sku, qty).Scan(&quantity); err != nil {
			return err
		}
		energy = balance - cost
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return energy, quantity, nil
}
