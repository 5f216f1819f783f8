package repository

import (
	"context"
	"database/sql"
	"fmt"

	"workouthelper/internal/models"
)

type PlanSQLite struct {
	db *sql.DB
}

func NewPlanSQLite(db *sql.DB) *PlanSQLite { return &PlanSQLite{db: db} }

var _ Plans = (*PlanSQLite)(nil)

const (
	insertPlanSQL        = `INSERT INTO plans (id, plan_name, plan_memo, user_id) VALUES (?, ?, ?, ?)`
	selectPlansByUserSQL = `SELECT id, plan_name, plan_memo, user_id FROM plans WHERE user_id = ?`
	deletePlanSQL        = `DELETE FROM plans WHERE id = ?`
	deletePlansByUserSQL = `DELETE FROM plans WHERE user_id = ?`
)

func (r *PlanSQLite) Insert(ctx context.Context, p models.Plan) error {
	if _, err := r.db.ExecContext(ctx, insertPlanSQL, p.ID, p.PlanName, p.PlanMemo, p.UserID); err != nil {
		return fmt.Errorf("insert plan %q: %w", p.PlanName, err)
	}
	return nil
}

func (r *PlanSQLite) ListByUser(ctx context.Context, userID string) ([]models.Plan, error) {
	rows, err := r.db.QueryContext(ctx, selectPlansByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select plans for user %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Plan, 0, 8)
	for rows.Next() {
		var p models.Plan
		if err := rows.Scan(&p.ID, &p.PlanName, &p.PlanMemo, &p.UserID); err != nil {
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}
	return out, nil
}

func (r *PlanSQLite) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deletePlanSQL, id); err != nil {
		return fmt.Errorf("delete plan %q: %w", id, err)
	}
	return nil
}

func (r *PlanSQLite) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, deletePlansByUserSQL, userID); err != nil {
		return fmt.Errorf("delete plans for user %q: %w", userID, err)
	}
	return nil
}
