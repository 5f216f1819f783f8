package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"workouthelper/internal/models"
)

type WorkoutSQLite struct {
	db *sql.DB
}

func NewWorkoutSQLite(db *sql.DB) *WorkoutSQLite { return &WorkoutSQLite{db: db} }

var _ Workouts = (*WorkoutSQLite)(nil)

const (
	insertWorkoutSQL        = `INSERT INTO workouts (id, category_title, target, result, notes, user_id) VALUES (?, ?, ?, ?, ?, ?)`
	selectWorkoutsByUserSQL = `SELECT id, category_title, target, result, notes, user_id FROM workouts WHERE user_id = ?`
	updateWorkoutSQL        = `UPDATE workouts SET target = ?, result = ?, notes = ? WHERE id = ?`
	deleteWorkoutSQL        = `DELETE FROM workouts WHERE id = ?`
	deleteWorkoutsByUserSQL = `DELETE FROM workouts WHERE user_id = ?`
)

// encodeResults packs the result history into its JSON column form.
func encodeResults(entries []models.ResultEntry) (string, error) {
	if entries == nil {
		entries = []models.ResultEntry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("encode result history: %w", err)
	}
	return string(b), nil
}

func decodeResults(raw string) ([]models.ResultEntry, error) {
	entries := []models.ResultEntry{}
	if raw == "" {
		return entries, nil
	}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode result history: %w", err)
	}
	return entries, nil
}

func (r *WorkoutSQLite) Insert(ctx context.Context, w models.Workout) error {
	result, err := encodeResults(w.Result)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, insertWorkoutSQL, w.ID, w.CategoryTitle, w.Target, result, w.Notes, w.UserID); err != nil {
		return fmt.Errorf("insert workout %q: %w", w.CategoryTitle, err)
	}
	return nil
}

func (r *WorkoutSQLite) ListByUser(ctx context.Context, userID string) ([]models.Workout, error) {
	rows, err := r.db.QueryContext(ctx, selectWorkoutsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select workouts for user %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Workout, 0, 8)
	for rows.Next() {
		var (
			w      models.Workout
			result string
		)
		if err := rows.Scan(&w.ID, &w.CategoryTitle, &w.Target, &result, &w.Notes, &w.UserID); err != nil {
			return nil, fmt.Errorf("scan workout row: %w", err)
		}
		if w.Result, err = decodeResults(result); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}
	return out, nil
}

// Update overwrites the mutable fields (target, result history, notes).
func (r *WorkoutSQLite) Update(ctx context.Context, w models.Workout) error {
	result, err := encodeResults(w.Result)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, updateWorkoutSQL, w.Target, result, w.Notes, w.ID); err != nil {
		return fmt.Errorf("update workout %q: %w", w.ID, err)
	}
	return nil
}

func (r *WorkoutSQLite) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteWorkoutSQL, id); err != nil {
		return fmt.Errorf("delete workout %q: %w", id, err)
	}
	return nil
}

func (r *WorkoutSQLite) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, deleteWorkoutsByUserSQL, userID); err != nil {
		return fmt.Errorf("delete workouts for user %q: %w", userID, err)
	}
	return nil
}
