package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"workouthelper/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite { return &UserSQLite{db: db} }

var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL = `INSERT INTO users (id, username, password_hash, tooltips, plans, workouts) VALUES (?, ?, ?, ?, ?, ?)`
	selectUserSQL = `SELECT id, username, password_hash, tooltips, plans, workouts FROM users`

	updatePasswordHashSQL = `UPDATE users SET password_hash = ? WHERE id = ?`
	updateTooltipsSQL     = `UPDATE users SET tooltips = ? WHERE id = ?`
	updatePlanRefsSQL     = `UPDATE users SET plans = ? WHERE id = ?`
	updateWorkoutRefsSQL  = `UPDATE users SET workouts = ? WHERE id = ?`
	deleteUserSQL         = `DELETE FROM users WHERE id = ?`
)

// encodeRefs packs an id list into its JSON column form. A nil list is
// stored as an empty array so scans always round-trip.
func encodeRefs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encode reference array: %w", err)
	}
	return string(b), nil
}

func decodeRefs(raw string) ([]string, error) {
	ids := []string{}
	if raw == "" {
		return ids, nil
	}
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode reference array: %w", err)
	}
	return ids, nil
}

func (r *UserSQLite) Create(ctx context.Context, u models.User) error {
	plans, err := encodeRefs(u.Plans)
	if err != nil {
		return err
	}
	workouts, err := encodeRefs(u.Workouts)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, insertUserSQL, u.ID, u.Username, u.PasswordHash, u.Tooltips, plans, workouts); err != nil {
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return nil
}

func (r *UserSQLite) scanUser(row *sql.Row) (*models.User, error) {
	var (
		u               models.User
		plans, workouts string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Tooltips, &plans, &workouts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	var err error
	if u.Plans, err = decodeRefs(plans); err != nil {
		return nil, err
	}
	if u.Workouts, err = decodeRefs(workouts); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, selectUserSQL+` WHERE id = ?`, id))
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, selectUserSQL+` WHERE username = ?`, username))
}

func (r *UserSQLite) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUserSQL+` ORDER BY username ASC`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		var (
			u               models.User
			plans, workouts string
		)
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Tooltips, &plans, &workouts); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		if u.Plans, err = decodeRefs(plans); err != nil {
			return nil, err
		}
		if u.Workouts, err = decodeRefs(workouts); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

func (r *UserSQLite) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	if _, err := r.db.ExecContext(ctx, updatePasswordHashSQL, hash, id); err != nil {
		return fmt.Errorf("update password hash for user %q: %w", id, err)
	}
	return nil
}

func (r *UserSQLite) UpdateTooltips(ctx context.Context, id string, value bool) error {
	if _, err := r.db.ExecContext(ctx, updateTooltipsSQL, value, id); err != nil {
		return fmt.Errorf("update tooltips for user %q: %w", id, err)
	}
	return nil
}

func (r *UserSQLite) AppendPlanRef(ctx context.Context, userID, planID string) error {
	return r.mutateRefs(ctx, userID, updatePlanRefsSQL, func(u *models.User) []string {
		return append(u.Plans, planID)
	})
}

func (r *UserSQLite) RemovePlanRef(ctx context.Context, userID, planID string) error {
	return r.mutateRefs(ctx, userID, updatePlanRefsSQL, func(u *models.User) []string {
		return removeRef(u.Plans, planID)
	})
}

func (r *UserSQLite) AppendWorkoutRef(ctx context.Context, userID, workoutID string) error {
	return r.mutateRefs(ctx, userID, updateWorkoutRefsSQL, func(u *models.User) []string {
		return append(u.Workouts, workoutID)
	})
}

func (r *UserSQLite) RemoveWorkoutRef(ctx context.Context, userID, workoutID string) error {
	return r.mutateRefs(ctx, userID, updateWorkoutRefsSQL, func(u *models.User) []string {
		return removeRef(u.Workouts, workoutID)
	})
}

// mutateRefs rewrites one reference-array column through a read-modify-write
// on the current document. Single-column update only; callers own the
// ordering relative to the child-document write.
func (r *UserSQLite) mutateRefs(ctx context.Context, userID, query string, mutate func(*models.User) []string) error {
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("mutate references: user %q not found", userID)
	}
	refs, err := encodeRefs(mutate(u))
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, refs, userID); err != nil {
		return fmt.Errorf("update references for user %q: %w", userID, err)
	}
	return nil
}

func removeRef(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func (r *UserSQLite) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteUserSQL, id); err != nil {
		return fmt.Errorf("delete user %q: %w", id, err)
	}
	return nil
}
