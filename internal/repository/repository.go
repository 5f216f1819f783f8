package repository

import (
	"context"
	"database/sql"

	"workouthelper/internal/models"
)

// Users owns the user documents, including the plan/workout reference
// arrays. Lookup methods return (nil, nil) when no document matches.
type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	UpdateTooltips(ctx context.Context, id string, value bool) error
	AppendPlanRef(ctx context.Context, userID, planID string) error
	RemovePlanRef(ctx context.Context, userID, planID string) error
	AppendWorkoutRef(ctx context.Context, userID, workoutID string) error
	RemoveWorkoutRef(ctx context.Context, userID, workoutID string) error
	Delete(ctx context.Context, id string) error
}

type Plans interface {
	Insert(ctx context.Context, p models.Plan) error
	ListByUser(ctx context.Context, userID string) ([]models.Plan, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}

type Workouts interface {
	Insert(ctx context.Context, w models.Workout) error
	ListByUser(ctx context.Context, userID string) ([]models.Workout, error)
	Update(ctx context.Context, w models.Workout) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}

type Repository struct {
	Users    Users
	Plans    Plans
	Workouts Workouts
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserSQLite(conn),
		Plans:    NewPlanSQLite(conn),
		Workouts: NewWorkoutSQLite(conn),
	}
}
