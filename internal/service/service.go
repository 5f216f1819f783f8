package service

import (
	"context"
	"time"

	"workouthelper/internal/models"
	"workouthelper/internal/repository"
)

// Accounts covers registration, login, token parsing, profile settings and
// account removal (with cascade over owned plans and workouts).
type Accounts interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (string, models.User, error)
	ParseToken(accessToken string) (string, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) (models.User, error)
	SetTooltips(ctx context.Context, userID string, value bool) (models.User, error)
	Tooltips(ctx context.Context, userID string) (bool, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteAccount(ctx context.Context, username string) error
}

// Planner manages a user's named workout plans.
type Planner interface {
	CreatePlan(ctx context.Context, userID, planName, planMemo string) (models.Plan, error)
	ListPlans(ctx context.Context, userID string) ([]models.Plan, error)
	DeletePlan(ctx context.Context, userID, planName string) error
}

// Workouts manages exercise categories and their result history.
type Workouts interface {
	CreateWorkout(ctx context.Context, userID, categoryTitle string, target *float64) (models.Workout, error)
	ListWorkouts(ctx context.Context, userID string) ([]models.Workout, error)
	RecordResult(ctx context.Context, userID string, p RecordParams) (models.Workout, error)
	DeleteWorkout(ctx context.Context, userID, categoryTitle string) error
}

// Config carries the process-wide auth settings, injected at startup so
// services stay testable in isolation.
type Config struct {
	SigningKey string
	TokenTTL   time.Duration
	BcryptCost int
}

type Service struct {
	Accounts
	Planner
	Workouts
}

func NewService(repos *repository.Repository, cfg Config) *Service {
	return &Service{
		Accounts: NewAccountService(repos.Users, repos.Plans, repos.Workouts, cfg),
		Planner:  NewPlannerService(repos.Plans, repos.Users),
		Workouts: NewWorkoutService(repos.Workouts, repos.Users),
	}
}
