package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"workouthelper/internal/models"
	"workouthelper/internal/repository"

	"github.com/google/uuid"
)

const categoryTitleMaxLen = 55

// RecordParams carries one result entry plus optional target and notes
// updates. Target and ResultValue arrive as strings and must parse as
// numbers when present.
type RecordParams struct {
	CategoryTitle string
	Target        string
	ResultDate    string
	ResultValue   string
	Notes         string
}

// WorkoutService implements Workouts. Category titles are unique per user.
type WorkoutService struct {
	workouts repository.Workouts
	users    repository.Users
}

func NewWorkoutService(workouts repository.Workouts, users repository.Users) *WorkoutService {
	return &WorkoutService{workouts: workouts, users: users}
}

var _ Workouts = (*WorkoutService)(nil)

// parseFinite parses s as a float64 and rejects NaN and infinities, which
// ParseFloat accepts but neither the JSON history encoding nor the REAL
// target column can hold.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

// CreateWorkout persists the workout document, then appends its id to the
// owner's workout references, in that fixed order.
func (s *WorkoutService) CreateWorkout(ctx context.Context, userID, categoryTitle string, target *float64) (models.Workout, error) {
	if categoryTitle == "" || target == nil {
		return models.Workout{}, newValidationError("category title or target is missing")
	}
	if strings.TrimSpace(categoryTitle) == "" {
		return models.Workout{}, newValidationError("category title must have text content")
	}
	if len([]rune(categoryTitle)) > categoryTitleMaxLen {
		return models.Workout{}, newValidationError(fmt.Sprintf("category title must be at most %d characters long", categoryTitleMaxLen))
	}

	existing, err := s.workouts.ListByUser(ctx, userID)
	if err != nil {
		return models.Workout{}, err
	}
	for _, w := range existing {
		if w.CategoryTitle == categoryTitle {
			return models.Workout{}, newConflictError("category title is already in use")
		}
	}

	workout := models.Workout{
		ID:            uuid.NewString(),
		CategoryTitle: categoryTitle,
		Target:        *target,
		Result:        []models.ResultEntry{},
		UserID:        userID,
	}
	if err := s.workouts.Insert(ctx, workout); err != nil {
		return models.Workout{}, err
	}
	if err := s.users.AppendWorkoutRef(ctx, userID, workout.ID); err != nil {
		return models.Workout{}, err
	}
	return workout, nil
}

func (s *WorkoutService) ListWorkouts(ctx context.Context, userID string) ([]models.Workout, error) {
	return s.workouts.ListByUser(ctx, userID)
}

// RecordResult appends a dated result entry to the workout's history.
// History is never replaced; an optional new target overwrites the old one
// and optional notes are appended after a newline.
func (s *WorkoutService) RecordResult(ctx context.Context, userID string, p RecordParams) (models.Workout, error) {
	if p.ResultValue == "" {
		return models.Workout{}, newValidationError("result is missing")
	}
	result, err := parseFinite(p.ResultValue)
	if err != nil {
		return models.Workout{}, newValidationError("result is not a number")
	}

	existing, err := s.workouts.ListByUser(ctx, userID)
	if err != nil {
		return models.Workout{}, err
	}
	var workout *models.Workout
	for i := range existing {
		if existing[i].CategoryTitle == p.CategoryTitle {
			workout = &existing[i]
			break
		}
	}
	if workout == nil {
		return models.Workout{}, newNotFoundError("workout is not found")
	}

	if p.Target != "" {
		target, err := parseFinite(p.Target)
		if err != nil {
			return models.Workout{}, newValidationError("target is not a number")
		}
		workout.Target = target
	}

	workout.Result = append(workout.Result, models.ResultEntry{
		Date:   p.ResultDate,
		Result: result,
	})
	if p.Notes != "" {
		workout.Notes = workout.Notes + "\n" + p.Notes
	}

	if err := s.workouts.Update(ctx, *workout); err != nil {
		return models.Workout{}, err
	}
	return *workout, nil
}

// DeleteWorkout removes the titled workout document, then its id from the
// owner's references.
func (s *WorkoutService) DeleteWorkout(ctx context.Context, userID, categoryTitle string) error {
	existing, err := s.workouts.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	var workout *models.Workout
	for i := range existing {
		if existing[i].CategoryTitle == categoryTitle {
			workout = &existing[i]
			break
		}
	}
	if workout == nil {
		return newNotFoundError("workout is not found")
	}

	if err := s.workouts.Delete(ctx, workout.ID); err != nil {
		return err
	}
	return s.users.RemoveWorkoutRef(ctx, userID, workout.ID)
}
