package service

import (
	"context"
	"errors"

	"workouthelper/internal/models"
	"workouthelper/internal/repository"
)

// In-memory repository fakes shared by the service tests. Slices keep
// listing order deterministic. Optional err fields force failures.

type fakeUsers struct {
	users []models.User

	createErr error
	getErr    error
	updateErr error
}

var _ repository.Users = (*fakeUsers)(nil)

func (f *fakeUsers) Create(_ context.Context, u models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUsers) find(match func(models.User) bool) *models.User {
	for i := range f.users {
		if match(f.users[i]) {
			return &f.users[i]
		}
	}
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u := f.find(func(u models.User) bool { return u.ID == id }); u != nil {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u := f.find(func(u models.User) bool { return u.Username == username }); u != nil {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeUsers) List(_ context.Context) ([]models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeUsers) UpdatePasswordHash(_ context.Context, id, hash string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if u := f.find(func(u models.User) bool { return u.ID == id }); u != nil {
		u.PasswordHash = hash
		return nil
	}
	return errors.New("user not found")
}

func (f *fakeUsers) UpdateTooltips(_ context.Context, id string, value bool) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if u := f.find(func(u models.User) bool { return u.ID == id }); u != nil {
		u.Tooltips = value
		return nil
	}
	return errors.New("user not found")
}

func (f *fakeUsers) AppendPlanRef(_ context.Context, userID, planID string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if u := f.find(func(u models.User) bool { return u.ID == userID }); u != nil {
		u.Plans = append(u.Plans, planID)
		return nil
	}
	return errors.New("user not found")
}

func (f *fakeUsers) RemovePlanRef(_ context.Context, userID, planID string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if u := f.find(func(u models.User) bool { return u.ID == userID }); u != nil {
		u.Plans = removeID(u.Plans, planID)
		return nil
	}
	return errors.New("user not found")
}

func (f *fakeUsers) AppendWorkoutRef(_ context.Context, userID, workoutID string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if u := f.find(func(u models.User) bool { return u.ID == userID }); u != nil {
		u.Workouts = append(u.Workouts, workoutID)
		return nil
	}
	return errors.New("user not found")
}

func (f *fakeUsers) RemoveWorkoutRef(_ context.Context, userID, workoutID string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if u := f.find(func(u models.User) bool { return u.ID == userID }); u != nil {
		u.Workouts = removeID(u.Workouts, workoutID)
		return nil
	}
	return errors.New("user not found")
}

func (f *fakeUsers) Delete(_ context.Context, id string) error {
	out := f.users[:0]
	for _, u := range f.users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	f.users = out
	return nil
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

type fakePlans struct {
	plans []models.Plan

	insertErr error
	listErr   error
}

var _ repository.Plans = (*fakePlans)(nil)

func (f *fakePlans) Insert(_ context.Context, p models.Plan) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.plans = append(f.plans, p)
	return nil
}

func (f *fakePlans) ListByUser(_ context.Context, userID string) ([]models.Plan, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Plan{}
	for _, p := range f.plans {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlans) Delete(_ context.Context, id string) error {
	out := f.plans[:0]
	for _, p := range f.plans {
		if p.ID != id {
			out = append(out, p)
		}
	}
	f.plans = out
	return nil
}

func (f *fakePlans) DeleteByUser(_ context.Context, userID string) error {
	out := f.plans[:0]
	for _, p := range f.plans {
		if p.UserID != userID {
			out = append(out, p)
		}
	}
	f.plans = out
	return nil
}

type fakeWorkouts struct {
	workouts []models.Workout

	insertErr error
	listErr   error
	updateErr error
}

var _ repository.Workouts = (*fakeWorkouts)(nil)

func (f *fakeWorkouts) Insert(_ context.Context, w models.Workout) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.workouts = append(f.workouts, w)
	return nil
}

func (f *fakeWorkouts) ListByUser(_ context.Context, userID string) ([]models.Workout, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Workout{}
	for _, w := range f.workouts {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWorkouts) Update(_ context.Context, w models.Workout) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.workouts {
		if f.workouts[i].ID == w.ID {
			f.workouts[i] = w
			return nil
		}
	}
	return errors.New("workout not found")
}

func (f *fakeWorkouts) Delete(_ context.Context, id string) error {
	out := f.workouts[:0]
	for _, w := range f.workouts {
		if w.ID != id {
			out = append(out, w)
		}
	}
	f.workouts = out
	return nil
}

func (f *fakeWorkouts) DeleteByUser(_ context.Context, userID string) error {
	out := f.workouts[:0]
	for _, w := range f.workouts {
		if w.UserID != userID {
			out = append(out, w)
		}
	}
	f.workouts = out
	return nil
}
