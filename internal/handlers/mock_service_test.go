package handlers

import (
	"context"

	"workouthelper/internal/models"
	"workouthelper/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service mocks ----

type mockAccounts struct {
	registerUser models.User
	registerErr  error
	loginToken   string
	loginUser    models.User
	loginErr     error
	parseID      string
	parseErr     error
	changedUser  models.User
	changeErr    error
	tooltipsUser models.User
	tooltipsErr  error
	tooltips     bool
	users        []models.User
	listErr      error
	deleteErr    error

	lastRegisterUsername string
	lastLoginUsername    string
	lastParseToken       string
	lastDeletedUsername  string
	lastTooltipsValue    bool
}

var _ service.Accounts = (*mockAccounts)(nil)

func (m *mockAccounts) Register(_ context.Context, username, _ string) (models.User, error) {
	m.lastRegisterUsername = username
	return m.registerUser, m.registerErr
}

func (m *mockAccounts) Login(_ context.Context, username, _ string) (string, models.User, error) {
	m.lastLoginUsername = username
	return m.loginToken, m.loginUser, m.loginErr
}

func (m *mockAccounts) ParseToken(accessToken string) (string, error) {
	m.lastParseToken = accessToken
	return m.parseID, m.parseErr
}

func (m *mockAccounts) ChangePassword(_ context.Context, _, _, _ string) (models.User, error) {
	return m.changedUser, m.changeErr
}

func (m *mockAccounts) SetTooltips(_ context.Context, _ string, value bool) (models.User, error) {
	m.lastTooltipsValue = value
	return m.tooltipsUser, m.tooltipsErr
}

func (m *mockAccounts) Tooltips(_ context.Context, _ string) (bool, error) {
	return m.tooltips, m.tooltipsErr
}

func (m *mockAccounts) ListUsers(_ context.Context) ([]models.User, error) {
	return m.users, m.listErr
}

func (m *mockAccounts) DeleteAccount(_ context.Context, username string) error {
	m.lastDeletedUsername = username
	return m.deleteErr
}

type mockPlanner struct {
	plan      models.Plan
	createErr error
	plans     []models.Plan
	listErr   error
	deleteErr error

	lastCreateName string
	lastDeleteName string
}

var _ service.Planner = (*mockPlanner)(nil)

func (m *mockPlanner) CreatePlan(_ context.Context, _, planName, _ string) (models.Plan, error) {
	m.lastCreateName = planName
	return m.plan, m.createErr
}

func (m *mockPlanner) ListPlans(_ context.Context, _ string) ([]models.Plan, error) {
	return m.plans, m.listErr
}

func (m *mockPlanner) DeletePlan(_ context.Context, _, planName string) error {
	m.lastDeleteName = planName
	return m.deleteErr
}

type mockWorkouts struct {
	workout   models.Workout
	createErr error
	workouts  []models.Workout
	listErr   error
	recordErr error
	deleteErr error

	lastRecordParams service.RecordParams
	lastDeleteTitle  string
}

var _ service.Workouts = (*mockWorkouts)(nil)

func (m *mockWorkouts) CreateWorkout(_ context.Context, _, _ string, _ *float64) (models.Workout, error) {
	return m.workout, m.createErr
}

func (m *mockWorkouts) ListWorkouts(_ context.Context, _ string) ([]models.Workout, error) {
	return m.workouts, m.listErr
}

func (m *mockWorkouts) RecordResult(_ context.Context, _ string, p service.RecordParams) (models.Workout, error) {
	m.lastRecordParams = p
	return m.workout, m.recordErr
}

func (m *mockWorkouts) DeleteWorkout(_ context.Context, _, categoryTitle string) error {
	m.lastDeleteTitle = categoryTitle
	return m.deleteErr
}

// newTestRouter builds the full route tree around mocked services.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHandler(s, nil).InitRoutes()
}
