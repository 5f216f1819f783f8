package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"workouthelper/internal/models"
	"workouthelper/internal/service"
)

func testService(planner *mockPlanner, workouts *mockWorkouts, accounts *mockAccounts) *service.Service {
	if accounts == nil {
		accounts = &mockAccounts{parseID: "id-1"}
	}
	return &service.Service{Accounts: accounts, Planner: planner, Workouts: workouts}
}

func TestNewPlanHandler(t *testing.T) {
	planner := &mockPlanner{plan: models.Plan{ID: "p1", PlanName: "Push day", PlanMemo: "M", UserID: "id-1"}}
	r := newTestRouter(testService(planner, nil, nil))

	w := doJSON(r, http.MethodPost, "/planner/newPlan", `{"planName":"Push day","planMemo":"M"}`, "tok")
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if planner.lastCreateName != "Push day" {
		t.Fatalf("service called with plan name %q", planner.lastCreateName)
	}

	// without a token the handler is never reached
	w = doJSON(r, http.MethodPost, "/planner/newPlan", `{"planName":"Push day","planMemo":"M"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status=%d, want 401", w.Code)
	}
}

func TestNewPlanHandler_Conflict(t *testing.T) {
	planner := &mockPlanner{createErr: &service.ConflictError{Msg: "plan name is already in use"}}
	r := newTestRouter(testService(planner, nil, nil))

	w := doJSON(r, http.MethodPost, "/planner/newPlan", `{"planName":"Push day","planMemo":"M"}`, "tok")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["error"] != "plan name is already in use" {
		t.Fatalf("unexpected error %q", m["error"])
	}
}

func TestListPlansHandler(t *testing.T) {
	planner := &mockPlanner{plans: []models.Plan{{ID: "p1", PlanName: "Push day"}}}
	r := newTestRouter(testService(planner, nil, nil))

	w := doJSON(r, http.MethodPost, "/planner/plans", "", "tok")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var plans []models.Plan
	if err := json.Unmarshal(w.Body.Bytes(), &plans); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(plans) != 1 || plans[0].PlanName != "Push day" {
		t.Fatalf("unexpected plans %v", plans)
	}
}

func TestUpdateWorkoutHandler(t *testing.T) {
	workouts := &mockWorkouts{workout: models.Workout{ID: "w1", CategoryTitle: "Bench"}}
	r := newTestRouter(testService(nil, workouts, nil))

	body := `{"categoryTitle":"Bench","target":"85","result":{"date":"2026-01-01","result":"70"},"notes":"n"}`
	w := doJSON(r, http.MethodPut, "/workouts/updateWorkout", body, "tok")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	p := workouts.lastRecordParams
	if p.CategoryTitle != "Bench" || p.Target != "85" || p.ResultDate != "2026-01-01" || p.ResultValue != "70" || p.Notes != "n" {
		t.Fatalf("unexpected record params %+v", p)
	}

	// result object absent
	w = doJSON(r, http.MethodPut, "/workouts/updateWorkout", `{"categoryTitle":"Bench"}`, "tok")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["error"] != "result is missing" {
		t.Fatalf("unexpected error %q", m["error"])
	}
}

func TestDeleteHandlers(t *testing.T) {
	planner := &mockPlanner{}
	workouts := &mockWorkouts{}
	accounts := &mockAccounts{parseID: "id-1"}
	r := newTestRouter(testService(planner, workouts, accounts))

	w := doJSON(r, http.MethodDelete, "/delete/plan/Push%20day", "", "tok")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete plan status=%d, body=%s", w.Code, w.Body.String())
	}
	if planner.lastDeleteName != "Push day" {
		t.Fatalf("plan name passed was %q", planner.lastDeleteName)
	}

	w = doJSON(r, http.MethodDelete, "/delete/workout/Bench", "", "tok")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete workout status=%d, body=%s", w.Code, w.Body.String())
	}
	if workouts.lastDeleteTitle != "Bench" {
		t.Fatalf("workout title passed was %q", workouts.lastDeleteTitle)
	}

	w = doJSON(r, http.MethodDelete, "/delete/alice1", "", "tok")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete account status=%d, body=%s", w.Code, w.Body.String())
	}
	if accounts.lastDeletedUsername != "alice1" {
		t.Fatalf("username passed was %q", accounts.lastDeletedUsername)
	}
}

func TestDeletePlanHandler_NotFound(t *testing.T) {
	planner := &mockPlanner{deleteErr: &service.NotFoundError{Msg: "plan is not found"}}
	r := newTestRouter(testService(planner, nil, nil))

	w := doJSON(r, http.MethodDelete, "/delete/plan/missing", "", "tok")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["error"] != "plan is not found" {
		t.Fatalf("unexpected error %q", m["error"])
	}
}

func TestTooltipsHandlers(t *testing.T) {
	accounts := &mockAccounts{parseID: "id-1", tooltips: true, tooltipsUser: models.User{ID: "id-1", Tooltips: false}}
	r := newTestRouter(testService(nil, nil, accounts))

	w := doJSON(r, http.MethodPost, "/profile/tooltips", "", "tok")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if w.Body.String() != "true" {
		t.Fatalf("expected bare boolean body, got %s", w.Body.String())
	}

	w = doJSON(r, http.MethodPut, "/profile/toggleTooltips", `{"tooltips":false}`, "tok")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if accounts.lastTooltipsValue != false {
		t.Fatalf("value passed was %v", accounts.lastTooltipsValue)
	}
}
