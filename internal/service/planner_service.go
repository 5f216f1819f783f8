package service

import (
	"context"
	"fmt"
	"strings"

	"workouthelper/internal/models"
	"workouthelper/internal/repository"

	"github.com/google/uuid"
)

const (
	planNameMaxLen = 55
	planMemoMaxLen = 2500
)

// PlannerService implements Planner. Plan names are unique per user, not
// globally.
type PlannerService struct {
	plans repository.Plans
	users repository.Users
}

func NewPlannerService(plans repository.Plans, users repository.Users) *PlannerService {
	return &PlannerService{plans: plans, users: users}
}

var _ Planner = (*PlannerService)(nil)

// CreatePlan persists the plan document, then appends its id to the owner's
// plan references. The two writes run in that fixed order; a failure after
// the first write surfaces to the caller and leaves the plan unreferenced.
func (s *PlannerService) CreatePlan(ctx context.Context, userID, planName, planMemo string) (models.Plan, error) {
	if planName == "" || planMemo == "" {
		return models.Plan{}, newValidationError("plan name or plan memo is missing")
	}
	if strings.TrimSpace(planName) == "" {
		return models.Plan{}, newValidationError("plan name must have text content")
	}
	if len([]rune(planName)) > planNameMaxLen {
		return models.Plan{}, newValidationError(fmt.Sprintf("plan name must be at most %d characters long", planNameMaxLen))
	}
	if len([]rune(planMemo)) > planMemoMaxLen {
		return models.Plan{}, newValidationError(fmt.Sprintf("plan memo must be at most %d characters long", planMemoMaxLen))
	}

	existing, err := s.plans.ListByUser(ctx, userID)
	if err != nil {
		return models.Plan{}, err
	}
	for _, p := range existing {
		if p.PlanName == planName {
			return models.Plan{}, newConflictError("plan name is already in use")
		}
	}

	plan := models.Plan{
		ID:       uuid.NewString(),
		PlanName: planName,
		PlanMemo: planMemo,
		UserID:   userID,
	}
	if err := s.plans.Insert(ctx, plan); err != nil {
		return models.Plan{}, err
	}
	if err := s.users.AppendPlanRef(ctx, userID, plan.ID); err != nil {
		return models.Plan{}, err
	}
	return plan, nil
}

func (s *PlannerService) ListPlans(ctx context.Context, userID string) ([]models.Plan, error) {
	return s.plans.ListByUser(ctx, userID)
}

// DeletePlan removes the named plan document, then its id from the owner's
// references, mirroring the create ordering.
func (s *PlannerService) DeletePlan(ctx context.Context, userID, planName string) error {
	existing, err := s.plans.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	var plan *models.Plan
	for i := range existing {
		if existing[i].PlanName == planName {
			plan = &existing[i]
			break
		}
	}
	if plan == nil {
		return newNotFoundError("plan is not found")
	}

	if err := s.plans.Delete(ctx, plan.ID); err != nil {
		return err
	}
	return s.users.RemovePlanRef(ctx, userID, plan.ID)
}
