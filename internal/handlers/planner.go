package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type newPlanRequest struct {
	PlanName string `json:"planName"`
	PlanMemo string `json:"planMemo"`
}

// @Summary      Create a plan
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        plan  body      newPlanRequest  true  "plan name and memo"
// @Success      201  {object}  models.Plan
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /planner/newPlan [post]
// @Security     BearerAuth
func (h *Handler) newPlan(c *gin.Context) {
	var input newPlanRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	plan, err := h.services.CreatePlan(c.Request.Context(), h.userID(c), input.PlanName, input.PlanMemo)
	if err != nil {
		h.respondServiceError(c, err, "create_plan_failed")
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// @Summary      List own plans
// @Tags         planner
// @Produce      json
// @Success      200  {array}  models.Plan
// @Failure      401  {object}  map[string]string
// @Router       /planner/plans [post]
// @Security     BearerAuth
func (h *Handler) listPlans(c *gin.Context) {
	plans, err := h.services.ListPlans(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondServiceError(c, err, "list_plans_failed")
		return
	}
	c.JSON(http.StatusOK, plans)
}
