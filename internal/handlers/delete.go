package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Delete a plan by name
// @Tags         delete
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /delete/plan/{plan} [delete]
// @Security     BearerAuth
func (h *Handler) deletePlan(c *gin.Context) {
	if err := h.services.DeletePlan(c.Request.Context(), h.userID(c), c.Param("plan")); err != nil {
		h.respondServiceError(c, err, "delete_plan_failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Delete a workout by category title
// @Tags         delete
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /delete/workout/{workout} [delete]
// @Security     BearerAuth
func (h *Handler) deleteWorkout(c *gin.Context) {
	if err := h.services.DeleteWorkout(c.Request.Context(), h.userID(c), c.Param("workout")); err != nil {
		h.respondServiceError(c, err, "delete_workout_failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Delete an account with all its plans and workouts
// @Tags         delete
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /delete/{username} [delete]
// @Security     BearerAuth
func (h *Handler) deleteAccount(c *gin.Context) {
	if err := h.services.DeleteAccount(c.Request.Context(), c.Param("username")); err != nil {
		h.respondServiceError(c, err, "delete_account_failed")
		return
	}
	c.Status(http.StatusNoContent)
}
