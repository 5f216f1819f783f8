package handlers

import (
	"net/http"

	"workouthelper/internal/service"

	"github.com/gin-gonic/gin"
)

type newWorkoutRequest struct {
	CategoryTitle string   `json:"categoryTitle"`
	Target        *float64 `json:"target"`
}

// resultEntryRequest carries the measurement as strings; the service
// rejects values that do not parse as numbers.
type resultEntryRequest struct {
	Date   string `json:"date"`
	Result string `json:"result"`
}

type updateWorkoutRequest struct {
	CategoryTitle string              `json:"categoryTitle"`
	Target        string              `json:"target"`
	Result        *resultEntryRequest `json:"result"`
	Notes         string              `json:"notes"`
}

// @Summary      Create a workout category
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        workout  body      newWorkoutRequest  true  "category title and target"
// @Success      201  {object}  models.Workout
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /workouts/newWorkout [post]
// @Security     BearerAuth
func (h *Handler) newWorkout(c *gin.Context) {
	var input newWorkoutRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	workout, err := h.services.CreateWorkout(c.Request.Context(), h.userID(c), input.CategoryTitle, input.Target)
	if err != nil {
		h.respondServiceError(c, err, "create_workout_failed")
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// @Summary      Record a workout result
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        update  body      updateWorkoutRequest  true  "result entry with optional target and notes"
// @Success      200  {object}  models.Workout
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /workouts/updateWorkout [put]
// @Security     BearerAuth
func (h *Handler) updateWorkout(c *gin.Context) {
	var input updateWorkoutRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	if input.Result == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "result is missing"})
		return
	}

	workout, err := h.services.RecordResult(c.Request.Context(), h.userID(c), service.RecordParams{
		CategoryTitle: input.CategoryTitle,
		Target:        input.Target,
		ResultDate:    input.Result.Date,
		ResultValue:   input.Result.Result,
		Notes:         input.Notes,
	})
	if err != nil {
		h.respondServiceError(c, err, "record_result_failed")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// @Summary      List own workouts
// @Tags         workouts
// @Produce      json
// @Success      200  {array}  models.Workout
// @Failure      401  {object}  map[string]string
// @Router       /workouts/workouts [post]
// @Security     BearerAuth
func (h *Handler) listWorkouts(c *gin.Context) {
	workouts, err := h.services.ListWorkouts(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondServiceError(c, err, "list_workouts_failed")
		return
	}
	c.JSON(http.StatusOK, workouts)
}
