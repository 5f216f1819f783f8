package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type newPasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type toggleTooltipsRequest struct {
	Tooltips bool `json:"tooltips"`
}

// @Summary      Change password
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        passwords  body      newPasswordRequest  true  "old and new password"
// @Success      200  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /profile/newPassword [put]
// @Security     BearerAuth
func (h *Handler) newPassword(c *gin.Context) {
	var input newPasswordRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.ChangePassword(c.Request.Context(), h.userID(c), input.OldPassword, input.NewPassword)
	if err != nil {
		h.respondServiceError(c, err, "change_password_failed")
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Toggle tooltips
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        tooltips  body      toggleTooltipsRequest  true  "tooltips value"
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Router       /profile/toggleTooltips [put]
// @Security     BearerAuth
func (h *Handler) toggleTooltips(c *gin.Context) {
	var input toggleTooltipsRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.SetTooltips(c.Request.Context(), h.userID(c), input.Tooltips)
	if err != nil {
		h.respondServiceError(c, err, "set_tooltips_failed")
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Read tooltips setting
// @Tags         profile
// @Produce      json
// @Success      200  {boolean}  boolean
// @Failure      401  {object}  map[string]string
// @Router       /profile/tooltips [post]
// @Security     BearerAuth
func (h *Handler) tooltips(c *gin.Context) {
	value, err := h.services.Tooltips(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondServiceError(c, err, "get_tooltips_failed")
		return
	}
	c.JSON(http.StatusOK, value)
}
