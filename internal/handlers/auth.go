package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Shared credentials payload for registration and login. Field presence is
// validated by the service so each missing field reports its own message.
type authCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      authCredentials  true  "username and password"
// @Success      201  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.Register(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondServiceError(c, err, "register_failed")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      authCredentials  true  "username and password"
// @Success      200  {object}  map[string]string  "token, username, id"
// @Failure      401  {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, user, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondServiceError(c, err, "login_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": user.Username,
		"id":       user.ID,
	})
}

// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}  models.User
// @Router       /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.ListUsers(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err, "list_users_failed")
		return
	}
	c.JSON(http.StatusOK, users)
}
