package handlers

import (
	"net/http"

	"workouthelper/internal/logger"
	"workouthelper/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	// Public endpoints
	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.GET("/users", h.listUsers)

	// Token-protected endpoints
	planner := router.Group("/planner", h.identityMiddleware)
	{
		planner.POST("/newPlan", h.newPlan)
		planner.POST("/plans", h.listPlans)
	}

	profile := router.Group("/profile", h.identityMiddleware)
	{
		profile.PUT("/newPassword", h.newPassword)
		profile.PUT("/toggleTooltips", h.toggleTooltips)
		profile.POST("/tooltips", h.tooltips)
	}

	workouts := router.Group("/workouts", h.identityMiddleware)
	{
		workouts.POST("/newWorkout", h.newWorkout)
		workouts.PUT("/updateWorkout", h.updateWorkout)
		workouts.POST("/workouts", h.listWorkouts)
	}

	remove := router.Group("/delete", h.identityMiddleware)
	{
		remove.DELETE("/plan/:plan", h.deletePlan)
		remove.DELETE("/workout/:workout", h.deleteWorkout)
		remove.DELETE("/:username", h.deleteAccount)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown endpoint"})
	})

	return router
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
