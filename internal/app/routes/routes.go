package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campuslink/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
	}

	users := v1.Group("/users")
	{
		users.GET("/:id", userController.GetAccount)
	}

	// Liveness
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}
