package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hymavathi2704/thekatha-server/internal/app/controllers"
	"github.com/hymavathi2704/thekatha-server/internal/app/models"
	"github.com/hymavathi2704/thekatha-server/internal/app/models/dto"
	"github.com/hymavathi2704/thekatha-server/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	coachController *controllers.CoachController,
	offeringController *controllers.OfferingController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public coach directory routes ---
	coaches := v1.Group("/coaches")
	{
		coaches.GET("", coachController.ListCoaches)
		coaches.GET("/:id", coachController.GetCoach)
	}

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh-token", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// Own coach profile. Restricted to the coach role; the profile is
		// created at registration time.
		coachesProtected := authenticated.Group("/coaches")
		coachesProtected.Use(authMiddleware.RoleRequired(string(models.RoleCoach), string(models.RoleAdmin)))
		{
			coachesProtected.GET("/me", coachController.GetMyProfile)
			coachesProtected.PUT("/me", coachController.UpdateMyProfile)
			coachesProtected.POST("/me/profile-photo", coachController.UploadProfilePhoto)
		}

		// Session offering management, coach role only
		sessions := authenticated.Group("/sessions")
		sessions.Use(authMiddleware.RoleRequired(string(models.RoleCoach), string(models.RoleAdmin)))
		{
			sessions.GET("", offeringController.ListMyOfferings)
			sessions.POST("", offeringController.CreateOffering)
			sessions.PUT("/:id", offeringController.UpdateOffering)
			sessions.DELETE("/:id", offeringController.DeleteOffering)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
