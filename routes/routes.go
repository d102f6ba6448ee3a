package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/haseebmalik18/fit-track/controllers"
	"github.com/haseebmalik18/fit-track/middlewares"
	"github.com/haseebmalik18/fit-track/utils"
)

// SetupRouter assembles the HTTP surface from its injected pieces.
func SetupRouter(
	authController *controllers.AuthController,
	userController *controllers.UserController,
	jwtManager *utils.JWTManager,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/verify-email", authController.VerifyEmail)
		auth.POST("/resend-verification", authController.ResendVerification)
		auth.POST("/login", authController.Login)
	}

	authProtected := r.Group("/api/auth")
	authProtected.Use(middlewares.AuthMiddleware(jwtManager))
	{
		authProtected.POST("/onboarding", authController.CompleteOnboarding)
		authProtected.GET("/me", authController.Me)
	}

	user := r.Group("/api/user")
	user.Use(middlewares.AuthMiddleware(jwtManager))
	{
		user.GET("/profile", userController.GetProfile)
	}

	return r
}
