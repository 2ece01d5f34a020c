package routes

import (
	"github.com/gin-gonic/gin"

	"authgate/internal/handlers"
	"authgate/internal/middleware"
	"authgate/internal/services"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	tokens services.TokenService,
) *gin.Engine {

	auth := r.Group("/api/auth")
	{
		// ---- public
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.PUT("/reset-password/:token", authHandler.ResetPassword)

		// ---- protected
		auth.GET("/me", middleware.AuthMiddleware(tokens), authHandler.Me)
	}

	return r
}
