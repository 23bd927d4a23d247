package auth

import (
	"github.com/DhavalSuthar-24/nfteams-api/config"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients"
	"github.com/DhavalSuthar-24/nfteams-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, cl *clients.Clients) {
	authRepo := NewAuthRepository(db)
	authController := NewAuthController(authRepo, cl.NFT, appConfig)

	// Public routes
	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
	}

	// Authenticated routes (protected by auth middleware)
	authProtected := router.Group("/api")
	authProtected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret))
	{
		authProtected.GET("/test-auth", authController.TestAuth)
	}
}
