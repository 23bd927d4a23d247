package user

import (
	"github.com/DhavalSuthar-24/nfteams-api/config"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients"
	"github.com/DhavalSuthar-24/nfteams-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterUserRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, cl *clients.Clients) {
	userController := NewUserController(NewUserRepository(db), cl.NFT, cl.Metadata)

	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware(appConfig.JWT.Secret))
	{
		users.POST("/favorite-team", userController.SetFavoriteTeam)
		users.GET("/favorite-team", userController.GetFavoriteTeam)
	}
}
