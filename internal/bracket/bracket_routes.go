package bracket

import (
	"github.com/DhavalSuthar-24/nfteams-api/config"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients"
	"github.com/DhavalSuthar-24/nfteams-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterBracketRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, cl *clients.Clients) {
	bracketController := NewBracketController(NewBracketRepository(db), cl.NFT, cl.Games, cl.Metadata)

	brackets := router.Group("/brackets")
	brackets.Use(middleware.AuthMiddleware(appConfig.JWT.Secret))
	{
		brackets.GET("/current/:wallet", bracketController.GetCurrentBrackets)
		brackets.GET("/final", bracketController.GetFinalBracket)
		brackets.GET("/finals/latest", bracketController.GetFinalBracket)
		brackets.GET("/finals/latest-id", bracketController.GetLatestFinalsID)
		brackets.GET("/winners/:wallet", bracketController.GetLastRoundWinners)
		brackets.POST("/teams", bracketController.GetTeamBrackets)
	}
}
