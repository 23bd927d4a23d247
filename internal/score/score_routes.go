package score

import (
	"github.com/DhavalSuthar-24/nfteams-api/config"
	"github.com/DhavalSuthar-24/nfteams-api/internal/bracket"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients"
	"github.com/DhavalSuthar-24/nfteams-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterScoreRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, cl *clients.Clients) {
	scoreController := NewScoreController(
		NewScoreRepository(db), bracket.NewBracketRepository(db), cl.NFT, cl.Games, appConfig.Seasons)

	scores := router.Group("/scores")
	scores.Use(middleware.AuthMiddleware(appConfig.JWT.Secret))
	{
		scores.GET("/current/:wallet", scoreController.GetCurrentScores)
		scores.GET("/leaderboard", scoreController.GetLeaderboard)
		scores.GET("/rounds/:wallet", scoreController.GetRoundStats)
		scores.GET("/history", scoreController.GetHistory)
	}
}
