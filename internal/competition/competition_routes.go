package competition

import (
	"github.com/DhavalSuthar-24/nfteams-api/config"
	"github.com/DhavalSuthar-24/nfteams-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterCompetitionRoutes(router *gin.RouterGroup, svc *Service, appConfig *config.Config) {
	competitionController := NewCompetitionController(svc)

	competition := router.Group("/competition")
	competition.Use(middleware.AuthMiddleware(appConfig.JWT.Secret))
	{
		competition.POST("/enter", competitionController.EnterCompetition)
		competition.POST("/update-scores", competitionController.UpdateCompScores)
	}
}
