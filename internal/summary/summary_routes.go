package summary

import (
	"github.com/DhavalSuthar-24/nfteams-api/config"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients"
	"github.com/DhavalSuthar-24/nfteams-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterSummaryRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, cl *clients.Clients) {
	summaryController := NewSummaryController(NewSummaryRepository(db), cl.NFT, appConfig.Seasons)

	summary := router.Group("/summary")
	summary.Use(middleware.AuthMiddleware(appConfig.JWT.Secret))
	{
		summary.GET("/:wallet", summaryController.GetWalletSummary)
	}
}
