package team

import (
	"github.com/DhavalSuthar-24/nfteams-api/config"
	"github.com/DhavalSuthar-24/nfteams-api/internal/bracket"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients"
	"github.com/DhavalSuthar-24/nfteams-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterTeamRoutes mounts /teams. Ownership checks are public; details need a session.
func RegisterTeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, cl *clients.Clients) {
	teamController := NewTeamController(bracket.NewBracketRepository(db), cl.NFT, cl.Metadata)

	teams := router.Group("/teams")
	{
		teams.GET("/verify/:wallet", teamController.VerifyOwnership)
		teams.GET("/details/:teamId", middleware.AuthMiddleware(appConfig.JWT.Secret), teamController.GetTeamDetails)
		teams.GET("/:wallet", teamController.GetOwnedTeams)
	}
}
