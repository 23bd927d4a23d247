package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/nfteams-api/config"
	"github.com/DhavalSuthar-24/nfteams-api/internal/auth"
	"github.com/DhavalSuthar-24/nfteams-api/internal/bracket"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients"
	"github.com/DhavalSuthar-24/nfteams-api/internal/competition"
	"github.com/DhavalSuthar-24/nfteams-api/internal/middleware"
	"github.com/DhavalSuthar-24/nfteams-api/internal/score"
	"github.com/DhavalSuthar-24/nfteams-api/internal/summary"
	"github.com/DhavalSuthar-24/nfteams-api/internal/team"
	"github.com/DhavalSuthar-24/nfteams-api/internal/user"
)

type healthResponse struct {
	Status string `json:"status"`
}

func SetupRoutes(db *gorm.DB, cfg *config.Config, cl *clients.Clients, comp *competition.Service, log *zap.Logger) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.App.AllowedOrigins)))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "NFTeams API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, healthResponse{Status: "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth.RegisterAuthRoutes(r.Group(""), db, cfg, cl)

	// API routes
	api := r.Group("/api")
	team.RegisterTeamRoutes(api, db, cfg, cl)
	bracket.RegisterBracketRoutes(api, db, cfg, cl)
	score.RegisterScoreRoutes(api, db, cfg, cl)
	summary.RegisterSummaryRoutes(api, db, cfg, cl)
	user.RegisterUserRoutes(api, db, cfg, cl)
	competition.RegisterCompetitionRoutes(api, comp, cfg)

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
