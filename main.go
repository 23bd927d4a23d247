package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/nfteams-api/config"
	_ "github.com/DhavalSuthar-24/nfteams-api/docs"
	"github.com/DhavalSuthar-24/nfteams-api/internal/bracket"
	"github.com/DhavalSuthar-24/nfteams-api/internal/clients"
	"github.com/DhavalSuthar-24/nfteams-api/internal/competition"
	"github.com/DhavalSuthar-24/nfteams-api/internal/models"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/logger"
	"github.com/DhavalSuthar-24/nfteams-api/routes"
)

// @title NFTeams API
// @version 1.0
// @description Wallet login gated on NFTeams NFT ownership, plus bracket, score and competition data.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	db, err := config.ConnectDB(cfg)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(models.Owned()...); err != nil {
			zlog.Fatal("AutoMigrate failed", zap.Error(err))
		}
		zlog.Info("AutoMigrate successful")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cl, err := clients.New(ctx, cfg)
	if err != nil {
		zlog.Fatal("external clients", zap.Error(err))
	}

	comp := competition.NewService(
		competition.NewCompetitionRepository(db), bracket.NewBracketRepository(db), cl.NFT, cl.Games, zlog.Named("competition"))
	if cfg.Competition.RefreshMinutes > 0 {
		sched, err := competition.StartScoreRefresh(comp,
			time.Duration(cfg.Competition.RefreshMinutes)*time.Minute, 2*time.Minute, zlog.Named("scheduler"))
		if err != nil {
			zlog.Fatal("competition scheduler", zap.Error(err))
		}
		defer sched.Shutdown() //nolint:errcheck
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           routes.SetupRoutes(db, cfg, cl, comp, zlog),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("starting server", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
	zlog.Info("server stopped")
}
