package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Adoulaziztalla/SOGAS-V3/config"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/api/handler"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/api/router"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/repository"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/service"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/database"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/jwt"
	applogger "github.com/Adoulaziztalla/SOGAS-V3/pkg/logger"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/redis"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "chargement de la configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialisation du logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("démarrage du serveur SOGAS",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("connexion base de données échouée", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("récupération du sql.DB échouée", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migrations échouées", zap.Error(err))
	}

	// Redis is optional: without it tokens expire by TTL only and the
	// rate limiter lets everything through
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("connexion Redis échouée, révocation de tokens désactivée", zap.Error(err))
		rdb = nil
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)

	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("serveur HTTP démarré", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("serveur HTTP en erreur", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("signal reçu, arrêt en cours", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("arrêt du serveur en erreur", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("serveur arrêté")
}
