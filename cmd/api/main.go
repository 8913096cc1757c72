package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/203225014/WB-calc/internal/config"
	"github.com/203225014/WB-calc/internal/handler"
	"github.com/203225014/WB-calc/internal/repository"
	"github.com/203225014/WB-calc/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Env == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	if err := repository.Bootstrap(db); err != nil {
		logger.Fatal("schema bootstrap failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	calcRepo := repository.NewCalculationRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenLifetime)
	calcService := service.NewCalculationService(calcRepo)

	authHandler := handler.NewAuthHandler(authService, logger)
	calcHandler := handler.NewCalculationHandler(calcService, logger)
	spa := handler.NewSPAHandler(cfg.FrontendDir)

	router := handler.NewRouter(authHandler, calcHandler, spa, authService, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
