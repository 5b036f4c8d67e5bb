package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"taskflow/internal/config"
	"taskflow/internal/db"
	apihttp "taskflow/internal/http"
	"taskflow/internal/repository"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	var logger *zap.Logger
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	if cfg.UsesDevSecret() {
		logger.Warn("jwt secret not configured, using development fallback")
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	userRepo := repository.NewPgUserRepository(pool)
	taskRepo := repository.NewPgTaskRepository(pool)

	jwtSvc := service.NewJWTService(cfg.SigningSecret())
	guard := service.NewAuthGuard(jwtSvc, userRepo)
	userSvc := service.NewUserService(logger, userRepo, service.NewBcryptHasher(cfg.BcryptCost))
	taskSvc := service.NewTaskService(taskRepo)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc, cfg.IsProduction())
	taskHandler := apihttp.NewTaskHandler(logger, taskSvc)
	healthHandler := apihttp.NewHealthHandler(logger, pool)
	router := apihttp.NewRouter(logger, guard, userHandler, taskHandler, healthHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("env", cfg.AppEnv))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
