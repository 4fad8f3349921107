package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/gustavo-ramos/newsfeed-backend/internal/adapter/handler"
	"github.com/gustavo-ramos/newsfeed-backend/internal/adapter/repository/postgres"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/auth"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/cache"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/config"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/database"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/middleware"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/news"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/observability"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/server"
	authUC "github.com/gustavo-ramos/newsfeed-backend/internal/usecase/auth"
	newsUC "github.com/gustavo-ramos/newsfeed-backend/internal/usecase/news"
	"github.com/gustavo-ramos/newsfeed-backend/internal/usecase/preference"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// The store must be reachable before we accept any traffic.
	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
	passwordHasher := auth.NewPasswordHasher(cfg.JWT.BcryptCost)
	newsClient := news.NewClient(cfg.News)
	newsCache := cache.NewNewsCache(redisClient)

	// Use cases
	authSvc := authUC.NewService(userRepo, jwtSvc, passwordHasher)
	preferenceSvc := preference.NewService(userRepo)
	newsSvc := newsUC.NewService(userRepo, newsClient, newsCache, cfg.News.Country, cfg.News.CacheTTL)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	preferenceHandler := handler.NewPreferenceHandler(preferenceSvc)
	newsHandler := handler.NewNewsHandler(newsSvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	// Router
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:       authHandler,
		PreferenceHandler: preferenceHandler,
		NewsHandler:       newsHandler,
		AuthMiddleware:    authMiddleware,
		Logger:            logger,
		Environment:       cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
