package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/gustavo-ramos/newsfeed-backend/internal/adapter/handler"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine            *gin.Engine
	authHandler       *handler.AuthHandler
	preferenceHandler *handler.PreferenceHandler
	newsHandler       *handler.NewsHandler
	authMiddleware    *middleware.AuthMiddleware
	logger            *zap.Logger
}

type RouterConfig struct {
	AuthHandler       *handler.AuthHandler
	PreferenceHandler *handler.PreferenceHandler
	NewsHandler       *handler.NewsHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Logger            *zap.Logger
	Environment       string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:            engine,
		authHandler:       cfg.AuthHandler,
		preferenceHandler: cfg.PreferenceHandler,
		newsHandler:       cfg.NewsHandler,
		authMiddleware:    cfg.AuthMiddleware,
		logger:            cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := r.engine.Group("/users")
	{
		users.POST("/signup", r.authHandler.Signup)
		users.POST("/login", r.authHandler.Login)

		preferences := users.Group("/preferences")
		preferences.Use(r.authMiddleware.RequireAuth())
		{
			preferences.GET("", r.preferenceHandler.Get)
			preferences.PUT("", r.preferenceHandler.Update)
		}
	}

	news := r.engine.Group("/news")
	news.Use(r.authMiddleware.RequireAuth())
	{
		news.GET("", r.newsHandler.Fetch)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
