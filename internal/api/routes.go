package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"folioswift/internal/api/middleware"
	"folioswift/internal/auth"
	"folioswift/internal/sites"
	"folioswift/internal/storage"
)

// RouteDeps 汇总注册路由所需的全部依赖。
type RouteDeps struct {
	DB          *gorm.DB
	Store       sites.Store
	AsynqClient *asynq.Client
	AuthService *auth.AuthService
	RedisClient *redis.Client
	Logger      *slog.Logger
	Storage     *storage.Client

	AllowedOrigins        []string
	CookieDomain          string
	LoginRateLimitPerHour int
	LoginLockThreshold    int
	LoginLockTTL          time.Duration
	MaxSitesPerUser       int
	ClamdAddr             string
}

// RegisterRoutes 注册全部 HTTP 路由。
func RegisterRoutes(router *gin.Engine, deps RouteDeps) {
	publicHandler := NewPublicHandler(deps.Store)
	siteHandler := NewSiteHandler(deps.Store, deps.AsynqClient, deps.Storage, deps.MaxSitesPerUser)
	authHandler := NewAuthHandler(
		deps.DB,
		deps.AuthService,
		deps.RedisClient,
		deps.Logger,
		deps.LoginRateLimitPerHour,
		deps.LoginLockThreshold,
		deps.LoginLockTTL,
		deps.CookieDomain,
	)
	wsHandler := NewWsHandler(deps.RedisClient, deps.AuthService, deps.Logger, deps.AllowedOrigins)
	assetHandler := NewAssetHandler(deps.DB, deps.Storage, deps.RedisClient, deps.Logger, deps.ClamdAddr)

	authMiddleware := middleware.AuthMiddleware(deps.AuthService)
	passwordGate := middleware.RequirePasswordChangeCompletedMiddleware()

	router.GET("/", publicHandler.Landing)
	router.GET("/p/:slug", publicHandler.ViewSite)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/change-password", authMiddleware, authHandler.ChangePassword)
			authGroup.POST("/logout", authMiddleware, authHandler.Logout)
		}

		siteGroup := v1.Group("/sites")
		siteGroup.Use(authMiddleware, passwordGate)
		{
			siteGroup.GET("", siteHandler.ListSites)
			siteGroup.POST("", siteHandler.PublishSite)
			siteGroup.GET("/:slug", siteHandler.GetSite)
			siteGroup.DELETE("/:slug", siteHandler.DeleteSite)
			siteGroup.POST("/:slug/export", siteHandler.ExportSite)
			siteGroup.GET("/:slug/export-link", siteHandler.GetExportLink)
			siteGroup.GET("/:slug/download", siteHandler.DownloadSite)
		}

		assetGroup := v1.Group("/assets")
		assetGroup.Use(authMiddleware, passwordGate)
		{
			assetGroup.POST("/upload", assetHandler.UploadAsset)
			assetGroup.GET("", assetHandler.ListAssets)
			assetGroup.GET("/view", assetHandler.GetAssetURL)
			assetGroup.DELETE("", assetHandler.DeleteAsset)
		}
	}
}
