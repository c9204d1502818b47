package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"folioswift/internal/api"
	"folioswift/internal/auth"
	"folioswift/internal/config"
	"folioswift/internal/database"
	"folioswift/internal/sites"
	"folioswift/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	logger.Info("database connection ready",
		slog.String("host", cfg.Database.Host),
		slog.String("name", cfg.Database.Name),
	)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	privateKeyPEM, err := os.ReadFile(cfg.Auth.PrivateKeyPath)
	if err != nil {
		log.Fatalf("read jwt private key: %v", err)
	}
	publicKeyPEM, err := os.ReadFile(cfg.Auth.PublicKeyPath)
	if err != nil {
		log.Fatalf("read jwt public key: %v", err)
	}
	authService, err := auth.NewAuthService(privateKeyPEM, publicKeyPEM, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	if err != nil {
		log.Fatalf("init auth service: %v", err)
	}

	storageClient, err := storage.NewClient(cfg.MinIO)
	if err != nil {
		log.Fatalf("init storage client: %v", err)
	}
	logger.Info("storage client ready", slog.String("bucket", cfg.MinIO.Bucket))

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.Redis.Addr()})
	defer func() {
		if err := asynqClient.Close(); err != nil {
			logger.Error("close asynq client failed", slog.Any("error", err))
		}
		if err := redisClient.Close(); err != nil {
			logger.Error("close redis client failed", slog.Any("error", err))
		}
	}()

	store := sites.NewGormStore(db)

	router := api.NewRouter(logger)
	api.RegisterRoutes(router, api.RouteDeps{
		DB:          db,
		Store:       store,
		AsynqClient: asynqClient,
		AuthService: authService,
		RedisClient: redisClient,
		Logger:      logger,
		Storage:     storageClient,

		AllowedOrigins:        cfg.API.AllowedOriginList(),
		CookieDomain:          cfg.API.CookieDomain,
		LoginRateLimitPerHour: cfg.Auth.LoginRateLimitPerHour,
		LoginLockThreshold:    cfg.Auth.LoginLockThreshold,
		LoginLockTTL:          cfg.Auth.LoginLockTTL,
		MaxSitesPerUser:       cfg.App.MaxSitesPerUser,
		ClamdAddr:             cfg.App.ClamdAddr,
	})

	address := fmt.Sprintf(":%d", cfg.API.Port)
	logger.Info("api listening", slog.String("address", address))

	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}
