package main

import (
	"context"
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/heromap/backend/internal/config"
	"github.com/heromap/backend/internal/handler"
	"github.com/heromap/backend/internal/middleware"
	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/internal/repository"
	"github.com/heromap/backend/internal/service"
	"github.com/heromap/backend/pkg/database"
	"github.com/heromap/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := seedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	}

	userRepo := repository.NewUserRepository(db)
	pointRepo := repository.NewPointRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	mapRepo := repository.NewMapRepository(db)
	heroRepo := repository.NewHeroRepository(db)

	authz := service.NewAuthorizer(userRepo)
	views := service.NewViewCounter(redisClient, pointRepo)

	userService := service.NewUserService(userRepo)
	pointService := service.NewPointService(pointRepo, authz, views, redisClient, cfg.RateLimitPoint)
	commentService := service.NewCommentService(commentRepo, pointRepo, authz, redisClient, cfg.RateLimitComment)
	likeService := service.NewLikeService(likeRepo, pointRepo, commentRepo, authz)
	collectionService := service.NewCollectionService(collectionRepo, pointRepo)
	submissionService := service.NewSubmissionService(submissionRepo, authz, redisClient, cfg.RateLimitSubmission)
	catalogService := service.NewCatalogService(mapRepo, heroRepo, authz)

	userHandler := handler.NewUserHandler(userService)
	pointHandler := handler.NewPointHandler(pointService, likeService)
	commentHandler := handler.NewCommentHandler(commentService, likeService)
	collectionHandler := handler.NewCollectionHandler(collectionService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Caller-Id"},
		AllowCredentials: true,
	}))

	authMiddleware := middleware.NewAuthMiddleware(cfg)

	api := router.Group("/api")
	api.Use(authMiddleware.RequireAuth())
	{
		api.POST("/user", userHandler.Handle)
		api.POST("/point", pointHandler.Handle)
		api.POST("/comment", commentHandler.Handle)
		api.POST("/collection", collectionHandler.Handle)
		api.POST("/submission", submissionHandler.Handle)
		api.POST("/map", catalogHandler.HandleMap)
		api.POST("/hero", catalogHandler.HandleHero)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	views.Start(ctx, cfg.ViewFlushInterval)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.GameMap{},
		&model.Hero{},
		&model.Point{},
		&model.Comment{},
		&model.LikeRecord{},
		&model.Collection{},
		&model.Submission{},
	)
}

// seedAdminUser makes sure a development database has at least one reviewer.
// Identity is issued by the gateway, so the seed only pins a caller id.
func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("role = ?", model.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin user already exists, skipping seed")
		return nil
	}

	admin := model.User{
		ID:       "dev-admin",
		Nickname: "Administrator",
		Role:     model.RoleAdmin,
	}
	return db.Create(&admin).Error
}
