package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "video_sharing_service/cmd/video_service/docs" // 引入生成的 Swagger 文档
	"video_sharing_service/internal/api/handlers"
	"video_sharing_service/internal/api/router"
	channelapp "video_sharing_service/internal/channel/app"
	channelrepo "video_sharing_service/internal/channel/repository"
	userrepo "video_sharing_service/internal/user/repository"
	videoapp "video_sharing_service/internal/video/app"
	videorepo "video_sharing_service/internal/video/repository"
	"video_sharing_service/pkg/config"
	"video_sharing_service/pkg/database"
	"video_sharing_service/pkg/logger"
	"video_sharing_service/pkg/metrics"
	testtool "video_sharing_service/pkg/test_tool"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.VideoService, config.EnvConfig.VideoServiceLogPath)
	defer logger.Log.Sync()

	cfg := config.LoadConfig[config.VideoService](config.EnvConfig.VideoService, config.EnvConfig.VideoServiceYAMLPath)
	if cfg.JWT.Secret == "" {
		logger.Log.Fatal("jwt.secret is empty")
	}

	ctx := context.Background()

	// 1. 連線 MongoDB
	mongoURI := fmt.Sprintf("mongodb://%s:%d", cfg.MongoDB.Host, cfg.MongoDB.Port)
	if cfg.MongoDB.User != "" {
		mongoURI = fmt.Sprintf("mongodb://%s:%s@%s:%d", cfg.MongoDB.User, cfg.MongoDB.Password, cfg.MongoDB.Host, cfg.MongoDB.Port)
	}
	mongoDB, err := database.NewMongoDB(ctx, database.Connection{
		ConnectStr:    mongoURI,
		RetryCount:    cfg.MongoDB.RetryCount,
		RetryInterval: time.Duration(cfg.MongoDB.RetryInterval) * time.Second,
	}, cfg.MongoDB.Database)
	if err != nil {
		logger.Log.Fatal(
			"Unable to connect to mongo database after retries",
			zap.String("address", fmt.Sprintf("[%s:%d]", cfg.MongoDB.Host, cfg.MongoDB.Port)),
			zap.Error(err),
		)
	}
	defer mongoDB.Close(ctx)

	channelRepo := channelrepo.NewMongoChannelRepository(mongoDB.Database)
	if err := channelRepo.EnsureIndexes(ctx); err != nil {
		logger.Log.Warn("create channel indexes failed", zap.Error(err))
	}
	videoRepo := videorepo.NewMongoVideoRepository(mongoDB.Database)

	// 2. 初始化 MinIO 客戶端
	minioClient, err := database.NewMinIOConnection(ctx, database.MinIOConnection{
		Endpoint:      fmt.Sprintf("%s:%d", cfg.MinIO.Host, cfg.MinIO.Port),
		User:          cfg.MinIO.User,
		Password:      cfg.MinIO.Password,
		BucketName:    cfg.MinIO.BucketName,
		UseSSL:        cfg.MinIO.UseSSL,
		PublicBaseURL: cfg.MinIO.PublicBaseURL,

		RetryCount:    cfg.MinIO.RetryCount,
		RetryInterval: time.Duration(cfg.MinIO.RetryInterval) * time.Second,
	})
	if err != nil {
		logger.Log.Fatal(
			"Unable to connect to minio after retries",
			zap.String("address", fmt.Sprintf("[%s:%d]", cfg.MinIO.Host, cfg.MinIO.Port)),
			zap.Error(err),
		)
	}

	m := metrics.New()

	// 3. 使用者名稱查詢, 有設定 redis 時加上快取
	users := userrepo.NewMongoUserRepository(mongoDB.Database)
	masterName, sentinels := config.GetRedisSetting()
	if cfg.Redis.Addr != "" || len(sentinels) > 0 {
		redisClient, err := database.NewRedisClient(ctx, database.RedisConnection{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.RedisDB,
			MasterName: masterName,
			Sentinels:  sentinels,
		})
		if err != nil {
			logger.Log.Warn("redis unavailable, display names are not cached", zap.Error(err))
		} else {
			defer redisClient.Close()
			users = userrepo.NewCachedDirectory(users, database.NewRedisRepository[string](redisClient), cfg.Redis.NameTTL, m)
		}
	}

	// 4. 影片事件, 有設定 rabbitmq 時才發佈
	var events videoapp.EventPublisher
	if cfg.RabbitMQ.IP != "" {
		retryInterval := time.Duration(cfg.RabbitMQ.RetryInterval) * time.Second
		conn, err := database.ConnectRabbitMQWithRetry(database.Connection{
			ConnectStr:    database.RabbitConnectStr(cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.IP, cfg.RabbitMQ.Port),
			RetryCount:    cfg.RabbitMQ.RetryCount,
			RetryInterval: retryInterval,
		})
		if err != nil {
			log.Fatalf("RabbitMQ 連線失敗: %v", err)
		}
		defer conn.Close()

		rabbitChannel, err := database.GetRabbitMQChannelWithRetry(conn, cfg.RabbitMQ.RetryCount, retryInterval)
		if err != nil {
			log.Fatalf("取得 RabbitMQ Channel 失敗: %v", err)
		}
		defer rabbitChannel.Close()

		publisher, err := videoapp.NewRabbitEventPublisher(database.NewRabbitRepository(rabbitChannel), cfg.RabbitMQ.Queue)
		if err != nil {
			log.Fatalf("Queue Declare failed: %v", err)
		}
		events = publisher
	}

	channelUseCase := channelapp.NewChannelUseCase(channelRepo, videoRepo, users, m)
	videoUseCase := videoapp.NewVideoUseCase(videoRepo, minioClient, channelUseCase, users, events, m)

	// 5. 建立 Fiber 應用
	bodyLimit := cfg.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 100
	}
	r := fiber.New(fiber.Config{
		BodyLimit: bodyLimit * 1024 * 1024,
	})

	// 添加日志中间件
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.VideoServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(recover.New())
	r.Use(fiber_log.New(fiber_log.Config{
		Output: file, // 将日志输出到文件
	}))
	r.Use(cors.New())
	r.Use(m.Middleware())

	router.RegisterRoutes(r, []byte(cfg.JWT.Secret), cfg.JWT.Issuer,
		handlers.NewChannelHandler(channelUseCase),
		handlers.NewVideoHandler(videoUseCase),
		m,
	)

	testtool.StartPprof(":6060")

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Log.Info("shutting down video service")
		if err := r.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	// 启动服务器
	logger.Log.Info("video service listening", zap.String("addr", cfg.IP+":"+cfg.Port))
	if err := r.Listen(cfg.IP + ":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}
