package router

import (
	"video_sharing_service/internal/api/handlers"
	"video_sharing_service/pkg/metrics"
	"video_sharing_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// RegisterRoutes 註冊頻道與影片的路由
// @title Video Sharing Service API
// @version 1.0
// @description API documentation for Video Sharing Service
// @host localhost:8085
// @BasePath /
func RegisterRoutes(app *fiber.App, secret []byte, issuer string, channelHandler *handlers.ChannelHandler, videoHandler *handlers.VideoHandler, m *metrics.Metrics) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", handlers.ConnectCheck)
	app.Post("/debug", handlers.DebugLogFlag)
	if m != nil {
		app.Get("/metrics", m.Handler())
	}

	channelRoutes := app.Group("/channel", middlewares.JWTMiddleware(secret, issuer))
	channelRoutes.Post("/create", channelHandler.Create)
	channelRoutes.Get("/get/:channelId", channelHandler.GetByID)
	channelRoutes.Post("/subscribe/:channelId", channelHandler.Subscribe)
	channelRoutes.Post("/unsubscribe/:channelId", channelHandler.Unsubscribe)
	channelRoutes.Get("/current-user", channelHandler.CurrentUser)
	channelRoutes.Get("/check-subscription/:channelId", channelHandler.CheckSubscription)

	videoRoutes := app.Group("/video", middlewares.JWTMiddleware(secret, issuer))
	videoRoutes.Post("/upload", videoHandler.Upload)
	videoRoutes.Get("/get", videoHandler.List)
	videoRoutes.Get("/get/:videoId", videoHandler.GetByID)
	videoRoutes.Put("/update-video/:videoId", videoHandler.Update)
	videoRoutes.Delete("/delete/:videoId", videoHandler.Delete)
	videoRoutes.Post("/like/:videoId", videoHandler.Like)
	videoRoutes.Post("/dislike/:videoId", videoHandler.Dislike)
	videoRoutes.Post("/comment/:videoId", videoHandler.Comment)
}
