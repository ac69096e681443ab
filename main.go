package main

import (
	"video_sharing_service/internal/api/router"

	"github.com/gofiber/fiber/v2"
)

// 服務入口在 cmd/video_service。此程式只用於 init swagger
// swag init -g main.go -o ./cmd/video_service/docs
func main() {
	app := fiber.New()

	// 註冊路由
	router.RegisterRoutes(app, nil, "", nil, nil, nil)
}
