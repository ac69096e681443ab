package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	errprocess "video_sharing_service/pkg/err"
	"video_sharing_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MsgInternal fixed message of every 500 response
const MsgInternal = "Internal Server Error"

// ConnectCheck check api connect start
// @Summary Check video service status
// @Description Returns a simple confirmation message
// @Tags Shared
// @Success 200 {string} string "video service start!"
// @Router / [get]
func ConnectCheck(c *fiber.Ctx) error {
	return c.SendString("video service start!")
}

// DebugLogFlag toggle debug log flag
// @Summary Toggle Debug Log Flag
// @Description Enable or disable debug logging for a service
// @Tags Shared
// @Param service query string true "Service name"
// @Param status query bool true "Debug status"
// @Success 200 {string} string "Service debug mode updated"
// @Failure 400 {string} string "Invalid status value"
// @Router /debug [post]
func DebugLogFlag(c *fiber.Ctx) error {
	// prase payload
	query, err := url.ParseQuery(string(c.Context().QueryArgs().QueryString()))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	service := query.Get("service")
	statusStr := query.Get("status")
	logger.Log.Info("debug", zap.String("status", statusStr))
	status, err := strconv.ParseBool(statusStr)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	switch service {
	default:
		logger.Log.SetDebugMode(status)
	}
	return c.SendString(fmt.Sprintf("service[%s]: debug mode is : %t", service, status))
}

// respondError map a classified error to status + {"message"}
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := MsgInternal

	switch errprocess.KindOf(err) {
	case errprocess.KindValidation, errprocess.KindConflict, errprocess.KindPrecondition, errprocess.KindBadRequest:
		status, msg = fiber.StatusBadRequest, errprocess.Message(err)
	case errprocess.KindNotFound:
		status, msg = fiber.StatusNotFound, errprocess.Message(err)
	case errprocess.KindUnauthorized:
		status, msg = fiber.StatusUnauthorized, errprocess.Message(err)
	default:
		logger.Log.Error("request failed", zap.String("route", c.Route().Path), zap.Error(err))
	}

	return c.Status(status).JSON(fiber.Map{"message": msg})
}

func message(c *fiber.Ctx, msg string) error {
	return c.JSON(fiber.Map{"message": msg})
}
