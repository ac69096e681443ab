package handlers

import (
	"context"

	channeldomain "video_sharing_service/internal/channel/domain"
	"video_sharing_service/internal/projector"
	"video_sharing_service/pkg/logger"
	"video_sharing_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ChannelService channel operations the HTTP layer needs
type ChannelService interface {
	Create(ctx context.Context, callerID string, req channeldomain.CreateChannelReq) (*channeldomain.Channel, error)
	GetByID(ctx context.Context, channelID string) (*channeldomain.ChannelDetails, error)
	GetByOwner(ctx context.Context, callerID string) (*channeldomain.ChannelDetails, error)
	Subscribe(ctx context.Context, channelID, callerID string) error
	Unsubscribe(ctx context.Context, channelID, callerID string) error
	IsSubscribed(ctx context.Context, channelID, callerID string) (bool, error)
}

// ChannelHandler 處理頻道相關的 HTTP 請求
type ChannelHandler struct {
	Channels ChannelService
}

// NewChannelHandler 建立 ChannelHandler
func NewChannelHandler(channels ChannelService) *ChannelHandler {
	return &ChannelHandler{Channels: channels}
}

// Create 建立頻道
// @Summary 建立頻道
// @Description 由目前登入的使用者建立頻道
// @Tags Channels
// @Accept json
// @Produce json
// @Param x-auth-token header string true "JWT"
// @Param request body channeldomain.CreateChannelReq true "頻道資料"
// @Success 201 {object} channeldomain.Channel
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /channel/create [post]
func (h *ChannelHandler) Create(c *fiber.Ctx) error {
	var req channeldomain.CreateChannelReq
	if err := parseFields(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	ch, err := h.Channels.Create(c.UserContext(), middlewares.CallerID(c), req)
	if err != nil {
		return respondError(c, err)
	}

	logger.Log.Info("channel created", zap.String("channel", ch.ID.Hex()), zap.String("owner", ch.Owner))
	return c.Status(fiber.StatusCreated).JSON(projector.NewChannel(ch))
}

// GetByID 取得頻道
// @Summary 取得頻道
// @Tags Channels
// @Produce json
// @Param x-auth-token header string true "JWT"
// @Param channelId path string true "channel id"
// @Success 200 {object} projector.ChannelView
// @Failure 404 {object} map[string]string
// @Router /channel/get/{channelId} [get]
func (h *ChannelHandler) GetByID(c *fiber.Ctx) error {
	d, err := h.Channels.GetByID(c.UserContext(), c.Params("channelId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(projector.Channel(d))
}

// CurrentUser 取得目前使用者的頻道
// @Summary 目前使用者的頻道
// @Tags Channels
// @Produce json
// @Param x-auth-token header string true "JWT"
// @Success 200 {object} projector.OwnerChannelView
// @Failure 404 {object} map[string]string
// @Router /channel/current-user [get]
func (h *ChannelHandler) CurrentUser(c *fiber.Ctx) error {
	d, err := h.Channels.GetByOwner(c.UserContext(), middlewares.CallerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(projector.OwnerChannel(d))
}

// Subscribe 訂閱頻道
// @Summary 訂閱頻道
// @Tags Channels
// @Produce json
// @Param x-auth-token header string true "JWT"
// @Param channelId path string true "channel id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /channel/subscribe/{channelId} [post]
func (h *ChannelHandler) Subscribe(c *fiber.Ctx) error {
	if err := h.Channels.Subscribe(c.UserContext(), c.Params("channelId"), middlewares.CallerID(c)); err != nil {
		return respondError(c, err)
	}
	return message(c, "Subscribed successfully")
}

// Unsubscribe 取消訂閱
// @Summary 取消訂閱頻道
// @Tags Channels
// @Produce json
// @Param x-auth-token header string true "JWT"
// @Param channelId path string true "channel id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /channel/unsubscribe/{channelId} [post]
func (h *ChannelHandler) Unsubscribe(c *fiber.Ctx) error {
	if err := h.Channels.Unsubscribe(c.UserContext(), c.Params("channelId"), middlewares.CallerID(c)); err != nil {
		return respondError(c, err)
	}
	return message(c, "Unsubscribed successfully")
}

// CheckSubscription 查詢訂閱狀態
// @Summary 查詢是否已訂閱
// @Tags Channels
// @Produce json
// @Param x-auth-token header string true "JWT"
// @Param channelId path string true "channel id"
// @Success 200 {object} projector.SubscriptionView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /channel/check-subscription/{channelId} [get]
func (h *ChannelHandler) CheckSubscription(c *fiber.Ctx) error {
	ok, err := h.Channels.IsSubscribed(c.UserContext(), c.Params("channelId"), middlewares.CallerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(projector.SubscriptionView{Subscribed: ok})
}
