package middlewares

import (
	"video_sharing_service/pkg/logger"
	t_token "video_sharing_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	//HeaderToken token in header name
	HeaderToken = "x-auth-token"

	//QueryToken token in query name
	QueryToken = "auth"

	//CookieToken token in cookie name
	CookieToken = "auth_token"

	//TokenUserID get user form token, set c.locals name
	TokenUserID = "UserID"
	//TokenUserName get display name form token, set c.locals name
	TokenUserName = "UserName"
)

// JWTMiddleware validates the JWT carried in x-auth-token (query / cookie as fallback).
// issuer is matched against the iss claim when non-empty.
func JWTMiddleware(secret []byte, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Get(HeaderToken)

		// 如果 header 中沒有 token，則嘗試從查詢參數與 Cookie 中獲取
		if tokenStr == "" {
			tokenStr = c.Query(QueryToken)
		}
		if tokenStr == "" {
			tokenStr = c.Cookies(CookieToken)
		}

		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		claims, err := t_token.ParseJWT(tokenStr, secret, issuer)
		if err != nil {
			logger.Log.Debug("token rejected", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		c.Locals(TokenUserID, claims.ID)
		c.Locals(TokenUserName, claims.Name)
		return c.Next()
	}
}

// CallerID read the caller id set by JWTMiddleware, "" when absent
func CallerID(c *fiber.Ctx) string {
	id, _ := c.Locals(TokenUserID).(string)
	return id
}
