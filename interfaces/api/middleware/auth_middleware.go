package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"blog-api/infrastructure/redis"
	"blog-api/pkg/logger"
	"blog-api/pkg/utils"
)

// AuthMiddleware ตรวจ JWT และ revocation list
type AuthMiddleware struct {
	jwtSecret  string
	tokenStore *redis.TokenStore
}

func NewAuthMiddleware(jwtSecret string, tokenStore *redis.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret:  jwtSecret,
		tokenStore: tokenStore,
	}
}

// Protected validates JWT tokens, rejects revoked tokens, and sets user context
func (m *AuthMiddleware) Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		userCtx, err := utils.ParseToken(token, m.jwtSecret)
		if err != nil {
			switch {
			case errors.Is(err, utils.ErrExpiredToken):
				return utils.UnauthorizedResponse(c, "Token has expired")
			case errors.Is(err, utils.ErrInvalidToken):
				return utils.UnauthorizedResponse(c, "Invalid token")
			default:
				return utils.UnauthorizedResponse(c, "Token validation failed")
			}
		}

		// token ที่ logout แล้วใช้ไม่ได้แม้ยังไม่หมดอายุ
		if m.tokenStore != nil {
			revoked, err := m.tokenStore.IsTokenRevoked(c.UserContext(), userCtx.TokenID)
			if err != nil {
				logger.Warn("Token revocation check failed", "error", err)
			} else if revoked {
				return utils.UnauthorizedResponse(c, "Token has been revoked")
			}
		}

		c.Locals("user", userCtx)

		return c.Next()
	}
}

// Optional sets user context if a valid token is present, but never rejects
// ใช้กับ GET endpoints ที่ต้องเติม isLiked ให้ viewer ที่ login
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return c.Next()
		}

		userCtx, err := utils.ParseToken(token, m.jwtSecret)
		if err != nil {
			return c.Next()
		}

		if m.tokenStore != nil {
			revoked, err := m.tokenStore.IsTokenRevoked(c.UserContext(), userCtx.TokenID)
			if err == nil && revoked {
				return c.Next()
			}
		}

		c.Locals("user", userCtx)
		return c.Next()
	}
}

// RequireRole checks if user has a specific role
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "User not authenticated")
		}

		if user.Role != role {
			return utils.ForbiddenResponse(c, "Insufficient permissions")
		}

		return c.Next()
	}
}

// AdminOnly ensures only admin users can access
func AdminOnly() fiber.Handler {
	return RequireRole("admin")
}
