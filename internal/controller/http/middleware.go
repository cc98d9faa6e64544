package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"tutorboard/internal/service"
)

const localsUserID = "user_id"

// AuthRequired проверяет Bearer-токен и кладёт ID преподавателя
// в контекст запроса
func AuthRequired(authService *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		userID, err := authService.ParseToken(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(localsUserID, userID)
		return c.Next()
	}
}
