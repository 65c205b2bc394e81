package middleware

import (
	"encoding/base64"
	"strings"

	"careerfit/internal/domain"

	"github.com/gofiber/fiber/v2"
)

const basicSchema = "Basic "

// AdminOnly requires HTTP Basic credentials accepted by the authorizer.
// Admin routes never use JWTs: recruiter access is a separate capability.
func AdminOnly(authorizer domain.Authorizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if !strings.HasPrefix(authHeader, basicSchema) {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="admin"`)
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "MISSING_ADMIN_CREDENTIALS",
				Message: "Basic authorization is required",
				Status:  fiber.StatusUnauthorized,
			})
		}

		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authHeader, basicSchema))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_ADMIN_CREDENTIALS",
				Message: "Malformed basic authorization header",
				Status:  fiber.StatusUnauthorized,
			})
		}

		username, password, found := strings.Cut(string(decoded), ":")
		if !found {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_ADMIN_CREDENTIALS",
				Message: "Malformed basic authorization header",
				Status:  fiber.StatusUnauthorized,
			})
		}

		if err := authorizer.Authorize(username, password); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_ADMIN_CREDENTIALS",
				Message: "Invalid admin credentials",
				Status:  fiber.StatusUnauthorized,
			})
		}
		return c.Next()
	}
}
