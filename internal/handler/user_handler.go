package handler

import (
	"context"

	"careerfit/internal/domain"
	"careerfit/internal/dto"
	"careerfit/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// UserReader is the profile surface the handler depends on.
type UserReader interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
	GetMyAttempts(ctx context.Context, userID string) ([]dto.AttemptItem, error)
}

// UserHandler serves the authenticated user's own views.
type UserHandler struct {
	service UserReader
}

func NewUserHandler(service UserReader) *UserHandler {
	return &UserHandler{service: service}
}

func authenticatedUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return "", domain.NewUnauthorizedError("missing authenticated user")
	}
	return userID, nil
}

// GetMe godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}
	profile, err := h.service.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// GetMyAttempts godoc
// @Summary List the authenticated user's attempts, newest first
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AttemptItem
// @Failure 401 {object} middleware.ErrorResponse
// @Router /users/me/attempts [get]
func (h *UserHandler) GetMyAttempts(c *fiber.Ctx) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}
	attempts, err := h.service.GetMyAttempts(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(attempts)
}
