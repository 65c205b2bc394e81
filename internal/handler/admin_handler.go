package handler

import (
	"context"
	"strings"

	"careerfit/internal/domain"
	"careerfit/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// AdminService is the recruitment surface the handler depends on.
type AdminService interface {
	ListResults(ctx context.Context, filters domain.AttemptFilters) (*dto.AdminResultsResponse, error)
	InductStudent(ctx context.Context, attemptID string) (*dto.InductResponse, error)
}

// AdminHandler serves the recruiter endpoints. All routes behind it are
// guarded by middleware.AdminOnly.
type AdminHandler struct {
	service AdminService
}

func NewAdminHandler(service AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListResults godoc
// @Summary List attempt results with candidate profiles
// @Tags admin
// @Produce json
// @Security BasicAuth
// @Param category query string false "Filter by career track"
// @Param fit query boolean false "Filter by fit outcome"
// @Success 200 {object} dto.AdminResultsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /admin/results [get]
func (h *AdminHandler) ListResults(c *fiber.Ctx) error {
	filters := domain.AttemptFilters{Category: c.Query("category")}

	if raw := c.Query("fit"); raw != "" {
		switch strings.ToLower(raw) {
		case "true", "1":
			fit := true
			filters.Fit = &fit
		case "false", "0":
			fit := false
			filters.Fit = &fit
		default:
			return domain.NewInvalidInputError("fit must be true or false")
		}
	}

	resp, err := h.service.ListResults(c.Context(), filters)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// InductStudent godoc
// @Summary Induct a fit candidate by attempt ID
// @Tags admin
// @Produce json
// @Security BasicAuth
// @Param attemptID path string true "Attempt ID"
// @Success 200 {object} dto.InductResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /admin/induct/{attemptID} [post]
func (h *AdminHandler) InductStudent(c *fiber.Ctx) error {
	attemptID := c.Params("attemptID")
	if attemptID == "" {
		return domain.NewInvalidInputError("attemptID is required")
	}
	resp, err := h.service.InductStudent(c.Context(), attemptID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
