package handler

import (
	"context"

	"careerfit/internal/domain"
	"careerfit/internal/dto"
	"careerfit/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AssessmentService is the quiz surface the handler depends on.
type AssessmentService interface {
	GetQuizSet(ctx context.Context, category string) (*dto.QuizSetResponse, error)
	SubmitAnswers(ctx context.Context, req *dto.SubmitRequest) (*dto.SubmitResponse, error)
}

// QuizHandler serves categories, quiz sets and submissions.
type QuizHandler struct {
	service AssessmentService
}

func NewQuizHandler(service AssessmentService) *QuizHandler {
	return &QuizHandler{service: service}
}

// GetCategories godoc
// @Summary List career track categories
// @Description Returns the fixed set of categories a quiz can assess
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Router /categories [get]
func (h *QuizHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(dto.CategoryListResponse{Categories: domain.Categories})
}

// GetQuizSet godoc
// @Summary Get a quiz set for a category
// @Description Returns up to the configured number of questions, replenishing the pool from the question source when possible
// @Tags quiz
// @Produce json
// @Param category query string true "Career track category"
// @Success 200 {object} dto.QuizSetResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *QuizHandler) GetQuizSet(c *fiber.Ctx) error {
	category := c.Query("category")
	if err := validation.ValidateCategory(category); err != nil {
		return err
	}
	resp, err := h.service.GetQuizSet(c.Context(), category)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAnswers godoc
// @Summary Submit quiz answers
// @Description Scores a submission, evaluates fit against the threshold and records the attempt
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequest true "Submission"
// @Success 200 {object} dto.SubmitResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /submit [post]
func (h *QuizHandler) SubmitAnswers(c *fiber.Ctx) error {
	var req dto.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if err := validation.ValidateSubmitRequest(&req); err != nil {
		return err
	}
	resp, err := h.service.SubmitAnswers(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
