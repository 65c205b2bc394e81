package service

import (
	"context"

	"careerfit/internal/domain"
	"careerfit/internal/dto"
	"careerfit/internal/logger"

	"go.uber.org/zap"
)

// AdminService backs the recruitment screens: filtered result listings and
// induction of fit candidates.
type AdminService struct {
	attemptRepo domain.AttemptRepository
}

func NewAdminService(attemptRepo domain.AttemptRepository) *AdminService {
	return &AdminService{attemptRepo: attemptRepo}
}

// ListResults returns attempts joined with candidate profiles, newest first,
// narrowed by category and fit when given.
func (s *AdminService) ListResults(ctx context.Context, filters domain.AttemptFilters) (*dto.AdminResultsResponse, error) {
	if filters.Category != "" && !domain.IsValidCategory(filters.Category) {
		return nil, domain.NewInvalidCategoryError(filters.Category)
	}

	rows, err := s.attemptRepo.ListAttempts(ctx, filters)
	if err != nil {
		return nil, domain.NewInternalError("failed to list results", err)
	}

	resp := &dto.AdminResultsResponse{
		Results: make([]dto.AdminResultItem, 0, len(rows)),
		Total:   len(rows),
	}
	for _, row := range rows {
		resp.Results = append(resp.Results, dto.AdminResultItem{
			AttemptID:     row.Attempt.ID,
			UserID:        row.User.ID,
			Username:      row.User.Username,
			FirstName:     row.User.FirstName,
			LastName:      row.User.LastName,
			Email:         row.User.Email,
			Department:    row.User.Department,
			Category:      row.Attempt.Category,
			Score:         row.Attempt.Score,
			MaxScore:      row.Attempt.MaxScore,
			Fit:           row.Attempt.Fit,
			SuggestedText: row.Attempt.SuggestedText,
			Inducted:      row.Attempt.Inducted,
			CreatedAt:     row.Attempt.CreatedAt,
		})
	}
	return resp, nil
}

// InductStudent marks a fit attempt as inducted. Attempts that do not exist
// or did not reach the fit threshold cannot be inducted.
func (s *AdminService) InductStudent(ctx context.Context, attemptID string) (*dto.InductResponse, error) {
	changed, err := s.attemptRepo.MarkInducted(ctx, attemptID)
	if err != nil {
		return nil, domain.NewInternalError("failed to induct attempt", err)
	}
	if !changed {
		logger.Get().Info("Induction refused", zap.String("attempt_id", attemptID))
		return nil, domain.NewInvalidInputError("attempt cannot be inducted: not found or not fit")
	}
	return &dto.InductResponse{AttemptID: attemptID, Inducted: true}, nil
}
