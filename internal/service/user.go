package service

import (
	"context"

	"careerfit/internal/domain"
	"careerfit/internal/dto"
)

// UserService serves the authenticated user's own views.
type UserService struct {
	userRepo    domain.UserRepository
	attemptRepo domain.AttemptRepository
}

func NewUserService(userRepo domain.UserRepository, attemptRepo domain.AttemptRepository) *UserService {
	return &UserService{userRepo: userRepo, attemptRepo: attemptRepo}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(userID)
	}

	return &dto.UserProfileResponse{
		ID:            user.ID,
		Username:      user.Username,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		Gender:        user.Gender,
		Status:        user.Status,
		Semester:      user.Semester,
		DegreeProgram: user.DegreeProgram,
		DegreeName:    user.DegreeName,
		Department:    user.Department,
		CGPA:          user.CGPA,
		Skills:        user.Skills,
		CreatedAt:     user.CreatedAt,
	}, nil
}

func (s *UserService) GetMyAttempts(ctx context.Context, userID string) ([]dto.AttemptItem, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(userID)
	}

	attempts, err := s.attemptRepo.GetAttemptsByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load attempts", err)
	}

	items := make([]dto.AttemptItem, 0, len(attempts))
	for _, a := range attempts {
		items = append(items, dto.AttemptItem{
			ID:            a.ID,
			Category:      a.Category,
			Score:         a.Score,
			MaxScore:      a.MaxScore,
			Fit:           a.Fit,
			SuggestedText: a.SuggestedText,
			Inducted:      a.Inducted,
			CreatedAt:     a.CreatedAt,
		})
	}
	return items, nil
}
