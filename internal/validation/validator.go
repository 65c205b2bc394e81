package validation

import (
	"strings"

	"careerfit/internal/domain"
	"careerfit/internal/dto"
)

// ValidateCategory checks a quiz or filter category against the known
// career tracks. An empty category is rejected here; filters that allow
// "all categories" must skip this check themselves.
func ValidateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return domain.NewInvalidInputError("category is required")
	}
	if !domain.IsValidCategory(category) {
		return domain.NewInvalidCategoryError(category)
	}
	return nil
}

// ValidateSubmitRequest checks the submission envelope. Answers may be
// empty, and question IDs are deliberately not checked here: unknown IDs
// are handled during scoring.
func ValidateSubmitRequest(req *dto.SubmitRequest) error {
	if req == nil {
		return domain.NewInvalidInputError("request body is required")
	}
	if strings.TrimSpace(req.UserID) == "" {
		return domain.NewInvalidInputError("user_id is required")
	}
	if err := ValidateCategory(req.Category); err != nil {
		return err
	}
	for _, a := range req.Answers {
		if strings.TrimSpace(a.QuestionID) == "" {
			return domain.NewInvalidInputError("answer question_id is required")
		}
	}
	return nil
}

// ValidateSignUpRequest checks the minimum signup fields.
func ValidateSignUpRequest(req *dto.SignUpRequest) error {
	if req == nil {
		return domain.NewInvalidInputError("request body is required")
	}
	if strings.TrimSpace(req.Username) == "" {
		return domain.NewInvalidInputError("username is required")
	}
	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		return domain.NewInvalidInputError("a valid email is required")
	}
	if len(req.Password) < 6 {
		return domain.NewInvalidInputError("password must be at least 6 characters")
	}
	return nil
}

// ValidateSignInRequest checks the signin fields.
func ValidateSignInRequest(req *dto.SignInRequest) error {
	if req == nil {
		return domain.NewInvalidInputError("request body is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return domain.NewInvalidInputError("email is required")
	}
	if req.Password == "" {
		return domain.NewInvalidInputError("password is required")
	}
	return nil
}
