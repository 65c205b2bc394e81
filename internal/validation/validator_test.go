package validation

import (
	"testing"

	"careerfit/internal/domain"
	"careerfit/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	domainErr, ok := err.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, code, domainErr.Code)
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, ValidateCategory("Backend"))
	assert.NoError(t, ValidateCategory("Full Stack"))
	assertCode(t, ValidateCategory(""), domain.ErrInvalidInput)
	assertCode(t, ValidateCategory("backend"), domain.ErrInvalidCategory)
	assertCode(t, ValidateCategory("DevOps"), domain.ErrInvalidCategory)
}

func TestValidateSubmitRequest(t *testing.T) {
	valid := &dto.SubmitRequest{
		UserID:   "U1",
		Category: "Backend",
		Answers: []dto.AnswerSubmission{
			{QuestionID: "Q1", SelectedIndex: 0},
		},
	}
	assert.NoError(t, ValidateSubmitRequest(valid))

	// Out-of-range selections are accepted; they simply never match.
	valid.Answers[0].SelectedIndex = 99
	assert.NoError(t, ValidateSubmitRequest(valid))

	// Empty answer lists are a legal, zero-scored submission.
	assert.NoError(t, ValidateSubmitRequest(&dto.SubmitRequest{UserID: "U1", Category: "Backend"}))

	assertCode(t, ValidateSubmitRequest(nil), domain.ErrInvalidInput)
	assertCode(t, ValidateSubmitRequest(&dto.SubmitRequest{Category: "Backend"}), domain.ErrInvalidInput)
	assertCode(t, ValidateSubmitRequest(&dto.SubmitRequest{UserID: "U1", Category: "nope"}), domain.ErrInvalidCategory)
	assertCode(t, ValidateSubmitRequest(&dto.SubmitRequest{
		UserID:   "U1",
		Category: "Backend",
		Answers:  []dto.AnswerSubmission{{QuestionID: " "}},
	}), domain.ErrInvalidInput)
}

func TestValidateSignUpRequest(t *testing.T) {
	valid := &dto.SignUpRequest{Username: "jdoe", Email: "jane@example.com", Password: "s3cret"}
	assert.NoError(t, ValidateSignUpRequest(valid))

	assertCode(t, ValidateSignUpRequest(&dto.SignUpRequest{Email: "a@b.c", Password: "s3cret"}), domain.ErrInvalidInput)
	assertCode(t, ValidateSignUpRequest(&dto.SignUpRequest{Username: "x", Email: "bad", Password: "s3cret"}), domain.ErrInvalidInput)
	assertCode(t, ValidateSignUpRequest(&dto.SignUpRequest{Username: "x", Email: "a@b.c", Password: "short"}), domain.ErrInvalidInput)
}

func TestValidateSignInRequest(t *testing.T) {
	assert.NoError(t, ValidateSignInRequest(&dto.SignInRequest{Email: "a@b.c", Password: "pw"}))
	assertCode(t, ValidateSignInRequest(&dto.SignInRequest{Password: "pw"}), domain.ErrInvalidInput)
	assertCode(t, ValidateSignInRequest(&dto.SignInRequest{Email: "a@b.c"}), domain.ErrInvalidInput)
}
