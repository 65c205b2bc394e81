package service

import (
	"context"
	"testing"
	"time"

	"careerfit/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListResults_MapsRows(t *testing.T) {
	attempts := new(MockAttemptRepository)
	svc := NewAdminService(attempts)

	fit := true
	filters := domain.AttemptFilters{Category: "Backend", Fit: &fit}

	rows := []*domain.AttemptWithUser{
		{
			Attempt: domain.Attempt{
				ID: "A1", UserID: "U1", Category: "Backend",
				Score: 4, MaxScore: 5, Fit: true,
				SuggestedText: "well done", Inducted: false,
				CreatedAt: time.Now().UTC(),
			},
			User: domain.User{
				ID: "U1", Username: "jdoe", FirstName: "Jane", LastName: "Doe",
				Email: "jane@example.com", Department: "CS",
			},
		},
	}
	attempts.On("ListAttempts", mock.Anything, filters).Return(rows, nil)

	resp, err := svc.ListResults(context.Background(), filters)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)

	item := resp.Results[0]
	assert.Equal(t, "A1", item.AttemptID)
	assert.Equal(t, "jdoe", item.Username)
	assert.Equal(t, "CS", item.Department)
	assert.True(t, item.Fit)
	assert.False(t, item.Inducted)
}

func TestListResults_InvalidCategoryFilter(t *testing.T) {
	svc := NewAdminService(new(MockAttemptRepository))

	_, err := svc.ListResults(context.Background(), domain.AttemptFilters{Category: "Gardening"})
	require.Error(t, err)

	domainErr, ok := err.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrInvalidCategory, domainErr.Code)
}

func TestInductStudent(t *testing.T) {
	attempts := new(MockAttemptRepository)
	svc := NewAdminService(attempts)

	attempts.On("MarkInducted", mock.Anything, "A1").Return(true, nil)

	resp, err := svc.InductStudent(context.Background(), "A1")
	require.NoError(t, err)
	assert.Equal(t, "A1", resp.AttemptID)
	assert.True(t, resp.Inducted)
}

func TestInductStudent_RefusedForNonFit(t *testing.T) {
	attempts := new(MockAttemptRepository)
	svc := NewAdminService(attempts)

	attempts.On("MarkInducted", mock.Anything, "A2").Return(false, nil)

	_, err := svc.InductStudent(context.Background(), "A2")
	require.Error(t, err)

	domainErr, ok := err.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrInvalidInput, domainErr.Code)
}
