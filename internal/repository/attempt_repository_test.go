package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"careerfit/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptRepository_SaveAttempt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttemptRepository(db)

	now := time.Now().UTC()
	attempt := &domain.Attempt{
		ID:       "A1",
		UserID:   "U1",
		Category: "Backend",
		Answers: []domain.AnswerSubmission{
			{QuestionID: "Q1", SelectedIndex: 2},
		},
		Score:         1,
		MaxScore:      1,
		Fit:           true,
		SuggestedText: "some feedback",
		Detailed: []domain.AnswerDetail{
			{QuestionID: "Q1", IsCorrect: true},
		},
		CreatedAt: now,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO attempts`)).
		WithArgs("A1", "U1", "Backend",
			`[{"question_id":"Q1","selected_index":2}]`,
			1, 1, 1, "some feedback",
			`[{"question_id":"Q1","is_correct":true}]`,
			0, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.SaveAttempt(context.Background(), attempt)
	require.NoError(t, err)
	assert.Equal(t, "A1", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptRepository_GetAttemptsByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttemptRepository(db)

	now := time.Now().UTC()
	cols := []string{"ID", "USER_ID", "CATEGORY", "ANSWERS", "SCORE", "MAX_SCORE",
		"FIT", "SUGGESTED_TEXT", "DETAILED", "INDUCTED", "CREATED_AT"}
	rows := sqlmock.NewRows(cols).
		AddRow("A2", "U1", "Frontend", `[]`, 4, 5, 1, "text", `[]`, 0, now).
		AddRow("A1", "U1", "Backend", `[]`, 2, 5, 0, "text", `[]`, 0, now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(`FROM attempts WHERE user_id = :1 ORDER BY created_at DESC`)).
		WithArgs("U1").
		WillReturnRows(rows)

	attempts, err := repo.GetAttemptsByUserID(context.Background(), "U1")
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, "A2", attempts[0].ID)
	assert.True(t, attempts[0].Fit)
	assert.False(t, attempts[1].Fit)
}

func TestBuildResultsQuery(t *testing.T) {
	fit := true

	tests := []struct {
		name     string
		filters  domain.AttemptFilters
		wantSQL  []string
		wantArgs []interface{}
	}{
		{
			name:     "no filters",
			filters:  domain.AttemptFilters{},
			wantSQL:  []string{"ORDER BY a.created_at DESC"},
			wantArgs: nil,
		},
		{
			name:     "category only",
			filters:  domain.AttemptFilters{Category: "Backend"},
			wantSQL:  []string{"a.category = :1"},
			wantArgs: []interface{}{"Backend"},
		},
		{
			name:     "fit only",
			filters:  domain.AttemptFilters{Fit: &fit},
			wantSQL:  []string{"a.fit = :1"},
			wantArgs: []interface{}{1},
		},
		{
			name:     "category and fit",
			filters:  domain.AttemptFilters{Category: "Backend", Fit: &fit},
			wantSQL:  []string{"a.category = :1", "a.fit = :2"},
			wantArgs: []interface{}{"Backend", 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildResultsQuery(tt.filters)
			for _, fragment := range tt.wantSQL {
				assert.Contains(t, query, fragment)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestAttemptRepository_MarkInducted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttemptRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE attempts SET inducted = 1 WHERE id = :1 AND fit = 1`)).
		WithArgs("A1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	changed, err := repo.MarkInducted(context.Background(), "A1")
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestAttemptRepository_MarkInducted_NoFitRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttemptRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE attempts SET inducted = 1 WHERE id = :1 AND fit = 1`)).
		WithArgs("A9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	changed, err := repo.MarkInducted(context.Background(), "A9")
	require.NoError(t, err)
	assert.False(t, changed)
}
