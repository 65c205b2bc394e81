package repository

import (
	"context"
	"fmt"
	"strings"

	"careerfit/internal/domain"
	"careerfit/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

type attemptRepository struct {
	db *sqlx.DB
}

// NewAttemptRepository creates an Oracle-backed AttemptRepository.
func NewAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) SaveAttempt(ctx context.Context, attempt *domain.Attempt) (string, error) {
	m := models.AttemptFromDomain(attempt)

	answersJSON, err := m.Answers.Value()
	if err != nil {
		return "", fmt.Errorf("failed to encode answers: %w", err)
	}
	detailedJSON, err := m.Detailed.Value()
	if err != nil {
		return "", fmt.Errorf("failed to encode detail: %w", err)
	}

	query := `INSERT INTO attempts
		(id, user_id, category, answers, score, max_score, fit, suggested_text, detailed, inducted, created_at)
		VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11)`

	_, err = r.db.ExecContext(ctx, query,
		m.ID, m.UserID, m.Category, answersJSON, m.Score, m.MaxScore,
		m.Fit, m.SuggestedText, detailedJSON, m.Inducted, m.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("failed to save attempt: %w", err)
	}
	return m.ID, nil
}

func (r *attemptRepository) GetAttemptsByUserID(ctx context.Context, userID string) ([]*domain.Attempt, error) {
	query := `SELECT id, user_id, category, answers, score, max_score, fit, suggested_text, detailed, inducted, created_at
		FROM attempts WHERE user_id = :1 ORDER BY created_at DESC`

	var rows []models.Attempt
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get attempts for user %s: %w", userID, err)
	}

	attempts := make([]*domain.Attempt, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, rows[i].ToDomain())
	}
	return attempts, nil
}

// buildResultsQuery appends WHERE clauses for the given filters using
// positional binds, so the argument order must match the clause order.
func buildResultsQuery(filters domain.AttemptFilters) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`SELECT a.id, a.user_id, a.category, a.answers, a.score, a.max_score,
		a.fit, a.suggested_text, a.detailed, a.inducted, a.created_at,
		u.username, u.first_name, u.last_name, u.email, u.department
		FROM attempts a JOIN users u ON u.id = a.user_id`)

	var conditions []string
	var args []interface{}
	idx := 1

	if filters.Category != "" {
		conditions = append(conditions, fmt.Sprintf("a.category = :%d", idx))
		args = append(args, filters.Category)
		idx++
	}
	if filters.Fit != nil {
		fit := 0
		if *filters.Fit {
			fit = 1
		}
		conditions = append(conditions, fmt.Sprintf("a.fit = :%d", idx))
		args = append(args, fit)
		idx++
	}

	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY a.created_at DESC")
	return sb.String(), args
}

func (r *attemptRepository) ListAttempts(ctx context.Context, filters domain.AttemptFilters) ([]*domain.AttemptWithUser, error) {
	query, args := buildResultsQuery(filters)

	var rows []models.AttemptWithUser
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	results := make([]*domain.AttemptWithUser, 0, len(rows))
	for i := range rows {
		results = append(results, rows[i].ToDomain())
	}
	return results, nil
}

func (r *attemptRepository) MarkInducted(ctx context.Context, attemptID string) (bool, error) {
	// The fit guard lives in the statement so a non-fit attempt can never
	// be inducted, even by a racing admin.
	query := `UPDATE attempts SET inducted = 1 WHERE id = :1 AND fit = 1`

	result, err := r.db.ExecContext(ctx, query, attemptID)
	if err != nil {
		return false, fmt.Errorf("failed to mark attempt %s inducted: %w", attemptID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
