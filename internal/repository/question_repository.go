package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"careerfit/internal/domain"
	"careerfit/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

type questionRepository struct {
	db *sqlx.DB
}

// NewQuestionRepository creates an Oracle-backed QuestionRepository.
func NewQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) SaveQuestions(ctx context.Context, questions []*domain.Question) (int, error) {
	if len(questions) == 0 {
		return 0, nil
	}

	query := `INSERT INTO questions (id, category, prompt, options, correct_index, created_at)
		VALUES (:1, :2, :3, :4, :5, :6)`

	saved := 0
	for _, q := range questions {
		m := models.QuestionFromDomain(q)
		optionsJSON, err := m.Options.Value()
		if err != nil {
			return saved, fmt.Errorf("failed to encode options for question %s: %w", q.ID, err)
		}
		_, err = r.db.ExecContext(ctx, query,
			m.ID, m.Category, m.Prompt, optionsJSON, m.CorrectIndex, m.CreatedAt)
		if err != nil {
			return saved, fmt.Errorf("failed to save question %s: %w", q.ID, err)
		}
		saved++
	}
	return saved, nil
}

func (r *questionRepository) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	query := `SELECT id, category, prompt, options, correct_index, created_at
		FROM questions WHERE id = :1`

	var m models.Question
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by id %s: %w", id, err)
	}
	return m.ToDomain(), nil
}

func (r *questionRepository) GetQuestionsByCategory(ctx context.Context, category string) ([]*domain.Question, error) {
	query := `SELECT id, category, prompt, options, correct_index, created_at
		FROM questions WHERE category = :1 ORDER BY created_at ASC`

	var rows []models.Question
	if err := r.db.SelectContext(ctx, &rows, query, category); err != nil {
		return nil, fmt.Errorf("failed to get questions for category %s: %w", category, err)
	}

	questions := make([]*domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, rows[i].ToDomain())
	}
	return questions, nil
}
