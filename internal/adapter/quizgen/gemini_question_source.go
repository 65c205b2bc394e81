package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"careerfit/internal/domain"
	"careerfit/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

const generateTimeout = 30 * time.Second

// GeminiQuestionSource implements domain.QuestionSource on top of a
// langchaingo model. Candidates come back untrusted; validation is the
// caller's job.
type GeminiQuestionSource struct {
	llm llms.Model
}

// NewGeminiQuestionSource wraps an already constructed model.
func NewGeminiQuestionSource(llm llms.Model) domain.QuestionSource {
	return &GeminiQuestionSource{llm: llm}
}

func buildPrompt(category string, count int) string {
	return fmt.Sprintf(`You are an expert technical interviewer. Generate %d multiple-choice questions
to assess a student's fit for the "%s" career track.

Each question must be a JSON object with exactly these fields:
1. "question": the question text.
2. "options": an array of exactly 4 answer strings.
3. "correct_index": the zero-based index of the correct option (0 to 3).

Respond with ONLY a single JSON array of %d such objects, no prose before or after.
Example object:
{
  "question": "Which HTTP status code means Not Found?",
  "options": ["200", "301", "404", "500"],
  "correct_index": 2
}`, count, category, count)
}

func (s *GeminiQuestionSource) GenerateCandidates(ctx context.Context, category string, count int) ([]domain.Candidate, error) {
	l := logger.Get()

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	raw, err := llms.GenerateFromSinglePrompt(ctx, s.llm, buildPrompt(category, count),
		llms.WithTemperature(0.2))
	if err != nil {
		l.Error("LLM generation failed",
			zap.String("category", category),
			zap.Error(err))
		return nil, domain.NewSourceUnavailableError(fmt.Errorf("llm call failed: %w", err))
	}

	candidates, err := parseCandidates(raw)
	if err != nil {
		l.Error("Failed to parse LLM response",
			zap.String("category", category),
			zap.Error(err))
		return nil, domain.NewSourceUnavailableError(err)
	}

	l.Info("Generated question candidates",
		zap.String("category", category),
		zap.Int("requested", count),
		zap.Int("received", len(candidates)))
	return candidates, nil
}

// parseCandidates extracts the JSON array from a model response that may be
// wrapped in prose or markdown fences. Elements that fail to decode are
// skipped; an undecodable payload fails as a whole.
func parseCandidates(raw string) ([]domain.Candidate, error) {
	cleaned := strings.TrimSpace(raw)

	arrStart := strings.Index(cleaned, "[")
	arrEnd := strings.LastIndex(cleaned, "]")
	if arrStart == -1 || arrEnd == -1 || arrEnd < arrStart {
		return nil, fmt.Errorf("no JSON array found in LLM response: %s", truncate(cleaned, 200))
	}
	extracted := cleaned[arrStart : arrEnd+1]

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(extracted), &elements); err != nil {
		return nil, fmt.Errorf("failed to unmarshal LLM response array: %w", err)
	}

	l := logger.Get()
	candidates := make([]domain.Candidate, 0, len(elements))
	for i, element := range elements {
		var c domain.Candidate
		if err := json.Unmarshal(element, &c); err != nil {
			l.Warn("Skipping malformed candidate element",
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
