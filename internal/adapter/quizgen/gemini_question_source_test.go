package quizgen

import (
	"context"
	"errors"
	"testing"

	"careerfit/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel returns a canned response or error.
type fakeModel struct {
	response string
	err      error
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestGenerateCandidates_ParsesArray(t *testing.T) {
	model := &fakeModel{response: `[
		{"question": "Q one?", "options": ["a","b","c","d"], "correct_index": 1},
		{"question": "Q two?", "options": ["a","b","c","d"], "correct_index": 0}
	]`}
	source := NewGeminiQuestionSource(model)

	candidates, err := source.GenerateCandidates(context.Background(), "Backend", 2)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "Q one?", *candidates[0].Prompt)
	assert.Equal(t, 1, *candidates[0].CorrectIndex)
	assert.Equal(t, 0, *candidates[1].CorrectIndex)
}

func TestGenerateCandidates_StripsMarkdownFences(t *testing.T) {
	model := &fakeModel{response: "```json\n" +
		`[{"question": "Fenced?", "options": ["a","b","c","d"], "correct_index": 3}]` +
		"\n```"}
	source := NewGeminiQuestionSource(model)

	candidates, err := source.GenerateCandidates(context.Background(), "Frontend", 1)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Fenced?", *candidates[0].Prompt)
}

func TestGenerateCandidates_SkipsMalformedElements(t *testing.T) {
	model := &fakeModel{response: `[
		{"question": "Good?", "options": ["a","b","c","d"], "correct_index": 0},
		{"question": 42, "options": "bad", "correct_index": "nope"}
	]`}
	source := NewGeminiQuestionSource(model)

	candidates, err := source.GenerateCandidates(context.Background(), "Backend", 2)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Good?", *candidates[0].Prompt)
}

func TestGenerateCandidates_MissingFieldsStayNil(t *testing.T) {
	model := &fakeModel{response: `[{"options": ["a","b","c","d"]}]`}
	source := NewGeminiQuestionSource(model)

	candidates, err := source.GenerateCandidates(context.Background(), "Backend", 1)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Nil(t, candidates[0].Prompt)
	assert.Nil(t, candidates[0].CorrectIndex)
}

func TestGenerateCandidates_NoArray(t *testing.T) {
	model := &fakeModel{response: "Sorry, I cannot help with that."}
	source := NewGeminiQuestionSource(model)

	_, err := source.GenerateCandidates(context.Background(), "Backend", 5)
	require.Error(t, err)

	domainErr, ok := err.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrSourceUnavailable, domainErr.Code)
}

func TestGenerateCandidates_LLMError(t *testing.T) {
	model := &fakeModel{err: errors.New("quota exceeded")}
	source := NewGeminiQuestionSource(model)

	_, err := source.GenerateCandidates(context.Background(), "Backend", 5)
	require.Error(t, err)

	domainErr, ok := err.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, domain.ErrSourceUnavailable, domainErr.Code)
}
