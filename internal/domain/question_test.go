package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validCandidate() Candidate {
	return Candidate{
		Prompt:       strPtr("Which HTTP verb is idempotent?"),
		Options:      []string{"POST", "PUT", "PATCH", "CONNECT"},
		CorrectIndex: intPtr(1),
	}
}

func TestNewQuestionFromCandidate_Accepts(t *testing.T) {
	q, err := NewQuestionFromCandidate(validCandidate(), "Backend")
	require.NoError(t, err)
	require.NotNil(t, q)

	assert.Equal(t, "Backend", q.Category)
	assert.Equal(t, "Which HTTP verb is idempotent?", q.Prompt)
	assert.Equal(t, []string{"POST", "PUT", "PATCH", "CONNECT"}, q.Options)
	assert.Equal(t, 1, q.CorrectIndex)
	assert.False(t, q.CreatedAt.IsZero())
}

func TestNewQuestionFromCandidate_AcceptsCorrectIndexZero(t *testing.T) {
	c := validCandidate()
	c.CorrectIndex = intPtr(0)

	q, err := NewQuestionFromCandidate(c, "Frontend")
	require.NoError(t, err)
	assert.Equal(t, 0, q.CorrectIndex)
}

func TestNewQuestionFromCandidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Candidate)
	}{
		{"missing prompt", func(c *Candidate) { c.Prompt = nil }},
		{"blank prompt", func(c *Candidate) { c.Prompt = strPtr("   ") }},
		{"missing options", func(c *Candidate) { c.Options = nil }},
		{"three options", func(c *Candidate) { c.Options = c.Options[:3] }},
		{"five options", func(c *Candidate) { c.Options = append(c.Options, "DELETE") }},
		{"empty option", func(c *Candidate) { c.Options[2] = "" }},
		{"missing correct_index", func(c *Candidate) { c.CorrectIndex = nil }},
		{"correct_index negative", func(c *Candidate) { c.CorrectIndex = intPtr(-1) }},
		{"correct_index too large", func(c *Candidate) { c.CorrectIndex = intPtr(4) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			tt.mutate(&c)

			q, err := NewQuestionFromCandidate(c, "Backend")
			assert.Nil(t, q)
			require.Error(t, err)

			domainErr, ok := err.(*DomainError)
			require.True(t, ok)
			assert.Equal(t, ErrValidation, domainErr.Code)
		})
	}
}

func TestNewQuestionFromCandidate_CopiesOptions(t *testing.T) {
	c := validCandidate()
	q, err := NewQuestionFromCandidate(c, "Backend")
	require.NoError(t, err)

	c.Options[0] = "mutated"
	assert.Equal(t, "POST", q.Options[0])
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, IsValidCategory(c), c)
	}
	assert.False(t, IsValidCategory("backend"))
	assert.False(t, IsValidCategory("DevOps"))
	assert.False(t, IsValidCategory(""))
}

func TestNormalizePrompt(t *testing.T) {
	assert.Equal(t,
		NormalizePrompt("What  is   REST?"),
		NormalizePrompt("what is rest?"),
	)
}
