package domain

import (
	"strings"
	"time"
)

// QuestionOptionCount is the number of options every question must carry.
const QuestionOptionCount = 4

// Categories is the fixed set of career tracks a quiz can assess.
var Categories = []string{"Backend", "Frontend", "Full Stack", "AI Engineer", "ML Engineer"}

// IsValidCategory reports whether name is one of the known career tracks.
func IsValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Question is a validated multiple-choice question. It is immutable once
// created; the only way to construct one from external input is
// NewQuestionFromCandidate.
type Question struct {
	ID           string
	Category     string
	Prompt       string
	Options      []string
	CorrectIndex int
	CreatedAt    time.Time
}

// Candidate is a loosely typed question record proposed by a question
// source (generative service or seed list). Pointer fields distinguish
// "missing" from zero values: a correct_index of 0 is valid.
type Candidate struct {
	Prompt       *string  `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correct_index"`
}

// NewQuestionFromCandidate validates a candidate and turns it into a
// Question for the given category. It is a pure transform: rejected
// candidates produce a VALIDATION_ERROR and no side effects; counting and
// logging rejects is the caller's concern. The ID is assigned by the caller
// before persistence.
func NewQuestionFromCandidate(c Candidate, category string) (*Question, error) {
	if c.Prompt == nil || strings.TrimSpace(*c.Prompt) == "" {
		return nil, NewValidationError("candidate is missing a question prompt")
	}
	if c.Options == nil {
		return nil, NewValidationError("candidate is missing options")
	}
	if len(c.Options) != QuestionOptionCount {
		return nil, NewValidationError("candidate must have exactly 4 options")
	}
	for _, opt := range c.Options {
		if strings.TrimSpace(opt) == "" {
			return nil, NewValidationError("candidate has an empty option")
		}
	}
	if c.CorrectIndex == nil {
		return nil, NewValidationError("candidate is missing correct_index")
	}
	if *c.CorrectIndex < 0 || *c.CorrectIndex >= QuestionOptionCount {
		return nil, NewValidationError("candidate correct_index must be in [0,3]")
	}

	options := make([]string, QuestionOptionCount)
	copy(options, c.Options)

	return &Question{
		Category:     category,
		Prompt:       *c.Prompt,
		Options:      options,
		CorrectIndex: *c.CorrectIndex,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// NormalizePrompt is the key used to deduplicate questions within a pool.
func NormalizePrompt(prompt string) string {
	return strings.ToLower(strings.Join(strings.Fields(prompt), " "))
}
