package domain

import "context"

// QuestionSource proposes candidate questions for a category. It may be
// backed by a generative text service or a static seed list. Candidates are
// untrusted: every caller must run them through NewQuestionFromCandidate.
type QuestionSource interface {
	GenerateCandidates(ctx context.Context, category string, count int) ([]Candidate, error)
}

// QuestionRepository defines the interface for question persistence.
type QuestionRepository interface {
	// SaveQuestions persists new questions and returns how many were saved.
	SaveQuestions(ctx context.Context, questions []*Question) (int, error)

	// GetQuestionByID retrieves a question by its ID.
	// Returns (nil, nil) when no such question exists.
	GetQuestionByID(ctx context.Context, id string) (*Question, error)

	// GetQuestionsByCategory returns all questions for a category,
	// oldest first.
	GetQuestionsByCategory(ctx context.Context, category string) ([]*Question, error)
}

// AttemptRepository defines the interface for attempt persistence.
type AttemptRepository interface {
	// SaveAttempt persists a new attempt and returns its ID.
	SaveAttempt(ctx context.Context, attempt *Attempt) (string, error)

	// GetAttemptsByUserID returns a user's attempts, newest first.
	GetAttemptsByUserID(ctx context.Context, userID string) ([]*Attempt, error)

	// ListAttempts returns all attempts joined with user profiles,
	// newest first, narrowed by the given filters.
	ListAttempts(ctx context.Context, filters AttemptFilters) ([]*AttemptWithUser, error)

	// MarkInducted sets the inducted flag on an attempt, but only if the
	// attempt exists and has fit = true. Returns whether a row changed.
	MarkInducted(ctx context.Context, attemptID string) (bool, error)
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	// Lookups return (nil, nil) when no such user exists.
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
}

// Authorizer is the capability checked before any admin operation. Admin
// credentials live behind this interface, never in handler code.
type Authorizer interface {
	Authorize(username, password string) error
}
