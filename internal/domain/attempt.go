package domain

import "time"

// AnswerSubmission is a single answer in a submit request. SelectedIndex is
// caller-supplied and deliberately not range-validated; an out-of-range pick
// simply never equals the correct index.
type AnswerSubmission struct {
	QuestionID    string `json:"question_id"`
	SelectedIndex int    `json:"selected_index"`
}

// AnswerDetail records the per-question outcome for one resolved submission.
type AnswerDetail struct {
	QuestionID string `json:"question_id"`
	IsCorrect  bool   `json:"is_correct"`
}

// Attempt is the persisted record of one completed quiz submission.
// Invariant: 0 <= Score <= MaxScore, and MaxScore counts only submissions
// whose question resolved successfully.
type Attempt struct {
	ID            string
	UserID        string
	Category      string
	Answers       []AnswerSubmission
	Score         int
	MaxScore      int
	Fit           bool
	SuggestedText string
	Detailed      []AnswerDetail
	Inducted      bool
	CreatedAt     time.Time
}

// User represents a registered student.
type User struct {
	ID            string
	Username      string
	FirstName     string
	LastName      string
	Email         string
	Gender        string
	Status        string
	Semester      int
	DegreeProgram string
	DegreeName    string
	Department    string
	CGPA          float64
	Skills        string
	PasswordHash  string
	GoogleID      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AttemptFilters narrows admin result listings.
type AttemptFilters struct {
	Category string
	Fit      *bool
}

// AttemptWithUser is an attempt joined with the profile of the student who
// made it, as shown on the admin results view.
type AttemptWithUser struct {
	Attempt Attempt
	User    User
}
