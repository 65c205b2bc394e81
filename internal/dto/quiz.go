package dto

import "time"

// QuestionResponse is a question as presented to the candidate. The correct
// answer index is deliberately absent.
type QuestionResponse struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
}

// QuizSetResponse is the payload for a quiz request. Partial is set when the
// pool could not supply the full desired count.
type QuizSetResponse struct {
	Category  string             `json:"category"`
	Questions []QuestionResponse `json:"questions"`
	Partial   bool               `json:"partial"`
}

// AnswerSubmission is a single answered question inside a submission.
type AnswerSubmission struct {
	QuestionID    string `json:"question_id"`
	SelectedIndex int    `json:"selected_index"`
}

// SubmitRequest is the body of POST /api/submit.
type SubmitRequest struct {
	UserID   string             `json:"user_id"`
	Category string             `json:"category"`
	Answers  []AnswerSubmission `json:"answers"`
}

// AnswerDetailResponse reports per-question correctness for a submission.
type AnswerDetailResponse struct {
	QuestionID string `json:"question_id"`
	IsCorrect  bool   `json:"is_correct"`
}

// SubmitResponse is the evaluated result of a submission.
type SubmitResponse struct {
	AttemptID     string                 `json:"attempt_id"`
	UserID        string                 `json:"user_id"`
	Category      string                 `json:"category"`
	Score         int                    `json:"score"`
	MaxScore      int                    `json:"max_score"`
	Fit           bool                   `json:"fit"`
	SuggestedText string                 `json:"suggested_text"`
	Detailed      []AnswerDetailResponse `json:"detailed"`
	Timestamp     time.Time              `json:"timestamp"`
}

// CategoryListResponse lists the assessable categories.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}
