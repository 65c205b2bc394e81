package dto

import "time"

// AdminResultItem is one attempt joined with its candidate's profile, as
// shown on the recruitment results screen.
type AdminResultItem struct {
	AttemptID     string    `json:"attempt_id"`
	UserID        string    `json:"user_id"`
	Username      string    `json:"username"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Department    string    `json:"department,omitempty"`
	Category      string    `json:"category"`
	Score         int       `json:"score"`
	MaxScore      int       `json:"max_score"`
	Fit           bool      `json:"fit"`
	SuggestedText string    `json:"suggested_text"`
	Inducted      bool      `json:"inducted"`
	CreatedAt     time.Time `json:"created_at"`
}

// AdminResultsResponse wraps the filtered result list.
type AdminResultsResponse struct {
	Results []AdminResultItem `json:"results"`
	Total   int               `json:"total"`
}

// InductResponse reports the outcome of an induction.
type InductResponse struct {
	AttemptID string `json:"attempt_id"`
	Inducted  bool   `json:"inducted"`
}
