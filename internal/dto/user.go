package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignUpRequest carries the full candidate profile collected at signup.
type SignUpRequest struct {
	Username      string  `json:"username"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	Gender        string  `json:"gender"`
	Status        string  `json:"status"`
	Semester      int     `json:"semester"`
	DegreeProgram string  `json:"degree_program"`
	DegreeName    string  `json:"degree_name"`
	Department    string  `json:"department"`
	CGPA          float64 `json:"cgpa"`
	Skills        string  `json:"skills"`
}

// SignInRequest authenticates by email and password.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshRequest exchanges a refresh token for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthClaims are the JWT claims issued by the auth service.
type AuthClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// UserProfileResponse is the authenticated user's own profile view.
type UserProfileResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Gender        string    `json:"gender,omitempty"`
	Status        string    `json:"status,omitempty"`
	Semester      int       `json:"semester,omitempty"`
	DegreeProgram string    `json:"degree_program,omitempty"`
	DegreeName    string    `json:"degree_name,omitempty"`
	Department    string    `json:"department,omitempty"`
	CGPA          float64   `json:"cgpa,omitempty"`
	Skills        string    `json:"skills,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// AttemptItem is one row in a user's attempt history.
type AttemptItem struct {
	ID            string    `json:"id"`
	Category      string    `json:"category"`
	Score         int       `json:"score"`
	MaxScore      int       `json:"max_score"`
	Fit           bool      `json:"fit"`
	SuggestedText string    `json:"suggested_text"`
	Inducted      bool      `json:"inducted"`
	CreatedAt     time.Time `json:"created_at"`
}
