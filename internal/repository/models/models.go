package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"careerfit/internal/domain"
	"careerfit/internal/util"
)

// StringSlice stores a []string as a JSON document in a CLOB column.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringSlice: %T", value)
	}
	return json.Unmarshal(data, (*[]string)(s))
}

// AnswerList stores submitted answers as JSON.
type AnswerList []domain.AnswerSubmission

func (a AnswerList) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]domain.AnswerSubmission(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *AnswerList) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for AnswerList: %T", value)
	}
	return json.Unmarshal(data, (*[]domain.AnswerSubmission)(a))
}

// DetailList stores per-question correctness as JSON.
type DetailList []domain.AnswerDetail

func (d DetailList) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]domain.AnswerDetail(d))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *DetailList) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for DetailList: %T", value)
	}
	return json.Unmarshal(data, (*[]domain.AnswerDetail)(d))
}

// Question is the QUESTIONS table row.
type Question struct {
	ID           string      `db:"ID"`
	Category     string      `db:"CATEGORY"`
	Prompt       string      `db:"PROMPT"`
	Options      StringSlice `db:"OPTIONS"`
	CorrectIndex int         `db:"CORRECT_INDEX"`
	CreatedAt    time.Time   `db:"CREATED_AT"`
}

func (q *Question) ToDomain() *domain.Question {
	return &domain.Question{
		ID:           q.ID,
		Category:     q.Category,
		Prompt:       q.Prompt,
		Options:      []string(q.Options),
		CorrectIndex: q.CorrectIndex,
		CreatedAt:    q.CreatedAt,
	}
}

func QuestionFromDomain(q *domain.Question) *Question {
	return &Question{
		ID:           q.ID,
		Category:     q.Category,
		Prompt:       q.Prompt,
		Options:      StringSlice(q.Options),
		CorrectIndex: q.CorrectIndex,
		CreatedAt:    q.CreatedAt,
	}
}

// Attempt is the ATTEMPTS table row. Fit and Inducted are NUMBER(1) flags.
type Attempt struct {
	ID            string     `db:"ID"`
	UserID        string     `db:"USER_ID"`
	Category      string     `db:"CATEGORY"`
	Answers       AnswerList `db:"ANSWERS"`
	Score         int        `db:"SCORE"`
	MaxScore      int        `db:"MAX_SCORE"`
	Fit           int        `db:"FIT"`
	SuggestedText string     `db:"SUGGESTED_TEXT"`
	Detailed      DetailList `db:"DETAILED"`
	Inducted      int        `db:"INDUCTED"`
	CreatedAt     time.Time  `db:"CREATED_AT"`
}

func (a *Attempt) ToDomain() *domain.Attempt {
	return &domain.Attempt{
		ID:            a.ID,
		UserID:        a.UserID,
		Category:      a.Category,
		Answers:       []domain.AnswerSubmission(a.Answers),
		Score:         a.Score,
		MaxScore:      a.MaxScore,
		Fit:           a.Fit == 1,
		SuggestedText: a.SuggestedText,
		Detailed:      []domain.AnswerDetail(a.Detailed),
		Inducted:      a.Inducted == 1,
		CreatedAt:     a.CreatedAt,
	}
}

func AttemptFromDomain(a *domain.Attempt) *Attempt {
	m := &Attempt{
		ID:            a.ID,
		UserID:        a.UserID,
		Category:      a.Category,
		Answers:       AnswerList(a.Answers),
		Score:         a.Score,
		MaxScore:      a.MaxScore,
		SuggestedText: a.SuggestedText,
		Detailed:      DetailList(a.Detailed),
		CreatedAt:     a.CreatedAt,
	}
	if a.Fit {
		m.Fit = 1
	}
	if a.Inducted {
		m.Inducted = 1
	}
	return m
}

// User is the USERS table row.
type User struct {
	ID            string          `db:"ID"`
	Username      string          `db:"USERNAME"`
	FirstName     string          `db:"FIRST_NAME"`
	LastName      string          `db:"LAST_NAME"`
	Email         string          `db:"EMAIL"`
	Gender        sql.NullString  `db:"GENDER"`
	Status        sql.NullString  `db:"STATUS"`
	Semester      sql.NullInt64   `db:"SEMESTER"`
	DegreeProgram sql.NullString  `db:"DEGREE_PROGRAM"`
	DegreeName    sql.NullString  `db:"DEGREE_NAME"`
	Department    sql.NullString  `db:"DEPARTMENT"`
	CGPA          sql.NullFloat64 `db:"CGPA"`
	Skills        sql.NullString  `db:"SKILLS"`
	PasswordHash  sql.NullString  `db:"PASSWORD_HASH"`
	GoogleID      sql.NullString  `db:"GOOGLE_ID"`
	CreatedAt     time.Time       `db:"CREATED_AT"`
	UpdatedAt     time.Time       `db:"UPDATED_AT"`
}

func (u *User) ToDomain() *domain.User {
	return &domain.User{
		ID:            u.ID,
		Username:      u.Username,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Gender:        util.NullStringToString(u.Gender),
		Status:        util.NullStringToString(u.Status),
		Semester:      int(u.Semester.Int64),
		DegreeProgram: util.NullStringToString(u.DegreeProgram),
		DegreeName:    util.NullStringToString(u.DegreeName),
		Department:    util.NullStringToString(u.Department),
		CGPA:          u.CGPA.Float64,
		Skills:        util.NullStringToString(u.Skills),
		PasswordHash:  util.NullStringToString(u.PasswordHash),
		GoogleID:      util.NullStringToString(u.GoogleID),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func UserFromDomain(u *domain.User) *User {
	return &User{
		ID:            u.ID,
		Username:      u.Username,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Gender:        util.StringToNullString(u.Gender),
		Status:        util.StringToNullString(u.Status),
		Semester:      sql.NullInt64{Int64: int64(u.Semester), Valid: u.Semester != 0},
		DegreeProgram: util.StringToNullString(u.DegreeProgram),
		DegreeName:    util.StringToNullString(u.DegreeName),
		Department:    util.StringToNullString(u.Department),
		CGPA:          sql.NullFloat64{Float64: u.CGPA, Valid: u.CGPA != 0},
		Skills:        util.StringToNullString(u.Skills),
		PasswordHash:  util.StringToNullString(u.PasswordHash),
		GoogleID:      util.StringToNullString(u.GoogleID),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// AttemptWithUser is one row of the admin results join.
type AttemptWithUser struct {
	Attempt
	Username   string         `db:"USERNAME"`
	FirstName  string         `db:"FIRST_NAME"`
	LastName   string         `db:"LAST_NAME"`
	Email      string         `db:"EMAIL"`
	Department sql.NullString `db:"DEPARTMENT"`
}

func (r *AttemptWithUser) ToDomain() *domain.AttemptWithUser {
	return &domain.AttemptWithUser{
		Attempt: *r.Attempt.ToDomain(),
		User: domain.User{
			ID:         r.UserID,
			Username:   r.Username,
			FirstName:  r.FirstName,
			LastName:   r.LastName,
			Email:      r.Email,
			Department: util.NullStringToString(r.Department),
		},
	}
}
