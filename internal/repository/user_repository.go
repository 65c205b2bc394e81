package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"careerfit/internal/domain"
	"careerfit/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates an Oracle-backed UserRepository.
func NewUserRepository(db *sqlx.DB) domain.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, first_name, last_name, email, gender, status, semester,
	degree_program, degree_name, department, cgpa, skills, password_hash, google_id,
	created_at, updated_at`

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	m := models.UserFromDomain(user)

	query := `INSERT INTO users
		(id, username, first_name, last_name, email, gender, status, semester,
		degree_program, degree_name, department, cgpa, skills, password_hash, google_id,
		created_at, updated_at)
		VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11, :12, :13, :14, :15, :16, :17)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Username, m.FirstName, m.LastName, m.Email, m.Gender, m.Status,
		m.Semester, m.DegreeProgram, m.DegreeName, m.Department, m.CGPA, m.Skills,
		m.PasswordHash, m.GoogleID, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var m models.User
	err := r.db.GetContext(ctx, &m, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = :1`
	user, err := r.getOne(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id %s: %w", userID, err)
	}
	return user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = :1`
	user, err := r.getOne(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (r *userRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = :1`
	user, err := r.getOne(ctx, query, googleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by google id: %w", err)
	}
	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	m := models.UserFromDomain(user)

	query := `UPDATE users SET
		username = :1, first_name = :2, last_name = :3, email = :4, gender = :5,
		status = :6, semester = :7, degree_program = :8, degree_name = :9,
		department = :10, cgpa = :11, skills = :12, password_hash = :13,
		google_id = :14, updated_at = :15
		WHERE id = :16`

	_, err := r.db.ExecContext(ctx, query,
		m.Username, m.FirstName, m.LastName, m.Email, m.Gender, m.Status,
		m.Semester, m.DegreeProgram, m.DegreeName, m.Department, m.CGPA, m.Skills,
		m.PasswordHash, m.GoogleID, m.UpdatedAt, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	return nil
}
