package service

import (
	"crypto/subtle"
	"errors"

	"careerfit/internal/config"
	"careerfit/internal/domain"
)

// ErrBadCredentials is returned for any credential mismatch.
var ErrBadCredentials = errors.New("invalid credentials")

// configAuthorizer checks admin credentials against configuration.
type configAuthorizer struct {
	username string
	password string
}

// NewConfigAuthorizer builds the admin Authorizer from configuration.
func NewConfigAuthorizer(cfg config.AdminConfig) (domain.Authorizer, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, errors.New("admin credentials are not configured")
	}
	return &configAuthorizer{username: cfg.Username, password: cfg.Password}, nil
}

func (a *configAuthorizer) Authorize(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	if !userOK || !passOK {
		return ErrBadCredentials
	}
	return nil
}
