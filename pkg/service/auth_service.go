package service

import (
	"context"
	"errors"

	"link-in-bio/pkg/logging"
	"link-in-bio/pkg/middleware"
	"link-in-bio/pkg/storage"
	"link-in-bio/pkg/validate"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown email and wrong password, so
// the login procedure is not a user-enumeration oracle.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	users  storage.UserStore
	auth   *middleware.Auth
	logger *logging.Logger
}

func NewAuthService(users storage.UserStore, auth *middleware.Auth, logger *logging.Logger) *AuthService {
	return &AuthService{users: users, auth: auth, logger: logger}
}

type LoginResult struct {
	Token string       `json:"token"`
	User  storage.User `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, in validate.LoginInput) (*LoginResult, error) {
	if err := validate.Login(in); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.logger.LogAuthEvent(ctx, "login", in.Email, false)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		s.logger.LogAuthEvent(ctx, "login", user.ID, false)
		return nil, ErrInvalidCredentials
	}

	token, err := s.auth.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.LogAuthEvent(ctx, "login", user.ID, true)
	return &LoginResult{Token: token, User: *user}, nil
}
