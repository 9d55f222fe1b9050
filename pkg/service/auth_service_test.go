package service

import (
	"context"
	"testing"
	"time"

	"link-in-bio/pkg/logging"
	"link-in-bio/pkg/middleware"
	"link-in-bio/pkg/storage"
	"link-in-bio/pkg/storage/memory"
	"link-in-bio/pkg/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*AuthService, *middleware.Auth) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	users := memory.NewUserStore([]storage.User{
		{ID: "u1", Name: "Alex Johnson", Username: "alexcreates", Email: "alex@example.com", PasswordHash: string(hash)},
	})
	auth := middleware.NewAuth("test-secret", time.Hour)
	return NewAuthService(users, auth, logging.NewLogger("error")), auth
}

func TestLogin(t *testing.T) {
	svc, auth := newAuthService(t)

	result, err := svc.Login(context.Background(), validate.LoginInput{
		Email:    "alex@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", result.User.ID)

	userID, err := auth.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), validate.LoginInput{
		Email:    "alex@example.com",
		Password: "wrong-horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmailSameFailure(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), validate.LoginInput{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginValidatesInput(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), validate.LoginInput{Email: "nope", Password: "x"})
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
}
