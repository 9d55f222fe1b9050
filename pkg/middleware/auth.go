package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const callerIDKey contextKey = "caller_id"

// Auth issues and verifies the service's own access tokens. There is no
// external identity provider; login mints a token and gated procedures
// verify it.
type Auth struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewAuth(secret string, tokenTTL time.Duration) *Auth {
	return &Auth{secret: []byte(secret), tokenTTL: tokenTTL}
}

// Issue mints a signed token whose subject is the user id.
func (a *Auth) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Verify parses a raw token and returns the user id it was issued to.
func (a *Auth) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}

// Authenticate rejects requests without a valid bearer token and puts the
// caller identity into the request context for the layers below.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "missing authorization header", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
			return
		}

		userID, err := a.Verify(tokenString)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), callerIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CallerID returns the authenticated user id, or "" outside a gated request.
func CallerID(ctx context.Context) string {
	if id, ok := ctx.Value(callerIDKey).(string); ok {
		return id
	}
	return ""
}

// WithCallerID is for tests and internal calls that bypass HTTP.
func WithCallerID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, callerIDKey, userID)
}
