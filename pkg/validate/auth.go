package validate

import "net/mail"

const minPasswordLength = 6

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks login credentials for shape only; whether they match an
// account is the auth service's business.
func Login(in LoginInput) *Error {
	var c collector
	if _, err := mail.ParseAddress(in.Email); err != nil {
		c.add("email", "Please enter a valid email address")
	}
	if len(in.Password) < minPasswordLength {
		c.add("password", "Password must be at least 6 characters")
	}
	return c.err()
}
