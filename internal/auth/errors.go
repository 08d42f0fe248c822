package auth

import "errors"

// Sentinel errors for auth operations. The HTTP layer maps all of these to
// 400 responses; anything else is a 500.
var (
	// ErrMissingFields indicates a required registration field was absent.
	ErrMissingFields = errors.New("all fields are required")

	// ErrMissingCredentials indicates the login request lacked a username
	// or password.
	ErrMissingCredentials = errors.New("username and password are required")

	// Conflict errors for the three uniqueness checks, reported in the
	// order they are performed.
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	ErrPhoneTaken    = errors.New("phone number already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. The message is deliberately identical for both cases so
	// login responses carry no enumeration signal.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// IsConflict reports whether err is one of the registration conflicts.
func IsConflict(err error) bool {
	return errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrPhoneTaken)
}
