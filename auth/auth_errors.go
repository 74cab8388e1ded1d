package auth

import "net/http"

// Error is a sign-in failure carrying its HTTP-equivalent status code.
// Provider-call failures are collapsed before they reach here: a
// transport failure and a provider rejection at the same step map to
// the same Error value.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrInvalidCredentials = &Error{Status: http.StatusUnauthorized, Message: "Invalid credentials"}
	ErrProfileFetchFailed = &Error{Status: http.StatusInternalServerError, Message: "Failed to fetch user info"}
)
