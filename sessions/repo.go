package sessions

import "errors"

var ErrSessionNotFound = errors.New("session not found")

// Repo defines the host framework's session storage. Expiration sweeps
// are the implementation's responsibility; this core only creates and
// replaces sessions.
type Repo interface {
	// Upsert creates or updates a session keyed by its ID
	Upsert(session *Session) error

	// Get retrieves a session by ID
	Get(sessionID string) (*Session, error)

	// Delete removes a session by ID
	Delete(sessionID string) error
}
