package sessions

import "time"

// Session binds a user to the provider's current token pair. The
// provider's refresh token doubles as the session's durable identifier,
// so ID and Token are always replaced together on refresh.
type Session struct {
	ID        string    `json:"id"`         // Current refresh token, also the session identifier
	UserID    string    `json:"user_id"`    // Immutable after creation
	Token     string    `json:"token"`      // Current access token, replaced wholesale on refresh
	ExpiresAt time.Time `json:"expires_at"` // When Token becomes invalid, always now+ttl of the latest provider response
	CreatedAt time.Time `json:"created_at"` // Set once at creation, never touched by refresh
	UpdatedAt time.Time `json:"updated_at"` // Reset on every successful refresh
}

// TimeUntilExpiry returns how long the access token remains valid as of
// now. Negative for an already expired token.
func (s *Session) TimeUntilExpiry(now time.Time) time.Duration {
	return s.ExpiresAt.Sub(now)
}
