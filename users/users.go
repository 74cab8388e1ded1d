package users

import "time"

// Group is a customer group membership copied from the provider profile
// at sign-in time. Memberships are never refreshed afterwards.
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID            string    `json:"id"`               // Provider customer identifier
	Email         string    `json:"email"`            // User's email address
	Name          string    `json:"name"`             // Display name
	EmailVerified bool      `json:"email_verified"`   // Always true for provider-authenticated users
	Groups        []Group   `json:"groups,omitempty"` // Group memberships captured at sign-in
	CreatedAt     time.Time `json:"created_at"`       // When the user record was created
	UpdatedAt     time.Time `json:"updated_at"`       // Last modification time
}

// DisplayName joins first and last name with a single space.
func DisplayName(firstName, lastName string) string {
	return firstName + " " + lastName
}
