package storefront

// TokenSet is the token payload returned by the provider on login and
// refresh. ExpiresIn is the access token's time-to-live in seconds.
type TokenSet struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// Group is a customer group membership.
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Customer is the authenticated customer's profile. Read-only once
// fetched; profiles are never merged across calls.
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Groups    []Group
}
