package auth

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/storefrontkit/storefront-auth/sessions"
	"github.com/storefrontkit/storefront-auth/storefront"
	"github.com/storefrontkit/storefront-auth/users"
)

// DefaultRefreshThreshold is how close to expiry an access token may
// get before a session read triggers a proactive refresh.
const DefaultRefreshThreshold = 5 * time.Minute

// Service authenticates customers against the storefront provider and
// keeps session access tokens fresh. It holds no session state of its
// own; callers persist what it returns.
type Service struct {
	api              storefront.API
	refreshThreshold time.Duration
	nowTime          func() time.Time // nowTime function (injectable for testing)
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

// WithRefreshThreshold overrides the default refresh threshold.
// Non-positive values are ignored.
func WithRefreshThreshold(threshold time.Duration) ServiceOption {
	return func(s *Service) {
		if threshold > 0 {
			s.refreshThreshold = threshold
		}
	}
}

// NewService initializes a new Service with required dependencies.
// Optional configuration can be provided via options.
func NewService(api storefront.API, options ...ServiceOption) (*Service, error) {
	if api == nil {
		return nil, errors.New("[NewService] storefront client is required")
	}

	service := &Service{
		api:              api,
		refreshThreshold: DefaultRefreshThreshold,
		nowTime:          time.Now,
	}

	for _, opt := range options {
		opt(service)
	}

	return service, nil
}

// SignInResult is the Session+User pair produced by a successful sign-in.
type SignInResult struct {
	User    *users.User
	Session *sessions.Session
}

// SignIn exchanges the credentials for a provider token set, fetches
// the customer profile, and materializes a Session+User pair. Login
// must complete before the profile fetch begins; the two calls are
// never issued concurrently. Nothing is persisted here.
func (s *Service) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	tokens, err := s.api.Login(ctx, email, password)
	if err != nil {
		// Transport failures and rejected credentials are not
		// distinguishable from this call alone; both surface as
		// invalid credentials.
		return nil, errors.Wrap(ErrInvalidCredentials, err.Error())
	}

	customer, err := s.api.GetCustomer(ctx, tokens.AccessToken)
	if err != nil {
		return nil, errors.Wrap(ErrProfileFetchFailed, err.Error())
	}

	now := s.nowTime()

	groups := make([]users.Group, 0, len(customer.Groups))
	for _, g := range customer.Groups {
		groups = append(groups, users.Group{ID: g.ID, Name: g.Name})
	}

	user := &users.User{
		ID:            customer.ID,
		Email:         customer.Email,
		Name:          users.DisplayName(customer.FirstName, customer.LastName),
		EmailVerified: true,
		Groups:        groups,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	session := &sessions.Session{
		ID:        tokens.RefreshToken,
		UserID:    customer.ID,
		Token:     tokens.AccessToken,
		ExpiresAt: now.Add(time.Duration(tokens.ExpiresIn) * time.Second),
		CreatedAt: now,
		UpdatedAt: now,
	}

	return &SignInResult{User: user, Session: session}, nil
}

// FreshToken is the outcome of a token-lifecycle check. Session is an
// updated copy of the input session and is set only when a refresh
// actually occurred.
type FreshToken struct {
	Token     string
	Refreshed bool
	Session   *sessions.Session
}

// EnsureFresh decides whether the session's access token is usable
// as-is or must be exchanged. A token expiring within the refresh
// threshold, or already expired, triggers a single refresh attempt.
// Refresh failure falls open: the caller keeps the current token and
// handles any authorization failures that follow. EnsureFresh never
// reports an error and never mutates the session it is given.
func (s *Service) EnsureFresh(ctx context.Context, session *sessions.Session) FreshToken {
	now := s.nowTime()
	if session.TimeUntilExpiry(now) > s.refreshThreshold {
		return FreshToken{Token: session.Token}
	}

	tokens, err := s.api.RefreshToken(ctx, session.ID)
	if err != nil {
		return FreshToken{Token: session.Token}
	}

	updated := *session
	updated.ID = tokens.RefreshToken
	updated.Token = tokens.AccessToken
	updated.ExpiresAt = now.Add(time.Duration(tokens.ExpiresIn) * time.Second)
	updated.UpdatedAt = now

	return FreshToken{Token: updated.Token, Refreshed: true, Session: &updated}
}
