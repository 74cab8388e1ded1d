package server

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/storefrontkit/storefront-auth/sessions"
)

const SessionCookieName = "storefront_session"

// sessionClaims carries the session fields inside the signed cookie.
// The JWT expiry is the cookie lifetime, not the access token expiry;
// the token's own expiry travels as a separate claim so the refresh
// hook can reconstruct the session exactly.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID      string `json:"uid"`
	AccessToken string `json:"tok"`
	TokenExpiry int64  `json:"texp"`
	CreatedAt   int64  `json:"sct"`
	UpdatedAt   int64  `json:"sut"`
}

// SessionCookie signs sessions into an HttpOnly cookie (HS256 JWT).
type SessionCookie struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewSessionCookie(secret []byte, ttl time.Duration, secure bool) *SessionCookie {
	return &SessionCookie{secret: secret, ttl: ttl, secure: secure}
}

func (c *SessionCookie) Encode(session *sessions.Session) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID:      session.UserID,
		AccessToken: session.Token,
		TokenExpiry: session.ExpiresAt.Unix(),
		CreatedAt:   session.CreatedAt.Unix(),
		UpdatedAt:   session.UpdatedAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "[SessionCookie.Encode] signing failed")
	}
	return signed, nil
}

func (c *SessionCookie) Decode(value string) (*sessions.Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(value, claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[SessionCookie.Decode] parse failed")
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("[SessionCookie.Decode] invalid session cookie")
	}

	return &sessions.Session{
		ID:        claims.Subject,
		UserID:    claims.UserID,
		Token:     claims.AccessToken,
		ExpiresAt: time.Unix(claims.TokenExpiry, 0),
		CreatedAt: time.Unix(claims.CreatedAt, 0),
		UpdatedAt: time.Unix(claims.UpdatedAt, 0),
	}, nil
}

// Write sets the session cookie on the response.
func (c *SessionCookie) Write(w http.ResponseWriter, session *sessions.Session) error {
	value, err := c.Encode(session)
	if err != nil {
		return errors.Wrap(err, "[SessionCookie.Write]")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read extracts and verifies the session from the request cookie.
// A missing or undecodable cookie means "no session".
func (c *SessionCookie) Read(r *http.Request) (*sessions.Session, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, errors.Wrap(err, "[SessionCookie.Read] no session cookie")
	}
	return c.Decode(cookie.Value)
}

// Clear expires the session cookie.
func (c *SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
