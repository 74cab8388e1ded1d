package server

import (
	"net/http"
	"time"

	"github.com/storefrontkit/storefront-auth/users"
)

type meResponse struct {
	User      *users.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// MeHandler returns the authenticated customer's user record along
// with the current access token expiry. It sits behind the session
// refresh middleware, so the expiry it reports is post-refresh.
func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		user, err := s.repos.Users.GetByID(session.UserID)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		writeJSON(w, http.StatusOK, meResponse{User: user, ExpiresAt: session.ExpiresAt})
	}
}

// SignOutHandler drops the session record and expires the cookie. The
// provider tokens are not revoked; they simply age out.
func (s *Server) SignOutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if session, err := s.cookies.Read(r); err == nil {
			if err := s.repos.Sessions.Delete(session.ID); err != nil {
				s.logger.Warn().Err(err).Msg("failed to delete session")
			}
		}
		s.cookies.Clear(w)
		w.WriteHeader(http.StatusNoContent)
	}
}
