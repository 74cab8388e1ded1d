package server

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/storefrontkit/storefront-auth/sessions"
)

// SessionRefreshMiddleware runs the token-lifecycle check for every
// request that carries a session cookie. A refreshed session is
// persisted and re-issued before the wrapped handler runs; any failure
// along the way is logged as a warning and the request proceeds with
// the original session untouched. Refresh problems never surface to
// the requester.
func (s *Server) SessionRefreshMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.cookies.Read(r)
		if err != nil {
			// No usable session; not this middleware's problem
			next(w, r)
			return
		}

		fresh := s.auth.EnsureFresh(r.Context(), session)
		if fresh.Refreshed {
			if err := s.persistRefreshed(session, fresh.Session); err != nil {
				s.logger.Warn().Err(err).Msg("failed to persist refreshed session")
			} else if err := s.cookies.Write(w, fresh.Session); err != nil {
				s.logger.Warn().Err(err).Msg("failed to re-issue session cookie")
			} else {
				session = fresh.Session
			}
		}

		next(w, r.WithContext(WithSession(r.Context(), session)))
	}
}

// persistRefreshed stores the updated session and drops the record
// keyed by the superseded refresh token.
func (s *Server) persistRefreshed(old, updated *sessions.Session) error {
	if err := s.repos.Sessions.Upsert(updated); err != nil {
		return errors.Wrap(err, "[Server.persistRefreshed] upsert")
	}
	if old.ID != updated.ID {
		if err := s.repos.Sessions.Delete(old.ID); err != nil {
			return errors.Wrap(err, "[Server.persistRefreshed] delete superseded")
		}
	}
	return nil
}
