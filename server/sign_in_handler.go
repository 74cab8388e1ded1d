package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/storefrontkit/storefront-auth/auth"
	"github.com/storefrontkit/storefront-auth/users"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	User      *users.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// SignInHandler authenticates a customer against the provider and
// persists the resulting Session+User pair.
func (s *Server) SignInHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.validator.ValidateSignIn(req.Email, req.Password); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}

		result, err := s.auth.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			status, message := signInFailure(err)
			s.logger.Warn().Err(err).Str("email", req.Email).Msg("sign-in failed")
			writeJSONError(w, status, message)
			return
		}

		if err := s.repos.Users.Upsert(result.User); err != nil {
			s.logger.Error().Err(err).Msg("failed to persist user")
			writeJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if err := s.repos.Sessions.Upsert(result.Session); err != nil {
			s.logger.Error().Err(err).Msg("failed to persist session")
			writeJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if err := s.cookies.Write(w, result.Session); err != nil {
			s.logger.Error().Err(err).Msg("failed to write session cookie")
			writeJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		writeJSON(w, http.StatusOK, signInResponse{
			User:      result.User,
			ExpiresAt: result.Session.ExpiresAt,
		})
	}
}

func signInFailure(err error) (int, string) {
	var authErr *auth.Error
	if errors.As(err, &authErr) {
		return authErr.Status, authErr.Message
	}
	return http.StatusInternalServerError, "internal server error"
}
