package server

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/storefrontkit/storefront-auth/auth"
	"github.com/storefrontkit/storefront-auth/internal/config"
	"github.com/storefrontkit/storefront-auth/sessions"
	"github.com/storefrontkit/storefront-auth/users"
)

// Repos holds the host framework's storage collaborators.
type Repos struct {
	Sessions sessions.Repo
	Users    users.Repo
}

type Server struct {
	env       string // Environment (e.g., "DEV", "production")
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	auth      *auth.Service
	repos     Repos
	cookies   *SessionCookie
	validator *auth.Validator
	logger    zerolog.Logger
}

func New(cfg config.Config, authService *auth.Service, repos Repos, logger zerolog.Logger) (*Server, error) {
	if authService == nil {
		return nil, errors.New("[Server New] auth service is required")
	}
	if repos.Sessions == nil {
		return nil, errors.New("[Server New] Sessions repo is required")
	}
	if repos.Users == nil {
		return nil, errors.New("[Server New] Users repo is required")
	}

	s := &Server{
		mux:       http.NewServeMux(),
		config:    cfg,
		auth:      authService,
		repos:     repos,
		validator: auth.NewValidator(),
		logger:    logger,
	}
	s.env = cfg.GetEnv()
	s.cookies = NewSessionCookie(cfg.GetSessionSecret(), cfg.GetSessionTTL(), s.env != "DEV")

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)
		if len(parts) > 1 {
			logRoute(s.logger, parts[0], parts[1])
		} else {
			logRoute(s.logger, "", parts[0])
		}
	}
}
