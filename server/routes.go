package server

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Route path constants
const (
	RouteCustomerSignIn  = "/customer/sign-in"
	RouteCustomerSignOut = "/customer/sign-out"
	RouteCustomerMe      = "/customer/me"
)

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("POST "+RouteCustomerSignIn, ChainMiddleware(s.SignInHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteCustomerSignOut, ChainMiddleware(s.SignOutHandler(), s.APIMiddleware()...))

	// Session-carrying reads go through the refresh hook
	s.RegisterRouteHandler("GET "+RouteCustomerMe, ChainMiddleware(s.MeHandler(), s.SessionMiddleware()...))
}

func logRoute(logger zerolog.Logger, method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	logger.Info().Msgf("[%-19s] %s", displayMethod, path)
}
