package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/storefrontkit/storefront-auth/auth"
	"github.com/storefrontkit/storefront-auth/internal/config"
	"github.com/storefrontkit/storefront-auth/server"
	"github.com/storefrontkit/storefront-auth/sessions/gocachestore"
	"github.com/storefrontkit/storefront-auth/storefront"
	"github.com/storefrontkit/storefront-auth/users"
)

const sessionCleanupInterval = 10 * time.Minute

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load()

	c := config.New()
	if err := config.Validate(c); err != nil {
		return fmt.Errorf("config.Validate: %w", err)
	}
	setupLogger(c)
	displayAppname(c.GetAppName())

	client := storefront.NewClient(storefront.ClientOpts{Endpoint: c.GetAPIEndpoint()})
	authService, err := auth.NewService(client, auth.WithRefreshThreshold(c.GetRefreshThreshold()))
	if err != nil {
		return fmt.Errorf("auth.NewService: %w", err)
	}

	repos := server.Repos{
		Sessions: gocachestore.New(c.GetSessionTTL(), sessionCleanupInterval),
		Users:    users.NewInMemoryRepo(),
	}

	srv, err := server.New(c, authService, repos, log.Logger)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	return shutdown(httpServer)
}

func setupLogger(c config.Config) {
	if c.GetEnv() == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func listenAndServe(httpServer *http.Server) {
	log.Info().Str("addr", httpServer.Addr).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
