package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/budget-tracker/backend/internal/config"
	v1 "github.com/budget-tracker/backend/internal/controllers/v1"
	"github.com/budget-tracker/backend/internal/profile"
	"github.com/budget-tracker/backend/internal/remote"
	"github.com/budget-tracker/backend/internal/remote/gcs"
	"github.com/budget-tracker/backend/internal/remote/memory"
	"github.com/budget-tracker/backend/internal/remote/postgres"
	"github.com/budget-tracker/backend/internal/router"
	"github.com/budget-tracker/backend/internal/storage"
	"github.com/budget-tracker/backend/internal/syncer"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("budget-tracker", pflag.ExitOnError)
	envFile := flags.String("env-file", ".env", "file with environment variables to load")
	flags.String("data-dir", "data", "directory of the local database")
	flags.String("listen", ":8080", "address to listen on")
	flags.String("remote", config.RemoteNone, "remote backend, one of none, memory, gcs, postgres")
	printVersion := flags.Bool("version", false, "print the version and exit")
	_ = flags.Parse(os.Args[1:])

	if *printVersion {
		fmt.Println(router.Version())
		return
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := cfg.Override(flags); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	err = os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	db, err := storage.Connect(filepath.Join(cfg.DataDir, "budget.db"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rs, err := connectRemote(ctx, cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	if rs != nil {
		defer rs.Close()
	}

	engine := syncer.New(db, rs, syncer.Options{Async: cfg.SyncAsync, Timeout: cfg.RemoteTimeout})
	manager := profile.NewManager(
		engine,
		profile.NewRegistry(cfg.Profiles, engine),
		profile.Options{Location: cfg.Location, Locale: cfg.Locale},
		cfg.Migrations...,
	)

	restored, err := manager.Restore(ctx)
	if err != nil {
		log.Error().Err(err).Msg("restoring the last active profile")
	} else if restored {
		log.Info().Str("profile", manager.Current()).Msg("restored the last active profile")
	}

	r, teardown, err := router.Config(cfg.APIURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(v1.Controller{Manager: manager, Storage: db}, r.Group("/"))

	server := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("address", cfg.ListenAddress).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutting down the server")
	}

	// Save the active profile and wait for pending remote writes
	if err := manager.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("saving the active profile")
	}
}

// connectRemote returns the configured remote store. It is nil when all
// data stays local.
func connectRemote(ctx context.Context, cfg *config.Config) (remote.Store, error) {
	switch cfg.Remote {
	case config.RemoteMemory:
		log.Warn().Msg("using the in-memory remote store, remote data is lost on restart")
		return memory.New(), nil
	case config.RemoteGCS:
		s, err := gcs.New(ctx, gcs.Options{Bucket: cfg.GCSBucket, Prefix: cfg.GCSPrefix, Endpoint: cfg.GCSEndpoint})
		if err != nil {
			return nil, err
		}

		return s, nil
	case config.RemotePostgres:
		s, err := postgres.New(ctx, cfg.DatabaseURI)
		if err != nil {
			return nil, err
		}

		if err := s.Migrate(ctx); err != nil {
			s.Close()
			return nil, err
		}

		return s, nil
	}

	return nil, nil
}
