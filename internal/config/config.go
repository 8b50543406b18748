// Package config reads the configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/budget-tracker/backend/internal/profile"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

// Remote backends
const (
	RemoteNone     = "none"
	RemoteMemory   = "memory"
	RemoteGCS      = "gcs"
	RemotePostgres = "postgres"
)

const defaultProfiles = "hemank,jyoti"

type Config struct {
	APIURL        *url.URL
	ListenAddress string
	DataDir       string

	Profiles   []profile.Profile
	Migrations []profile.CategoryRename

	Remote        string
	GCSBucket     string
	GCSPrefix     string
	GCSEndpoint   string
	DatabaseURI   string
	RemoteTimeout time.Duration
	SyncAsync     bool

	Location *time.Location
	Locale   language.Tag
}

// Load reads the configuration from the environment. Variables from the env
// file are added to the environment first. A missing env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	c := &Config{
		ListenAddress: getEnvOrDefault("LISTEN_ADDRESS", ":8080"),
		DataDir:       getEnvOrDefault("DATA_DIR", "data"),
		Remote:        strings.ToLower(getEnvOrDefault("REMOTE_BACKEND", RemoteNone)),
		GCSBucket:     os.Getenv("GCS_BUCKET"),
		GCSPrefix:     getEnvOrDefault("GCS_PREFIX", "budget-tracker"),
		GCSEndpoint:   os.Getenv("GCS_ENDPOINT"),
		DatabaseURI:   os.Getenv("DATABASE_URI"),
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return nil, errors.New("environment variable API_URL must be set")
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("environment variable API_URL is not a valid URL: %w", err)
	}
	c.APIURL = u

	c.Profiles, err = profile.ParseProfiles(getEnvOrDefault("PROFILES", defaultProfiles))
	if err != nil {
		return nil, fmt.Errorf("PROFILES: %w", err)
	}

	c.Migrations, err = profile.ParseRenames(os.Getenv("MIGRATIONS"))
	if err != nil {
		return nil, fmt.Errorf("MIGRATIONS: %w", err)
	}

	c.RemoteTimeout, err = time.ParseDuration(getEnvOrDefault("REMOTE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("REMOTE_TIMEOUT: %w", err)
	}

	c.SyncAsync, err = strconv.ParseBool(getEnvOrDefault("SYNC_ASYNC", "false"))
	if err != nil {
		return nil, fmt.Errorf("SYNC_ASYNC: %w", err)
	}

	c.Location, err = time.LoadLocation(getEnvOrDefault("MONTH_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("MONTH_TIMEZONE: %w", err)
	}

	c.Locale, err = language.Parse(getEnvOrDefault("LOCALE", "fr"))
	if err != nil {
		return nil, fmt.Errorf("LOCALE: %w", err)
	}

	return c, c.Validate()
}

// Override applies the flags that were set on the command line.
func (c *Config) Override(flags *pflag.FlagSet) error {
	if flags.Changed("data-dir") {
		c.DataDir, _ = flags.GetString("data-dir")
	}

	if flags.Changed("listen") {
		c.ListenAddress, _ = flags.GetString("listen")
	}

	if flags.Changed("remote") {
		remote, _ := flags.GetString("remote")
		c.Remote = strings.ToLower(remote)
	}

	return c.Validate()
}

// Validate verifies that the remote backend is usable.
func (c *Config) Validate() error {
	switch c.Remote {
	case RemoteNone, RemoteMemory:
	case RemoteGCS:
		if c.GCSBucket == "" {
			return errors.New("GCS_BUCKET must be set for the gcs remote backend")
		}
	case RemotePostgres:
		if c.DatabaseURI == "" {
			return errors.New("DATABASE_URI must be set for the postgres remote backend")
		}
	default:
		return fmt.Errorf("unknown remote backend %q, must be one of none, memory, gcs, postgres", c.Remote)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
