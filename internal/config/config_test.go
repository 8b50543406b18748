package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/budget-tracker/backend/internal/config"
	"github.com/budget-tracker/backend/internal/profile"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaults(t *testing.T) {
	t.Setenv("API_URL", "http://localhost:8080")

	c, err := config.Load("")
	require.Nil(t, err)

	assert.Equal(t, "localhost:8080", c.APIURL.Host)
	assert.Equal(t, ":8080", c.ListenAddress)
	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, config.RemoteNone, c.Remote)
	assert.Equal(t, []profile.Profile{{ID: "hemank"}, {ID: "jyoti"}}, c.Profiles)
	assert.Len(t, c.Migrations, 0)
	assert.Equal(t, 10*time.Second, c.RemoteTimeout)
	assert.False(t, c.SyncAsync)
	assert.Equal(t, time.UTC, c.Location)
	assert.Equal(t, language.French, c.Locale)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("API_URL", "https://budget.example.com/api")
	t.Setenv("PROFILES", "hemank:1234, jyoti")
	t.Setenv("MIGRATIONS", "renameAlimentation:Alimentation:Courses")
	t.Setenv("REMOTE_BACKEND", "GCS")
	t.Setenv("GCS_BUCKET", "budget")
	t.Setenv("REMOTE_TIMEOUT", "3s")
	t.Setenv("SYNC_ASYNC", "true")
	t.Setenv("MONTH_TIMEZONE", "Europe/Paris")
	t.Setenv("LOCALE", "en-US")

	c, err := config.Load("")
	require.Nil(t, err)

	assert.Equal(t, "/api", c.APIURL.Path)
	assert.Equal(t, []profile.Profile{{ID: "hemank", PIN: "1234"}, {ID: "jyoti"}}, c.Profiles)
	assert.Equal(t, []profile.CategoryRename{{Name: "renameAlimentation", From: "Alimentation", To: "Courses"}}, c.Migrations)
	assert.Equal(t, config.RemoteGCS, c.Remote)
	assert.Equal(t, 3*time.Second, c.RemoteTimeout)
	assert.True(t, c.SyncAsync)
	assert.Equal(t, "Europe/Paris", c.Location.String())
	assert.Equal(t, language.AmericanEnglish, c.Locale)
}

func TestEnvFile(t *testing.T) {
	t.Setenv("API_URL", "http://localhost:8080")
	t.Setenv("DATA_DIR", "")
	os.Unsetenv("DATA_DIR")

	path := filepath.Join(t.TempDir(), ".env")
	require.Nil(t, os.WriteFile(path, []byte("DATA_DIR=/var/lib/budget\n"), 0o600))

	c, err := config.Load(path)
	require.Nil(t, err)
	assert.Equal(t, "/var/lib/budget", c.DataDir)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Nil(t, err, "A missing env file is not an error")
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"Unknown remote", map[string]string{"REMOTE_BACKEND": "s3"}},
		{"GCS without bucket", map[string]string{"REMOTE_BACKEND": "gcs"}},
		{"Postgres without URI", map[string]string{"REMOTE_BACKEND": "postgres"}},
		{"Duplicate profile", map[string]string{"PROFILES": "hemank,hemank"}},
		{"Broken migration", map[string]string{"MIGRATIONS": "renameAlimentation:Alimentation"}},
		{"Timeout", map[string]string{"REMOTE_TIMEOUT": "ten seconds"}},
		{"Async", map[string]string{"SYNC_ASYNC": "sometimes"}},
		{"Time zone", map[string]string{"MONTH_TIMEZONE": "Mars/Olympus"}},
		{"Locale", map[string]string{"LOCALE": "not a locale"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("API_URL", "http://localhost:8080")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load("")
			assert.NotNil(t, err)
		})
	}
}

func TestMissingAPIURL(t *testing.T) {
	t.Setenv("API_URL", "")
	os.Unsetenv("API_URL")

	_, err := config.Load("")
	assert.NotNil(t, err)
}

func TestOverride(t *testing.T) {
	t.Setenv("API_URL", "http://localhost:8080")

	c, err := config.Load("")
	require.Nil(t, err)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("data-dir", "data", "")
	flags.String("listen", ":8080", "")
	flags.String("remote", "none", "")
	require.Nil(t, flags.Parse([]string{"--data-dir", "/tmp/budget", "--remote", "memory"}))

	require.Nil(t, c.Override(flags))
	assert.Equal(t, "/tmp/budget", c.DataDir)
	assert.Equal(t, ":8080", c.ListenAddress)
	assert.Equal(t, config.RemoteMemory, c.Remote)

	require.Nil(t, flags.Set("remote", "postgres"))
	assert.NotNil(t, c.Override(flags), "postgres needs DATABASE_URI")
}
