package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/budget-tracker/backend/internal/remote/postgres"
	"github.com/budget-tracker/backend/internal/remote/remotetest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestStore needs a PostgreSQL database, its connection string is read
// from POSTGRES_TEST_URI.
func TestStore(t *testing.T) {
	dsn, ok := os.LookupEnv("POSTGRES_TEST_URI")
	if !ok {
		t.Skip("POSTGRES_TEST_URI is not set")
	}

	s, err := postgres.New(context.Background(), dsn)
	require.Nil(t, err)
	defer s.Close()

	// Migrating twice must work
	require.Nil(t, s.Migrate(context.Background()))

	remotetest.Run(t, s, uuid.New().String())
}
