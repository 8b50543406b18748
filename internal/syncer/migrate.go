package syncer

import (
	"context"
	"errors"
	"fmt"

	"github.com/budget-tracker/backend/internal/storage"
	"github.com/rs/zerolog/log"
)

// Migration is a one-shot data migration of a profile.
type Migration struct {
	Name  string
	Apply func(ctx context.Context) error
}

func markerKey(name, profile string) string {
	return fmt.Sprintf("migrated_%s_%s", name, profile)
}

// Applied reports whether the migration has run for the profile.
func (e *Engine) Applied(name, profile string) (bool, error) {
	_, err := e.local.Get(markerKey(name, profile))
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// Migrate runs every migration that has not been applied to the profile
// yet, in order. A migration is marked as applied only when it succeeds.
// It returns the names of the migrations that ran.
func (e *Engine) Migrate(ctx context.Context, profile string, migrations ...Migration) ([]string, error) {
	var ran []string

	for _, m := range migrations {
		applied, err := e.Applied(m.Name, profile)
		if err != nil {
			return ran, fmt.Errorf("checking migration %s: %w", m.Name, err)
		}

		if applied {
			continue
		}

		if err := m.Apply(ctx); err != nil {
			return ran, fmt.Errorf("migration %s failed: %w", m.Name, err)
		}

		if err := e.local.Set(markerKey(m.Name, profile), "true"); err != nil {
			return ran, fmt.Errorf("marking migration %s as applied: %w", m.Name, err)
		}

		migrationsApplied.Inc()
		log.Info().Str("migration", m.Name).Str("profile", profile).Msg("applied migration")
		ran = append(ran, m.Name)
	}

	return ran, nil
}

// GetGlobal returns a value that does not belong to a profile, e.g. the
// current profile. Global values are only kept locally.
func (e *Engine) GetGlobal(key string) (string, error) {
	return e.local.Get(key)
}

// SetGlobal stores a value that does not belong to a profile.
func (e *Engine) SetGlobal(key, value string) error {
	return e.local.Set(key, value)
}
