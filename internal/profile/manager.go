package profile

import (
	"context"
	"fmt"
	"sync"

	"github.com/budget-tracker/backend/internal/syncer"
	"github.com/rs/zerolog/log"
)

// Manager owns the session of the active profile. Only one profile is
// active at a time and all access to it is serialized.
type Manager struct {
	engine   *syncer.Engine
	registry *Registry
	opts     Options
	renames  []CategoryRename

	mu      sync.Mutex
	session *Session
}

// NewManager returns a manager without active profile. The renames are
// applied once to every profile when it is opened.
func NewManager(engine *syncer.Engine, registry *Registry, opts Options, renames ...CategoryRename) *Manager {
	return &Manager{
		engine:   engine,
		registry: registry,
		opts:     opts.withDefaults(),
		renames:  renames,
	}
}

func (m *Manager) Registry() *Registry {
	return m.registry
}

// Current returns the ID of the active profile, if any.
func (m *Manager) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return ""
	}
	return m.session.Profile()
}

// Switch makes the profile the active one. The PIN is only checked for
// locked profiles. The data of the previously active profile is saved
// before the new profile is loaded.
func (m *Manager) Switch(ctx context.Context, id, pin string) (*Session, error) {
	if _, ok := m.registry.Get(id); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProfile, id)
	}

	if !m.registry.Unlocked(id) {
		if err := m.registry.Unlock(id, pin); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil {
		if err := m.session.Flush(ctx); err != nil {
			return nil, fmt.Errorf("saving profile %s: %w", m.session.Profile(), err)
		}
	}

	s, err := m.open(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := m.registry.SetCurrent(id); err != nil {
		log.Error().Err(err).Str("profile", id).Msg("persisting current profile")
	}

	m.session = s
	log.Info().Str("profile", id).Int("warnings", len(s.warnings)).Msg("switched profile")

	return s, nil
}

func (m *Manager) open(ctx context.Context, id string) (*Session, error) {
	s, err := Open(ctx, m.engine, id, m.opts)
	if err != nil {
		return nil, fmt.Errorf("opening profile %s: %w", id, err)
	}

	migrations := make([]syncer.Migration, 0, len(m.renames))
	for _, r := range m.renames {
		migrations = append(migrations, RenameCategory(s, r))
	}

	if _, err := m.engine.Migrate(ctx, id, migrations...); err != nil {
		return nil, fmt.Errorf("migrating profile %s: %w", id, err)
	}

	return s, nil
}

// Restore opens the last active profile again when it can be opened
// without a PIN. It reports whether a profile was opened.
func (m *Manager) Restore(ctx context.Context) (bool, error) {
	id, err := m.registry.Current()
	if err != nil {
		return false, err
	}

	if id == "" || !m.registry.Unlocked(id) {
		return false, nil
	}

	if _, err := m.Switch(ctx, id, ""); err != nil {
		return false, err
	}

	return true, nil
}

// With calls fn with the session of the active profile.
func (m *Manager) With(fn func(s *Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return ErrNoActiveProfile
	}

	return fn(m.session)
}

// Lock locks the profile. When it is the active profile, its data is
// saved and it is closed.
func (m *Manager) Lock(ctx context.Context, id string) error {
	if err := m.registry.Lock(id); err != nil {
		return err
	}

	p, _ := m.registry.Get(id)
	if !p.HasPIN() {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil || m.session.Profile() != id {
		return nil
	}

	err := m.session.Flush(ctx)
	m.session = nil
	return err
}

// Close saves the active profile and waits for all remote writes.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var err error
	if m.session != nil {
		err = m.session.Flush(ctx)
	}

	m.engine.Wait()
	return err
}

// HasRemote reports whether data is mirrored to a remote store.
func (m *Manager) HasRemote() bool {
	return m.engine.HasRemote()
}
