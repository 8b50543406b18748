// Package profile manages the profiles and the session of the active one.
package profile

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/budget-tracker/backend/internal/storage"
)

var (
	ErrUnknownProfile  = errors.New("unknown profile")
	ErrLocked          = errors.New("the profile is locked")
	ErrWrongPIN        = errors.New("wrong PIN")
	ErrNoActiveProfile = errors.New("no profile is active")
	ErrNotFound        = errors.New("not found")
)

const currentProfileKey = "currentProfile"

// Profile is a person using the budget tracker.
//
// The PIN keeps people from opening each others profile by accident. It is
// not a security boundary.
type Profile struct {
	ID  string `json:"id" example:"hemank"`
	PIN string `json:"-"`
}

// HasPIN reports whether the profile is protected by a PIN.
func (p Profile) HasPIN() bool {
	return p.PIN != ""
}

// ParseProfiles parses a comma separated list of "id" or "id:pin" entries.
func ParseProfiles(s string) ([]Profile, error) {
	var profiles []Profile
	seen := make(map[string]bool)

	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		id, pin, _ := strings.Cut(entry, ":")
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("profile entry %q has no id", entry)
		}

		if seen[id] {
			return nil, fmt.Errorf("profile %q is configured twice", id)
		}
		seen[id] = true

		profiles = append(profiles, Profile{ID: id, PIN: strings.TrimSpace(pin)})
	}

	if len(profiles) == 0 {
		return nil, errors.New("no profiles configured")
	}

	return profiles, nil
}

// Globals stores values that do not belong to a profile.
type Globals interface {
	GetGlobal(key string) (string, error)
	SetGlobal(key, value string) error
}

// Registry is the closed set of configured profiles.
type Registry struct {
	globals  Globals
	profiles []Profile

	mu       sync.Mutex
	unlocked map[string]bool
}

func NewRegistry(profiles []Profile, globals Globals) *Registry {
	return &Registry{
		globals:  globals,
		profiles: profiles,
		unlocked: make(map[string]bool),
	}
}

// Profiles returns all profiles in configuration order.
func (r *Registry) Profiles() []Profile {
	p := make([]Profile, len(r.profiles))
	copy(p, r.profiles)
	return p
}

func (r *Registry) Get(id string) (Profile, bool) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, true
		}
	}

	return Profile{}, false
}

// Unlock opens the profile for the given PIN. Profiles without PIN are
// always unlocked.
func (r *Registry) Unlock(id, pin string) error {
	p, ok := r.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProfile, id)
	}

	if !p.HasPIN() {
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(p.PIN), []byte(pin)) != 1 {
		return ErrWrongPIN
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.unlocked[id] = true

	return nil
}

// Lock requires the PIN again for the next switch to the profile.
func (r *Registry) Lock(id string) error {
	if _, ok := r.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProfile, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.unlocked, id)

	return nil
}

// Unlocked reports whether the profile can be opened without a PIN.
func (r *Registry) Unlocked(id string) bool {
	p, ok := r.Get(id)
	if !ok {
		return false
	}

	if !p.HasPIN() {
		return true
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unlocked[id]
}

// Current returns the persisted ID of the last active profile. It is
// empty if there is none or the profile is no longer configured.
func (r *Registry) Current() (string, error) {
	id, err := r.globals.GetGlobal(currentProfileKey)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if _, ok := r.Get(id); !ok {
		return "", nil
	}

	return id, nil
}

func (r *Registry) SetCurrent(id string) error {
	return r.globals.SetGlobal(currentProfileKey, id)
}
