package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/budget-tracker/backend/internal/syncer"
)

// CategoryRename is a one-shot rename of a category in all profiles.
type CategoryRename struct {
	Name string
	From string
	To   string
}

// ParseRenames parses a semicolon separated list of "name:from:to" entries.
func ParseRenames(s string) ([]CategoryRename, error) {
	var renames []CategoryRename

	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("migration %q must have the format name:from:to", entry)
		}

		r := CategoryRename{Name: strings.TrimSpace(parts[0]), From: strings.TrimSpace(parts[1]), To: strings.TrimSpace(parts[2])}
		if r.Name == "" || r.From == "" || r.To == "" {
			return nil, fmt.Errorf("migration %q has an empty part", entry)
		}

		renames = append(renames, r)
	}

	return renames, nil
}

// RenameCategory returns the migration applying the rename to the session.
func RenameCategory(s *Session, r CategoryRename) syncer.Migration {
	return syncer.Migration{
		Name: r.Name,
		Apply: func(ctx context.Context) error {
			return s.RenameCategory(ctx, r.From, r.To)
		},
	}
}
