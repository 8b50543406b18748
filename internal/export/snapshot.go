// Package export converts profile data into export files and back.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/budget-tracker/backend/internal/archive"
	"github.com/budget-tracker/backend/internal/bankimport"
	"github.com/budget-tracker/backend/internal/customfield"
	"github.com/budget-tracker/backend/internal/ledger"
	"github.com/budget-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ErrInvalidFormat is returned for import files that cannot be used.
var ErrInvalidFormat = errors.New("the import file has an invalid format")

// Snapshot is the complete data of a profile as written to a JSON export.
type Snapshot struct {
	Profile           string                     `json:"profile" example:"hemank"`
	ExportDate        time.Time                  `json:"exportDate" example:"2024-02-01T08:00:00Z"`
	Transactions      []ledger.Transaction       `json:"transactions"`
	ArchivedMonths    []archive.Archive          `json:"archivedMonths"`
	CustomFields      []customfield.Field        `json:"customFields"`
	CustomFieldValues map[string]string          `json:"customFieldValues"`
	CategoryBudgets   map[string]decimal.Decimal `json:"categoryBudgets" swaggertype:"object,string"`
	BankAccounts      []bankimport.Account       `json:"bankAccounts,omitempty"`
}

// Encode writes the snapshot as indented JSON.
func Encode(w io.Writer, s Snapshot) error {
	if s.Transactions == nil {
		s.Transactions = []ledger.Transaction{}
	}
	if s.ArchivedMonths == nil {
		s.ArchivedMonths = []archive.Archive{}
	}
	if s.CustomFields == nil {
		s.CustomFields = []customfield.Field{}
	}
	if s.CustomFieldValues == nil {
		s.CustomFieldValues = map[string]string{}
	}
	if s.CategoryBudgets == nil {
		s.CategoryBudgets = map[string]decimal.Decimal{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Decode reads and verifies a snapshot. Every error wraps ErrInvalidFormat.
func Decode(r io.Reader) (Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Snapshot{}, fmt.Errorf("%w: not a JSON object", ErrInvalidFormat)
	}

	var profile string
	if err := json.Unmarshal(fields["profile"], &profile); err != nil || strings.TrimSpace(profile) == "" {
		return Snapshot{}, fmt.Errorf("%w: profile must be a non-empty string", ErrInvalidFormat)
	}

	for _, name := range []string{"transactions", "archivedMonths"} {
		if !isArray(fields[name]) {
			return Snapshot{}, fmt.Errorf("%w: %s must be an array", ErrInvalidFormat, name)
		}
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if err := verify(s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return s, nil
}

func isArray(raw json.RawMessage) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("["))
}

// verify checks the content of a snapshot so that an import can not fail
// half way.
func verify(s Snapshot) error {
	ids := make(map[int64]bool, len(s.Transactions))
	for i, t := range s.Transactions {
		if err := ledger.Validate(t); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}

		if t.ID != 0 && ids[t.ID] {
			return fmt.Errorf("transaction %d: duplicate id %d", i, t.ID)
		}
		ids[t.ID] = true
	}

	keys := make(map[string]bool, len(s.ArchivedMonths))
	for i, a := range s.ArchivedMonths {
		if _, err := types.ParseMonth(a.Key); err != nil {
			return fmt.Errorf("archived month %d: %w", i, err)
		}

		if keys[a.Key] {
			return fmt.Errorf("archived month %d: duplicate key %s", i, a.Key)
		}
		keys[a.Key] = true
	}

	for category, amount := range s.CategoryBudgets {
		if strings.TrimSpace(category) == "" || !amount.IsPositive() {
			return fmt.Errorf("budget for %q must have a positive amount", category)
		}
	}

	names := make(map[string]bool, len(s.CustomFields))
	for _, f := range s.CustomFields {
		if !f.Type.Valid() || strings.TrimSpace(f.Name) == "" || names[f.Name] {
			return fmt.Errorf("custom field %q is invalid", f.Name)
		}
		names[f.Name] = true
	}

	return nil
}
