package bankimport

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/budget-tracker/backend/internal/ledger"
	"github.com/budget-tracker/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// Rule assigns a category to statement lines whose label matches the glob.
type Rule struct {
	Match    string `json:"match" example:"*CARREFOUR*"`
	Category string `json:"category" example:"Courses"`
}

// DefaultRules are used when an importer is created without rules.
var DefaultRules = []Rule{
	{"*SALAIRE*", "Salaire"},
	{"*PRIME*", "Prime"},
	{"*REMBOURSEMENT*", "Remboursement"},
	{"*LOYER*", "Appartement"},
	{"*CARREFOUR*", "Courses"},
	{"*BOULANGERIE*", "Courses"},
	{"*SNCF*", "Transport"},
	{"*PHARMACIE*", "Santé"},
	{"*EDF*", "Énergie"},
	{"*RESTAURANT*", "Restaurants"},
}

const (
	uncategorizedExpense = "Divers"
	uncategorizedIncome  = "Autre"
)

// Categorize returns the category of the first rule matching the label.
func Categorize(label string, rules []Rule) (string, bool) {
	for _, rule := range rules {
		if glob.Glob(rule.Match, label) {
			return rule.Category, true
		}
	}

	return "", false
}

// Hash identifies a statement line of an account. It is stored on imported
// transactions to detect duplicates.
func Hash(accountID string, line Line) string {
	input := strings.Join([]string{accountID, line.Date.String(), line.Label, line.Amount.String()}, ",")
	return fmt.Sprintf("%x", sha256.Sum256([]byte(input)))
}

// Importer prepares transactions from bank statements.
type Importer struct {
	Source Source
	Rules  []Rule
}

// NewImporter returns an importer reading from src. Without rules,
// DefaultRules apply.
func NewImporter(src Source, rules []Rule) *Importer {
	if len(rules) == 0 {
		rules = DefaultRules
	}

	return &Importer{Source: src, Rules: rules}
}

// Prepare reads the statement of the account for the month and converts
// every line into a transaction input. Lines that are already present in
// existing, based on their hash, are skipped and counted.
func (i *Importer) Prepare(ctx context.Context, account Account, month types.Month, existing []ledger.Transaction) ([]ledger.Input, int, error) {
	lines, err := i.Source.Statement(ctx, account, month)
	if err != nil {
		return nil, 0, fmt.Errorf("reading statement for %s: %w", account.ID, err)
	}

	imported := make(map[string]bool, len(existing))
	for _, t := range existing {
		if t.ImportHash != "" {
			imported[t.ImportHash] = true
		}
	}

	var skipped int
	inputs := make([]ledger.Input, 0, len(lines))
	for _, line := range lines {
		if line.Amount.IsZero() {
			skipped++
			continue
		}

		hash := Hash(account.ID.String(), line)
		if imported[hash] {
			skipped++
			continue
		}

		in := ledger.Input{
			Type:        ledger.TypeExpense,
			Amount:      line.Amount.Abs(),
			Description: line.Label,
			Date:        line.Date,
			Imported:    true,
			BankAccount: account.ID.String(),
			ImportHash:  hash,
		}

		if line.Amount.IsPositive() {
			in.Type = ledger.TypeIncome
		}

		category, ok := Categorize(line.Label, i.Rules)
		switch {
		case in.Type == ledger.TypeIncome && (!ok || !slices.Contains(ledger.IncomeCategories, category)):
			category = uncategorizedIncome
		case !ok:
			category = uncategorizedExpense
		}
		in.Category = category

		inputs = append(inputs, in)
	}

	return inputs, skipped, nil
}
