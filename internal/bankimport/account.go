// Package bankimport turns bank statements into ledger transactions.
//
// There is no real bank integration, statements come from a simulated source.
package bankimport

import (
	"strings"
	"time"

	"github.com/budget-tracker/backend/internal/validate"
	"github.com/google/uuid"
)

const maxLabelLength = 50

// Account is a bank account linked to a profile.
type Account struct {
	ID       uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Bank     string    `json:"bank" example:"Banque Populaire"`
	Label    string    `json:"label" example:"Compte courant"`
	LinkedAt time.Time `json:"linkedAt" example:"2024-01-05T12:00:00Z"`
}

// NewAccount validates the input and returns a new account with a random ID.
func NewAccount(bank, label string, now time.Time) (Account, error) {
	bank = strings.TrimSpace(bank)
	label = strings.TrimSpace(label)

	if err := validate.Text("bank", bank, maxLabelLength); err != nil {
		return Account{}, err
	}

	if err := validate.Text("label", label, maxLabelLength); err != nil {
		return Account{}, err
	}

	return Account{
		ID:       uuid.New(),
		Bank:     bank,
		Label:    label,
		LinkedAt: now.UTC(),
	}, nil
}
