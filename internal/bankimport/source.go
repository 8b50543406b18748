package bankimport

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Line is a single line of a bank statement. Negative amounts are debits.
type Line struct {
	Date   types.Date      `json:"date" example:"2024-01-08"`
	Label  string          `json:"label" example:"CB CARREFOUR MARKET"`
	Amount decimal.Decimal `json:"amount" example:"-64.32" swaggertype:"string"`
}

// Source provides the statement of an account for a month.
type Source interface {
	Statement(ctx context.Context, account Account, month types.Month) ([]Line, error)
}

type template struct {
	day   int
	label string
	cents int64
}

var statementTemplate = []template{
	{1, "VIR SALAIRE ACME SAS", 250000},
	{5, "PRLV LOYER SCI DES LILAS", -85000},
	{8, "CB CARREFOUR MARKET", -6432},
	{12, "CB SNCF INTERNET", -4500},
	{15, "CB PHARMACIE DU CENTRE", -1290},
	{18, "PRLV EDF CLIENTS", -7800},
	{21, "CB RESTAURANT LE PETIT ZINC", -3550},
	{25, "VIR REMBOURSEMENT MUTUELLE", 2000},
	{28, "CB BOULANGERIE PAUL", -840},
}

// Simulated produces plausible statements. The same account and month
// always yield the same lines.
type Simulated struct{}

func (Simulated) Statement(ctx context.Context, account Account, month types.Month) ([]Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed := sha256.Sum256([]byte(fmt.Sprintf("%s/%s", account.ID, month)))
	days := time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()

	lines := make([]Line, 0, len(statementTemplate))
	for i, tpl := range statementTemplate {
		// Vary every amount by -10% to +10%
		variation := int64(seed[i]%21) - 10
		cents := tpl.cents + tpl.cents*variation/100

		day := tpl.day
		if day > days {
			day = days
		}

		lines = append(lines, Line{
			Date:   types.NewDate(month.Year(), month.Month(), day),
			Label:  tpl.label,
			Amount: decimal.New(cents, -2),
		})
	}

	return lines, nil
}
