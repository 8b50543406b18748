// Package ledger holds the current, unarchived transactions of a profile.
package ledger

import (
	"strings"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/budget-tracker/backend/internal/validate"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Type is the direction of a transaction.
//
// swagger:enum Type
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is a known transaction type.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

const (
	MaxCategoryLength    = 50
	MaxDescriptionLength = 200

	// CustomCategory is the expense category sentinel that is replaced by
	// the user supplied category text.
	CustomCategory = "custom"
)

// MaxAmount is the largest amount a single transaction can have.
var MaxAmount = decimal.NewFromInt(999_999_999)

// IncomeCategories is the fixed set of categories an income can be filed under.
var IncomeCategories = []string{
	"Salaire",
	"Prime",
	"Freelance",
	"Investissements",
	"Remboursement",
	"Autre",
}

// Transaction is a single income or expense.
//
// Amount is always positive, Type carries the direction.
type Transaction struct {
	ID          int64           `json:"id" example:"1704067200000"`
	Type        Type            `json:"type" example:"expense"`
	Amount      decimal.Decimal `json:"amount" example:"850" swaggertype:"string"`
	Category    string          `json:"category" example:"Appartement"`
	Description string          `json:"description" example:"Loyer"`
	Date        types.Date      `json:"date" example:"2024-01-05" swaggertype:"string"`
	Imported    bool            `json:"imported,omitempty" example:"false"` // Set for transactions from the bank import
	BankAccount string          `json:"bankAccount,omitempty" example:""`   // Linked bank account the transaction was imported from
	ImportHash  string          `json:"importHash,omitempty" example:""`    // SHA256 used for duplicate detection on bank imports
}

// Input is the raw transaction as submitted by a form.
type Input struct {
	Type           Type            `json:"type" example:"expense"`
	Amount         decimal.Decimal `json:"amount" example:"14.03" swaggertype:"string"`
	Category       string          `json:"category" example:"custom"`
	CustomCategory string          `json:"customCategory" example:"Vétérinaire"` // Used when category is "custom"
	Description    string          `json:"description" example:"Vaccins"`
	Date           types.Date      `json:"date" example:"2024-01-05" swaggertype:"string"`
	Imported       bool            `json:"imported" example:"false"`
	BankAccount    string          `json:"bankAccount" example:""`
	ImportHash     string          `json:"importHash" example:""`
}

// Transaction resolves the custom category sentinel, trims whitespace
// and validates the result.
func (in Input) Transaction() (Transaction, error) {
	category := strings.TrimSpace(in.Category)
	if in.Type == TypeExpense && category == CustomCategory {
		category = strings.TrimSpace(in.CustomCategory)
	}

	t := Transaction{
		Type:        in.Type,
		Amount:      in.Amount,
		Category:    category,
		Description: strings.TrimSpace(in.Description),
		Date:        in.Date,
		Imported:    in.Imported,
		BankAccount: strings.TrimSpace(in.BankAccount),
		ImportHash:  strings.TrimSpace(in.ImportHash),
	}

	if err := Validate(t); err != nil {
		return Transaction{}, err
	}

	return t, nil
}

// Validate verifies a transaction before it enters the ledger.
func Validate(t Transaction) error {
	if !t.Type.Valid() {
		return validate.New(validate.KindInvalid, "type", "type must be %q or %q", TypeIncome, TypeExpense)
	}

	if !t.Amount.IsPositive() || t.Amount.GreaterThan(MaxAmount) {
		return validate.New(validate.KindOutOfRange, "amount", "amount must be greater than 0 and at most %s", MaxAmount)
	}

	if err := validate.Text("category", t.Category, MaxCategoryLength); err != nil {
		return err
	}

	if t.Type == TypeIncome && !slices.Contains(IncomeCategories, t.Category) {
		return validate.New(validate.KindInvalid, "category", "%q is not an income category", t.Category)
	}

	if err := validate.Text("description", t.Description, MaxDescriptionLength); err != nil {
		return err
	}

	if t.Date.IsZero() {
		return validate.New(validate.KindRequired, "date", "date must be set")
	}

	return nil
}
