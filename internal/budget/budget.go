// Package budget tracks spending ceilings per expense category.
package budget

import (
	"strings"

	"github.com/budget-tracker/backend/internal/ledger"
	"github.com/budget-tracker/backend/internal/validate"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Band classifies how much of a budget is used.
type Band string

const (
	BandSafe     Band = "safe"
	BandCaution  Band = "caution"
	BandWarning  Band = "warning"
	BandExceeded Band = "exceeded"
)

var (
	cautionThreshold  = decimal.NewFromInt(60)
	warningThreshold  = decimal.NewFromInt(80)
	exceededThreshold = decimal.NewFromInt(100)
	hundred           = decimal.NewFromInt(100)
	justBelow         = decimal.RequireFromString("99.99")
)

// BandOf returns the band for a percentage of a budget used.
func BandOf(percent decimal.Decimal) Band {
	switch {
	case percent.LessThan(cautionThreshold):
		return BandSafe
	case percent.LessThan(warningThreshold):
		return BandCaution
	case percent.LessThan(exceededThreshold):
		return BandWarning
	default:
		return BandExceeded
	}
}

// Source provides the spending a budget is compared against.
type Source interface {
	Aggregate(ledger.Filter) ledger.Totals
}

// Status is the live state of a budget.
type Status struct {
	Category    string          `json:"category" example:"Courses"`
	Budget      decimal.Decimal `json:"budget" example:"300" swaggertype:"string"`
	Spent       decimal.Decimal `json:"spent" example:"320" swaggertype:"string"`
	Remaining   decimal.Decimal `json:"remaining" example:"-20" swaggertype:"string"`      // Negative when the budget is exceeded
	PercentUsed decimal.Decimal `json:"percentUsed" example:"106.67" swaggertype:"string"` // Percentage of the budget spent, rounded to two decimals
	Band        Band            `json:"band" example:"exceeded"`
	Exceeded    bool            `json:"exceeded" example:"true"`
}

// Tracker holds the budget ceilings of one profile.
//
// Ceilings are independent of the ledger and survive when it is cleared.
type Tracker struct {
	ceilings map[string]decimal.Decimal
}

// NewTracker returns a tracker without any budgets.
func NewTracker() *Tracker {
	return &Tracker{ceilings: make(map[string]decimal.Decimal)}
}

// Set creates or updates the budget for a category.
func (t *Tracker) Set(category string, amount decimal.Decimal) error {
	category = strings.TrimSpace(category)
	if err := validate.Text("category", category, ledger.MaxCategoryLength); err != nil {
		return err
	}

	if !amount.IsPositive() || amount.GreaterThan(ledger.MaxAmount) {
		return validate.New(validate.KindOutOfRange, "amount", "budget must be greater than 0 and at most %s", ledger.MaxAmount)
	}

	t.ceilings[category] = amount
	return nil
}

// Remove deletes the budget for a category and reports whether it existed.
func (t *Tracker) Remove(category string) bool {
	category = strings.TrimSpace(category)
	if _, ok := t.ceilings[category]; !ok {
		return false
	}

	delete(t.ceilings, category)
	return true
}

// Ceilings returns a copy of all budgets.
func (t *Tracker) Ceilings() map[string]decimal.Decimal {
	c := make(map[string]decimal.Decimal, len(t.ceilings))
	for k, v := range t.ceilings {
		c[k] = v
	}

	return c
}

// Replace swaps all budgets, e.g. after loading them. Entries with an amount
// that is not positive are dropped.
func (t *Tracker) Replace(ceilings map[string]decimal.Decimal) {
	t.ceilings = make(map[string]decimal.Decimal, len(ceilings))
	for k, v := range ceilings {
		if v.IsPositive() {
			t.ceilings[k] = v
		}
	}
}

// RenameCategory moves a budget to a new category name. An existing budget
// on the target category is kept.
func (t *Tracker) RenameCategory(from, to string) bool {
	amount, ok := t.ceilings[from]
	if !ok {
		return false
	}

	delete(t.ceilings, from)
	if _, exists := t.ceilings[to]; !exists {
		t.ceilings[to] = amount
	}

	return true
}

// Spent returns the sum of all expenses in the category.
func (t *Tracker) Spent(category string, src Source) decimal.Decimal {
	return src.Aggregate(ledger.Filter{Type: ledger.TypeExpense, Category: category}).Expense
}

// Status returns the state of the budget of a category. Categories without a
// budget report false.
func (t *Tracker) Status(category string, src Source) (Status, bool) {
	amount, ok := t.ceilings[category]
	if !ok {
		return Status{}, false
	}

	return newStatus(category, amount, t.Spent(category, src)), true
}

// Statuses returns the state of all budgets, sorted by category.
func (t *Tracker) Statuses(src Source) []Status {
	categories := maps.Keys(t.ceilings)
	slices.Sort(categories)

	statuses := make([]Status, 0, len(categories))
	for _, category := range categories {
		s, _ := t.Status(category, src)
		statuses = append(statuses, s)
	}

	return statuses
}

// TotalStatus sums all budgets and the expenses in budgeted categories.
func (t *Tracker) TotalStatus(src Source) Status {
	budget := decimal.Zero
	spent := decimal.Zero

	for category, amount := range t.ceilings {
		budget = budget.Add(amount)
		spent = spent.Add(t.Spent(category, src))
	}

	return newStatus("", budget, spent)
}

func newStatus(category string, budget, spent decimal.Decimal) Status {
	percent := decimal.Zero
	if budget.IsPositive() {
		percent = spent.Mul(hundred).Div(budget).Round(2)
	}

	// 100 is only reached once the budget is spent
	exceeded := budget.IsPositive() && spent.GreaterThanOrEqual(budget)
	if !exceeded && percent.GreaterThanOrEqual(hundred) {
		percent = justBelow
	}

	return Status{
		Category:    category,
		Budget:      budget,
		Spent:       spent,
		Remaining:   budget.Sub(spent),
		PercentUsed: percent,
		Band:        BandOf(percent),
		Exceeded:    exceeded,
	}
}
