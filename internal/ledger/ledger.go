package ledger

import (
	"sort"

	"github.com/budget-tracker/backend/internal/validate"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Filter restricts the transactions an operation looks at.
// Zero values match everything.
type Filter struct {
	Type     Type   `form:"type" example:"expense"`     // Only transactions of this type
	Category string `form:"category" example:"Courses"` // Only transactions in this category
}

// Matches reports whether the transaction passes the filter.
func (f Filter) Matches(t Transaction) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}

	if f.Category != "" && t.Category != f.Category {
		return false
	}

	return true
}

// Totals is the aggregate of a set of transactions.
type Totals struct {
	Income  decimal.Decimal `json:"income" example:"2500" swaggertype:"string"`
	Expense decimal.Decimal `json:"expense" example:"850" swaggertype:"string"`
	Balance decimal.Decimal `json:"balance" example:"1650" swaggertype:"string"`
	Count   int             `json:"count" example:"2"`
}

// Ledger is the ordered list of current transactions of one profile.
//
// A Ledger is not safe for concurrent use, callers serialize access.
type Ledger struct {
	ids          *IDGenerator
	transactions []Transaction
}

// New returns an empty ledger using ids to number new transactions.
// A nil generator uses the wall clock.
func New(ids *IDGenerator) *Ledger {
	if ids == nil {
		ids = NewIDGenerator(nil)
	}

	return &Ledger{ids: ids}
}

// Add validates t and appends it to the ledger. A zero ID is replaced
// with a newly generated one, an ID that is already in use is rejected.
func (l *Ledger) Add(t Transaction) (Transaction, error) {
	if err := Validate(t); err != nil {
		return Transaction{}, err
	}

	if t.ID == 0 {
		t.ID = l.ids.Next()
	} else {
		if l.index(t.ID) >= 0 {
			return Transaction{}, validate.New(validate.KindDuplicate, "id", "a transaction with id %d already exists", t.ID)
		}
		l.ids.Observe(t.ID)
	}

	l.transactions = append(l.transactions, t)
	return t, nil
}

// Remove deletes the transaction with the given id. It reports whether
// a transaction was removed.
func (l *Ledger) Remove(id int64) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}

	l.transactions = slices.Delete(l.transactions, i, i+1)
	return true
}

// Clear removes all transactions.
func (l *Ledger) Clear() {
	l.transactions = nil
}

// Get returns the transaction with the given id.
func (l *Ledger) Get(id int64) (Transaction, bool) {
	i := l.index(id)
	if i < 0 {
		return Transaction{}, false
	}

	return l.transactions[i], true
}

// Len returns the number of transactions.
func (l *Ledger) Len() int {
	return len(l.transactions)
}

// Aggregate sums the transactions matching the filter.
func (l *Ledger) Aggregate(f Filter) Totals {
	totals := Totals{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	for _, t := range l.transactions {
		if !f.Matches(t) {
			continue
		}

		if t.Type == TypeIncome {
			totals.Income = totals.Income.Add(t.Amount)
		} else {
			totals.Expense = totals.Expense.Add(t.Amount)
		}
		totals.Count++
	}

	totals.Balance = totals.Income.Sub(totals.Expense)
	return totals
}

// CategoriesInUse returns the distinct categories of all transactions, sorted.
func (l *Ledger) CategoriesInUse() []string {
	set := make(map[string]struct{}, len(l.transactions))
	for _, t := range l.transactions {
		set[t.Category] = struct{}{}
	}

	categories := maps.Keys(set)
	slices.Sort(categories)
	return categories
}

// Transactions returns a copy of all transactions in insertion order.
func (l *Ledger) Transactions() []Transaction {
	return slices.Clone(l.transactions)
}

// List returns the transactions matching the filter, most recent date first.
// Transactions on the same date are ordered by descending id.
func (l *Ledger) List(f Filter) []Transaction {
	list := make([]Transaction, 0, len(l.transactions))
	for _, t := range l.transactions {
		if f.Matches(t) {
			list = append(list, t)
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].ID > list[j].ID
	})

	return list
}

// Replace swaps the content of the ledger, e.g. after loading from storage.
// The transactions are not validated again, their ids are reserved with the
// id generator. Transactions without an id or with an id used before in the
// list get a new one.
func (l *Ledger) Replace(transactions []Transaction) {
	l.transactions = slices.Clone(transactions)
	for _, t := range l.transactions {
		l.ids.Observe(t.ID)
	}

	seen := make(map[int64]bool, len(l.transactions))
	for i := range l.transactions {
		if id := l.transactions[i].ID; id == 0 || seen[id] {
			l.transactions[i].ID = l.ids.Next()
		}
		seen[l.transactions[i].ID] = true
	}
}

// SortByID orders the transactions by ascending id, which is their creation order.
func (l *Ledger) SortByID() {
	slices.SortStableFunc(l.transactions, func(a, b Transaction) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}

// RenameCategory moves all transactions from one category to another and
// returns how many were changed.
func (l *Ledger) RenameCategory(from, to string) int {
	var n int
	for i := range l.transactions {
		if l.transactions[i].Category == from {
			l.transactions[i].Category = to
			n++
		}
	}

	return n
}

func (l *Ledger) index(id int64) int {
	return slices.IndexFunc(l.transactions, func(t Transaction) bool {
		return t.ID == id
	})
}
