// Package archive keeps frozen monthly snapshots of the ledger.
package archive

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/budget-tracker/backend/internal/ledger"
	"github.com/budget-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrAlreadyExists is returned when a month is archived a second time without forcing it.
var ErrAlreadyExists = errors.New("this month has already been archived")

// Origin tells where a list of archives was read from. It decides the
// display order of the store.
type Origin int

const (
	OriginLocal Origin = iota
	OriginRemote
)

// Summary is computed when a month is archived and never changes afterwards.
type Summary struct {
	TotalIncome      decimal.Decimal `json:"totalIncome" example:"2500" swaggertype:"string"`
	TotalExpense     decimal.Decimal `json:"totalExpense" example:"850" swaggertype:"string"`
	Balance          decimal.Decimal `json:"balance" example:"1650" swaggertype:"string"`
	TransactionCount int             `json:"transactionCount" example:"2"`
}

// Summarize computes the summary of a list of transactions.
func Summarize(transactions []ledger.Transaction) Summary {
	s := Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, t := range transactions {
		if t.Type == ledger.TypeIncome {
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		} else {
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
		}
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	s.TransactionCount = len(transactions)
	return s
}

// Archive is the snapshot of one month.
type Archive struct {
	Key          string               `json:"key" example:"2024-01"`                       // Year and month in YYYY-MM format
	Month        string               `json:"month" example:"Janvier"`                     // Display name of the month
	Year         int                  `json:"year" example:"2024"`                         // Year of the archived month
	ArchivedDate time.Time            `json:"archivedDate" example:"2024-02-01T08:12:00Z"` // When the snapshot was taken
	Transactions []ledger.Transaction `json:"transactions"`
	Summary      Summary              `json:"summary"`
}

// Options configure a Store.
type Options struct {
	// Location used to derive month keys from instants. Defaults to UTC.
	Location *time.Location

	// Locale for month display names. Defaults to French.
	Locale language.Tag

	Clock func() time.Time
}

// Store holds the archives of one profile, keyed by month.
//
// A Store is not safe for concurrent use.
type Store struct {
	location *time.Location
	names    [12]string
	clock    func() time.Time

	origin   Origin
	archives map[string]Archive
}

// NewStore returns an empty store.
func NewStore(opts Options) *Store {
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	if opts.Locale == language.Und {
		opts.Locale = language.French
	}

	return &Store{
		location: opts.Location,
		names:    monthNames(opts.Locale),
		clock:    opts.Clock,
		archives: make(map[string]Archive),
	}
}

// SnapshotKeyFor returns the archive key of the month the instant falls in,
// evaluated in the location of the store.
func (s *Store) SnapshotKeyFor(t time.Time) string {
	return types.MonthOf(t, s.location).String()
}

// Upsert stores a snapshot of the transactions under key. When an archive
// for the key exists and force is false, ErrAlreadyExists is returned and
// nothing changes.
func (s *Store) Upsert(transactions []ledger.Transaction, key string, force bool) (Archive, error) {
	month, err := types.ParseMonth(key)
	if err != nil {
		return Archive{}, fmt.Errorf("invalid archive key: %w", err)
	}

	if _, ok := s.archives[key]; ok && !force {
		return Archive{}, ErrAlreadyExists
	}

	snapshot := slices.Clone(transactions)
	if snapshot == nil {
		snapshot = []ledger.Transaction{}
	}

	a := Archive{
		Key:          key,
		Month:        s.names[month.Month()-1],
		Year:         month.Year(),
		ArchivedDate: s.clock().UTC(),
		Transactions: snapshot,
		Summary:      Summarize(snapshot),
	}

	s.archives[key] = a
	s.origin = OriginLocal
	return a, nil
}

// Remove deletes the archive for key and reports whether it existed.
func (s *Store) Remove(key string) bool {
	if _, ok := s.archives[key]; !ok {
		return false
	}

	delete(s.archives, key)
	return true
}

// Get returns the archive for key.
func (s *Store) Get(key string) (Archive, bool) {
	a, ok := s.archives[key]
	return a, ok
}

// Len returns the number of archives.
func (s *Store) Len() int {
	return len(s.archives)
}

// Origin returns where the archives were read from last.
func (s *Store) Origin() Origin {
	return s.origin
}

// List returns all archives in display order.
//
// Archives read from the local cache are ordered by archiving date, most
// recent first. Archives reconstructed from the remote store carry no
// reliable order and are listed by month, most recent first. Ties are
// broken by descending key.
func (s *Store) List() []Archive {
	list := make([]Archive, 0, len(s.archives))
	for _, a := range s.archives {
		list = append(list, a)
	}

	sort.Slice(list, func(i, j int) bool {
		if s.origin == OriginLocal && !list[i].ArchivedDate.Equal(list[j].ArchivedDate) {
			return list[i].ArchivedDate.After(list[j].ArchivedDate)
		}

		if s.origin == OriginRemote && list[i].Year != list[j].Year {
			return list[i].Year > list[j].Year
		}

		return list[i].Key > list[j].Key
	})

	return list
}

// Replace swaps the content of the store. Archives without a valid key
// are skipped, their number is returned.
func (s *Store) Replace(archives []Archive, origin Origin) (skipped int) {
	s.archives = make(map[string]Archive, len(archives))
	s.origin = origin

	for _, a := range archives {
		if _, err := types.ParseMonth(a.Key); err != nil {
			skipped++
			continue
		}

		if a.Transactions == nil {
			a.Transactions = []ledger.Transaction{}
		}
		s.archives[a.Key] = a
	}

	return skipped
}

// RenameCategory renames the category of archived transactions. Summaries
// are not recomputed, they do not depend on categories.
func (s *Store) RenameCategory(from, to string) int {
	var n int
	for key, a := range s.archives {
		changed := false
		transactions := slices.Clone(a.Transactions)
		for i := range transactions {
			if transactions[i].Category == from {
				transactions[i].Category = to
				changed = true
				n++
			}
		}

		if changed {
			a.Transactions = transactions
			s.archives[key] = a
		}
	}

	return n
}

var (
	frenchMonths  = [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"}
	englishMonths = [12]string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}

	localeMatcher = language.NewMatcher([]language.Tag{language.French, language.English})
)

// monthNames returns the title cased month names for the closest supported locale.
func monthNames(locale language.Tag) [12]string {
	tag, _, _ := localeMatcher.Match(locale)
	base, _ := tag.Base()

	names := frenchMonths
	if english, _ := language.English.Base(); base == english {
		names = englishMonths
	}

	caser := cases.Title(tag)
	var titled [12]string
	for i, n := range names {
		titled[i] = caser.String(n)
	}

	return titled
}
