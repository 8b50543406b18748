package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/budget-tracker/backend/internal/archive"
	"github.com/budget-tracker/backend/internal/bankimport"
	"github.com/budget-tracker/backend/internal/budget"
	"github.com/budget-tracker/backend/internal/customfield"
	"github.com/budget-tracker/backend/internal/export"
	"github.com/budget-tracker/backend/internal/ledger"
	"github.com/budget-tracker/backend/internal/syncer"
	"github.com/budget-tracker/backend/internal/types"
	"github.com/budget-tracker/backend/internal/validate"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
)

// Options configure the sessions of all profiles.
type Options struct {
	// Location is the time zone months are evaluated in. Defaults to UTC.
	Location *time.Location

	// Locale selects the month names of archives.
	Locale language.Tag

	Clock func() time.Time

	// Importer reads bank statements. Defaults to the simulated source.
	Importer *bankimport.Importer
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}

	if o.Clock == nil {
		o.Clock = time.Now
	}

	if o.Importer == nil {
		o.Importer = bankimport.NewImporter(bankimport.Simulated{}, nil)
	}

	return o
}

// Session holds the data of one open profile.
//
// A Session is not safe for concurrent use, the Manager serializes access.
type Session struct {
	profile string
	engine  *syncer.Engine
	opts    Options

	ledger   *ledger.Ledger
	archives *archive.Store
	budgets  *budget.Tracker
	fields   *customfield.Set
	accounts []bankimport.Account

	warnings []error
}

// ImportResult is the outcome of a bank statement import.
type ImportResult struct {
	Imported []ledger.Transaction `json:"imported"`
	Skipped  int                  `json:"skipped" example:"2"` // Lines that were already imported or carry no amount
}

// Open loads all data of the profile.
//
// Unusable data does not prevent the profile from opening, it is replaced
// by empty data and reported by Warnings.
func Open(ctx context.Context, engine *syncer.Engine, profile string, opts Options) (*Session, error) {
	opts = opts.withDefaults()

	s := &Session{
		profile:  profile,
		engine:   engine,
		opts:     opts,
		ledger:   ledger.New(ledger.NewIDGenerator(opts.Clock)),
		archives: archive.NewStore(archive.Options{Location: opts.Location, Locale: opts.Locale, Clock: opts.Clock}),
		budgets:  budget.NewTracker(),
		fields:   customfield.NewSet(),
	}

	transactions, err := load(ctx, s, syncer.Transactions, []ledger.Transaction{})
	if err != nil {
		return nil, err
	}
	s.ledger.Replace(transactions)
	s.ledger.SortByID()

	archives, result, err := syncer.Load(ctx, engine, syncer.Archives, profile, []archive.Archive{})
	if err != nil {
		return nil, err
	}
	s.warn(result.Warning)

	origin := archive.OriginLocal
	if result.Source == syncer.SourceRemote {
		origin = archive.OriginRemote
	}
	if skipped := s.archives.Replace(archives, origin); skipped > 0 {
		log.Warn().Str("profile", profile).Int("skipped", skipped).Msg("archives with invalid keys")
	}

	ceilings, err := load(ctx, s, syncer.Budgets, map[string]decimal.Decimal{})
	if err != nil {
		return nil, err
	}
	s.budgets.Replace(ceilings)

	fields, err := load(ctx, s, syncer.CustomFields, []customfield.Field{})
	if err != nil {
		return nil, err
	}

	values, err := load(ctx, s, syncer.CustomFieldValues, map[string]string{})
	if err != nil {
		return nil, err
	}
	s.fields.Replace(fields, values)

	s.accounts, err = load(ctx, s, syncer.BankAccounts, []bankimport.Account{})
	if err != nil {
		return nil, err
	}

	return s, nil
}

func load[T any](ctx context.Context, s *Session, c syncer.Collection, def T) (T, error) {
	value, result, err := syncer.Load(ctx, s.engine, c, s.profile, def)
	if err != nil {
		return def, err
	}

	s.warn(result.Warning)
	return value, nil
}

func (s *Session) warn(err error) {
	if err != nil {
		s.warnings = append(s.warnings, err)
	}
}

// Profile returns the ID of the profile.
func (s *Session) Profile() string {
	return s.profile
}

// Warnings returns the problems found while opening the session.
func (s *Session) Warnings() []error {
	return slices.Clone(s.warnings)
}

// SyncStates returns the synchronization state of every collection.
func (s *Session) SyncStates() map[string]syncer.State {
	return s.engine.States(s.profile)
}

// Transactions returns the transactions matching the filter, newest first.
func (s *Session) Transactions(f ledger.Filter) []ledger.Transaction {
	return s.ledger.List(f)
}

func (s *Session) Transaction(id int64) (ledger.Transaction, bool) {
	return s.ledger.Get(id)
}

func (s *Session) Summary(f ledger.Filter) ledger.Totals {
	return s.ledger.Aggregate(f)
}

func (s *Session) Categories() []string {
	return s.ledger.CategoriesInUse()
}

// AddTransaction validates the input and adds it to the ledger.
func (s *Session) AddTransaction(ctx context.Context, in ledger.Input) (ledger.Transaction, error) {
	t, err := in.Transaction()
	if err != nil {
		return ledger.Transaction{}, err
	}

	before := s.checkpoint()
	t, err = s.ledger.Add(t)
	if err != nil {
		return ledger.Transaction{}, err
	}

	return t, s.commit(ctx, before, s.saveTransactions)
}

// DeleteTransaction removes a transaction. It reports whether it existed.
func (s *Session) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	before := s.checkpoint()
	if !s.ledger.Remove(id) {
		return false, nil
	}

	return true, s.commit(ctx, before, s.saveTransactions)
}

// ClearTransactions removes all transactions. Archives and budgets are kept.
func (s *Session) ClearTransactions(ctx context.Context) error {
	before := s.checkpoint()
	s.ledger.Clear()
	return s.commit(ctx, before, s.saveTransactions)
}

// ArchiveMonth stores a copy of the current transactions under the key.
// An empty key archives the current month. The ledger is not changed.
func (s *Session) ArchiveMonth(ctx context.Context, key string, force bool) (archive.Archive, error) {
	before := s.checkpoint()
	a, err := s.archiveMonth(key, force)
	if err != nil {
		return archive.Archive{}, err
	}

	return a, s.commit(ctx, before, s.saveArchives)
}

func (s *Session) archiveMonth(key string, force bool) (archive.Archive, error) {
	if key == "" {
		key = s.archives.SnapshotKeyFor(s.opts.Clock())
	}

	if _, err := types.ParseMonth(key); err != nil {
		return archive.Archive{}, validate.New(validate.KindInvalid, "month", "month must have the format YYYY-MM")
	}

	return s.archives.Upsert(s.ledger.Transactions(), key, force)
}

// StartNewMonth archives the current month and clears the ledger.
func (s *Session) StartNewMonth(ctx context.Context, force bool) (archive.Archive, error) {
	if s.ledger.Len() == 0 {
		return archive.Archive{}, validate.New(validate.KindRequired, "transactions", "there are no transactions to archive")
	}

	before := s.checkpoint()
	a, err := s.archiveMonth("", force)
	if err != nil {
		return archive.Archive{}, err
	}
	s.ledger.Clear()

	return a, s.commit(ctx, before, s.saveArchives, s.saveTransactions)
}

func (s *Session) Archives() []archive.Archive {
	return s.archives.List()
}

func (s *Session) Archive(key string) (archive.Archive, bool) {
	return s.archives.Get(key)
}

// DeleteArchive removes an archive. It reports whether it existed.
func (s *Session) DeleteArchive(ctx context.Context, key string) (bool, error) {
	before := s.checkpoint()
	if !s.archives.Remove(key) {
		return false, nil
	}

	return true, s.commit(ctx, before, s.saveArchives)
}

// SetBudget sets the spending ceiling of a category.
func (s *Session) SetBudget(ctx context.Context, category string, amount decimal.Decimal) (budget.Status, error) {
	category = strings.TrimSpace(category)
	before := s.checkpoint()
	if err := s.budgets.Set(category, amount); err != nil {
		return budget.Status{}, err
	}

	if err := s.commit(ctx, before, s.saveBudgets); err != nil {
		return budget.Status{}, err
	}

	status, _ := s.budgets.Status(category, s.ledger)
	return status, nil
}

// RemoveBudget removes the ceiling of a category. It reports whether it existed.
func (s *Session) RemoveBudget(ctx context.Context, category string) (bool, error) {
	before := s.checkpoint()
	if !s.budgets.Remove(category) {
		return false, nil
	}

	return true, s.commit(ctx, before, s.saveBudgets)
}

// Budgets returns the status of every budget and the status of all budgets together.
func (s *Session) Budgets() ([]budget.Status, budget.Status) {
	return s.budgets.Statuses(s.ledger), s.budgets.TotalStatus(s.ledger)
}

func (s *Session) CustomFields() ([]customfield.Field, map[string]string) {
	return s.fields.Fields(), s.fields.Values()
}

func (s *Session) AddCustomField(ctx context.Context, f customfield.Field) (customfield.Field, error) {
	before := s.checkpoint()
	f, err := s.fields.Add(f)
	if err != nil {
		return customfield.Field{}, err
	}

	return f, s.commit(ctx, before, s.saveCustomFields)
}

// RemoveCustomField deletes a field and its value. It reports whether it existed.
func (s *Session) RemoveCustomField(ctx context.Context, name string) (bool, error) {
	before := s.checkpoint()
	if !s.fields.Remove(name) {
		return false, nil
	}

	return true, s.commit(ctx, before, s.saveCustomFields)
}

// SetCustomFieldValue stores the value of a field. It returns ErrNotFound
// for undefined fields.
func (s *Session) SetCustomFieldValue(ctx context.Context, name, value string) error {
	before := s.checkpoint()
	found, err := s.fields.SetValue(name, value)
	if !found {
		return fmt.Errorf("custom field %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return err
	}

	return s.commit(ctx, before, s.saveCustomFieldValues)
}

func (s *Session) BankAccounts() []bankimport.Account {
	return slices.Clone(s.accounts)
}

// LinkBankAccount adds a bank account to the profile.
func (s *Session) LinkBankAccount(ctx context.Context, bank, label string) (bankimport.Account, error) {
	a, err := bankimport.NewAccount(bank, label, s.opts.Clock())
	if err != nil {
		return bankimport.Account{}, err
	}

	before := s.checkpoint()
	s.accounts = append(s.accounts, a)
	return a, s.commit(ctx, before, s.saveAccounts)
}

// ImportBankStatement adds the lines of the statement of an account for
// the month to the ledger. Lines imported before, into the ledger or an
// archived month, are skipped. Either all
// lines are imported or none.
func (s *Session) ImportBankStatement(ctx context.Context, accountID uuid.UUID, month types.Month) (ImportResult, error) {
	i := slices.IndexFunc(s.accounts, func(a bankimport.Account) bool {
		return a.ID == accountID
	})
	if i < 0 {
		return ImportResult{}, fmt.Errorf("bank account %s: %w", accountID, ErrNotFound)
	}

	// Archived months hold lines imported before a new month was started
	existing := s.ledger.Transactions()
	for _, a := range s.archives.List() {
		existing = append(existing, a.Transactions...)
	}

	inputs, skipped, err := s.opts.Importer.Prepare(ctx, s.accounts[i], month, existing)
	if err != nil {
		return ImportResult{}, err
	}

	prepared := make([]ledger.Transaction, 0, len(inputs))
	for _, in := range inputs {
		t, err := in.Transaction()
		if err != nil {
			return ImportResult{}, fmt.Errorf("statement line %q: %w", in.Description, err)
		}
		prepared = append(prepared, t)
	}

	before := s.checkpoint()
	result := ImportResult{Imported: make([]ledger.Transaction, 0, len(prepared)), Skipped: skipped}
	for _, t := range prepared {
		t, err := s.ledger.Add(t)
		if err != nil {
			s.restore(before)
			return ImportResult{}, err
		}
		result.Imported = append(result.Imported, t)
	}

	if len(result.Imported) == 0 {
		return result, nil
	}

	if err := s.commit(ctx, before, s.saveTransactions); err != nil {
		return ImportResult{}, err
	}

	return result, nil
}

// Export returns a snapshot of all data of the profile.
func (s *Session) Export() export.Snapshot {
	fields, values := s.CustomFields()

	return export.Snapshot{
		Profile:           s.profile,
		ExportDate:        s.opts.Clock().UTC(),
		Transactions:      s.ledger.Transactions(),
		ArchivedMonths:    s.archives.List(),
		CustomFields:      fields,
		CustomFieldValues: values,
		CategoryBudgets:   s.budgets.Ceilings(),
		BankAccounts:      s.BankAccounts(),
	}
}

// Import replaces all data of the profile with the snapshot. The snapshot
// must come from export.Decode, which verifies it.
//
// Snapshots of other profiles can be imported, the data is stored for
// this profile.
func (s *Session) Import(ctx context.Context, snapshot export.Snapshot) error {
	if snapshot.Profile != s.profile {
		log.Info().Str("profile", s.profile).Str("from", snapshot.Profile).Msg("importing data of another profile")
	}

	before := s.checkpoint()
	s.ledger.Replace(snapshot.Transactions)
	s.ledger.SortByID()
	s.archives.Replace(snapshot.ArchivedMonths, archive.OriginLocal)
	s.budgets.Replace(snapshot.CategoryBudgets)
	s.fields.Replace(snapshot.CustomFields, snapshot.CustomFieldValues)

	// Older exports have no bank accounts, keep the linked ones then
	if snapshot.BankAccounts != nil {
		s.accounts = slices.Clone(snapshot.BankAccounts)
	}

	return s.commit(ctx, before, s.saveTransactions, s.saveArchives, s.saveBudgets, s.saveCustomFields, s.saveAccounts)
}

// RenameCategory moves transactions, archived transactions and the budget
// of a category to another one.
func (s *Session) RenameCategory(ctx context.Context, from, to string) error {
	if err := validate.Text("category", to, ledger.MaxCategoryLength); err != nil {
		return err
	}

	before := s.checkpoint()
	s.ledger.RenameCategory(from, to)
	s.archives.RenameCategory(from, to)
	s.budgets.RenameCategory(from, to)

	return s.commit(ctx, before, s.saveTransactions, s.saveArchives, s.saveBudgets)
}

// Flush saves all collections.
func (s *Session) Flush(ctx context.Context) error {
	return errors.Join(
		s.saveTransactions(ctx),
		s.saveArchives(ctx),
		s.saveBudgets(ctx),
		s.saveCustomFields(ctx),
		s.saveAccounts(ctx),
	)
}

// state is a copy of the data of a session.
type state struct {
	transactions []ledger.Transaction
	archives     []archive.Archive
	origin       archive.Origin
	ceilings     map[string]decimal.Decimal
	fields       []customfield.Field
	values       map[string]string
	accounts     []bankimport.Account
}

func (s *Session) checkpoint() state {
	fields, values := s.fields.Fields(), s.fields.Values()

	return state{
		transactions: s.ledger.Transactions(),
		archives:     s.archives.List(),
		origin:       s.archives.Origin(),
		ceilings:     s.budgets.Ceilings(),
		fields:       fields,
		values:       values,
		accounts:     slices.Clone(s.accounts),
	}
}

func (s *Session) restore(st state) {
	s.ledger.Replace(st.transactions)
	s.archives.Replace(st.archives, st.origin)
	s.budgets.Replace(st.ceilings)
	s.fields.Replace(st.fields, st.values)
	s.accounts = st.accounts
}

// commit runs the saves of a change in order. When one fails the session
// goes back to the state before the change, and the collections written
// so far are written again from it.
func (s *Session) commit(ctx context.Context, before state, saves ...func(context.Context) error) error {
	for i, save := range saves {
		err := save(ctx)
		if err == nil {
			continue
		}

		s.restore(before)
		for _, written := range saves[:i] {
			if rerr := written(ctx); rerr != nil {
				log.Error().Err(rerr).Str("profile", s.profile).Msg("restoring data after a failed save")
			}
		}

		return err
	}

	return nil
}

func (s *Session) saveTransactions(ctx context.Context) error {
	return s.engine.Save(ctx, syncer.Transactions, s.profile, s.ledger.Transactions())
}

func (s *Session) saveArchives(ctx context.Context) error {
	return s.engine.Save(ctx, syncer.Archives, s.profile, s.archives.List())
}

func (s *Session) saveBudgets(ctx context.Context) error {
	return s.engine.Save(ctx, syncer.Budgets, s.profile, s.budgets.Ceilings())
}

func (s *Session) saveCustomFields(ctx context.Context) error {
	if err := s.engine.Save(ctx, syncer.CustomFields, s.profile, s.fields.Fields()); err != nil {
		return err
	}

	return s.saveCustomFieldValues(ctx)
}

func (s *Session) saveCustomFieldValues(ctx context.Context) error {
	return s.engine.Save(ctx, syncer.CustomFieldValues, s.profile, s.fields.Values())
}

func (s *Session) saveAccounts(ctx context.Context) error {
	return s.engine.Save(ctx, syncer.BankAccounts, s.profile, s.accounts)
}
