package syncer

import "fmt"

// Collection describes where a kind of profile data is kept.
type Collection struct {
	Name string

	// LocalKey and Remote are format strings taking the profile ID.
	LocalKey string
	Remote   string

	// IDField names the field identifying the elements of a JSON array.
	// When set, every element is mirrored as its own remote document in
	// the collection at Remote. Otherwise the whole value is mirrored as
	// the single document at Remote.
	IDField string
}

func (c Collection) localKey(profile string) string {
	return fmt.Sprintf(c.LocalKey, profile)
}

func (c Collection) remotePath(profile string) string {
	return fmt.Sprintf(c.Remote, profile)
}

var (
	Transactions      = Collection{Name: "transactions", LocalKey: "transactions_%s", Remote: "profiles/%s/transactions", IDField: "id"}
	Archives          = Collection{Name: "archived", LocalKey: "archived_%s", Remote: "profiles/%s/archived", IDField: "key"}
	Budgets           = Collection{Name: "categoryBudgets", LocalKey: "categoryBudgets_%s", Remote: "profiles/%s/settings/categoryBudgets"}
	CustomFields      = Collection{Name: "customFields", LocalKey: "customFields_%s", Remote: "profiles/%s/customFields/fields"}
	CustomFieldValues = Collection{Name: "customFieldValues", LocalKey: "customFieldValues_%s", Remote: "profiles/%s/customFields/values"}
	BankAccounts      = Collection{Name: "bankAccounts", LocalKey: "bankAccounts_%s", Remote: "profiles/%s/bankAccounts", IDField: "id"}
)

// Collections lists all collections of a profile.
var Collections = []Collection{
	Transactions,
	Archives,
	Budgets,
	CustomFields,
	CustomFieldValues,
	BankAccounts,
}
