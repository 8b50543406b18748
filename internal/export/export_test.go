package export_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/budget-tracker/backend/internal/archive"
	"github.com/budget-tracker/backend/internal/customfield"
	"github.com/budget-tracker/backend/internal/export"
	"github.com/budget-tracker/backend/internal/ledger"
	"github.com/budget-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot() export.Snapshot {
	txs := []ledger.Transaction{
		{ID: 1, Type: ledger.TypeIncome, Amount: decimal.NewFromInt(2500), Category: "Salaire", Description: "Paie", Date: types.NewDate(2024, time.January, 1)},
		{ID: 2, Type: ledger.TypeExpense, Amount: decimal.NewFromInt(850), Category: "Appartement", Description: "Loyer", Date: types.NewDate(2024, time.January, 5)},
	}

	return export.Snapshot{
		Profile:      "hemank",
		ExportDate:   time.Date(2024, time.February, 1, 8, 0, 0, 0, time.UTC),
		Transactions: txs,
		ArchivedMonths: []archive.Archive{{
			Key:          "2024-01",
			Month:        "Janvier",
			Year:         2024,
			ArchivedDate: time.Date(2024, time.February, 1, 8, 0, 0, 0, time.UTC),
			Transactions: txs,
			Summary:      archive.Summarize(txs),
		}},
		CustomFields:      []customfield.Field{{Name: "Objectif", Type: customfield.TypeCurrency}},
		CustomFieldValues: map[string]string{"Objectif": "5000"},
		CategoryBudgets:   map[string]decimal.Decimal{"Courses": decimal.NewFromInt(300)},
	}
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, export.Encode(&buf, snapshot()))

	s, err := export.Decode(&buf)
	require.Nil(t, err)

	assert.Equal(t, "hemank", s.Profile)
	assert.Len(t, s.Transactions, 2)
	assert.Equal(t, "2024-01", s.ArchivedMonths[0].Key)
	assert.True(t, decimal.NewFromInt(1650).Equal(s.ArchivedMonths[0].Summary.Balance))
	assert.True(t, decimal.NewFromInt(300).Equal(s.CategoryBudgets["Courses"]))
	assert.Equal(t, "5000", s.CustomFieldValues["Objectif"])
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, export.Encode(&buf, export.Snapshot{Profile: "jyoti"}))

	assert.Contains(t, buf.String(), `"transactions": []`)
	assert.Contains(t, buf.String(), `"archivedMonths": []`)
	assert.Contains(t, buf.String(), `"categoryBudgets": {}`)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Not JSON", `profile: hemank`},
		{"Array", `[]`},
		{"No profile", `{"transactions": [], "archivedMonths": []}`},
		{"Empty profile", `{"profile": " ", "transactions": [], "archivedMonths": []}`},
		{"Numeric profile", `{"profile": 1, "transactions": [], "archivedMonths": []}`},
		{"Transactions object", `{"profile": "hemank", "transactions": {}, "archivedMonths": []}`},
		{"No transactions", `{"profile": "hemank", "archivedMonths": []}`},
		{"Archives string", `{"profile": "hemank", "transactions": [], "archivedMonths": "2024-01"}`},
		{"Invalid transaction", `{"profile": "hemank", "transactions": [{"id": 1, "type": "expense", "amount": "-5", "category": "Courses", "description": "x", "date": "2024-01-01"}], "archivedMonths": []}`},
		{"Duplicate ids", `{"profile": "hemank", "transactions": [
			{"id": 1, "type": "expense", "amount": "5", "category": "Courses", "description": "x", "date": "2024-01-01"},
			{"id": 1, "type": "expense", "amount": "6", "category": "Courses", "description": "y", "date": "2024-01-02"}
		], "archivedMonths": []}`},
		{"Invalid archive key", `{"profile": "hemank", "transactions": [], "archivedMonths": [{"key": "January"}]}`},
		{"Zero budget", `{"profile": "hemank", "transactions": [], "archivedMonths": [], "categoryBudgets": {"Courses": "0"}}`},
		{"Unknown field type", `{"profile": "hemank", "transactions": [], "archivedMonths": [], "customFields": [{"name": "x", "type": "date"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := export.Decode(strings.NewReader(tt.data))
			assert.True(t, errors.Is(err, export.ErrInvalidFormat), "Error is %v", err)
		})
	}
}

func TestDecodeMinimal(t *testing.T) {
	s, err := export.Decode(strings.NewReader(`{"profile": "jyoti", "transactions": [], "archivedMonths": []}`))
	require.Nil(t, err)
	assert.Equal(t, "jyoti", s.Profile)
	assert.Len(t, s.Transactions, 0)
}

func TestWriteArchiveCSV(t *testing.T) {
	a := snapshot().ArchivedMonths[0]
	a.Transactions[1].Description = `Loyer "janvier", avance`

	var buf bytes.Buffer
	require.Nil(t, export.WriteArchiveCSV(&buf, a))

	expected := `Month,Janvier 2024
Key,2024-01
Total income,2500.00
Total expense,850.00
Balance,1650.00
Transactions,2

Date,Type,Category,Description,Amount
2024-01-01,income,Salaire,Paie,2500.00
2024-01-05,expense,Appartement,"Loyer ""janvier"", avance",850.00
`
	assert.Equal(t, expected, buf.String())
}

func TestWriteArchivesCSV(t *testing.T) {
	first := snapshot().ArchivedMonths[0]
	second := first
	second.Key = "2023-12"
	second.Month = "Décembre"
	second.Year = 2023

	var buf bytes.Buffer
	require.Nil(t, export.WriteArchivesCSV(&buf, []archive.Archive{first, second}))

	assert.Equal(t, 2, strings.Count(buf.String(), "Date,Type,Category,Description,Amount\n"))
	assert.Contains(t, buf.String(), "850.00\n\nMonth,Décembre 2023\n")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "budget_hemank_Ao_t_2024.csv", export.Filename("csv", "budget", "hemank", "Août", "2024"))
	assert.Equal(t, "budget_jyoti_2024_02_01.json", export.Filename("json", "budget", "jyoti", "2024-02-01"))
}
