package v1_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	v1 "github.com/budget-tracker/backend/internal/controllers/v1"
	"github.com/budget-tracker/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exportProfile fills the active profile and returns its export.
func (suite *TestSuiteStandard) exportProfile(t *testing.T) []byte {
	suite.createTestTransaction(t, income("2500", "2024-01-01"))
	suite.createTestTransaction(t, expense("850", "Appartement", "2024-01-03"))
	suite.createTestArchive(t, v1.ArchiveCreate{Month: "2023-12"})

	r := suite.request(t, http.MethodPut, "http://example.com/v1/budgets/Appartement", map[string]any{"amount": "900"})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	r = suite.request(t, http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)
	assert.Equal(t, `attachment; filename="budget_hemank_2024_01_31.json"`, r.Header().Get("Content-Disposition"))

	return r.Body.Bytes()
}

func (suite *TestSuiteStandard) TestExport() {
	suite.switchTo(suite.T(), "hemank")
	data := suite.exportProfile(suite.T())

	var snapshot map[string]any
	require.Nil(suite.T(), json.Unmarshal(data, &snapshot))

	assert.Equal(suite.T(), "hemank", snapshot["profile"])
	assert.Len(suite.T(), snapshot["transactions"], 2)
	assert.Len(suite.T(), snapshot["archivedMonths"], 1)
	assert.Equal(suite.T(), map[string]any{"Appartement": "900"}, snapshot["categoryBudgets"])
}

func (suite *TestSuiteStandard) TestImportRoundTrip() {
	suite.switchTo(suite.T(), "hemank")
	data := suite.exportProfile(suite.T())

	// Import into a fresh profile
	suite.switchTo(suite.T(), "jyoti", "1234")
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/import", bytes.NewBuffer(data))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), v1.ImportSummary{
		Profile:        "jyoti",
		Transactions:   2,
		ArchivedMonths: 1,
		Budgets:        1,
		CustomFields:   0,
	}, response.Data)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	assert.Len(suite.T(), transactions.Data, 2)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/archives/2023-12", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestImportMultipart() {
	suite.switchTo(suite.T(), "hemank")
	data := suite.exportProfile(suite.T())

	r := suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/transactions?confirm=yes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", "budget_hemank_2024_01_31.json")
	require.Nil(suite.T(), err)
	_, err = fw.Write(data)
	require.Nil(suite.T(), err)
	require.Nil(suite.T(), mw.Close())

	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, map[string]string{"Content-Type": mw.FormDataContentType()})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	assert.Len(suite.T(), transactions.Data, 2)
}

func (suite *TestSuiteStandard) TestImportInvalid() {
	suite.switchTo(suite.T(), "hemank")
	suite.createTestTransaction(suite.T(), expense("42", "Courses", "2024-01-05"))

	tests := []struct {
		name    string
		body    any
		headers []map[string]string
	}{
		{"Empty body", "", nil},
		{"Not JSON", "profile,transactions", nil},
		{"Missing profile", `{"transactions": [], "archivedMonths": []}`, nil},
		{"Transactions not an array", `{"profile": "hemank", "transactions": {}, "archivedMonths": []}`, nil},
		{"Invalid transaction", `{"profile": "hemank", "transactions": [{"id": 1, "type": "expense", "amount": "-3", "category": "Courses", "description": "x", "date": "2024-01-05"}], "archivedMonths": []}`, nil},
		{"Multipart without file", "", []map[string]string{{"Content-Type": "multipart/form-data; boundary=xyz"}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/import", tt.body, tt.headers...)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}

	// Nothing was changed
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	assert.Len(suite.T(), transactions.Data, 1)
}
