package v1_test

import (
	"net/http"

	v1 "github.com/budget-tracker/backend/internal/controllers/v1"
	"github.com/budget-tracker/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestBankAccount() v1.BankAccountResponse {
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/bank-accounts", v1.BankAccountCreate{Bank: "Banque Populaire", Label: "Compte courant"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var account v1.BankAccountResponse
	test.DecodeResponse(suite.T(), &r, &account)
	return account
}

func (suite *TestSuiteStandard) TestBankAccountsLink() {
	suite.switchTo(suite.T(), "hemank")

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/bank-accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `{"data": []}`, r.Body.String())

	account := suite.createTestBankAccount()
	assert.NotEqual(suite.T(), uuid.Nil, account.Data.ID)
	assert.Equal(suite.T(), "Banque Populaire", account.Data.Bank)

	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/bank-accounts", v1.BankAccountCreate{Bank: "Banque Populaire"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/bank-accounts", "")
	var accounts v1.BankAccountListResponse
	test.DecodeResponse(suite.T(), &r, &accounts)
	require.Len(suite.T(), accounts.Data, 1)
	assert.Equal(suite.T(), account.Data.ID, accounts.Data[0].ID)
}

func (suite *TestSuiteStandard) TestBankAccountsImportStatement() {
	suite.switchTo(suite.T(), "hemank")
	account := suite.createTestBankAccount()
	path := "http://example.com/v1/bank-accounts/" + account.Data.ID.String() + "/import"

	r := suite.request(suite.T(), http.MethodPost, path, map[string]any{"month": "2024-01"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var first v1.StatementImportResponse
	test.DecodeResponse(suite.T(), &r, &first)
	require.NotEmpty(suite.T(), first.Data.Imported)
	for _, transaction := range first.Data.Imported {
		assert.True(suite.T(), transaction.Imported)
		assert.Equal(suite.T(), account.Data.ID.String(), transaction.BankAccount)
	}

	// Lines are only imported once
	r = suite.request(suite.T(), http.MethodPost, path, map[string]any{"month": "2024-01"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var second v1.StatementImportResponse
	test.DecodeResponse(suite.T(), &r, &second)
	assert.Len(suite.T(), second.Data.Imported, 0)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	assert.Len(suite.T(), transactions.Data, len(first.Data.Imported))
}

func (suite *TestSuiteStandard) TestBankAccountsImportStatementErrors() {
	suite.switchTo(suite.T(), "hemank")
	account := suite.createTestBankAccount()

	tests := []struct {
		name   string
		id     string
		body   any
		status int
	}{
		{"Invalid ID", "not-a-uuid", map[string]any{"month": "2024-01"}, http.StatusBadRequest},
		{"Unknown account", uuid.New().String(), map[string]any{"month": "2024-01"}, http.StatusNotFound},
		{"No month", account.Data.ID.String(), map[string]any{}, http.StatusBadRequest},
		{"Invalid month", account.Data.ID.String(), map[string]any{"month": "janvier"}, http.StatusBadRequest},
		{"Empty body", account.Data.ID.String(), "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/bank-accounts/"+tt.id+"/import", tt.body)
		test.AssertHTTPStatus(suite.T(), &r, tt.status)
	}
}
