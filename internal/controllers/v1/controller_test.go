package v1_test

import (
	"net/http"

	v1 "github.com/budget-tracker/backend/internal/controllers/v1"
	"github.com/budget-tracker/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestLinks() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "http://example.com/v1/transactions", response.Links.Transactions)
	assert.Equal(suite.T(), "http://example.com/v1/custom-fields", response.Links.CustomFields)
	assert.Equal(suite.T(), "http://example.com/v1/bank-accounts", response.Links.BankAccounts)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/v1", "OPTIONS, GET"},
		{"/v1/profiles", "OPTIONS, GET"},
		{"/v1/profiles/hemank/switch", "OPTIONS, POST"},
		{"/v1/transactions", "OPTIONS, GET, POST, DELETE"},
		{"/v1/transactions/1", "OPTIONS, GET, DELETE"},
		{"/v1/archives", "OPTIONS, GET, POST"},
		{"/v1/months/new", "OPTIONS, POST"},
		{"/v1/budgets/Courses", "OPTIONS, PUT, DELETE"},
		{"/v1/export", "OPTIONS, GET"},
		{"/v1/import", "OPTIONS, POST"},
		{"/v1/custom-fields/Objectif/value", "OPTIONS, PUT"},
		{"/v1/bank-accounts", "OPTIONS, GET, POST"},
	}

	for _, tt := range tests {
		r := suite.request(suite.T(), http.MethodOptions, "http://example.com"+tt.path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		assert.Equal(suite.T(), tt.allow, r.Header().Get("allow"), tt.path)
	}
}

func (suite *TestSuiteStandard) TestNoActiveProfile() {
	for _, path := range []string{"/v1/transactions", "/v1/summary", "/v1/archives", "/v1/budgets", "/v1/export", "/v1/sync"} {
		r := suite.request(suite.T(), http.MethodGet, "http://example.com"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
	}
}

func (suite *TestSuiteStandard) TestNoManager() {
	r := test.Request(suite.T(), v1.Controller{}, http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestDatabaseError() {
	suite.switchTo(suite.T(), "hemank")
	suite.CloseDB()

	suite.createTestTransaction(suite.T(), expense("42", "Courses", "2024-01-05"), http.StatusInternalServerError)

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/healthz", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
