package v1_test

import (
	"net/http"
	"strings"

	v1 "github.com/budget-tracker/backend/internal/controllers/v1"
	"github.com/budget-tracker/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestArchivesCreate() {
	suite.switchTo(suite.T(), "hemank")
	suite.createTestTransaction(suite.T(), income("2500", "2024-01-01"))
	suite.createTestTransaction(suite.T(), expense("850", "Appartement", "2024-01-03"))

	a := suite.createTestArchive(suite.T(), v1.ArchiveCreate{})
	assert.Equal(suite.T(), "2024-01", a.Data.Key)
	assert.Equal(suite.T(), "Janvier", a.Data.Month)
	assert.Equal(suite.T(), 2024, a.Data.Year)
	assert.Equal(suite.T(), 2, a.Data.Summary.TransactionCount)
	assert.True(suite.T(), decimal.NewFromInt(1650).Equal(a.Data.Summary.Balance))

	// Archiving twice needs force
	suite.createTestArchive(suite.T(), v1.ArchiveCreate{}, http.StatusConflict)
	suite.createTestArchive(suite.T(), v1.ArchiveCreate{Force: true})

	// Explicit months
	a = suite.createTestArchive(suite.T(), v1.ArchiveCreate{Month: "2023-12"})
	assert.Equal(suite.T(), "Décembre", a.Data.Month)
	suite.createTestArchive(suite.T(), v1.ArchiveCreate{Month: "décembre"}, http.StatusBadRequest)

	// Archiving does not clear the ledger
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	assert.Len(suite.T(), transactions.Data, 2)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/archives", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var archives v1.ArchiveListResponse
	test.DecodeResponse(suite.T(), &r, &archives)
	assert.Len(suite.T(), archives.Data, 2)
}

func (suite *TestSuiteStandard) TestArchivesGetAndDelete() {
	suite.switchTo(suite.T(), "hemank")
	suite.createTestTransaction(suite.T(), expense("14.5", "Courses", "2024-01-03"))
	suite.createTestArchive(suite.T(), v1.ArchiveCreate{Month: "2024-01"})

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/archives/2024-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var a v1.ArchiveResponse
	test.DecodeResponse(suite.T(), &r, &a)
	assert.Len(suite.T(), a.Data.Transactions, 1)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/archives/2024-01/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.Equal(suite.T(), "text/csv; charset=utf-8", r.Header().Get("Content-Type"))
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), "budget_hemank_Janvier_2024.csv")
	assert.True(suite.T(), strings.HasPrefix(r.Body.String(), "Month,Janvier 2024\n"), r.Body.String())
	assert.Contains(suite.T(), r.Body.String(), "2024-01-03,expense,Courses,Achat,14.50\n")

	r = suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/archives/2024-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		r = suite.request(suite.T(), method, "http://example.com/v1/archives/2024-01", "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}
}

func (suite *TestSuiteStandard) TestArchivesListFormats() {
	suite.switchTo(suite.T(), "hemank")

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/archives", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `{"data": []}`, r.Body.String())

	suite.createTestTransaction(suite.T(), expense("14.5", "Courses", "2024-01-03"))
	suite.createTestArchive(suite.T(), v1.ArchiveCreate{Month: "2024-01"})
	suite.createTestArchive(suite.T(), v1.ArchiveCreate{Month: "2023-12"})

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/archives?format=csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), "budget_hemank_archives.csv")
	assert.Equal(suite.T(), 2, strings.Count(r.Body.String(), "Month,"))

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/archives?format=xml", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMonthsNew() {
	suite.switchTo(suite.T(), "hemank")

	// Nothing to archive
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/months/new", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	suite.createTestTransaction(suite.T(), income("2500", "2024-01-01"))
	suite.createTestTransaction(suite.T(), expense("850", "Appartement", "2024-01-03"))

	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/months/new", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var a v1.ArchiveResponse
	test.DecodeResponse(suite.T(), &r, &a)
	assert.Equal(suite.T(), "2024-01", a.Data.Key)
	assert.Equal(suite.T(), 2, a.Data.Summary.TransactionCount)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	assert.JSONEq(suite.T(), `{"data": []}`, r.Body.String())

	// A second new month of the same month must be forced
	suite.createTestTransaction(suite.T(), expense("20", "Courses", "2024-01-30"))
	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/months/new", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/months/new", v1.NewMonth{Force: true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	test.DecodeResponse(suite.T(), &r, &a)
	assert.Equal(suite.T(), 1, a.Data.Summary.TransactionCount)
}
