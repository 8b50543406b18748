package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/budget-tracker/backend/internal/controllers/v1"
	"github.com/budget-tracker/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	suite.switchTo(suite.T(), "hemank")

	custom := expense("80", "custom", "2024-01-09")
	custom["customCategory"] = "Vétérinaire"

	tests := []struct {
		name     string
		body     any
		status   int
		category string
		kind     string
	}{
		{"Expense", expense("14.03", "Courses", "2024-01-05"), http.StatusCreated, "Courses", ""},
		{"Income", income("2500", "2024-01-01"), http.StatusCreated, "Salaire", ""},
		{"Custom category", custom, http.StatusCreated, "Vétérinaire", ""},
		{"Zero amount", expense("0", "Courses", "2024-01-05"), http.StatusBadRequest, "", "out_of_range"},
		{"Negative amount", expense("-5", "Courses", "2024-01-05"), http.StatusBadRequest, "", "out_of_range"},
		{"Missing category", expense("5", "", "2024-01-05"), http.StatusBadRequest, "", "required"},
		{"Invalid type", map[string]any{"type": "transfer", "amount": "5", "category": "Courses", "description": "x", "date": "2024-01-05"}, http.StatusBadRequest, "", "invalid"},
		{"Empty body", "", http.StatusBadRequest, "", ""},
		{"Broken body", `{"type": "expense"`, http.StatusBadRequest, "", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusCreated {
				var response v1.TransactionResponse
				test.DecodeResponse(t, &r, &response)
				assert.NotZero(t, response.Data.ID)
				assert.Equal(t, tt.category, response.Data.Category)
				return
			}

			var response struct {
				Error string `json:"error"`
				Kind  string `json:"kind"`
			}
			test.DecodeResponse(t, &r, &response)
			assert.NotEmpty(t, response.Error)
			assert.Equal(t, tt.kind, response.Kind)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListAndFilter() {
	suite.switchTo(suite.T(), "hemank")
	suite.createTestTransaction(suite.T(), income("2500", "2024-01-01"))
	suite.createTestTransaction(suite.T(), expense("850", "Appartement", "2024-01-03"))
	suite.createTestTransaction(suite.T(), expense("120.50", "Courses", "2024-01-10"))

	tests := []struct {
		query  string
		len    int
		status int
	}{
		{"", 3, http.StatusOK},
		{"type=expense", 2, http.StatusOK},
		{"type=income", 1, http.StatusOK},
		{"category=Courses", 1, http.StatusOK},
		{"type=income&category=Courses", 0, http.StatusOK},
		{"type=transfer", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsEmptyListIsArray() {
	suite.switchTo(suite.T(), "hemank")

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `{"data": []}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestTransactionsGetAndDelete() {
	suite.switchTo(suite.T(), "hemank")
	transaction := suite.createTestTransaction(suite.T(), expense("42", "Courses", "2024-01-05"))
	url := fmt.Sprintf("http://example.com/v1/transactions/%d", transaction.Data.ID)

	r := suite.request(suite.T(), http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), transaction.Data, response.Data)

	r = suite.request(suite.T(), http.MethodDelete, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(suite.T(), http.MethodDelete, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	for _, id := range []string{"0", "-4", "notanumber"} {
		r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/"+id, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestTransactionsClear() {
	suite.switchTo(suite.T(), "hemank")
	suite.createTestTransaction(suite.T(), expense("42", "Courses", "2024-01-05"))
	suite.createTestTransaction(suite.T(), expense("13", "Loisirs", "2024-01-06"))

	r := suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/transactions?confirm=no", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/transactions?confirm=yes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestSummaryAndCategories() {
	suite.switchTo(suite.T(), "hemank")
	suite.createTestTransaction(suite.T(), income("2500", "2024-01-01"))
	suite.createTestTransaction(suite.T(), expense("850", "Appartement", "2024-01-03"))
	suite.createTestTransaction(suite.T(), expense("120.50", "Courses", "2024-01-10"))

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &summary)
	assert.True(suite.T(), decimal.NewFromInt(2500).Equal(summary.Data.Income))
	assert.True(suite.T(), decimal.NewFromFloat(970.5).Equal(summary.Data.Expense))
	assert.True(suite.T(), decimal.NewFromFloat(1529.5).Equal(summary.Data.Balance))
	assert.Equal(suite.T(), 3, summary.Data.Count)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/summary?type=expense&category=Courses", "")
	test.DecodeResponse(suite.T(), &r, &summary)
	assert.Equal(suite.T(), 1, summary.Data.Count)
	assert.True(suite.T(), summary.Data.Income.IsZero())
	assert.True(suite.T(), decimal.NewFromFloat(-120.5).Equal(summary.Data.Balance))

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &categories)
	assert.Equal(suite.T(), []string{"Appartement", "Courses", "Salaire"}, categories.Data)
}
