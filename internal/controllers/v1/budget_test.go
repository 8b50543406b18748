package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/budget-tracker/backend/internal/controllers/v1"
	"github.com/budget-tracker/backend/internal/budget"
	"github.com/budget-tracker/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsSet() {
	suite.switchTo(suite.T(), "hemank")
	suite.createTestTransaction(suite.T(), expense("320", "Courses", "2024-01-05"))

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Valid", map[string]any{"amount": "300"}, http.StatusOK},
		{"Number", map[string]any{"amount": 300}, http.StatusOK},
		{"Zero", map[string]any{"amount": "0"}, http.StatusBadRequest},
		{"Negative", map[string]any{"amount": "-10"}, http.StatusBadRequest},
		{"Too large", map[string]any{"amount": "1000000000"}, http.StatusBadRequest},
		{"Empty body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPut, "http://example.com/v1/budgets/Courses", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.BudgetResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, "Courses", response.Data.Category)
			assert.True(t, decimal.NewFromInt(-20).Equal(response.Data.Remaining))
			assert.True(t, response.Data.Exceeded)
			assert.Equal(t, budget.BandExceeded, response.Data.Band)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsListAndDelete() {
	suite.switchTo(suite.T(), "hemank")
	suite.createTestTransaction(suite.T(), expense("150", "Courses", "2024-01-05"))

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)

	for category, amount := range map[string]string{"Courses": "300", "Loisirs": "100"} {
		r = suite.request(suite.T(), http.MethodPut, "http://example.com/v1/budgets/"+category, v1.BudgetEditable{Amount: decimal.RequireFromString(amount)})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Courses", response.Data[0].Category)
	assert.True(suite.T(), decimal.NewFromInt(50).Equal(response.Data[0].PercentUsed))
	assert.True(suite.T(), decimal.NewFromInt(400).Equal(response.Total.Budget))
	assert.True(suite.T(), decimal.NewFromInt(150).Equal(response.Total.Spent))

	r = suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/budgets/Loisirs", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/budgets/Loisirs", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestBudgetsCategoryIsTrimmed() {
	suite.switchTo(suite.T(), "hemank")

	r := suite.request(suite.T(), http.MethodPut, "http://example.com/v1/budgets/%20Courses", v1.BudgetEditable{Amount: decimal.NewFromInt(300)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Courses", response.Data.Category)
	assert.True(suite.T(), decimal.NewFromInt(300).Equal(response.Data.Budget))

	r = suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/budgets/%20Courses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/budgets/Courses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
