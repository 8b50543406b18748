package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/budget-tracker/backend/internal/controllers/v1"
	"github.com/budget-tracker/backend/test"
)

func expense(amount, category, date string) map[string]any {
	return map[string]any{
		"type":        "expense",
		"amount":      amount,
		"category":    category,
		"description": "Achat",
		"date":        date,
	}
}

func income(amount, date string) map[string]any {
	return map[string]any{
		"type":        "income",
		"amount":      amount,
		"category":    "Salaire",
		"description": "Paie",
		"date":        date,
	}
}

func (suite *TestSuiteStandard) createTestTransaction(t *testing.T, body map[string]any, expectedStatus ...int) v1.TransactionResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(t, http.MethodPost, "http://example.com/v1/transactions", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var transaction v1.TransactionResponse
	if r.Code == http.StatusCreated {
		test.DecodeResponse(t, &r, &transaction)
	}

	return transaction
}

func (suite *TestSuiteStandard) createTestArchive(t *testing.T, body v1.ArchiveCreate, expectedStatus ...int) v1.ArchiveResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(t, http.MethodPost, "http://example.com/v1/archives", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var a v1.ArchiveResponse
	if r.Code == http.StatusCreated {
		test.DecodeResponse(t, &r, &a)
	}

	return a
}
