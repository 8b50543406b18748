package v1_test

import (
	"net/http"
	"net/url"
	"testing"

	v1 "github.com/budget-tracker/backend/internal/controllers/v1"
	"github.com/budget-tracker/backend/internal/customfield"
	"github.com/budget-tracker/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCustomFieldsCreate() {
	suite.switchTo(suite.T(), "hemank")

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Text", customfield.Field{Name: "Notes", Type: customfield.TypeTextarea}, http.StatusCreated},
		{"Currency", customfield.Field{Name: "Objectif", Type: customfield.TypeCurrency}, http.StatusCreated},
		{"Duplicate", customfield.Field{Name: "Objectif", Type: customfield.TypeText}, http.StatusBadRequest},
		{"Unknown type", customfield.Field{Name: "Date", Type: "date"}, http.StatusBadRequest},
		{"No name", customfield.Field{Type: customfield.TypeText}, http.StatusBadRequest},
		{"Empty body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/custom-fields", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/custom-fields", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CustomFieldListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), []customfield.Field{
		{Name: "Notes", Type: customfield.TypeTextarea},
		{Name: "Objectif", Type: customfield.TypeCurrency},
	}, response.Data)
	assert.Empty(suite.T(), response.Values)
}

func (suite *TestSuiteStandard) TestCustomFieldsValues() {
	suite.switchTo(suite.T(), "hemank")

	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/custom-fields", customfield.Field{Name: "Objectif d'épargne", Type: customfield.TypeCurrency})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	path := "http://example.com/v1/custom-fields/" + url.PathEscape("Objectif d'épargne")

	tests := []struct {
		name   string
		path   string
		value  string
		status int
	}{
		{"Number", path + "/value", "1500", http.StatusNoContent},
		{"Not a number", path + "/value", "beaucoup", http.StatusBadRequest},
		{"Unknown field", "http://example.com/v1/custom-fields/Inconnu/value", "1", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPut, tt.path, v1.CustomFieldValue{Value: tt.value})
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/custom-fields", "")
	var response v1.CustomFieldListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), map[string]string{"Objectif d'épargne": "1500"}, response.Values)

	r = suite.request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/custom-fields", "")
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)
	assert.Len(suite.T(), response.Values, 0)
}
