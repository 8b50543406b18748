package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/budget-tracker/backend/internal/controllers/v1"
	"github.com/budget-tracker/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestProfilesList() {
	suite.switchTo(suite.T(), "hemank")

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/profiles", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProfileListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), []v1.Profile{
		{ID: "hemank", HasPIN: false, Locked: false, Active: true},
		{ID: "jyoti", HasPIN: true, Locked: true, Active: false},
	}, response.Data)
}

func (suite *TestSuiteStandard) TestProfilesSwitch() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int
	}{
		{"Unknown profile", "ravi", "", http.StatusNotFound},
		{"Locked without PIN", "jyoti", "", http.StatusForbidden},
		{"Wrong PIN", "jyoti", v1.ProfileSwitch{PIN: "0000"}, http.StatusForbidden},
		{"Broken body", "jyoti", `{"pin": 1234`, http.StatusBadRequest},
		{"Correct PIN", "jyoti", v1.ProfileSwitch{PIN: "1234"}, http.StatusOK},
		{"Unlocked profile needs no PIN", "jyoti", "", http.StatusOK},
		{"Profile without PIN", "hemank", "", http.StatusOK},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/profiles/"+tt.id+"/switch", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.ProfileSwitchResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, tt.id, response.Data.ID)
				assert.True(t, response.Data.Active)
				assert.Empty(t, response.Warnings)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesKeepDataApart() {
	suite.switchTo(suite.T(), "hemank")
	suite.createTestTransaction(suite.T(), expense("42", "Courses", "2024-01-05"))

	suite.switchTo(suite.T(), "jyoti", "1234")
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)

	suite.switchTo(suite.T(), "hemank")
	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestProfilesLock() {
	suite.switchTo(suite.T(), "jyoti", "1234")

	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/profiles/jyoti/lock", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The active profile was closed
	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/profiles/jyoti/switch", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/profiles/ravi/lock", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSync() {
	suite.switchTo(suite.T(), "hemank")
	suite.createTestTransaction(suite.T(), income("2500", "2024-01-01"))

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/sync", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Data struct {
			Profile string            `json:"profile"`
			Remote  bool              `json:"remote"`
			States  map[string]string `json:"states"`
		} `json:"data"`
	}
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "hemank", response.Data.Profile)
	assert.False(suite.T(), response.Data.Remote)
	assert.Equal(suite.T(), "local", response.Data.States["transactions"])
}
