package v1

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/profile"
	"github.com/budget-tracker/backend/internal/storage"
	"github.com/gin-gonic/gin"
)

// Controller serves the v1 API for the profiles of the manager.
type Controller struct {
	Manager *profile.Manager
	Storage *storage.Local
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	co.RegisterProfileRoutes(r.Group("/profiles"))
	co.RegisterSyncRoutes(r.Group("/sync"))
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterSummaryRoutes(r.Group("/summary"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterArchiveRoutes(r.Group("/archives"))
	co.RegisterMonthRoutes(r.Group("/months"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterExportRoutes(r.Group("/export"))
	co.RegisterImportRoutes(r.Group("/import"))
	co.RegisterCustomFieldRoutes(r.Group("/custom-fields"))
	co.RegisterBankAccountRoutes(r.Group("/bank-accounts"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Profiles     string `json:"profiles" example:"https://example.com/api/v1/profiles"`          // URL of Profile collection endpoint
	Sync         string `json:"sync" example:"https://example.com/api/v1/sync"`                  // URL of the synchronization state endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"`  // URL of Transaction collection endpoint
	Summary      string `json:"summary" example:"https://example.com/api/v1/summary"`            // URL of the summary endpoint
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`      // URL of the endpoint listing categories in use
	Archives     string `json:"archives" example:"https://example.com/api/v1/archives"`          // URL of Archive collection endpoint
	Months       string `json:"months" example:"https://example.com/api/v1/months"`              // URL of Month endpoint
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`            // URL of Budget collection endpoint
	Export       string `json:"export" example:"https://example.com/api/v1/export"`              // URL of the export endpoint
	Import       string `json:"import" example:"https://example.com/api/v1/import"`              // URL of the import endpoint
	CustomFields string `json:"customFields" example:"https://example.com/api/v1/custom-fields"` // URL of Custom Field collection endpoint
	BankAccounts string `json:"bankAccounts" example:"https://example.com/api/v1/bank-accounts"` // URL of Bank Account collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := httputil.BaseURL(c) + "/v1"

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Profiles:     url + "/profiles",
			Sync:         url + "/sync",
			Transactions: url + "/transactions",
			Summary:      url + "/summary",
			Categories:   url + "/categories",
			Archives:     url + "/archives",
			Months:       url + "/months",
			Budgets:      url + "/budgets",
			Export:       url + "/export",
			Import:       url + "/import",
			CustomFields: url + "/custom-fields",
			BankAccounts: url + "/bank-accounts",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// session calls fn with the session of the active profile. Errors
// returned by fn are rendered, fn renders the response on success.
func (co Controller) session(c *gin.Context, fn func(s *profile.Session) error) {
	if co.Manager == nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: "the profile manager is not configured"})
		return
	}

	err := co.Manager.With(fn)
	if err != nil {
		renderError(c, err)
	}
}
