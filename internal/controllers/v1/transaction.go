package v1

import (
	"fmt"
	"net/http"

	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/ledger"
	"github.com/budget-tracker/backend/internal/profile"
	"github.com/gin-gonic/gin"
)

type TransactionListResponse struct {
	Data []ledger.Transaction `json:"data"` // List of transactions, newest first
}

type TransactionResponse struct {
	Data ledger.Transaction `json:"data"` // Data for the transaction
}

type SummaryResponse struct {
	Data ledger.Totals `json:"data"` // Totals of the matching transactions
}

type CategoryListResponse struct {
	Data []string `json:"data" example:"Courses"` // Categories used by the current transactions, sorted
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
		r.DELETE("", co.DeleteTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", co.GetSummary)
}

func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategoryList)
	r.GET("", co.GetCategories)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// filter binds and verifies the transaction filter of the query string
func filter(c *gin.Context) (ledger.Filter, error) {
	var f ledger.Filter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&f)

	if f.Type != "" && !f.Type.Valid() {
		return ledger.Filter{}, errInvalidFilterType
	}

	return f, nil
}

// @Summary		Get transactions
// @Description	Returns the transactions of the active profile, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	httpError
// @Failure		409			{object}	httpError
// @Param			type		query		string	false	"Filter by type, 'income' or 'expense'"
// @Param			category	query		string	false	"Filter by category"
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	f, err := filter(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	co.session(c, func(s *profile.Session) error {
		transactions := s.Transactions(f)
		if transactions == nil {
			transactions = []ledger.Transaction{}
		}

		c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
		return nil
	})
}

// @Summary		Create transaction
// @Description	Adds a transaction to the active profile. For expenses, the category "custom" is replaced with customCategory.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httpError
// @Failure		409			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		ledger.Input	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var in ledger.Input
	if err := httputil.BindData(c, &in); err != nil {
		badRequest(c, err)
		return
	}

	co.session(c, func(s *profile.Session) error {
		t, err := s.AddTransaction(c.Request.Context(), in)
		if err != nil {
			return err
		}

		c.JSON(http.StatusCreated, TransactionResponse{Data: t})
		return nil
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	id, err := httputil.IDFromString(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	co.session(c, func(s *profile.Session) error {
		t, ok := s.Transaction(id)
		if !ok {
			return fmt.Errorf("transaction %d: %w", id, profile.ErrNotFound)
		}

		c.JSON(http.StatusOK, TransactionResponse{Data: t})
		return nil
	})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	id, err := httputil.IDFromString(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	co.session(c, func(s *profile.Session) error {
		deleted, err := s.DeleteTransaction(c.Request.Context(), id)
		if err != nil {
			return err
		}

		if !deleted {
			return fmt.Errorf("transaction %d: %w", id, profile.ErrNotFound)
		}

		c.Status(http.StatusNoContent)
		return nil
	})
}

// @Summary		Delete all transactions
// @Description	Permanently deletes all current transactions of the active profile. Archives and budgets are kept.
// @Tags			Transactions
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all transactions. Must have the value 'yes'"
// @Router			/v1/transactions [delete]
func (co Controller) DeleteTransactions(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	if err := c.Bind(&params); err != nil || params.Confirm != "yes" {
		badRequest(c, errCleanupConfirmation)
		return
	}

	co.session(c, func(s *profile.Session) error {
		if err := s.ClearTransactions(c.Request.Context()); err != nil {
			return err
		}

		c.Status(http.StatusNoContent)
		return nil
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns total income, total expense, balance and count of the matching transactions
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	SummaryResponse
// @Failure		400			{object}	httpError
// @Failure		409			{object}	httpError
// @Param			type		query		string	false	"Filter by type, 'income' or 'expense'"
// @Param			category	query		string	false	"Filter by category"
// @Router			/v1/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	f, err := filter(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	co.session(c, func(s *profile.Session) error {
		c.JSON(http.StatusOK, SummaryResponse{Data: s.Summary(f)})
		return nil
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the categories used by the current transactions
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		409	{object}	httpError
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	co.session(c, func(s *profile.Session) error {
		categories := s.Categories()
		if categories == nil {
			categories = []string{}
		}

		c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
		return nil
	})
}
