package v1

import (
	"net/http"
	"time"

	"github.com/budget-tracker/backend/internal/bankimport"
	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/ledger"
	"github.com/budget-tracker/backend/internal/profile"
	"github.com/budget-tracker/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type BankAccountListResponse struct {
	Data []bankimport.Account `json:"data"` // Linked bank accounts
}

type BankAccountResponse struct {
	Data bankimport.Account `json:"data"`
}

type BankAccountCreate struct {
	Bank  string `json:"bank" example:"Banque Populaire"` // Name of the bank
	Label string `json:"label" example:"Compte courant"`  // Label of the account
}

type StatementImport struct {
	Month types.Month `json:"month" swaggertype:"string" example:"2024-01"` // Month of the statement
}

type StatementImportResponse struct {
	Data profile.ImportResult `json:"data"`
}

func (co Controller) RegisterBankAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBankAccountList)
		r.GET("", co.GetBankAccounts)
		r.POST("", co.CreateBankAccount)
	}

	// Statement import
	{
		r.OPTIONS("/:id/import", OptionsBankAccountImport)
		r.POST("/:id/import", co.ImportStatement)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bank Accounts
// @Success		204
// @Router			/v1/bank-accounts [options]
func OptionsBankAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bank Accounts
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/bank-accounts/{id}/import [options]
func OptionsBankAccountImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get bank accounts
// @Description	Returns all bank accounts linked to the active profile
// @Tags			Bank Accounts
// @Produce		json
// @Success		200	{object}	BankAccountListResponse
// @Failure		409	{object}	httpError
// @Router			/v1/bank-accounts [get]
func (co Controller) GetBankAccounts(c *gin.Context) {
	co.session(c, func(s *profile.Session) error {
		accounts := s.BankAccounts()
		if accounts == nil {
			accounts = []bankimport.Account{}
		}

		c.JSON(http.StatusOK, BankAccountListResponse{Data: accounts})
		return nil
	})
}

// @Summary		Link bank account
// @Description	Links a bank account to the active profile
// @Tags			Bank Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	BankAccountResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			account	body		BankAccountCreate	true	"Bank account"
// @Router			/v1/bank-accounts [post]
func (co Controller) CreateBankAccount(c *gin.Context) {
	var data BankAccountCreate
	if err := httputil.BindData(c, &data); err != nil {
		badRequest(c, err)
		return
	}

	co.session(c, func(s *profile.Session) error {
		a, err := s.LinkBankAccount(c.Request.Context(), data.Bank, data.Label)
		if err != nil {
			return err
		}

		c.JSON(http.StatusCreated, BankAccountResponse{Data: a})
		return nil
	})
}

// @Summary		Import statement
// @Description	Imports the statement of a bank account for a month into the ledger. Lines that were imported before are skipped.
// @Tags			Bank Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	StatementImportResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string			true	"ID formatted as string"
// @Param			month	body		StatementImport	true	"Month"
// @Router			/v1/bank-accounts/{id}/import [post]
func (co Controller) ImportStatement(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}

	var data StatementImport
	if err := httputil.BindData(c, &data); err != nil {
		badRequest(c, err)
		return
	}

	if time.Time(data.Month).IsZero() {
		badRequest(c, errMonthNotSet)
		return
	}

	co.session(c, func(s *profile.Session) error {
		result, err := s.ImportBankStatement(c.Request.Context(), id, data.Month)
		if err != nil {
			return err
		}

		if result.Imported == nil {
			result.Imported = []ledger.Transaction{}
		}

		c.JSON(http.StatusCreated, StatementImportResponse{Data: result})
		return nil
	})
}
