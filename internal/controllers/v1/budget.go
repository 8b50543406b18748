package v1

import (
	"fmt"
	"net/http"

	"github.com/budget-tracker/backend/internal/budget"
	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/budget-tracker/backend/internal/profile"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetListResponse struct {
	Data  []budget.Status `json:"data"`  // Status of every budget, sorted by category
	Total budget.Status   `json:"total"` // Status of all budgets together
}

type BudgetResponse struct {
	Data budget.Status `json:"data"` // Status of the budget
}

type BudgetEditable struct {
	Amount decimal.Decimal `json:"amount" example:"300" swaggertype:"string"` // Spending ceiling of the category
}

func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", co.GetBudgets)
	}

	// Budget for a category
	{
		r.OPTIONS("/:category", OptionsBudgetDetail)
		r.PUT("/:category", co.SetBudget)
		r.DELETE("/:category", co.DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			category	path	string	true	"Category"
// @Router			/v1/budgets/{category} [options]
func OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// @Summary		Get budgets
// @Description	Returns the status of all category budgets of the active profile, computed from the current transactions
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		409	{object}	httpError
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	co.session(c, func(s *profile.Session) error {
		statuses, total := s.Budgets()
		if statuses == nil {
			statuses = []budget.Status{}
		}

		c.JSON(http.StatusOK, BudgetListResponse{Data: statuses, Total: total})
		return nil
	})
}

// @Summary		Set budget
// @Description	Sets the spending ceiling of a category
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetResponse
// @Failure		400			{object}	httpError
// @Failure		409			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	path		string			true	"Category"
// @Param			budget		body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{category} [put]
func (co Controller) SetBudget(c *gin.Context) {
	var data BudgetEditable
	if err := httputil.BindData(c, &data); err != nil {
		badRequest(c, err)
		return
	}

	co.session(c, func(s *profile.Session) error {
		status, err := s.SetBudget(c.Request.Context(), c.Param("category"), data.Amount)
		if err != nil {
			return err
		}

		c.JSON(http.StatusOK, BudgetResponse{Data: status})
		return nil
	})
}

// @Summary		Delete budget
// @Description	Removes the spending ceiling of a category
// @Tags			Budgets
// @Success		204
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	path		string	true	"Category"
// @Router			/v1/budgets/{category} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	category := c.Param("category")

	co.session(c, func(s *profile.Session) error {
		deleted, err := s.RemoveBudget(c.Request.Context(), category)
		if err != nil {
			return err
		}

		if !deleted {
			return fmt.Errorf("budget for %s: %w", category, profile.ErrNotFound)
		}

		c.Status(http.StatusNoContent)
		return nil
	})
}
