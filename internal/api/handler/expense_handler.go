package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thaalam/admin-system/internal/core/service"
)

// ExpenseHandler adds the financial-year drill-down on top of the generic
// expense CRUD surface.
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// Summary handles GET /v1/expenses/summary.
//
// @Summary      Grouped expense totals for one financial year
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        financial_year  query     string  true   "Financial year, e.g. 2025-26"
// @Param        group_by        query     string  false  "expense_type (default) or vendor"
// @Success      200             {object}  map[string]any
// @Failure      400             {object}  map[string]string
// @Router       /v1/expenses/summary [get]
func (h *ExpenseHandler) Summary(c echo.Context) error {
	financialYear := c.QueryParam("financial_year")
	if financialYear == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "financial_year is required")
	}

	summary, err := h.expenses.Summary(c.Request().Context(), financialYear, c.QueryParam("group_by"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse[*service.ExpenseSummary]{Data: summary})
}
