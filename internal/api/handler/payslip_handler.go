package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thaalam/admin-system/internal/core/service"
)

// PayslipHandler serves the server-assigned document number the console
// fetches eagerly when a create form opens.
type PayslipHandler struct {
	sequences *service.SequenceService
}

func NewPayslipHandler(sequences *service.SequenceService) *PayslipHandler {
	return &PayslipHandler{sequences: sequences}
}

type nextNumberResponse struct {
	Number string `json:"number"`
}

// NextNumber handles GET /v1/payslips/next-number.
//
// @Summary      Reserve the next payslip document number
// @Tags         payslips
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /v1/payslips/next-number [get]
func (h *PayslipHandler) NextNumber(c echo.Context) error {
	number, err := h.sequences.NextDocumentNumber(c.Request().Context(), "pay")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse[nextNumberResponse]{Data: nextNumberResponse{Number: number}})
}
