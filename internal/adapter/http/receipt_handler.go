package http

import (
	"net/http"

	"expenseflow-backend/internal/infrastructure/receipt"

	"github.com/labstack/echo/v4"
)

type ReceiptHandler struct{}

func NewReceiptHandler() *ReceiptHandler { return &ReceiptHandler{} }

type parseReceiptReq struct {
	Text string `json:"text" validate:"required"`
}

type parseReceiptResp struct {
	CurrencyCode *string  `json:"currency_code"`
	Amount       *float64 `json:"amount"`
}

// Parse extracts a currency and total from receipt text so clients can
// prefill the expense form. Detection failures are not errors, the fields
// just come back null.
func (h *ReceiptHandler) Parse(c echo.Context) error {
	var req parseReceiptReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	res := receipt.Parse(req.Text)
	resp := parseReceiptResp{Amount: res.Amount}
	if res.CurrencyCode != "" {
		resp.CurrencyCode = &res.CurrencyCode
	}
	return c.JSON(http.StatusOK, resp)
}
