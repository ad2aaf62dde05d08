package http

import (
	"net/http"
	"time"

	"expenseflow-backend/internal/adapter/middleware"
	"expenseflow-backend/internal/usecase/expense"

	"github.com/labstack/echo/v4"
)

type ExpenseHandler struct{ uc *expense.Usecase }

func NewExpenseHandler(uc *expense.Usecase) *ExpenseHandler { return &ExpenseHandler{uc: uc} }

type submitExpenseReq struct {
	Amount       float64 `json:"amount"        validate:"required,gt=0,dec2"`
	CurrencyCode string  `json:"currency_code" validate:"required,len=3"`
	Category     string  `json:"category"      validate:"required"`
	Description  string  `json:"description"`
	Date         string  `json:"date"          validate:"required,datetime=2006-01-02"`
}

func (h *ExpenseHandler) Submit(c echo.Context) error {
	var req submitExpenseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	date, _ := time.Parse("2006-01-02", req.Date)
	dto, err := h.uc.Submit(c.Request().Context(), middleware.UserID(c), expense.SubmitInput{
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		Category:     req.Category,
		Description:  req.Description,
		Date:         date,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ExpenseHandler) Mine(c echo.Context) error {
	dtos, err := h.uc.Mine(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ExpenseHandler) Steps(c echo.Context) error {
	expenseID := c.Param("expense_id")
	if !reHex32.MatchString(expenseID) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	dtos, err := h.uc.Steps(c.Request().Context(), expenseID, middleware.UserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
