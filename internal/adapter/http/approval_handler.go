package http

import (
	"net/http"

	"expenseflow-backend/internal/adapter/middleware"
	"expenseflow-backend/internal/usecase/expense"

	"github.com/labstack/echo/v4"
)

type ApprovalHandler struct{ uc *expense.Usecase }

func NewApprovalHandler(uc *expense.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

func (h *ApprovalHandler) Pending(c echo.Context) error {
	dtos, err := h.uc.PendingFor(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type actReq struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
	Comment  string `json:"comment"`
}

func (h *ApprovalHandler) Act(c echo.Context) error {
	expenseID := c.Param("expense_id")
	if !reHex32.MatchString(expenseID) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	var req actReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Act(c.Request().Context(), expenseID, middleware.UserID(c), req.Decision == "approved", req.Comment)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
