package http

import (
	"errors"
	"net/http"
	"strings"

	"expenseflow-backend/internal/domain/expense"
	"expenseflow-backend/internal/domain/rule"
	"expenseflow-backend/internal/domain/user"
	"expenseflow-backend/internal/infrastructure/currency"
	"expenseflow-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

// domainError maps usecase/domain sentinels to HTTP responses. Anything
// unmatched is treated as an internal error so handlers never leak raw
// storage errors to clients.
func domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, expense.ErrNotFound), errors.Is(err, user.ErrNotFound), errors.Is(err, rule.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, expense.ErrNoPendingStep):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "no pending step for this user"})
	case errors.Is(err, expense.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, user.ErrManagerCycle),
		errors.Is(err, rule.ErrInvalidRuleConfig),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrCountryUnknown),
		errors.Is(err, currency.ErrCountryUnknown),
		errors.Is(err, currency.ErrRateUnavailable):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
