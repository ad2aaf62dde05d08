package http

import (
	"net/http"

	"expenseflow-backend/internal/adapter/middleware"
	domainRule "expenseflow-backend/internal/domain/rule"
	domainUser "expenseflow-backend/internal/domain/user"
	"expenseflow-backend/internal/usecase/directory"
	"expenseflow-backend/internal/usecase/policy"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the company roster and approval-rule endpoints. Routes
// are mounted behind the admin role guard.
type AdminHandler struct {
	directory *directory.Usecase
	policy    *policy.Usecase
}

func NewAdminHandler(d *directory.Usecase, p *policy.Usecase) *AdminHandler {
	return &AdminHandler{directory: d, policy: p}
}

type createUserReq struct {
	Email             string `json:"email"               validate:"required,email"`
	FullName          string `json:"full_name"           validate:"required"`
	Password          string `json:"password"            validate:"required,min=8"`
	Role              string `json:"role"                validate:"required,role"`
	ManagerUserID     string `json:"manager_user_id"     validate:"omitempty,hex32"`
	IsManagerApprover bool   `json:"is_manager_approver"`
}

func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.directory.CreateUser(c.Request().Context(), middleware.UserID(c), directory.CreateUserInput{
		Email:             req.Email,
		FullName:          req.FullName,
		Password:          req.Password,
		Role:              domainUser.Role(req.Role),
		ManagerUserID:     req.ManagerUserID,
		IsManagerApprover: req.IsManagerApprover,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	dtos, err := h.directory.ListUsers(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type createRuleReq struct {
	Type             string `json:"type"              validate:"required,ruletype"`
	ThresholdPercent *int   `json:"threshold_percent" validate:"omitempty,gte=1,lte=100"`
	SpecificUserID   string `json:"specific_user_id"  validate:"omitempty,hex32"`
	Priority         *int   `json:"priority"          validate:"omitempty,gte=0"`
}

func (h *AdminHandler) CreateRule(c echo.Context) error {
	var req createRuleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.policy.CreateRule(c.Request().Context(), middleware.UserID(c), policy.CreateRuleInput{
		Type:             domainRule.Type(req.Type),
		ThresholdPercent: req.ThresholdPercent,
		SpecificUserID:   req.SpecificUserID,
		Priority:         req.Priority,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AdminHandler) ListRules(c echo.Context) error {
	dtos, err := h.policy.ListRules(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
