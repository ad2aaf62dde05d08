package policy

import (
	"context"

	domainRule "expenseflow-backend/internal/domain/rule"
	"expenseflow-backend/internal/domain/uow"
	domainUser "expenseflow-backend/internal/domain/user"
	"expenseflow-backend/pkg/id"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type CreateRuleInput struct {
	Type             domainRule.Type
	ThresholdPercent *int
	SpecificUserID   string // public id, set for specific/hybrid
	Priority         *int   // nil appends after existing rules
}

type RuleDTO struct {
	RuleID           string  `json:"rule_id"`
	Type             string  `json:"type"`
	ThresholdPercent *int    `json:"threshold_percent,omitempty"`
	SpecificUserID   *string `json:"specific_user_id,omitempty"`
	Priority         int     `json:"priority"`
}

// CreateRule validates the configuration up front; evaluation never does.
// Percentage and hybrid rules need a threshold in 1..100, specific and hybrid
// rules need an approver inside the company.
func (u *Usecase) CreateRule(ctx context.Context, adminID uint64, in CreateRuleInput) (*RuleDTO, error) {
	if !in.Type.Valid() {
		return nil, domainRule.ErrInvalidRuleConfig
	}
	needsThreshold := in.Type == domainRule.TypePercentage || in.Type == domainRule.TypeHybrid
	needsSpecific := in.Type == domainRule.TypeSpecific || in.Type == domainRule.TypeHybrid

	if needsThreshold {
		if in.ThresholdPercent == nil || *in.ThresholdPercent < 1 || *in.ThresholdPercent > 100 {
			return nil, domainRule.ErrInvalidRuleConfig
		}
	}
	if needsSpecific && in.SpecificUserID == "" {
		return nil, domainRule.ErrInvalidRuleConfig
	}

	var dto *RuleDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		admin, err := r.Users.GetByID(ctx, adminID)
		if err != nil {
			return domainUser.ErrNotFound
		}
		companyID := admin.CompanyID

		var specificID *uint64
		var specificPublic *string
		if in.SpecificUserID != "" {
			usr, err := r.Users.GetByUserID(ctx, in.SpecificUserID)
			if err != nil || usr.CompanyID != companyID {
				return domainRule.ErrInvalidRuleConfig
			}
			specificID = &usr.ID
			specificPublic = &usr.UserID
		}

		priority := 0
		if in.Priority != nil {
			priority = *in.Priority
		} else {
			max, err := r.Rules.MaxPriority(ctx, companyID)
			if err != nil {
				return err
			}
			priority = max + 1
		}

		rl := &domainRule.ApprovalRule{
			RuleID:           id.NewID32(),
			CompanyID:        companyID,
			Type:             in.Type,
			ThresholdPercent: in.ThresholdPercent,
			SpecificUserID:   specificID,
			Priority:         priority,
		}
		if err := r.Rules.Create(ctx, rl); err != nil {
			return err
		}
		dto = &RuleDTO{
			RuleID:           rl.RuleID,
			Type:             string(rl.Type),
			ThresholdPercent: rl.ThresholdPercent,
			SpecificUserID:   specificPublic,
			Priority:         rl.Priority,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) ListRules(ctx context.Context, callerID uint64) ([]RuleDTO, error) {
	var out []RuleDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		caller, err := r.Users.GetByID(ctx, callerID)
		if err != nil {
			return domainUser.ErrNotFound
		}
		companyID := caller.CompanyID

		rules, err := r.Rules.ListByCompany(ctx, companyID)
		if err != nil {
			return err
		}
		users, err := r.Users.ListByCompany(ctx, companyID)
		if err != nil {
			return err
		}
		publicByID := make(map[uint64]string, len(users))
		for i := range users {
			publicByID[users[i].ID] = users[i].UserID
		}
		out = make([]RuleDTO, 0, len(rules))
		for i := range rules {
			rl := &rules[i]
			dto := RuleDTO{
				RuleID:           rl.RuleID,
				Type:             string(rl.Type),
				ThresholdPercent: rl.ThresholdPercent,
				Priority:         rl.Priority,
			}
			if rl.SpecificUserID != nil {
				if pub, ok := publicByID[*rl.SpecificUserID]; ok {
					dto.SpecificUserID = &pub
				}
			}
			out = append(out, dto)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
