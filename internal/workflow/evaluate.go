package workflow

import (
	"sort"

	"expenseflow-backend/internal/domain/expense"
	"expenseflow-backend/internal/domain/rule"
)

// Outcome is the evaluator's verdict over one expense ledger.
type Outcome string

const (
	// OutcomePending means no rule fired and steps are still undecided.
	OutcomePending Outcome = "pending"
	OutcomeApproved Outcome = "approved"
	OutcomeRejected Outcome = "rejected"
)

// Evaluate re-checks company rules against the current ledger. Called after
// every recorded decision and once at submission.
//
// A single rejected step vetoes the expense outright; no rule overrides it.
// Otherwise rules act as accelerators: the first one (in priority order)
// whose condition holds approves the expense even with steps still pending.
// When no rule fires, the fallback approves only once every step has
// approved, vacuously true for an empty ledger, so a zero-step expense
// finalizes to approved immediately.
func Evaluate(rules []rule.ApprovalRule, steps []expense.ApprovalStep) Outcome {
	total := len(steps)
	approved := 0
	for i := range steps {
		switch steps[i].Decision {
		case expense.DecisionRejected:
			return OutcomeRejected
		case expense.DecisionApproved:
			approved++
		}
	}

	ordered := make([]rule.ApprovalRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		return ordered[i].ID < ordered[j].ID
	})

	for i := range ordered {
		r := &ordered[i]
		switch r.Type {
		case rule.TypePercentage:
			if percentageMet(r, approved, total) {
				return OutcomeApproved
			}
		case rule.TypeSpecific:
			if specificMet(r, steps) {
				return OutcomeApproved
			}
		case rule.TypeHybrid:
			if percentageMet(r, approved, total) || specificMet(r, steps) {
				return OutcomeApproved
			}
		}
	}

	if approved == total {
		return OutcomeApproved
	}
	return OutcomePending
}

// A missing or out-of-range threshold never errors at evaluation time; the
// condition is simply not satisfied.
func percentageMet(r *rule.ApprovalRule, approved, total int) bool {
	if r.ThresholdPercent == nil || total == 0 {
		return false
	}
	return float64(approved)/float64(total)*100.0 >= float64(*r.ThresholdPercent)
}

func specificMet(r *rule.ApprovalRule, steps []expense.ApprovalStep) bool {
	if r.SpecificUserID == nil {
		return false
	}
	for i := range steps {
		if steps[i].ApproverUserID == *r.SpecificUserID && steps[i].Decision == expense.DecisionApproved {
			return true
		}
	}
	return false
}
