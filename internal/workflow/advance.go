package workflow

import (
	"sort"

	"expenseflow-backend/internal/domain/expense"
)

// Advance derives the current-step cursor from the ledger: the 0-based index
// of the lowest-sequence pending step, or the step count when none remain.
// The cursor is informational only; it never gates who may act.
func Advance(steps []expense.ApprovalStep) int {
	ordered := make([]expense.ApprovalStep, len(steps))
	copy(ordered, steps)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Sequence < ordered[j].Sequence })

	for idx := range ordered {
		if ordered[idx].Decision == expense.DecisionPending {
			return idx
		}
	}
	return len(ordered)
}
