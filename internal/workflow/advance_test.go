package workflow

import (
	"testing"

	"expenseflow-backend/internal/domain/expense"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name  string
		steps []expense.ApprovalStep
		want  int
	}{
		{
			name:  "fresh chain points at first step",
			steps: []expense.ApprovalStep{step(1, 1, expense.DecisionPending), step(2, 2, expense.DecisionPending)},
			want:  0,
		},
		{
			name: "cursor skips decided prefix",
			steps: []expense.ApprovalStep{
				step(1, 1, expense.DecisionApproved),
				step(2, 2, expense.DecisionPending),
				step(3, 3, expense.DecisionPending),
			},
			want: 1,
		},
		{
			name: "out-of-order decision does not move the cursor past a pending step",
			steps: []expense.ApprovalStep{
				step(1, 1, expense.DecisionPending),
				step(2, 2, expense.DecisionApproved),
			},
			want: 0,
		},
		{
			name: "exhausted chain equals step count",
			steps: []expense.ApprovalStep{
				step(1, 1, expense.DecisionApproved),
				step(2, 2, expense.DecisionRejected),
			},
			want: 2,
		},
		{
			name:  "empty ledger",
			steps: nil,
			want:  0,
		},
		{
			name: "unsorted input is ordered by sequence first",
			steps: []expense.ApprovalStep{
				step(3, 3, expense.DecisionPending),
				step(1, 1, expense.DecisionApproved),
				step(2, 2, expense.DecisionApproved),
			},
			want: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Advance(tt.steps); got != tt.want {
				t.Fatalf("cursor = %d, want %d", got, tt.want)
			}
		})
	}
}
