package workflow

import (
	"sort"

	"expenseflow-backend/internal/domain/user"
)

// MaxChainLen caps the number of approval steps built for one expense.
const MaxChainLen = 5

// StepSpec is one approver slot produced by the chain builder, before any
// persistence identity exists.
type StepSpec struct {
	ApproverID uint64
	Sequence   int
}

// BuildChain produces the ordered approver chain for a new expense.
//
// The submitter's line manager goes first when the manager has the
// is_manager_approver flag. Every other manager in the company follows in
// ascending id order, excluding the submitter and the direct manager. The
// chain is capped at MaxChainLen steps. A company without eligible approvers
// yields an empty chain.
func BuildChain(employee *user.User, roster []user.User) []StepSpec {
	steps := make([]StepSpec, 0, MaxChainLen)
	seq := 1

	var directManagerID uint64
	if employee.ManagerID != nil {
		directManagerID = *employee.ManagerID
		for i := range roster {
			if roster[i].ID == directManagerID && roster[i].IsManagerApprover {
				steps = append(steps, StepSpec{ApproverID: directManagerID, Sequence: seq})
				seq++
				break
			}
		}
	}

	managers := make([]user.User, 0, len(roster))
	for _, u := range roster {
		if u.Role != user.RoleManager {
			continue
		}
		if u.ID == employee.ID || u.ID == directManagerID {
			continue
		}
		managers = append(managers, u)
	}
	sort.Slice(managers, func(i, j int) bool { return managers[i].ID < managers[j].ID })

	for _, m := range managers {
		if len(steps) >= MaxChainLen {
			break
		}
		steps = append(steps, StepSpec{ApproverID: m.ID, Sequence: seq})
		seq++
	}
	return steps
}
