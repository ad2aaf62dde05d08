package expense

import (
	"context"
	"errors"
	"time"

	domainExpense "expenseflow-backend/internal/domain/expense"
	"expenseflow-backend/internal/domain/uow"
	domainUser "expenseflow-backend/internal/domain/user"
	"expenseflow-backend/internal/workflow"
	"expenseflow-backend/pkg/id"

	"gorm.io/gorm"
)

// Converter normalizes amounts into the company currency. Implemented by the
// currency infrastructure; identity when the codes match.
type Converter interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}

type Usecase struct {
	uow       uow.UnitOfWork
	converter Converter
}

func NewUsecase(tx uow.UnitOfWork, conv Converter) *Usecase {
	return &Usecase{uow: tx, converter: conv}
}

type SubmitInput struct {
	Amount       float64
	CurrencyCode string
	Category     string
	Description  string
	Date         time.Time
}

// Submit normalizes the amount, creates the expense in pending status with a
// fully built approval chain, and runs one evaluation pass so a zero-step
// chain finalizes immediately. A conversion failure aborts before any write.
func (u *Usecase) Submit(ctx context.Context, employeeID uint64, in SubmitInput) (*ExpenseDTO, error) {
	var dto *ExpenseDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		employee, err := r.Users.GetByID(ctx, employeeID)
		if err != nil {
			return domainUser.ErrNotFound
		}
		company, err := r.Companies.GetByID(ctx, employee.CompanyID)
		if err != nil {
			return err
		}

		normalized, err := u.converter.Convert(ctx, in.Amount, in.CurrencyCode, company.CurrencyCode)
		if err != nil {
			return err
		}

		approvers, err := r.Users.ListManagers(ctx, employee.CompanyID)
		if err != nil {
			return err
		}
		// The direct manager may hold any role (e.g. the founding admin), so
		// fetch them separately when the manager query did not return them.
		if employee.ManagerID != nil && !containsID(approvers, *employee.ManagerID) {
			if mgr, err := r.Users.GetByID(ctx, *employee.ManagerID); err == nil {
				approvers = append(approvers, *mgr)
			}
		}
		chain := workflow.BuildChain(employee, approvers)

		e := &domainExpense.Expense{
			ExpenseID:        id.NewID32(),
			EmployeeID:       employee.ID,
			CompanyID:        employee.CompanyID,
			Amount:           in.Amount,
			CurrencyCode:     in.CurrencyCode,
			NormalizedAmount: normalized,
			Category:         in.Category,
			Description:      in.Description,
			Date:             in.Date,
			Status:           domainExpense.StatusPending,
		}
		for _, spec := range chain {
			e.Steps = append(e.Steps, domainExpense.ApprovalStep{
				ApproverUserID: spec.ApproverID,
				Sequence:       spec.Sequence,
				Decision:       domainExpense.DecisionPending,
			})
		}

		rules, err := r.Rules.ListByCompany(ctx, employee.CompanyID)
		if err != nil {
			return err
		}
		switch workflow.Evaluate(rules, e.Steps) {
		case workflow.OutcomeApproved:
			e.Status = domainExpense.StatusApproved
		case workflow.OutcomeRejected:
			e.Status = domainExpense.StatusRejected
		}
		e.CurrentStepIndex = workflow.Advance(e.Steps)

		if err := r.Expenses.Create(ctx, e); err != nil {
			return err
		}
		dto = toExpenseDTO(e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func containsID(users []domainUser.User, id uint64) bool {
	for i := range users {
		if users[i].ID == id {
			return true
		}
	}
	return false
}

// Act records one approver decision and re-runs rule evaluation and the
// cursor inside a single expense-locked transaction.
func (u *Usecase) Act(ctx context.Context, expenseID string, actorID uint64, approve bool, comment string) (*ExpenseDTO, error) {
	var dto *ExpenseDTO

	err := u.uow.WithinExpenseTx(ctx, expenseID, func(r uow.Repos, e *domainExpense.Expense) error {
		// A finalized expense accepts no further decisions.
		if e.Status.Terminal() {
			return domainExpense.ErrNoPendingStep
		}

		steps, err := r.Expenses.ListSteps(ctx, e.ID)
		if err != nil {
			return err
		}

		// Among the actor's pending steps, resolve the lowest sequence. A user
		// can hold multiple slots; one action settles exactly one of them.
		var mine *domainExpense.ApprovalStep
		for i := range steps {
			s := &steps[i]
			if s.ApproverUserID != actorID || s.Decision != domainExpense.DecisionPending {
				continue
			}
			if mine == nil || s.Sequence < mine.Sequence {
				mine = s
			}
		}
		if mine == nil {
			return domainExpense.ErrNoPendingStep
		}

		now := time.Now().UTC()
		if approve {
			mine.Decision = domainExpense.DecisionApproved
		} else {
			mine.Decision = domainExpense.DecisionRejected
		}
		mine.Comment = comment
		mine.DecidedAt = &now
		if err := r.Expenses.SaveStep(ctx, mine); err != nil {
			return err
		}

		rules, err := r.Rules.ListByCompany(ctx, e.CompanyID)
		if err != nil {
			return err
		}
		switch workflow.Evaluate(rules, steps) {
		case workflow.OutcomeApproved:
			e.Status = domainExpense.StatusApproved
		case workflow.OutcomeRejected:
			e.Status = domainExpense.StatusRejected
		}
		e.CurrentStepIndex = workflow.Advance(steps)

		if err := r.Expenses.Save(ctx, e); err != nil {
			return err
		}
		dto = toExpenseDTO(e)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainExpense.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// PendingFor lists expenses with at least one pending step assigned to the
// approver. Visibility only; an earlier-sequence step may still be undecided.
func (u *Usecase) PendingFor(ctx context.Context, approverID uint64) ([]ExpenseDTO, error) {
	var out []ExpenseDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		exps, err := r.Expenses.ListWithPendingStepFor(ctx, approverID)
		if err != nil {
			return err
		}
		out = make([]ExpenseDTO, 0, len(exps))
		for i := range exps {
			out = append(out, *toExpenseDTO(&exps[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Steps returns the ordered ledger for an expense. Callers outside the
// expense's company are refused.
func (u *Usecase) Steps(ctx context.Context, expenseID string, callerID uint64) ([]StepDTO, error) {
	var out []StepDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		e, err := r.Expenses.GetByExpenseID(ctx, expenseID)
		if err != nil {
			return domainExpense.ErrNotFound
		}
		caller, err := r.Users.GetByID(ctx, callerID)
		if err != nil {
			return domainUser.ErrNotFound
		}
		if caller.CompanyID != e.CompanyID {
			return domainExpense.ErrForbidden
		}
		steps, err := r.Expenses.ListSteps(ctx, e.ID)
		if err != nil {
			return err
		}
		roster, err := r.Users.ListByCompany(ctx, e.CompanyID)
		if err != nil {
			return err
		}
		approvers := make(map[uint64]string, len(roster))
		for i := range roster {
			approvers[roster[i].ID] = roster[i].UserID
		}
		out = make([]StepDTO, 0, len(steps))
		for i := range steps {
			out = append(out, toStepDTO(&steps[i], approvers))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Mine lists the submitter's own expenses, newest first.
func (u *Usecase) Mine(ctx context.Context, employeeID uint64) ([]ExpenseDTO, error) {
	var out []ExpenseDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		exps, err := r.Expenses.ListByEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		out = make([]ExpenseDTO, 0, len(exps))
		for i := range exps {
			out = append(out, *toExpenseDTO(&exps[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
