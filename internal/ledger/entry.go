package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "fluxo/internal/errors"
)

const (
	// OpenEndedMonths is how far a recurring entry without an end date is
	// generated. It stands in for "until the user deletes it".
	OpenEndedMonths = 60
	// MinInstallments and MaxInstallments bound an installment purchase.
	MinInstallments = 2
	MaxInstallments = 360

	defaultExpenseDescription = "Expense"
)

// TermMode is the user's answer to "does this recurring entry end?".
type TermMode string

const (
	TermUnset       TermMode = ""
	TermWithEndDate TermMode = "with_end_date"
	TermOpenEnded   TermMode = "open_ended"
)

// EntryForm is a new entry as submitted by the user. Choices the user has
// not made yet are left at their zero value; ParseEntry reports them.
type EntryForm struct {
	FlowType      FlowType
	Description   string
	Amount        string
	Date          string
	Category      string
	SpendType     SpendType // Fixed on an income marks it recurring
	PaymentMethod PaymentMethod
	CardOrBank    string
	Paid          bool

	// Expense only: nil until the user picks at-once (false) or installments (true).
	Installment  *bool
	Installments int

	Term    TermMode
	EndDate string
}

// Plan is how an Entry expands into records. It is one of SinglePlan,
// InstallmentPlan or RecurringPlan.
type Plan interface {
	isPlan()
}

// SinglePlan produces one record.
type SinglePlan struct {
	SpendType SpendType
}

// InstallmentPlan splits an expense evenly over Count consecutive months.
type InstallmentPlan struct {
	Count int
}

// RecurringPlan repeats the full amount monthly until End, or for
// OpenEndedMonths when End is nil.
type RecurringPlan struct {
	End *Date
}

func (SinglePlan) isPlan()      {}
func (InstallmentPlan) isPlan() {}
func (RecurringPlan) isPlan()   {}

// Months returns the number of monthly records generated from start.
func (p RecurringPlan) Months(start Date) int {
	if p.End == nil {
		return OpenEndedMonths
	}
	months := (p.End.Year()-start.Year())*12 + int(p.End.t.Month()-start.t.Month()) + 1
	return max(1, months)
}

// Payment identifies how an expense was paid.
type Payment struct {
	Method     PaymentMethod
	CardOrBank string
}

// Entry is a validated logical entry, ready to expand.
type Entry struct {
	Flow        FlowType
	Description string
	Amount      decimal.Decimal // always positive
	Date        Date
	Category    string
	Payment     Payment
	Paid        bool
	Plan        Plan
}

// ParseEntry validates a form and resolves it into an Entry. The checks run
// in the order the form is filled in, so the first missing choice is reported.
func ParseEntry(f EntryForm) (Entry, error) {
	if !f.FlowType.Valid() {
		return Entry{}, apperrors.ErrInvalidFlowType
	}
	amount, err := ParseAmount(f.Amount)
	if err != nil {
		return Entry{}, err
	}
	category := strings.TrimSpace(f.Category)
	if category == "" {
		return Entry{}, apperrors.ErrCategoryRequired
	}
	if !f.PaymentMethod.Valid() {
		return Entry{}, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("unknown payment method %q", f.PaymentMethod))
	}
	date, err := ParseDate(f.Date)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		Flow:        f.FlowType,
		Description: strings.TrimSpace(f.Description),
		Amount:      amount,
		Date:        date,
		Category:    category,
		Payment:     Payment{Method: f.PaymentMethod, CardOrBank: strings.TrimSpace(f.CardOrBank)},
		Paid:        f.Paid,
	}
	if entry.Description == "" {
		entry.Description = defaultDescription(f.FlowType, category)
	}

	plan, err := resolvePlan(f, amount)
	if err != nil {
		return Entry{}, err
	}
	entry.Plan = plan
	return entry, nil
}

func resolvePlan(f EntryForm, amount decimal.Decimal) (Plan, error) {
	if f.FlowType == FlowExpense {
		if f.Installment == nil {
			return nil, apperrors.ErrPaymentModeRequired
		}
		if *f.Installment {
			if f.Installments < MinInstallments || f.Installments > MaxInstallments {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInstallments,
					fmt.Sprintf("installments must be between %d and %d", MinInstallments, MaxInstallments))
			}
			if !splitEvenly(amount, f.Installments).IsPositive() {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInstallments,
					fmt.Sprintf("each of the %d installments would be less than 0.01", f.Installments))
			}
			return InstallmentPlan{Count: f.Installments}, nil
		}
		switch f.SpendType {
		case SpendVariable:
			return SinglePlan{SpendType: SpendVariable}, nil
		case SpendFixed:
			return recurringPlan(f)
		default:
			return nil, apperrors.ErrSpendTypeRequired
		}
	}

	if f.SpendType == SpendFixed {
		return recurringPlan(f)
	}
	return SinglePlan{SpendType: SpendNone}, nil
}

func recurringPlan(f EntryForm) (Plan, error) {
	switch f.Term {
	case TermOpenEnded:
		return RecurringPlan{}, nil
	case TermWithEndDate:
		end, err := ParseDate(f.EndDate)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidDate, "a valid end date is required")
		}
		return RecurringPlan{End: &end}, nil
	default:
		return nil, apperrors.ErrTermRequired
	}
}

func defaultDescription(flow FlowType, category string) string {
	if flow == FlowIncome {
		return category
	}
	return defaultExpenseDescription
}

// IDSource hands out record ids and recurrence group ids.
type IDSource interface {
	NextID() int64
	NewGroupID() string
}

// Expand validates a form and produces the records it stands for.
func Expand(f EntryForm, ids IDSource) ([]Transaction, error) {
	entry, err := ParseEntry(f)
	if err != nil {
		return nil, err
	}
	return entry.Expand(ids), nil
}

// Expand produces the dated records of e. Only the first record of a series
// keeps the entered paid flag; the rest start unpaid.
func (e Entry) Expand(ids IDSource) []Transaction {
	base := Transaction{
		FlowType:      e.Flow,
		Description:   e.Description,
		Category:      e.Category,
		PaymentMethod: e.Payment.Method,
		CardOrBank:    e.Payment.CardOrBank,
	}

	switch p := e.Plan.(type) {
	case InstallmentPlan:
		share := Signed(e.Flow, splitEvenly(e.Amount, p.Count))
		group := ids.NewGroupID()
		out := make([]Transaction, 0, p.Count)
		for i := range p.Count {
			t := base
			t.ID = ids.NextID()
			t.Description = fmt.Sprintf("%s (%d/%d)", e.Description, i+1, p.Count)
			t.Amount = share
			t.Date = e.Date.AddMonths(i)
			t.SpendType = SpendFixed
			t.Paid = i == 0 && e.Paid
			t.RecurrenceGroupID = group
			out = append(out, t)
		}
		return out

	case RecurringPlan:
		months := p.Months(e.Date)
		amount := Signed(e.Flow, e.Amount)
		group := ids.NewGroupID()
		out := make([]Transaction, 0, months)
		for i := range months {
			t := base
			t.ID = ids.NextID()
			t.Amount = amount
			t.Date = e.Date.AddMonths(i)
			t.SpendType = SpendFixed
			t.Paid = i == 0 && e.Paid
			t.RecurrenceGroupID = group
			t.IsRecurring = true
			out = append(out, t)
		}
		return out

	case SinglePlan:
		t := base
		t.ID = ids.NextID()
		t.Amount = Signed(e.Flow, e.Amount)
		t.Date = e.Date
		t.SpendType = p.SpendType
		t.Paid = e.Paid
		return []Transaction{t}
	}
	return nil
}
