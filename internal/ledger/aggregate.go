package ledger

import (
	"iter"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionMonths is the length of the forward projection.
const ProjectionMonths = 12

// Criteria are the independent filters of the transaction list. Zero
// values disable a filter.
type Criteria struct {
	Month      Month
	Flow       FlowType
	Category   string
	CardOrBank string
	SpendType  SpendType
}

func (c Criteria) matchesAttributes(t Transaction) bool {
	if c.Flow != "" && t.FlowType != c.Flow {
		return false
	}
	if c.Category != "" && t.Category != c.Category {
		return false
	}
	if c.CardOrBank != "" && t.CardOrBank != c.CardOrBank {
		return false
	}
	if c.SpendType != "" && t.SpendType != c.SpendType {
		return false
	}
	return true
}

// Filter returns the transactions matching c, income first and then by date,
// newest first. Records on the same date keep their store order.
func Filter(txs []Transaction, c Criteria) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if c.Month.Contains(t.Date.String()) && c.matchesAttributes(t) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b Transaction) int {
		if a.FlowType != b.FlowType {
			if a.FlowType == FlowIncome {
				return -1
			}
			return 1
		}
		return b.Date.Compare(a.Date)
	})
	return out
}

// Totals are income and expense sums, expense as a positive magnitude.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// FilteredTotals sums an already filtered list regardless of paid status.
func FilteredTotals(list []Transaction) Totals {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range list {
		switch t.FlowType {
		case FlowIncome:
			income = income.Add(t.Amount)
		case FlowExpense:
			expense = expense.Add(t.Magnitude())
		}
	}
	return Totals{Income: income, Expense: expense, Balance: income.Sub(expense)}
}

// AnnualTotals applies c with its month replaced by the month's year and sums
// the whole year, paid or not. An empty month means the current one.
func AnnualTotals(txs []Transaction, c Criteria, now time.Time) Totals {
	month := c.Month
	if month == "" {
		month = MonthOf(now)
	}
	year := Month(month.Year())

	var list []Transaction
	for _, t := range txs {
		if year.Contains(t.Date.String()) && c.matchesAttributes(t) {
			list = append(list, t)
		}
	}
	return FilteredTotals(list)
}

// MonthStats is the balance sheet of one month.
type MonthStats struct {
	Month          Month           `json:"month"`
	CarriedBalance decimal.Decimal `json:"carried_balance"`
	Income         decimal.Decimal `json:"income"`
	Expense        decimal.Decimal `json:"expense"`
	PendingIncome  decimal.Decimal `json:"pending_income"`
	PendingExpense decimal.Decimal `json:"pending_expense"`
	MonthBalance   decimal.Decimal `json:"month_balance"`
	TotalBalance   decimal.Decimal `json:"total_balance"`
}

// MonthlyStats computes the stats of month over the whole store. Only paid
// records move balances; unpaid ones in the month are reported as pending.
func MonthlyStats(txs []Transaction, month Month) MonthStats {
	s := MonthStats{
		Month:          month,
		CarriedBalance: decimal.Zero,
		Income:         decimal.Zero,
		Expense:        decimal.Zero,
		PendingIncome:  decimal.Zero,
		PendingExpense: decimal.Zero,
	}
	firstDay := month.FirstDay()

	for _, t := range txs {
		date := t.Date.String()
		if t.Paid && date < firstDay {
			s.CarriedBalance = s.CarriedBalance.Add(t.Amount)
		}
		if !month.Contains(date) {
			continue
		}
		switch {
		case t.FlowType == FlowIncome && t.Paid:
			s.Income = s.Income.Add(t.Amount)
		case t.FlowType == FlowExpense && t.Paid:
			s.Expense = s.Expense.Add(t.Magnitude())
		case t.FlowType == FlowIncome:
			s.PendingIncome = s.PendingIncome.Add(t.Amount)
		case t.FlowType == FlowExpense:
			s.PendingExpense = s.PendingExpense.Add(t.Magnitude())
		}
	}

	s.MonthBalance = s.Income.Sub(s.Expense)
	s.TotalBalance = s.CarriedBalance.Add(s.MonthBalance)
	return s
}

// CategoryShare is one slice of the spending breakdown.
type CategoryShare struct {
	Category   string          `json:"category"`
	Total      decimal.Decimal `json:"total"`
	Percentage string          `json:"percentage"`
}

// CategoryBreakdown groups the month's expenses by category, largest first.
// Percentages have one decimal place and are "0" when nothing was spent.
func CategoryBreakdown(txs []Transaction, month Month) []CategoryShare {
	var shares []CategoryShare
	index := make(map[string]int)
	total := decimal.Zero

	for _, t := range txs {
		if t.FlowType != FlowExpense || !month.Contains(t.Date.String()) {
			continue
		}
		total = total.Add(t.Magnitude())
		i, ok := index[t.Category]
		if !ok {
			i = len(shares)
			index[t.Category] = i
			shares = append(shares, CategoryShare{Category: t.Category, Total: decimal.Zero})
		}
		shares[i].Total = shares[i].Total.Add(t.Magnitude())
	}

	hundred := decimal.NewFromInt(100)
	for i := range shares {
		if total.IsPositive() {
			shares[i].Percentage = shares[i].Total.Div(total).Mul(hundred).StringFixed(1)
		} else {
			shares[i].Percentage = "0"
		}
	}
	slices.SortStableFunc(shares, func(a, b CategoryShare) int {
		return b.Total.Cmp(a.Total)
	})
	return shares
}

// ProjectionRow is the forecast of one month.
type ProjectionRow struct {
	Month    Month           `json:"month"`
	Fixed    decimal.Decimal `json:"fixed"`
	Variable decimal.Decimal `json:"variable"`
	Income   decimal.Decimal `json:"income"`
	Balance  decimal.Decimal `json:"balance"`
}

// Projection yields ProjectionMonths rows starting at the month of now,
// counting every scheduled record whether paid or not. Each iteration
// recomputes from txs, so the sequence can be ranged over again.
func Projection(txs []Transaction, now time.Time) iter.Seq[ProjectionRow] {
	start := MonthOf(now)
	return func(yield func(ProjectionRow) bool) {
		for i := range ProjectionMonths {
			if !yield(projectMonth(txs, start.Add(i))) {
				return
			}
		}
	}
}

func projectMonth(txs []Transaction, month Month) ProjectionRow {
	row := ProjectionRow{Month: month, Fixed: decimal.Zero, Variable: decimal.Zero, Income: decimal.Zero}
	for _, t := range txs {
		if !month.Contains(t.Date.String()) {
			continue
		}
		switch {
		case t.FlowType == FlowIncome:
			row.Income = row.Income.Add(t.Amount)
		case t.SpendType == SpendFixed:
			row.Fixed = row.Fixed.Add(t.Magnitude())
		case t.SpendType == SpendVariable:
			row.Variable = row.Variable.Add(t.Magnitude())
		}
	}
	row.Balance = row.Income.Sub(row.Fixed.Add(row.Variable))
	return row
}
