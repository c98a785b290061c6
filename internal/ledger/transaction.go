// Package ledger holds the transaction store of a profile and the pure
// logic around it: expanding an entry into dated records, filtering and
// aggregating the records, and mutating them one at a time or per
// recurrence group.
package ledger

import (
	"github.com/shopspring/decimal"
)

// FlowType is the direction of a transaction.
type FlowType string

const (
	FlowExpense FlowType = "expense"
	FlowIncome  FlowType = "income"
)

// Valid reports whether f is expense or income.
func (f FlowType) Valid() bool {
	return f == FlowExpense || f == FlowIncome
}

// SpendType classifies an expense, or an income marked recurring.
type SpendType string

const (
	SpendNone     SpendType = ""
	SpendFixed    SpendType = "Fixed"
	SpendVariable SpendType = "Variable"
)

// PaymentMethod is how an expense was paid.
type PaymentMethod string

const (
	PaymentNone         PaymentMethod = ""
	PaymentPix          PaymentMethod = "pix"
	PaymentCreditAtOnce PaymentMethod = "credit-at-once"
	PaymentDebit        PaymentMethod = "debit"
	PaymentBoleto       PaymentMethod = "boleto"
)

// Valid reports whether p is one of the known payment methods, including none.
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentNone, PaymentPix, PaymentCreditAtOnce, PaymentDebit, PaymentBoleto:
		return true
	}
	return false
}

// Transaction is a single dated record in a profile's store.
type Transaction struct {
	ID                int64           `json:"id"`
	FlowType          FlowType        `json:"flow_type"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"` // negative for expenses
	Date              Date            `json:"date"`
	Category          string          `json:"category"`
	SpendType         SpendType       `json:"spend_type"`
	PaymentMethod     PaymentMethod   `json:"payment_method"`
	CardOrBank        string          `json:"card_or_bank"`
	Paid              bool            `json:"paid"`
	RecurrenceGroupID string          `json:"recurrence_group_id,omitempty"`
	IsRecurring       bool            `json:"is_recurring,omitempty"`
}

// Magnitude returns the unsigned amount.
func (t Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}

// InSeries reports whether t belongs to a recurrence group.
func (t Transaction) InSeries() bool {
	return t.RecurrenceGroupID != ""
}
