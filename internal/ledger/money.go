package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	apperrors "fluxo/internal/errors"
)

// centPlaces is the number of decimal places of the smallest currency unit.
const centPlaces = 2

// ParseAmount parses a user-entered amount into a positive decimal.
//
// Both the plain form ("1234.56") and the Brazilian form with thousands dots
// and a decimal comma ("1.234,56") are accepted. Zero, negative and
// unparseable values return ErrInvalidAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInvalidAmount, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	return d, nil
}

// Signed applies the sign convention of flow to an amount: expenses are
// stored negative and income positive, whatever the sign of abs.
func Signed(flow FlowType, abs decimal.Decimal) decimal.Decimal {
	abs = abs.Abs()
	if flow == FlowExpense {
		return abs.Neg()
	}
	return abs
}

// splitEvenly divides total into n equal shares truncated to cents.
// The remainder is not redistributed.
func splitEvenly(total decimal.Decimal, n int) decimal.Decimal {
	return total.Div(decimal.NewFromInt(int64(n))).Truncate(centPlaces)
}
