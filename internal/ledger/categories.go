package ledger

import (
	"slices"
	"strings"

	apperrors "fluxo/internal/errors"
)

// Categories holds the ordered category names of a profile per flow type.
type Categories struct {
	Expense []string `json:"expense"`
	Income  []string `json:"income"`
}

// DefaultCategories returns the seed categories of a new profile.
func DefaultCategories() Categories {
	return Categories{
		Expense: []string{"Housing", "Food", "Transport", "Health", "Education", "Leisure", "Subscriptions", "Other"},
		Income:  []string{"Salary", "Freelance", "Investments", "Other"},
	}
}

func (c *Categories) list(flow FlowType) *[]string {
	if flow == FlowIncome {
		return &c.Income
	}
	return &c.Expense
}

// Add appends name to the flow's list. Names are trimmed, may not contain
// '/' and are compared case-insensitively against the existing ones.
func (c *Categories) Add(flow FlowType, name string) (string, error) {
	if !flow.Valid() {
		return "", apperrors.ErrInvalidFlowType
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.ErrCategoryRequired
	}
	if err := checkPathSafe(name, "category"); err != nil {
		return "", err
	}
	list := c.list(flow)
	if containsFold(*list, name) {
		return "", apperrors.ErrDuplicateCategory
	}
	*list = append(*list, name)
	return name, nil
}

// Remove deletes name from the flow's list. Transactions already labeled
// with it are left as they are.
func (c *Categories) Remove(flow FlowType, name string) error {
	if !flow.Valid() {
		return apperrors.ErrInvalidFlowType
	}
	list := c.list(flow)
	i := slices.Index(*list, name)
	if i < 0 {
		return apperrors.ErrCategoryNotFound
	}
	*list = slices.Delete(*list, i, i+1)
	return nil
}

// FilterOptions returns the sorted, de-duplicated category names offered by
// the list filter. An empty flow returns the union of both lists.
func (c Categories) FilterOptions(flow FlowType) []string {
	var names []string
	switch flow {
	case FlowExpense:
		names = slices.Clone(c.Expense)
	case FlowIncome:
		names = slices.Clone(c.Income)
	default:
		names = slices.Concat(c.Expense, c.Income)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// PaymentMethods holds the card and bank names of a profile.
type PaymentMethods struct {
	Credit []string `json:"credit"`
	Debit  []string `json:"debit"`
}

// DefaultPaymentMethods returns the empty method set of a new profile.
func DefaultPaymentMethods() PaymentMethods {
	return PaymentMethods{Credit: []string{}, Debit: []string{}}
}

// AddBank registers name as both a credit card and a debit account. Names
// containing '/' are rejected.
func (p *PaymentMethods) AddBank(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "bank or card name is required")
	}
	if err := checkPathSafe(name, "bank or card"); err != nil {
		return "", err
	}
	if containsFold(p.Credit, name) {
		return "", apperrors.ErrDuplicatePaymentMethod
	}
	p.Credit = append(p.Credit, name)
	if !containsFold(p.Debit, name) {
		p.Debit = append(p.Debit, name)
	}
	return name, nil
}

// RemoveBank removes name from the credit list and the same name from the
// debit list.
func (p *PaymentMethods) RemoveBank(name string) error {
	i := slices.Index(p.Credit, name)
	if i < 0 {
		return apperrors.ErrPaymentMethodNotFound
	}
	p.Credit = slices.Delete(p.Credit, i, i+1)
	p.Debit = slices.DeleteFunc(p.Debit, func(s string) bool { return s == name })
	return nil
}

// checkPathSafe rejects names that could not be addressed as a single path
// segment of the delete routes.
func checkPathSafe(name, what string) error {
	if strings.ContainsRune(name, '/') {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, what+" names cannot contain '/'")
	}
	return nil
}

func containsFold(list []string, name string) bool {
	return slices.ContainsFunc(list, func(s string) bool { return strings.EqualFold(s, name) })
}
