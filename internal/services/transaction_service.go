package services

import (
	"fmt"

	"gorm.io/gorm"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/ledger"
	"fluxo/internal/pagination"
)

// transactionService handles the records of a profile.
type transactionService struct {
	profiles *ProfileStore
	notifier Notifier
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, notifier Notifier, opts ...ledger.Option) TransactionServicer {
	return &transactionService{
		profiles: NewProfileStore(db, opts...),
		notifier: notifier,
	}
}

// CreateEntry expands a form into records and appends them to the profile.
func (s *transactionService) CreateEntry(key ProfileKey, form ledger.EntryForm) ([]ledger.Transaction, Notification, error) {
	var created []ledger.Transaction
	err := s.profiles.Update(key, func(store *ledger.Store) error {
		var err error
		created, err = store.Add(form)
		return err
	})

	n := report(s.notifier, key, "transaction.create", pluralize(len(created), "Transaction added", "%d transactions added"), err, map[string]any{
		"flow_type": form.FlowType,
		"category":  form.Category,
		"records":   len(created),
	})
	if err != nil {
		return nil, n, err
	}
	return created, n, nil
}

// ListTransactions filters, sorts and pages the profile's records.
func (s *transactionService) ListTransactions(key ProfileKey, criteria ledger.Criteria, page pagination.PageRequest) (*TransactionList, error) {
	var list *TransactionList
	err := s.profiles.View(key, func(store *ledger.Store) error {
		filtered := ledger.Filter(store.Transactions, criteria)
		list = &TransactionList{
			PageResponse: pagination.Slice(filtered, page),
			Totals:       ledger.FilteredTotals(filtered),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// GetTransaction returns a record and, when it belongs to a series, every
// occurrence of that series.
func (s *transactionService) GetTransaction(key ProfileKey, id int64) (*TransactionDetail, error) {
	var detail *TransactionDetail
	err := s.profiles.View(key, func(store *ledger.Store) error {
		t, ok := store.Find(id)
		if !ok {
			return apperrors.ErrTransactionNotFound
		}
		detail = &TransactionDetail{Transaction: t, Series: store.Series(t.RecurrenceGroupID)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// TogglePaid flips the paid flag of one record.
func (s *transactionService) TogglePaid(key ProfileKey, id int64) (*ledger.Transaction, Notification, error) {
	var updated ledger.Transaction
	err := s.profiles.Update(key, func(store *ledger.Store) error {
		t, ok := store.TogglePaid(id)
		if !ok {
			return apperrors.ErrTransactionNotFound
		}
		updated = t
		return nil
	})

	message := "Marked as pending"
	if updated.Paid {
		message = "Marked as paid"
	}
	n := report(s.notifier, key, "transaction.toggle_paid", message, err, map[string]any{
		"id":   id,
		"paid": updated.Paid,
	})
	if err != nil {
		return nil, n, err
	}
	return &updated, n, nil
}

// UpdateTransaction changes the amount and description of one record or of
// its whole series.
func (s *transactionService) UpdateTransaction(key ProfileKey, id int64, amount, description string, applyToSeries bool) (int, Notification, error) {
	var changed int
	err := s.profiles.Update(key, func(store *ledger.Store) error {
		value, err := ledger.ParseAmount(amount)
		if err != nil {
			return err
		}
		changed = store.Edit(id, ledger.Edit{Amount: value, Description: description, ApplyToSeries: applyToSeries})
		if changed == 0 {
			return apperrors.ErrTransactionNotFound
		}
		return nil
	})

	n := report(s.notifier, key, "transaction.update", pluralize(changed, "Transaction updated", "%d transactions updated"), err, map[string]any{
		"id":      id,
		"series":  applyToSeries,
		"records": changed,
	})
	if err != nil {
		return 0, n, err
	}
	return changed, n, nil
}

// DeleteTransaction removes one record, or the record and every later
// occurrence of its series.
func (s *transactionService) DeleteTransaction(key ProfileKey, id int64, series bool) (int, Notification, error) {
	var removed int
	err := s.profiles.Update(key, func(store *ledger.Store) error {
		if series {
			removed = store.DeleteSeriesFrom(id)
		} else if store.Delete(id) {
			removed = 1
		}
		if removed == 0 {
			return apperrors.ErrTransactionNotFound
		}
		return nil
	})

	n := report(s.notifier, key, "transaction.delete", pluralize(removed, "Transaction deleted", "%d transactions deleted"), err, map[string]any{
		"id":      id,
		"series":  series,
		"records": removed,
	})
	if err != nil {
		return 0, n, err
	}
	return removed, n, nil
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return fmt.Sprintf(many, n)
}
