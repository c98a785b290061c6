package services

import (
	"fmt"

	"gorm.io/gorm"

	"fluxo/internal/ledger"
)

// paymentMethodService handles the cards and banks of a profile.
type paymentMethodService struct {
	profiles *ProfileStore
	notifier Notifier
}

// NewPaymentMethodService creates a new PaymentMethodServicer.
func NewPaymentMethodService(db *gorm.DB, notifier Notifier) PaymentMethodServicer {
	return &paymentMethodService{profiles: NewProfileStore(db), notifier: notifier}
}

// GetPaymentMethods returns the profile's credit and debit lists.
func (s *paymentMethodService) GetPaymentMethods(key ProfileKey) (*ledger.PaymentMethods, error) {
	var methods ledger.PaymentMethods
	err := s.profiles.View(key, func(store *ledger.Store) error {
		methods = store.PaymentMethods
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &methods, nil
}

// AddBank registers a bank as both a card and a debit account.
func (s *paymentMethodService) AddBank(key ProfileKey, name string) (string, Notification, error) {
	var added string
	err := s.profiles.Update(key, func(store *ledger.Store) error {
		var err error
		added, err = store.PaymentMethods.AddBank(name)
		return err
	})

	n := report(s.notifier, key, "payment_method.create", fmt.Sprintf("%q added", added), err, map[string]any{
		"name": name,
	})
	if err != nil {
		return "", n, err
	}
	return added, n, nil
}

// DeleteBank removes a bank from both lists once confirmed.
func (s *paymentMethodService) DeleteBank(key ProfileKey, name string, confirmer Confirmer) (Notification, error) {
	err := confirm(confirmer, fmt.Sprintf("Delete %q from your cards and banks?", name))
	if err == nil {
		err = s.profiles.Update(key, func(store *ledger.Store) error {
			return store.PaymentMethods.RemoveBank(name)
		})
	}

	n := report(s.notifier, key, "payment_method.delete", fmt.Sprintf("%q deleted", name), err, map[string]any{
		"name": name,
	})
	return n, err
}
