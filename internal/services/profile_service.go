package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/ledger"
)

const maxDisplayNameLength = 100

// profileService handles profile-wide settings.
type profileService struct {
	db       *gorm.DB
	profiles *ProfileStore
	notifier Notifier
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(db *gorm.DB, notifier Notifier) ProfileServicer {
	return &profileService{db: db, profiles: NewProfileStore(db), notifier: notifier}
}

// GetDisplayName returns the profile's display name.
func (s *profileService) GetDisplayName(key ProfileKey) (string, error) {
	var name string
	err := s.profiles.View(key, func(store *ledger.Store) error {
		name = store.DisplayName
		return nil
	})
	return name, err
}

// SetDisplayName stores a trimmed display name.
func (s *profileService) SetDisplayName(key ProfileKey, name string) (Notification, error) {
	name = strings.TrimSpace(name)
	var err error
	if len(name) > maxDisplayNameLength {
		err = apperrors.WithMessage(apperrors.ErrInvalidInput, "name is too long")
	} else {
		err = s.profiles.Update(key, func(store *ledger.Store) error {
			store.DisplayName = name
			return nil
		})
	}

	n := report(s.notifier, key, "profile.rename", "Name saved", err, map[string]any{"name": name})
	return n, err
}

// ClearData wipes every record of the profile once confirmed. Categories go
// back to the seed list, cards and banks are emptied and the name is blanked.
func (s *profileService) ClearData(key ProfileKey, confirmer Confirmer) (Notification, error) {
	err := confirm(confirmer, "Delete every transaction, category and card of this profile? This cannot be undone.")
	if err == nil {
		err = s.db.Transaction(func(tx *gorm.DB) error {
			return s.profiles.Clear(tx, key)
		})
	}

	n := report(s.notifier, key, "profile.clear", "All data cleared", err, nil)
	return n, err
}
