package services

import (
	"fmt"

	"gorm.io/gorm"

	"fluxo/internal/ledger"
)

// categoryService handles the category lists of a profile.
type categoryService struct {
	profiles *ProfileStore
	notifier Notifier
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB, notifier Notifier) CategoryServicer {
	return &categoryService{profiles: NewProfileStore(db), notifier: notifier}
}

// GetCategories returns both category lists of the profile.
func (s *categoryService) GetCategories(key ProfileKey) (*ledger.Categories, error) {
	var cats ledger.Categories
	err := s.profiles.View(key, func(store *ledger.Store) error {
		cats = store.Categories
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cats, nil
}

// GetFilterOptions returns the sorted category choices of the list filter.
func (s *categoryService) GetFilterOptions(key ProfileKey, flow ledger.FlowType) ([]string, error) {
	var options []string
	err := s.profiles.View(key, func(store *ledger.Store) error {
		options = store.Categories.FilterOptions(flow)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if options == nil {
		options = []string{}
	}
	return options, nil
}

// AddCategory appends a category to the flow's list.
func (s *categoryService) AddCategory(key ProfileKey, flow ledger.FlowType, name string) (string, Notification, error) {
	var added string
	err := s.profiles.Update(key, func(store *ledger.Store) error {
		var err error
		added, err = store.Categories.Add(flow, name)
		return err
	})

	n := report(s.notifier, key, "category.create", fmt.Sprintf("Category %q added", added), err, map[string]any{
		"flow_type": flow,
		"name":      name,
	})
	if err != nil {
		return "", n, err
	}
	return added, n, nil
}

// DeleteCategory removes a category once confirmed. Records already using
// the name keep it.
func (s *categoryService) DeleteCategory(key ProfileKey, flow ledger.FlowType, name string, confirmer Confirmer) (Notification, error) {
	err := confirm(confirmer, fmt.Sprintf("Delete the category %q?", name))
	if err == nil {
		err = s.profiles.Update(key, func(store *ledger.Store) error {
			return store.Categories.Remove(flow, name)
		})
	}

	n := report(s.notifier, key, "category.delete", fmt.Sprintf("Category %q deleted", name), err, map[string]any{
		"flow_type": flow,
		"name":      name,
	})
	return n, err
}
