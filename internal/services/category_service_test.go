package services

import (
	"slices"
	"testing"

	"fluxo/internal/ledger"
	"fluxo/internal/models"
	"fluxo/internal/testutil"
)

func TestGetCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	user := testutil.CreateTestUser(t, db)
	svc := NewCategoryService(db, nil)

	cats, err := svc.GetCategories(ProfileKey{UserID: user.ID})
	testutil.AssertNoError(t, err)

	if !slices.Equal(cats.Expense, ledger.DefaultCategories().Expense) {
		t.Errorf("expected default expense categories, got %v", cats.Expense)
	}
	if !slices.Contains(cats.Income, "Salary") {
		t.Errorf("expected Salary in income categories, got %v", cats.Income)
	}
}

func TestAddCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		notifier := &recordingNotifier{}
		svc := NewCategoryService(db, notifier)
		key := ProfileKey{UserID: user.ID}

		name, n, err := svc.AddCategory(key, ledger.FlowExpense, "  Pets ")
		testutil.AssertNoError(t, err)

		if name != "Pets" {
			t.Errorf("expected trimmed name Pets, got %q", name)
		}
		if n.Level != models.LevelSuccess {
			t.Errorf("expected success, got %s", n.Level)
		}
		cats, _ := svc.GetCategories(key)
		if !slices.Contains(cats.Expense, "Pets") {
			t.Errorf("expected Pets saved, got %v", cats.Expense)
		}
		if notifier.last(t).Action != "category.create" {
			t.Errorf("unexpected action %s", notifier.last(t).Action)
		}
	})

	t.Run("duplicate_is_informational", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		svc := NewCategoryService(db, nil)

		_, n, err := svc.AddCategory(ProfileKey{UserID: user.ID}, ledger.FlowIncome, "salary")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
		if n.Level != models.LevelInfo {
			t.Errorf("expected info notification, got %s", n.Level)
		}
	})

	t.Run("invalid_flow", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		svc := NewCategoryService(db, nil)

		_, _, err := svc.AddCategory(ProfileKey{UserID: user.ID}, "transfer", "Misc")
		testutil.AssertAppError(t, err, "INVALID_FLOW_TYPE")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("requires_confirmation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		svc := NewCategoryService(db, nil)
		key := ProfileKey{UserID: user.ID}

		n, err := svc.DeleteCategory(key, ledger.FlowExpense, "Food", Confirmed(false))
		testutil.AssertAppError(t, err, "CONFIRMATION_REQUIRED")
		if n.Level != models.LevelInfo {
			t.Errorf("expected info notification, got %s", n.Level)
		}
		cats, _ := svc.GetCategories(key)
		if !slices.Contains(cats.Expense, "Food") {
			t.Error("expected Food to remain")
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		svc := NewCategoryService(db, nil)
		key := ProfileKey{UserID: user.ID}

		var prompt string
		_, err := svc.DeleteCategory(key, ledger.FlowExpense, "Food", ConfirmFunc(func(p string) bool {
			prompt = p
			return true
		}))
		testutil.AssertNoError(t, err)

		if prompt == "" {
			t.Error("expected a confirmation prompt")
		}
		cats, _ := svc.GetCategories(key)
		if slices.Contains(cats.Expense, "Food") {
			t.Error("expected Food to be removed")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		svc := NewCategoryService(db, nil)

		_, err := svc.DeleteCategory(ProfileKey{UserID: user.ID}, ledger.FlowIncome, "Lottery", Confirmed(true))
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestGetFilterOptions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	user := testutil.CreateTestUser(t, db)
	svc := NewCategoryService(db, nil)

	options, err := svc.GetFilterOptions(ProfileKey{UserID: user.ID}, "")
	testutil.AssertNoError(t, err)

	if !slices.IsSorted(options) {
		t.Errorf("expected sorted options, got %v", options)
	}
	if c := slices.Index(options, "Other"); c < 0 || slices.Index(options[c+1:], "Other") >= 0 {
		t.Errorf("expected Other exactly once, got %v", options)
	}
}
