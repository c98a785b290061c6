package services

import (
	"bytes"
	"testing"
	"time"

	"fluxo/internal/ledger"
	"fluxo/internal/testutil"
)

func setupReportService(t *testing.T) (ReportServicer, ProfileKey, func()) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, db)
	key := ProfileKey{UserID: user.ID}

	txSvc := NewTransactionService(db, nil, testClock()...)
	_, _, err := txSvc.CreateEntry(key, rentForm())
	testutil.AssertNoError(t, err)
	_, _, err = txSvc.CreateEntry(key, ledger.EntryForm{
		FlowType: ledger.FlowIncome,
		Amount:   "5000",
		Date:     "2024-02-01",
		Category: "Salary",
		Paid:     true,
	})
	testutil.AssertNoError(t, err)

	svc := NewReportService(db, func() time.Time { return testNow })
	return svc, key, func() { testutil.TeardownTestDB(t, db) }
}

func TestGetSummary(t *testing.T) {
	svc, key, teardown := setupReportService(t)
	defer teardown()

	t.Run("explicit_month", func(t *testing.T) {
		summary, err := svc.GetSummary(key, ledger.Criteria{Month: "2024-02"})
		testutil.AssertNoError(t, err)

		checks := map[string]struct{ got, want string }{
			"carried":         {summary.Stats.CarriedBalance.String(), "-1500"},
			"income":          {summary.Stats.Income.String(), "5000"},
			"pending_expense": {summary.Stats.PendingExpense.String(), "1500"},
			"month_balance":   {summary.Stats.MonthBalance.String(), "5000"},
			"total_balance":   {summary.Stats.TotalBalance.String(), "3500"},
			"filtered_exp":    {summary.Filtered.Expense.String(), "1500"},
			"annual_expense":  {summary.Annual.Expense.String(), "6000"},
			"annual_income":   {summary.Annual.Income.String(), "5000"},
		}
		for name, c := range checks {
			if c.got != c.want {
				t.Errorf("%s: expected %s, got %s", name, c.want, c.got)
			}
		}
		if summary.Count != 2 {
			t.Errorf("expected count 2, got %d", summary.Count)
		}
	})

	t.Run("defaults_to_current_month", func(t *testing.T) {
		summary, err := svc.GetSummary(key, ledger.Criteria{})
		testutil.AssertNoError(t, err)
		if summary.Month != "2024-03" {
			t.Errorf("expected 2024-03, got %s", summary.Month)
		}
	})
}

func TestGetBreakdown(t *testing.T) {
	svc, key, teardown := setupReportService(t)
	defer teardown()

	shares, err := svc.GetBreakdown(key, "2024-02")
	testutil.AssertNoError(t, err)
	if len(shares) != 1 || shares[0].Category != "Housing" || shares[0].Percentage != "100.0" {
		t.Errorf("unexpected breakdown %+v", shares)
	}

	shares, err = svc.GetBreakdown(key, "2023-01")
	testutil.AssertNoError(t, err)
	if shares == nil || len(shares) != 0 {
		t.Errorf("expected empty non-nil breakdown, got %+v", shares)
	}
}

func TestGetProjection(t *testing.T) {
	svc, key, teardown := setupReportService(t)
	defer teardown()

	rows, err := svc.GetProjection(key)
	testutil.AssertNoError(t, err)

	if len(rows) != ledger.ProjectionMonths {
		t.Fatalf("expected %d rows, got %d", ledger.ProjectionMonths, len(rows))
	}
	if rows[0].Month != "2024-03" || rows[0].Fixed.String() != "1500" {
		t.Errorf("unexpected first row %+v", rows[0])
	}
	if !rows[2].Fixed.IsZero() {
		t.Errorf("expected no fixed spend after the series ends, got %s", rows[2].Fixed)
	}
}

func TestRenderCharts(t *testing.T) {
	svc, key, teardown := setupReportService(t)
	defer teardown()

	png := []byte("\x89PNG")

	img, err := svc.RenderProjectionChart(key)
	testutil.AssertNoError(t, err)
	if !bytes.HasPrefix(img, png) {
		t.Error("expected a PNG projection chart")
	}

	img, err = svc.RenderBreakdownChart(key, "2024-02")
	testutil.AssertNoError(t, err)
	if !bytes.HasPrefix(img, png) {
		t.Error("expected a PNG breakdown chart")
	}

	_, err = svc.RenderBreakdownChart(key, "2023-01")
	testutil.AssertAppError(t, err, "NOT_FOUND")
}
