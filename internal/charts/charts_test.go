package charts

import (
	"bytes"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fluxo/internal/ledger"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func TestBreakdown(t *testing.T) {
	t.Run("renders a png", func(t *testing.T) {
		shares := []ledger.CategoryShare{
			{Category: "Housing", Total: decimal.NewFromInt(600), Percentage: "60.0"},
			{Category: "Food", Total: decimal.NewFromInt(400), Percentage: "40.0"},
		}
		img, err := Breakdown("2024-03", shares)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(img, pngSignature) {
			t.Error("expected PNG output")
		}
	})

	t.Run("no expenses", func(t *testing.T) {
		_, err := Breakdown("2024-03", nil)
		if !errors.Is(err, ErrNoData) {
			t.Errorf("expected ErrNoData, got %v", err)
		}
	})
}

func TestProjection(t *testing.T) {
	t.Run("renders a png", func(t *testing.T) {
		d, _ := ledger.ParseDate("2024-03-10")
		txs := []ledger.Transaction{
			{ID: 1, FlowType: ledger.FlowIncome, Amount: decimal.NewFromInt(1000), Date: d, Category: "Salary"},
			{ID: 2, FlowType: ledger.FlowExpense, Amount: decimal.NewFromInt(-300), Date: d, Category: "Housing", SpendType: ledger.SpendFixed},
		}
		rows := slices.Collect(ledger.Projection(txs, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))

		img, err := Projection(rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(img, pngSignature) {
			t.Error("expected PNG output")
		}
	})

	t.Run("too few rows", func(t *testing.T) {
		_, err := Projection(nil)
		if !errors.Is(err, ErrNoData) {
			t.Errorf("expected ErrNoData, got %v", err)
		}
	})
}
