package services

import (
	"errors"
	"slices"
	"time"

	"gorm.io/gorm"

	"fluxo/internal/charts"
	apperrors "fluxo/internal/errors"
	"fluxo/internal/ledger"
)

// reportService computes the derived views of a profile. Every call
// recomputes from the stored records.
type reportService struct {
	profiles *ProfileStore
	now      func() time.Time
}

// NewReportService creates a new ReportServicer. now decides the current
// month of summaries and projections; nil means time.Now.
func NewReportService(db *gorm.DB, now func() time.Time) ReportServicer {
	if now == nil {
		now = time.Now
	}
	return &reportService{profiles: NewProfileStore(db), now: now}
}

// GetSummary returns the month stats, the totals of the filtered list and
// the annual totals. An empty month means the current one.
func (s *reportService) GetSummary(key ProfileKey, criteria ledger.Criteria) (*Summary, error) {
	now := s.now()
	if criteria.Month == "" {
		criteria.Month = ledger.MonthOf(now)
	}

	var summary *Summary
	err := s.profiles.View(key, func(store *ledger.Store) error {
		filtered := ledger.Filter(store.Transactions, criteria)
		summary = &Summary{
			Month:    criteria.Month,
			Stats:    ledger.MonthlyStats(store.Transactions, criteria.Month),
			Filtered: ledger.FilteredTotals(filtered),
			Annual:   ledger.AnnualTotals(store.Transactions, criteria, now),
			Count:    len(filtered),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// GetBreakdown returns the month's spending per category.
func (s *reportService) GetBreakdown(key ProfileKey, month ledger.Month) ([]ledger.CategoryShare, error) {
	if month == "" {
		month = ledger.MonthOf(s.now())
	}
	var shares []ledger.CategoryShare
	err := s.profiles.View(key, func(store *ledger.Store) error {
		shares = ledger.CategoryBreakdown(store.Transactions, month)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if shares == nil {
		shares = []ledger.CategoryShare{}
	}
	return shares, nil
}

// GetProjection returns the forecast of the next months.
func (s *reportService) GetProjection(key ProfileKey) ([]ledger.ProjectionRow, error) {
	var rows []ledger.ProjectionRow
	err := s.profiles.View(key, func(store *ledger.Store) error {
		rows = slices.Collect(ledger.Projection(store.Transactions, s.now()))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RenderBreakdownChart renders GetBreakdown as a PNG pie chart.
func (s *reportService) RenderBreakdownChart(key ProfileKey, month ledger.Month) ([]byte, error) {
	if month == "" {
		month = ledger.MonthOf(s.now())
	}
	shares, err := s.GetBreakdown(key, month)
	if err != nil {
		return nil, err
	}
	return renderChart(charts.Breakdown(month, shares))
}

// RenderProjectionChart renders GetProjection as a PNG line chart.
func (s *reportService) RenderProjectionChart(key ProfileKey) ([]byte, error) {
	rows, err := s.GetProjection(key)
	if err != nil {
		return nil, err
	}
	return renderChart(charts.Projection(rows))
}

func renderChart(img []byte, err error) ([]byte, error) {
	if errors.Is(err, charts.ErrNoData) {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Nothing to chart yet")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return img, nil
}
