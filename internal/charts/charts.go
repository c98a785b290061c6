// Package charts renders the derived views of a profile as PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"fluxo/internal/ledger"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("charts: nothing to plot")

const (
	pieSize     = 800
	chartWidth  = 1000
	chartHeight = 500
)

var background = chart.Style{
	Padding: chart.Box{
		Top:    50,
		Left:   50,
		Right:  50,
		Bottom: 50,
	},
	FillColor: chart.ColorWhite,
}

// Breakdown renders the spending breakdown of a month as a pie chart.
func Breakdown(month ledger.Month, shares []ledger.CategoryShare) ([]byte, error) {
	values := make([]chart.Value, 0, len(shares))
	for _, share := range shares {
		if !share.Total.IsPositive() {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s (%s%%)", share.Category, share.Total.StringFixed(2), share.Percentage),
			Value: share.Total.InexactFloat64(),
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		})
	}
	if len(values) == 0 {
		return nil, ErrNoData
	}

	pie := chart.PieChart{
		Title:      fmt.Sprintf("Spending by category, %s", month),
		Width:      pieSize,
		Height:     pieSize,
		Values:     values,
		Background: background,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render breakdown chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// Projection renders the monthly projection as one line per component. A
// projection without any scheduled record returns ErrNoData.
func Projection(rows []ledger.ProjectionRow) ([]byte, error) {
	if len(rows) < 2 {
		return nil, ErrNoData
	}

	xValues := make([]float64, len(rows))
	ticks := make([]chart.Tick, len(rows))
	fixed := make([]float64, len(rows))
	variable := make([]float64, len(rows))
	income := make([]float64, len(rows))
	balance := make([]float64, len(rows))
	empty := true
	for i, row := range rows {
		if !row.Income.IsZero() || !row.Fixed.IsZero() || !row.Variable.IsZero() {
			empty = false
		}
		xValues[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: string(row.Month)}
		fixed[i] = row.Fixed.InexactFloat64()
		variable[i] = row.Variable.InexactFloat64()
		income[i] = row.Income.InexactFloat64()
		balance[i] = row.Balance.InexactFloat64()
	}
	if empty {
		return nil, ErrNoData
	}

	series := func(name string, values []float64, color chart.Style) chart.ContinuousSeries {
		return chart.ContinuousSeries{Name: name, XValues: xValues, YValues: values, Style: color}
	}

	graph := chart.Chart{
		Title:      "Projection",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: background,
		XAxis: chart.XAxis{
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			series("Fixed", fixed, chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2}),
			series("Variable", variable, chart.Style{StrokeColor: chart.ColorOrange, StrokeWidth: 2}),
			series("Income", income, chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 2}),
			series("Balance", balance, chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 3}),
		},
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph, chart.Style{
			FontSize:  10,
			FontColor: chart.ColorBlack,
		}),
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render projection chart: %w", err)
	}
	return buffer.Bytes(), nil
}
