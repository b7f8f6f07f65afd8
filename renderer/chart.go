package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/networth"
	"github.com/etnz/networth/date"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// RenderChart writes a standalone HTML page with the line chart of the series.
func RenderChart(w io.Writer, series *date.History[networth.Money], dark bool) error {
	if series == nil || series.Len() == 0 {
		return fmt.Errorf("cannot chart an empty series")
	}
	theme := types.ThemeWesteros
	if dark {
		theme = types.ThemeChalk
	}

	var (
		days   []string
		points []opts.LineData
		cur    string
	)
	for on, v := range series.Values() {
		days = append(days, on.String())
		points = append(points, opts.LineData{Value: v.AsFloat()})
		cur = v.Currency()
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Net Worth", Theme: theme}),
		charts.WithTitleOpts(opts.Title{Title: "Net Worth", Subtitle: fmt.Sprintf("%s to %s (%s)", days[0], days[len(days)-1], cur)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(days).
		AddSeries("Net Worth", points).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	if err := line.Render(w); err != nil {
		return fmt.Errorf("cannot render chart: %w", err)
	}
	return nil
}
