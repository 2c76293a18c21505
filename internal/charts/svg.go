// internal/charts/svg.go
package charts

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
)

// MaxYears bounds the period axis of the static chart.
const MaxYears = 1000

// OutcomesSVG renders the outcomes chart as static SVG markup with a
// tooltip script tag appended. Period ticks are labelled 0..years.
func (r *Renderer) OutcomesSVG(t Table, years int) (template.HTML, error) {
	if years < 0 || years > MaxYears {
		return "", fmt.Errorf("%w: got %d, want 0..%d", ErrInvalidYears, years, MaxYears)
	}
	if err := t.Validate(); err != nil {
		return "", err
	}
	// go-chart cannot scale an axis over a single point
	if t.Len() < 2 {
		return "", ErrTooFewPoints
	}

	format := func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return FormatCurrency(r.opts.Currency, f)
		}
		return fmt.Sprint(v)
	}

	var series []chart.Series
	for i, c := range t.Columns {
		xs := make([]float64, len(c.Values))
		for j := range xs {
			xs[j] = float64(j)
		}
		color := chart.GetDefaultColor(i)
		line := chart.ContinuousSeries{
			Name:    c.Name,
			XValues: xs,
			YValues: c.Values,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    3,
			},
		}
		series = append(series, line, chart.LastValueAnnotationSeries(line, format))
	}

	ticks := make([]chart.Tick, years+1)
	for y := range ticks {
		ticks[y] = chart.Tick{Value: float64(y), Label: strconv.Itoa(y)}
	}

	ch := chart.Chart{
		Title:      r.opts.SVGTitle,
		Width:      r.opts.SVGWidth,
		Height:     r.opts.SVGHeight,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 96, Bottom: 16}},
		XAxis:      chart.XAxis{Name: r.opts.IndexName, Ticks: ticks},
		YAxis:      chart.YAxis{ValueFormatter: format},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return "", fmt.Errorf("charts: render svg: %w", err)
	}
	fmt.Fprintf(&buf, `<script type="text/javascript" src=%q></script>`, r.opts.TooltipScriptURL)

	return template.HTML(buf.String()), nil
}
