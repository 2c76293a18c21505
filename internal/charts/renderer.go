// internal/charts/renderer.go
package charts

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Options configure a Renderer. Zero fields take the DefaultOptions value.
type Options struct {
	PageTitle     string
	Width         string
	Height        string
	Theme         string
	Currency      string
	IndexName     string
	LabelRotation float64
	MarkerSize    int

	// static SVG variant
	SVGTitle         string
	SVGWidth         int
	SVGHeight        int
	TooltipScriptURL string
}

func DefaultOptions() Options {
	return Options{
		PageTitle:        "Projections",
		Width:            "900px",
		Height:           "500px",
		Theme:            types.ThemeWesteros,
		Currency:         DefaultCurrency,
		IndexName:        "year",
		LabelRotation:    36,
		MarkerSize:       5,
		SVGTitle:         "Investment Outcomes:",
		SVGWidth:         900,
		SVGHeight:        500,
		TooltipScriptURL: "http://kozea.github.com/pygal.js/latest/pygal-tooltips.min.js",
	}
}

// Renderer builds projection charts. It holds no mutable state and is safe
// for concurrent use once built.
type Renderer struct {
	opts Options
}

func NewRenderer(o Options) *Renderer {
	d := DefaultOptions()
	if o.PageTitle == "" {
		o.PageTitle = d.PageTitle
	}
	if o.Width == "" {
		o.Width = d.Width
	}
	if o.Height == "" {
		o.Height = d.Height
	}
	if o.Theme == "" {
		o.Theme = d.Theme
	}
	if o.Currency == "" {
		o.Currency = d.Currency
	}
	if o.IndexName == "" {
		o.IndexName = d.IndexName
	}
	if o.LabelRotation == 0 {
		o.LabelRotation = d.LabelRotation
	}
	if o.MarkerSize <= 0 {
		o.MarkerSize = d.MarkerSize
	}
	if o.SVGTitle == "" {
		o.SVGTitle = d.SVGTitle
	}
	if o.SVGWidth <= 0 {
		o.SVGWidth = d.SVGWidth
	}
	if o.SVGHeight <= 0 {
		o.SVGHeight = d.SVGHeight
	}
	if o.TooltipScriptURL == "" {
		o.TooltipScriptURL = d.TooltipScriptURL
	}
	return &Renderer{opts: o}
}

func (r *Renderer) Options() Options { return r.opts }

// Outcomes draws one line per column with markers, currency axis and a
// tooltip listing every series for the hovered period.
func (r *Renderer) Outcomes(t Table) (*charts.Line, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	tooltip := fmt.Sprintf(`function (params) {
	var fmt = %s;
	var out = %q + ': ' + params[0].axisValue;
	params.forEach(function (p) { out += '<br/>' + p.marker + p.seriesName + ': ' + fmt(p.value); });
	return out;
}`, currencyJS(r.opts.Currency), r.opts.IndexName)

	line := r.newLine(tooltip)
	line.SetXAxis(t.Labels())
	for _, c := range t.Columns {
		line.AddSeries(c.Name, r.points(c.Values, r.opts.MarkerSize),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))
	}
	return line, nil
}

// Wealth draws the single derived Net wealth series.
func (r *Renderer) Wealth(t Table) (*charts.Line, error) {
	net, err := NetWealth(t)
	if err != nil {
		return nil, err
	}
	derived := Table{Index: t.Index, Columns: []Series{net}}
	if err := derived.Validate(); err != nil {
		return nil, err
	}

	tooltip := fmt.Sprintf(`function (params) {
	var fmt = %s;
	return '<h4> %s: </h4> ' + fmt(params[0].value);
}`, currencyJS(r.opts.Currency), NetWealthName)

	line := r.newLine(tooltip)
	line.SetXAxis(derived.Labels())
	line.AddSeries(net.Name, r.points(net.Values, 0),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))
	return line, nil
}

// newLine applies the settings shared by both interactive charts: no
// toolbox, no zoom, rotated period labels, legend top-left.
func (r *Renderer) newLine(tooltip string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: r.opts.PageTitle,
			Width:     r.opts.Width,
			Height:    r.opts.Height,
			Theme:     r.opts.Theme,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "axis",
			Formatter: types.FuncStr(opts.FuncOpts(tooltip)),
		}),
		charts.WithToolboxOpts(opts.Toolbox{Show: opts.Bool(false)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Left: "left", Top: "top"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      r.opts.IndexName,
			AxisLabel: &opts.AxisLabel{Rotate: r.opts.LabelRotation},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			AxisLabel: &opts.AxisLabel{Formatter: types.FuncStr(opts.FuncOpts(currencyJS(r.opts.Currency)))},
		}),
	)
	return line
}

func (r *Renderer) points(values []float64, markerSize int) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v, SymbolSize: markerSize}
	}
	return data
}
