// internal/charts/page.go
package charts

import (
	"errors"
	"io"

	"github.com/go-echarts/go-echarts/v2/components"
)

// Page writes the given charts as one standalone HTML document.
func (r *Renderer) Page(w io.Writer, lines ...components.Charter) error {
	if len(lines) == 0 {
		return errors.New("charts: nothing to render")
	}
	page := components.NewPage()
	page.PageTitle = r.opts.PageTitle
	page.AddCharts(lines...)
	return page.Render(w)
}
