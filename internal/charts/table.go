// internal/charts/table.go
package charts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	ColumnWealth   = "wealth"
	ColumnCashFlow = "cash_flow"
	NetWealthName  = "Net wealth"
)

var (
	ErrNoSeries       = errors.New("charts: table has no series")
	ErrEmptyTable     = errors.New("charts: table has no periods")
	ErrLengthMismatch = errors.New("charts: series lengths differ")
	ErrMissingColumn  = errors.New("charts: missing column")
	ErrInvalidYears   = errors.New("charts: years out of range")
	ErrTooFewPoints   = errors.New("charts: at least two periods are needed")
)

// Series is one named column of a Table.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Table is a time series: one row per period, one Series per column.
// Index holds the period labels; when empty the periods are numbered from 0.
type Table struct {
	Index   []string `json:"index,omitempty"`
	Columns []Series `json:"columns"`
}

// Len is the number of periods.
func (t Table) Len() int {
	if len(t.Index) > 0 {
		return len(t.Index)
	}
	if len(t.Columns) > 0 {
		return len(t.Columns[0].Values)
	}
	return 0
}

// Labels returns the period labels.
func (t Table) Labels() []string {
	if len(t.Index) > 0 {
		return t.Index
	}
	labels := make([]string, t.Len())
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}

// Column looks a series up by name.
func (t Table) Column(name string) (Series, error) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, nil
		}
	}
	return Series{}, fmt.Errorf("%w %q", ErrMissingColumn, name)
}

// Validate checks the table has at least one named series and that every
// series has one value per period.
func (t Table) Validate() error {
	if len(t.Columns) == 0 {
		return ErrNoSeries
	}
	n := t.Len()
	if n == 0 {
		return ErrEmptyTable
	}
	for _, c := range t.Columns {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("charts: series without a name")
		}
		if len(c.Values) != n {
			return fmt.Errorf("%w: %q has %d values, want %d", ErrLengthMismatch, c.Name, len(c.Values), n)
		}
	}
	return nil
}

// NetWealth sums the wealth and cash_flow columns period by period.
func NetWealth(t Table) (Series, error) {
	wealth, err := t.Column(ColumnWealth)
	if err != nil {
		return Series{}, err
	}
	cash, err := t.Column(ColumnCashFlow)
	if err != nil {
		return Series{}, err
	}
	if len(wealth.Values) != len(cash.Values) {
		return Series{}, fmt.Errorf("%w: %s=%d %s=%d", ErrLengthMismatch,
			ColumnWealth, len(wealth.Values), ColumnCashFlow, len(cash.Values))
	}

	net := Series{Name: NetWealthName, Values: make([]float64, len(wealth.Values))}
	for i := range wealth.Values {
		net.Values[i] = wealth.Values[i] + cash.Values[i]
	}
	return net, nil
}

// ReadCSV loads a table whose header is the period column followed by the
// series names, e.g. "year,wealth,cash_flow".
func ReadCSV(r io.Reader) (Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("csv: read: %w", err)
	}
	if len(records) == 0 {
		return Table{}, ErrEmptyTable
	}

	header := records[0]
	if len(header) < 2 {
		return Table{}, ErrNoSeries
	}

	t := Table{Columns: make([]Series, len(header)-1)}
	for i, name := range header[1:] {
		t.Columns[i].Name = strings.TrimSpace(name)
	}

	for line, row := range records[1:] {
		if len(row) != len(header) {
			return Table{}, fmt.Errorf("csv: line %d: %d fields, want %d", line+2, len(row), len(header))
		}
		t.Index = append(t.Index, strings.TrimSpace(row[0]))
		for i, cell := range row[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return Table{}, fmt.Errorf("csv: line %d column %q: %w", line+2, t.Columns[i].Name, err)
			}
			t.Columns[i].Values = append(t.Columns[i].Values, v)
		}
	}

	return t, nil
}
