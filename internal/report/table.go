// Package report renders source reports as text tables.
package report

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/naka-gawa/devsalary/internal/domain"
)

// Header is the fixed column order of every report.
var Header = table.Row{"Язык", "Вакансий найдено", "Вакансий обработано", "Средняя зарплата"}

type options struct {
	grouped bool
}

// Option changes how a report is rendered.
type Option func(*options)

// WithGroupedDigits prints the average salary with thousands separators.
func WithGroupedDigits() Option {
	return func(o *options) { o.grouped = true }
}

// Build renders r as an ASCII table titled with the report title,
// one row per language in report order.
func Build(r *domain.SourceReport, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	t := table.NewWriter()
	style := table.StyleDefault
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)
	t.SetTitle("%s", r.Title())
	t.AppendHeader(Header)

	for _, row := range r.Rows() {
		t.AppendRow(table.Row{
			row.Language,
			row.VacanciesFound,
			row.VacanciesProcessed,
			formatSalary(row.AverageSalary, o.grouped),
		})
	}
	return t.Render()
}

func formatSalary(v int, grouped bool) string {
	if grouped {
		return humanize.Comma(int64(v))
	}
	return strconv.Itoa(v)
}
