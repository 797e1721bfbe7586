package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fivetwenty-io/rtb-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// JSON and YAML indentation.
const defaultIndent = 2

// view describes how one resource type is displayed.
type view[T any] struct {
	empty   string
	columns []string
	row     func(T) []string
	detail  func(io.Writer, T)
}

// printer receives items one at a time. Text output is written as each item
// arrives; table, JSON and YAML output is written by Flush.
type printer[T any] struct {
	out    io.Writer
	format string
	view   view[T]
	items  []T
	count  int
}

func newPrinter[T any](out io.Writer, format string, v view[T]) (*printer[T], error) {
	switch format {
	case constants.FormatTable, constants.FormatText, constants.FormatJSON, constants.FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %s (use table, text, json or yaml)", constants.ErrUnknownOutputFormat, format)
	}

	return &printer[T]{out: out, format: format, view: v}, nil
}

// human reports whether output is meant for people rather than programs.
func (p *printer[T]) human() bool {
	return p.format == constants.FormatTable || p.format == constants.FormatText
}

// Print adds one item.
func (p *printer[T]) Print(item T) {
	p.count++

	if p.format == constants.FormatText {
		p.view.detail(p.out, item)

		return
	}

	p.items = append(p.items, item)
}

// Flush writes buffered items. It is safe to call more than once.
func (p *printer[T]) Flush() error {
	items := p.items
	p.items = nil

	switch p.format {
	case constants.FormatJSON, constants.FormatYAML:
		if items == nil {
			items = []T{}
		}

		return encode(p.out, p.format, items)
	case constants.FormatTable:
		return p.renderTable(items)
	default:
		return nil
	}
}

// PrintOne writes a single item. JSON and YAML output encode the item itself
// rather than a one-element list.
func (p *printer[T]) PrintOne(item T) error {
	if p.human() {
		p.Print(item)

		return p.Flush()
	}

	p.count++

	return encode(p.out, p.format, item)
}

// encode writes v as indented JSON or YAML.
func encode(out io.Writer, format string, v interface{}) error {
	if format == constants.FormatJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(v)
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(defaultIndent)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

// Count returns the number of items printed so far.
func (p *printer[T]) Count() int {
	return p.count
}

// PrintEmpty tells the user that nothing was found. Machine-readable formats
// already carry an empty list.
func (p *printer[T]) PrintEmpty() {
	if p.human() {
		_, _ = fmt.Fprintln(p.out, p.view.empty)
	}
}

// Banner writes a heading line for human-readable formats only.
func (p *printer[T]) Banner(format string, args ...interface{}) {
	if p.human() {
		_, _ = fmt.Fprintf(p.out, format+"\n", args...)
	}
}

func (p *printer[T]) renderTable(items []T) error {
	if len(items) == 0 {
		return nil
	}

	header := make([]any, 0, len(p.view.columns))
	for _, column := range p.view.columns {
		header = append(header, column)
	}

	limit := cellLimit(p.out, len(p.view.columns))

	table := tablewriter.NewWriter(p.out)
	table.Header(header...)

	for _, item := range items {
		row := p.view.row(item)
		for i := range row {
			row[i] = truncate(row[i], limit)
		}

		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// cellLimit returns the widest a table cell may be when out is a terminal,
// or 0 when cells should not be truncated.
func cellLimit(out io.Writer, columns int) int {
	file, ok := out.(*os.File)
	if !ok || columns == 0 || !term.IsTerminal(int(file.Fd())) {
		return 0
	}

	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0
	}

	// Leave room for the borders and padding of each column.
	limit := width/columns - 3

	return max(limit, constants.MinColumnWidth)
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if limit <= 0 || len(runes) <= limit {
		return value
	}

	return string(runes[:limit-len(constants.Ellipsis)]) + constants.Ellipsis
}

func orNotAvailable(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
