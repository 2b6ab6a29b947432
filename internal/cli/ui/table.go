// Package ui renders aligned tables for terminal output.
package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Table accumulates rows and renders them with aligned columns,
// a colored header and a rule between header and body.
type Table struct {
	headers []string
	rows    [][]string
	noColor bool
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// DisableColor turns off ANSI styling for the whole table.
func (t *Table) DisableColor() *Table {
	t.noColor = true
	return t
}

// AddRow appends one row. Missing cells render empty, extra cells are
// dropped.
func (t *Table) AddRow(cells ...string) *Table {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
	return t
}

// Render writes the formatted table to w.
func (t *Table) Render(w io.Writer) {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	headerColor := color.New(color.Bold, color.FgCyan)
	ruleColor := color.New(color.FgHiBlack)
	if t.noColor {
		headerColor.DisableColor()
		ruleColor.DisableColor()
	}

	cells := make([]string, len(t.headers))
	for i, h := range t.headers {
		cells[i] = headerColor.Sprint(padRight(h, widths[i]))
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))

	total := 0
	for _, width := range widths {
		total += width
	}
	total += 2 * (len(widths) - 1)
	fmt.Fprintln(w, ruleColor.Sprint(strings.Repeat("─", total)))

	for _, row := range t.rows {
		for i, cell := range row {
			cells[i] = padRight(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

// KeyValue renders an aligned key/value listing with colored keys.
type KeyValue struct {
	pairs   [][2]string
	noColor bool
}

// NewKeyValue creates an empty key/value listing.
func NewKeyValue() *KeyValue {
	return &KeyValue{}
}

// DisableColor turns off ANSI styling.
func (kv *KeyValue) DisableColor() *KeyValue {
	kv.noColor = true
	return kv
}

// Add appends one pair.
func (kv *KeyValue) Add(key, value string) *KeyValue {
	kv.pairs = append(kv.pairs, [2]string{key, value})
	return kv
}

// Render writes the listing to w.
func (kv *KeyValue) Render(w io.Writer) {
	width := 0
	for _, p := range kv.pairs {
		if n := utf8.RuneCountInString(p[0]); n > width {
			width = n
		}
	}

	keyColor := color.New(color.FgCyan)
	if kv.noColor {
		keyColor.DisableColor()
	}

	for _, p := range kv.pairs {
		fmt.Fprintf(w, "%s  %s\n", keyColor.Sprint(padRight(p[0], width)), p[1])
	}
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
