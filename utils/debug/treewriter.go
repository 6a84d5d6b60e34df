// Package debug has helpers producing human readable dumps of internal
// structures for logs and debug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// TreeWriter accumulates indented lines, two spaces per depth level.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes labeled value quoted, so line breaks and markup inside stay
// on a single line.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Optional is TextBlock for values which may be absent.
func (tw *TreeWriter) Optional(depth int, label string, value *string) {
	if value == nil {
		tw.indent(depth)
		tw.w.WriteString(label)
		tw.w.WriteString(": <none>\n")
		return
	}
	tw.TextBlock(depth, label, *value)
}

// Excerpt is TextBlock showing at most limit runes of value followed by total
// length when value is longer.
func (tw *TreeWriter) Excerpt(depth int, label, value string, limit int) {
	n := utf8.RuneCountInString(value)
	if n <= limit {
		tw.TextBlock(depth, label, value)
		return
	}
	cut := 0
	for range limit {
		_, size := utf8.DecodeRuneInString(value[cut:])
		cut += size
	}
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value[:cut]))
	fmt.Fprintf(tw.w, "... (%d runes)\n", n)
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
