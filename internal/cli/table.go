package cli

import (
	"io"
	"strings"
	"text/tabwriter"
)

// tableWriter prints space-aligned columns.
type tableWriter struct {
	w *tabwriter.Writer
}

func newTableWriter(out io.Writer) *tableWriter {
	return &tableWriter{w: tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)}
}

func (t *tableWriter) row(values ...string) {
	_, _ = io.WriteString(t.w, strings.Join(values, "\t")+"\n")
}

func (t *tableWriter) flush() error {
	return t.w.Flush()
}
