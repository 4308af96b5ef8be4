package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/arrowview/cellfmt/render"
)

// TableFormatter writes rendered tables as aligned terminal tables.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new aligned-table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer.
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes the table with a header row and one line per data row.
func (f *TableFormatter) Format(t *render.Table) error {
	tw := tablewriter.NewWriter(f.writer)
	tw.SetHeader(t.Headers())
	tw.SetAutoFormatHeaders(false)
	tw.AppendBulk(t.Rows)
	tw.Render()
	return nil
}
