package output

import (
	"encoding/csv"
	"io"

	"github.com/arrowview/cellfmt/render"
)

// CSVFormatter writes rendered tables as CSV with a header row.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer.
func (f *CSVFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes the header row followed by every data row.
func (f *CSVFormatter) Format(t *render.Table) error {
	cw := csv.NewWriter(f.writer)
	if err := cw.Write(t.Headers()); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
