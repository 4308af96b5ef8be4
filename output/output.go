package output

import (
	"io"

	"github.com/arrowview/cellfmt/render"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format writes a rendered table in the formatter's specific format
	Format(t *render.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// New returns the formatter registered under name, or nil for an
// unknown name. Known names: "table", "csv", "jsonl".
func New(name string, w io.Writer) Formatter {
	switch name {
	case "table":
		return NewTableFormatter(w)
	case "csv":
		return NewCSVFormatter(w)
	case "jsonl":
		return NewJSONLFormatter(w)
	}
	return nil
}
