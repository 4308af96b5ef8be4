package output

import (
	"encoding/json"
	"io"

	"github.com/arrowview/cellfmt/render"
)

// JSONLFormatter writes rendered tables as JSON Lines: one object per
// row, keyed by column name, all values as display strings.
type JSONLFormatter struct {
	writer io.Writer
}

// NewJSONLFormatter creates a new JSON Lines formatter.
func NewJSONLFormatter(w io.Writer) *JSONLFormatter {
	return &JSONLFormatter{writer: w}
}

// SetOutput sets the output writer.
func (f *JSONLFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes one JSON object per row.
func (f *JSONLFormatter) Format(t *render.Table) error {
	headers := t.Headers()
	encoder := json.NewEncoder(f.writer)
	for _, row := range t.Rows {
		obj := make(map[string]string, len(headers))
		for j, name := range headers {
			obj[name] = row[j]
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
