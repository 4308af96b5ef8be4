package render

import (
	"log"
	"time"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/arrowview/cellfmt/field"
	"github.com/arrowview/cellfmt/format"
	"github.com/arrowview/cellfmt/metrics"
	"github.com/arrowview/cellfmt/types"
)

// Column carries the resolved type information for one rendered column.
type Column struct {
	Name string
	Desc types.Descriptor
	Meta field.Meta
}

// Table is a fully rendered record: one display string per cell.
type Table struct {
	Columns []Column
	Rows    [][]string
}

// Headers returns the column names in schema order.
func (t *Table) Headers() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Renderer formats Arrow records into display tables. The zero value is
// ready to use; Metrics is optional instrumentation.
type Renderer struct {
	Metrics *metrics.Metrics
}

// Columns resolves the descriptor and field metadata for every column of
// a schema, preferring pandas-supplied descriptors when the payload
// carries them.
func (r *Renderer) Columns(schema *arrow.Schema) []Column {
	pandas, err := field.ParsePandasSchema(schema.Metadata())
	if err != nil {
		// Descriptors fall back to the physical types; rendering goes on.
		log.Printf("Warning: %v", err)
	}

	cols := make([]Column, schema.NumFields())
	for i := 0; i < schema.NumFields(); i++ {
		f := schema.Field(i)
		cols[i] = Column{
			Name: f.Name,
			Desc: field.ResolveDescriptor(f, pandas),
			Meta: field.FromArrowField(f),
		}
	}
	return cols
}

// Record renders every cell of a record. Values are (re)formatted on each
// call; the engine holds no cache, so the same record may be rendered
// repeatedly under different view parameters.
func (r *Renderer) Record(rec arrow.Record) *Table {
	start := time.Now()
	cols := r.Columns(rec.Schema())

	rows := make([][]string, rec.NumRows())
	for i := range rows {
		rows[i] = make([]string, len(cols))
	}
	for j, col := range cols {
		arr := rec.Column(j)
		for i := 0; i < int(rec.NumRows()); i++ {
			rows[i][j] = format.Format(Cell(arr, i), col.Desc, &col.Meta)
		}
	}

	if r.Metrics != nil {
		r.Metrics.RecordsRendered.Inc()
		r.Metrics.CellsFormatted.Add(float64(rec.NumRows() * rec.NumCols()))
		r.Metrics.RenderLatency.Observe(time.Since(start).Seconds())
	}
	return &Table{Columns: cols, Rows: rows}
}
