package render

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/arrowview/cellfmt/format"
	"github.com/arrowview/cellfmt/metrics"
	"github.com/arrowview/cellfmt/types"
)

func TestRenderScalarRecord(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		{Name: "value", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "label", Type: arrow.BinaryTypes.String, Nullable: true},
		{Name: "flag", Type: arrow.FixedWidthTypes.Boolean, Nullable: true},
	}, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()

	b.Field(0).(*array.Int64Builder).AppendValues([]int64{1, 2}, nil)
	b.Field(1).(*array.Float64Builder).Append(1234.5)
	b.Field(1).(*array.Float64Builder).AppendNull()
	b.Field(2).(*array.StringBuilder).AppendValues([]string{"hello", "world"}, nil)
	b.Field(3).(*array.BooleanBuilder).AppendValues([]bool{true, false}, nil)

	rec := b.NewRecord()
	defer rec.Release()

	var r Renderer
	table := r.Record(rec)

	if len(table.Rows) != 2 || len(table.Columns) != 4 {
		t.Fatalf("table shape = %dx%d", len(table.Rows), len(table.Columns))
	}
	want := [][]string{
		{"1", "1,234.5000", "hello", "true"},
		{"2", "<NA>", "world", "false"},
	}
	for i, row := range want {
		for j, cell := range row {
			if table.Rows[i][j] != cell {
				t.Errorf("cell [%d][%d] = %q, want %q", i, j, table.Rows[i][j], cell)
			}
		}
	}
	if got := table.Headers(); got[0] != "id" || got[3] != "flag" {
		t.Errorf("headers = %v", got)
	}
}

func TestRenderTemporalColumns(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "day", Type: arrow.FixedWidthTypes.Date32, Nullable: true},
		{Name: "stamp", Type: &arrow.TimestampType{Unit: arrow.Nanosecond, TimeZone: "UTC"}, Nullable: true},
		{Name: "elapsed", Type: &arrow.DurationType{Unit: arrow.Nanosecond}, Nullable: true},
	}, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()

	// 2020-01-01 is day 18262 of the epoch.
	b.Field(0).(*array.Date32Builder).Append(arrow.Date32(18262))
	b.Field(1).(*array.TimestampBuilder).Append(arrow.Timestamp(1_577_836_800_000_000_000))
	b.Field(2).(*array.DurationBuilder).Append(arrow.Duration(7_200_000_000_000))

	rec := b.NewRecord()
	defer rec.Release()

	var r Renderer
	table := r.Record(rec)

	want := []string{"2020-01-01", "2020-01-01 00:00:00+0000", "2 hours"}
	for j, cell := range want {
		if table.Rows[0][j] != cell {
			t.Errorf("column %d = %q, want %q", j, table.Rows[0][j], cell)
		}
	}
}

func TestRenderDecimalColumn(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "amount", Type: &arrow.Decimal128Type{Precision: 20, Scale: 3}, Nullable: true},
	}, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()
	db := b.Field(0).(*array.Decimal128Builder)
	db.Append(decimal128.FromI64(123450))
	db.Append(decimal128.FromI64(-5000))
	db.AppendNull()

	rec := b.NewRecord()
	defer rec.Release()

	var r Renderer
	table := r.Record(rec)

	want := []string{"123.45", "-5", "<NA>"}
	for i, cell := range want {
		if table.Rows[i][0] != cell {
			t.Errorf("row %d = %q, want %q", i, table.Rows[i][0], cell)
		}
	}
}

func TestRenderPeriodExtensionColumn(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{
			Name:     "month",
			Type:     arrow.PrimitiveTypes.Int64,
			Nullable: true,
			Metadata: arrow.MetadataFrom(map[string]string{
				"ARROW:extension:name":     types.ExtensionPeriod,
				"ARROW:extension:metadata": `{"freq": "M"}`,
			}),
		},
	}, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()
	b.Field(0).(*array.Int64Builder).AppendValues([]int64{600, 0}, nil)

	rec := b.NewRecord()
	defer rec.Release()

	var r Renderer
	table := r.Record(rec)

	if table.Rows[0][0] != "2020-01" || table.Rows[1][0] != "1970-01" {
		t.Errorf("period column = %v", [][]string{table.Rows[0], table.Rows[1]})
	}
}

func TestRenderIntervalExtensionColumn(t *testing.T) {
	bounds := arrow.StructOf(
		arrow.Field{Name: "left", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		arrow.Field{Name: "right", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	)
	schema := arrow.NewSchema([]arrow.Field{
		{
			Name:     "span",
			Type:     bounds,
			Nullable: true,
			Metadata: arrow.MetadataFrom(map[string]string{
				"ARROW:extension:name":     types.ExtensionInterval,
				"ARROW:extension:metadata": `{"subtype": "int64", "closed": "both"}`,
			}),
		},
	}, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()
	sb := b.Field(0).(*array.StructBuilder)
	sb.Append(true)
	sb.FieldBuilder(0).(*array.Int64Builder).Append(1)
	sb.FieldBuilder(1).(*array.Int64Builder).Append(5)

	rec := b.NewRecord()
	defer rec.Release()

	var r Renderer
	table := r.Record(rec)

	if table.Rows[0][0] != "[1, 5]" {
		t.Errorf("interval column = %q, want [1, 5]", table.Rows[0][0])
	}
}

func TestRenderNestedColumns(t *testing.T) {
	nested := arrow.StructOf(
		arrow.Field{Name: "a", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		arrow.Field{Name: "b", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	)
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "obj", Type: nested, Nullable: true},
		{Name: "xs", Type: arrow.ListOf(arrow.PrimitiveTypes.Int64), Nullable: true},
	}, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()

	sb := b.Field(0).(*array.StructBuilder)
	sb.Append(true)
	sb.FieldBuilder(0).(*array.Int64Builder).AppendNull()
	sb.FieldBuilder(1).(*array.Int64Builder).Append(1)

	lb := b.Field(1).(*array.ListBuilder)
	lb.Append(true)
	lb.ValueBuilder().(*array.Int64Builder).AppendValues([]int64{1, 2}, nil)

	rec := b.NewRecord()
	defer rec.Release()

	var r Renderer
	table := r.Record(rec)

	// Null struct leaves are dropped; list cells serialize fully.
	if table.Rows[0][0] != `{"b":1}` {
		t.Errorf("struct cell = %q, want {\"b\":1}", table.Rows[0][0])
	}
	if table.Rows[0][1] != "[1,2]" {
		t.Errorf("list cell = %q, want [1,2]", table.Rows[0][1])
	}
}

func TestRenderDictionaryColumn(t *testing.T) {
	dictType := &arrow.DictionaryType{
		IndexType: arrow.PrimitiveTypes.Int8,
		ValueType: arrow.BinaryTypes.String,
	}
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "color", Type: dictType, Nullable: true},
	}, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()
	db := b.Field(0).(*array.BinaryDictionaryBuilder)
	if err := db.AppendString("red"); err != nil {
		t.Fatal(err)
	}
	if err := db.AppendString("blue"); err != nil {
		t.Fatal(err)
	}
	if err := db.AppendString("red"); err != nil {
		t.Fatal(err)
	}

	rec := b.NewRecord()
	defer rec.Release()

	var r Renderer
	table := r.Record(rec)

	want := []string{"red", "blue", "red"}
	for i, cell := range want {
		if table.Rows[i][0] != cell {
			t.Errorf("row %d = %q, want %q", i, table.Rows[i][0], cell)
		}
	}
}

func TestRenderUsesPandasSchemaMetadata(t *testing.T) {
	pandas := `{"columns": [
		{"name": "tod", "field_name": "tod", "pandas_type": "time", "numpy_type": "object", "metadata": null}
	]}`
	md := arrow.MetadataFrom(map[string]string{"pandas": pandas})
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "tod", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	}, &md)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()
	b.Field(0).(*array.Int64Builder).Append(3601)

	rec := b.NewRecord()
	defer rec.Release()

	var r Renderer
	table := r.Record(rec)

	// The pandas descriptor reclassifies the int64 column as time-of-day.
	if table.Rows[0][0] != "01:00:01" {
		t.Errorf("time cell = %q, want 01:00:01", table.Rows[0][0])
	}
}

func TestRenderMetrics(t *testing.T) {
	m := metrics.New("cellfmt_test")
	format.FallbackHook = m.CountFallback
	defer func() { format.FallbackHook = nil }()

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "n", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	}, nil)
	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()
	b.Field(0).(*array.Int64Builder).AppendValues([]int64{1, 2, 3}, nil)

	rec := b.NewRecord()
	defer rec.Release()

	r := Renderer{Metrics: m}
	r.Record(rec)

	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatal(err)
	}
	found := map[string]float64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			if metric.GetCounter() != nil {
				found[mf.GetName()] += metric.GetCounter().GetValue()
			}
		}
	}
	if found["cellfmt_test_cells_formatted_total"] != 3 {
		t.Errorf("cells_formatted_total = %v, want 3", found["cellfmt_test_cells_formatted_total"])
	}
	if found["cellfmt_test_records_rendered_total"] != 1 {
		t.Errorf("records_rendered_total = %v, want 1", found["cellfmt_test_records_rendered_total"])
	}
}
