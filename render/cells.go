package render

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Cell materializes the value at row i of an Arrow array into the cell
// domain the formatter accepts: nil, bool, int64, uint64, float64,
// string, []byte, *big.Int, time.Time, nested map/slice. Dictionary
// encodings are unwrapped to their dictionary value.
func Cell(arr arrow.Array, i int) interface{} {
	if arr.IsNull(i) {
		return nil
	}

	switch a := arr.(type) {
	case *array.Boolean:
		return a.Value(i)
	case *array.Int8:
		return int64(a.Value(i))
	case *array.Int16:
		return int64(a.Value(i))
	case *array.Int32:
		return int64(a.Value(i))
	case *array.Int64:
		return a.Value(i)
	case *array.Uint8:
		return uint64(a.Value(i))
	case *array.Uint16:
		return uint64(a.Value(i))
	case *array.Uint32:
		return uint64(a.Value(i))
	case *array.Uint64:
		return a.Value(i)
	case *array.Float16:
		return float64(a.Value(i).Float32())
	case *array.Float32:
		return float64(a.Value(i))
	case *array.Float64:
		return a.Value(i)
	case *array.String:
		return a.Value(i)
	case *array.LargeString:
		return a.Value(i)
	case *array.Binary:
		return a.Value(i)
	case *array.LargeBinary:
		return a.Value(i)
	case *array.FixedSizeBinary:
		return a.Value(i)
	case *array.Date32:
		return a.Value(i).ToTime()
	case *array.Date64:
		return a.Value(i).ToTime()
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		return a.Value(i).ToTime(unit)
	case *array.Time32:
		return int64(a.Value(i))
	case *array.Time64:
		return int64(a.Value(i))
	case *array.Duration:
		return int64(a.Value(i))
	case *array.Decimal128:
		return a.Value(i).BigInt()
	case *array.Decimal256:
		return a.Value(i).BigInt()
	case *array.Struct:
		return structCell(a, i)
	case *array.List:
		start, end := a.ValueOffsets(i)
		return listCell(a.ListValues(), start, end)
	case *array.LargeList:
		start, end := a.ValueOffsets(i)
		return listCell(a.ListValues(), start, end)
	case *array.Map:
		return mapCell(a, i)
	case *array.Dictionary:
		return Cell(a.Dictionary(), a.GetValueIndex(i))
	}
	// Remaining array families render through the library's own string
	// conversion; the formatter treats the result as an opaque string.
	return arr.ValueStr(i)
}

func structCell(a *array.Struct, i int) map[string]interface{} {
	st := a.DataType().(*arrow.StructType)
	out := make(map[string]interface{}, a.NumField())
	for j := 0; j < a.NumField(); j++ {
		out[st.Field(j).Name] = Cell(a.Field(j), i)
	}
	return out
}

func listCell(values arrow.Array, start, end int64) []interface{} {
	out := make([]interface{}, 0, end-start)
	for j := start; j < end; j++ {
		out = append(out, Cell(values, int(j)))
	}
	return out
}

func mapCell(a *array.Map, i int) map[string]interface{} {
	start, end := a.ValueOffsets(i)
	keys, items := a.Keys(), a.Items()
	out := make(map[string]interface{}, end-start)
	for j := start; j < end; j++ {
		out[fmt.Sprint(Cell(keys, int(j)))] = Cell(items, int(j))
	}
	return out
}
