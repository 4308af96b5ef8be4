package format

import (
	"fmt"
	"log"
	"math"
	"math/big"
	"strconv"

	"github.com/arrowview/cellfmt/field"
	"github.com/arrowview/cellfmt/types"
)

// NA is the fixed marker rendered for null or absent cells.
const NA = "<NA>"

// Logger receives best-effort diagnostics from fallback paths. Library
// users may replace or nil it; formatting behavior does not depend on it.
var Logger = log.Default()

// FallbackHook, when set, is called with a short reason tag every time a
// cell degrades to raw stringification. Used for instrumentation.
var FallbackHook func(reason string)

func fallback(reason, msg string, args ...interface{}) {
	if FallbackHook != nil {
		FallbackHook(reason)
	}
	if Logger != nil {
		Logger.Printf("Warning: "+msg, args...)
	}
}

// Format renders a single cell value as a display string. The descriptor
// and metadata select exactly one specialized formatter; values that do
// not fit their column's declared family render via raw stringification.
// Format never panics and never returns an error.
func Format(value interface{}, desc types.Descriptor, meta *field.Meta) string {
	if value == nil {
		return NA
	}

	kind := types.Classify(desc.LogicalType, desc.StorageType, meta.ExtensionName())
	switch kind {
	case types.KindDate:
		return formatDate(value)
	case types.KindTime:
		return formatTime(value, meta)
	case types.KindDatetime:
		return formatDatetime(value, desc)
	case types.KindPeriod:
		return formatPeriod(value, meta)
	case types.KindInterval:
		return formatInterval(value, meta)
	case types.KindTimedelta:
		return formatDuration(value, meta)
	case types.KindDecimal:
		return formatDecimal(value, meta)
	case types.KindFloat:
		return formatFloat(value)
	case types.KindObject, types.KindList:
		return formatObject(value, meta)
	case types.KindBool, types.KindInt, types.KindUint, types.KindString,
		types.KindBytes, types.KindCategorical, types.KindRange, types.KindEmpty:
		return Stringify(value)
	}
	return Stringify(value)
}

// Stringify is the raw string conversion used by every fallback path.
// Floats follow the display conventions for non-finite values and big
// integers print their decimal digits.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return NA
	case string:
		return v
	case float64:
		return stringifyFloat(v)
	case float32:
		return stringifyFloat(float64(v))
	case *big.Int:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func stringifyFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs >= 1e21 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
