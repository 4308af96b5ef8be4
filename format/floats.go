package format

import (
	"math"

	"github.com/dustin/go-humanize"
)

// formatFloat renders a finite float with thousands grouping and exactly
// four decimal places. Non-finite values keep their conventional names.
func formatFloat(value interface{}) string {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return Stringify(value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return stringifyFloat(f)
	}
	return humanize.FormatFloat("#,###.####", f)
}
