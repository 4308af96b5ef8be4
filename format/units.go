package format

import (
	"math/big"

	"github.com/arrowview/cellfmt/field"
)

// maxSafeInt is the largest integer magnitude a float64 represents
// without precision loss (2^53 - 1).
const maxSafeInt = 1<<53 - 1

func unitDivisor(unit field.TimeUnit) int64 {
	switch unit {
	case field.Millisecond:
		return 1e3
	case field.Microsecond:
		return 1e6
	case field.Nanosecond:
		return 1e9
	}
	// Seconds, and any unknown unit code, pass through unchanged.
	return 1
}

// ToSeconds normalizes a timestamp-like integer expressed in unit into a
// seconds value. Values within the safe-integer range divide in floating
// point, keeping sub-unit fractions; values beyond it divide in integer
// or big-integer arithmetic first and convert only the quotient, dropping
// any fractional remainder. This is the one place that precision policy
// is decided.
func ToSeconds(value interface{}, unit field.TimeUnit) float64 {
	div := unitDivisor(unit)
	switch v := value.(type) {
	case int64:
		if v > maxSafeInt || v < -maxSafeInt {
			return float64(v / div)
		}
		return float64(v) / float64(div)
	case int:
		return ToSeconds(int64(v), unit)
	case int32:
		return float64(v) / float64(div)
	case uint64:
		if v > maxSafeInt {
			return float64(v / uint64(div))
		}
		return float64(v) / float64(div)
	case *big.Int:
		if v == nil {
			return 0
		}
		if v.IsInt64() {
			return ToSeconds(v.Int64(), unit)
		}
		q := new(big.Int).Quo(v, big.NewInt(div))
		f, _ := new(big.Float).SetInt(q).Float64()
		return f
	case float64:
		return v / float64(div)
	}
	return 0
}
