package format

import (
	"fmt"
	"math"

	"github.com/arrowview/cellfmt/field"
)

// formatDuration renders a timedelta cell as a natural-language duration.
// The raw value counts the field's declared unit (default: nanoseconds).
func formatDuration(value interface{}, meta *field.Meta) string {
	switch value.(type) {
	case int64, int32, int, uint64, float64:
	default:
		fallback("timedelta", "timedelta cell is not numeric: %T", value)
		return Stringify(value)
	}
	return humanizeSeconds(ToSeconds(value, meta.UnitOr(field.Nanosecond)))
}

// humanizeSeconds reproduces the humanization break-points of the
// dataframe ecosystem this engine's output must match: 44 seconds reads
// as "a few seconds", 45 as "a minute", 90 as "2 minutes", and so on up
// through months and years. Month counts derive from the 400-year
// Gregorian mean (146097 days per 4800 months). Negative durations
// humanize their magnitude.
func humanizeSeconds(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return Stringify(seconds)
	}

	abs := math.Abs(seconds)
	sec := math.Round(abs)
	if sec <= 44 {
		return "a few seconds"
	}
	if sec <= 89 {
		return "a minute"
	}

	minutes := math.Round(abs / 60)
	if minutes <= 44 {
		return fmt.Sprintf("%d minutes", int64(minutes))
	}
	if minutes <= 89 {
		return "an hour"
	}

	hours := math.Round(abs / 3600)
	if hours <= 21 {
		return fmt.Sprintf("%d hours", int64(hours))
	}
	if hours <= 35 {
		return "a day"
	}

	days := abs / 86400
	if d := math.Round(days); d <= 25 {
		return fmt.Sprintf("%d days", int64(d))
	}
	if math.Round(days) <= 45 {
		return "a month"
	}

	months := math.Round(days * 4800 / 146097)
	if months <= 10 {
		return fmt.Sprintf("%d months", int64(months))
	}

	years := math.Round(days * 400 / 146097)
	if years <= 1 {
		return "a year"
	}
	return fmt.Sprintf("%d years", int64(years))
}
