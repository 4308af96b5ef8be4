package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/arrowview/cellfmt/field"
	"github.com/arrowview/cellfmt/types"
)

// Reference layouts for the fixed external display conventions.
const (
	layoutDate        = "2006-01-02"
	layoutTime        = "15:04:05"
	layoutDatetime    = "2006-01-02 15:04:05"
	layoutDatetimeOff = "2006-01-02 15:04:05-0700"
)

func formatDate(value interface{}) string {
	t, ok := value.(time.Time)
	if !ok {
		fallback("date", "date cell is not a calendar value: %T", value)
		return Stringify(value)
	}
	return t.UTC().Format(layoutDate)
}

// formatTime renders a time-of-day stored as an integer count of the
// field's declared unit since midnight (default: seconds). Sub-second
// remainders extend the output with a millisecond component.
func formatTime(value interface{}, meta *field.Meta) string {
	switch value.(type) {
	case int64, int32, int, uint64:
	default:
		fallback("time", "time cell is not an integer: %T", value)
		return Stringify(value)
	}
	secs := ToSeconds(value, meta.UnitOr(field.Second))

	totalMillis := int64(math.Round(secs * 1e3))
	t := time.Unix(totalMillis/1e3, 0).UTC()
	if ms := totalMillis % 1e3; ms != 0 {
		return t.Format(layoutTime) + fmt.Sprintf(".%03d", ms)
	}
	return t.Format(layoutTime)
}

func formatDatetime(value interface{}, desc types.Descriptor) string {
	t, ok := value.(time.Time)
	if !ok {
		fallback("datetime", "datetime cell is not an instant: %T", value)
		return Stringify(value)
	}

	tz, hasTZ := types.Timezone(desc)
	if !hasTZ {
		return t.UTC().Format(layoutDatetime)
	}
	return t.In(resolveLocation(tz)).Format(layoutDatetimeOff)
}

// resolveLocation turns a timezone designator into a location: a known
// IANA name loads the zone database entry, a numeric offset string
// becomes a fixed zone, and anything else degrades to UTC with a warning.
func resolveLocation(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); err == nil {
		return loc
	}
	if secs, ok := parseUTCOffset(tz); ok {
		return time.FixedZone(tz, secs)
	}
	fallback("timezone", "unresolvable timezone %q, assuming UTC", tz)
	return time.UTC
}

// parseUTCOffset accepts the offset spellings the upstream contract
// produces: ±hh:mm, ±hhmm and ±hh.
func parseUTCOffset(s string) (int, bool) {
	if len(s) < 3 || (s[0] != '+' && s[0] != '-') {
		return 0, false
	}
	body := strings.Replace(s[1:], ":", "", 1)
	if len(body) != 2 && len(body) != 4 {
		return 0, false
	}
	for _, c := range body {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	hours := int(body[0]-'0')*10 + int(body[1]-'0')
	minutes := 0
	if len(body) == 4 {
		minutes = int(body[2]-'0')*10 + int(body[3]-'0')
	}
	if hours > 23 || minutes > 59 {
		return 0, false
	}
	secs := hours*3600 + minutes*60
	if s[0] == '-' {
		secs = -secs
	}
	return secs, true
}
