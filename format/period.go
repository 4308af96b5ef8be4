package format

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/arrowview/cellfmt/field"
)

// periodEpoch anchors period arithmetic: a period value counts whole
// frequency units since 1970-01-01 UTC.
var periodEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

var weekdayNames = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// formatPeriod renders a frequency-coded period cell. The frequency code
// comes from the period extension metadata; missing or unsupported codes
// and out-of-safe-integer durations degrade to the raw duration string.
func formatPeriod(value interface{}, meta *field.Meta) string {
	pm, err := meta.PeriodMeta()
	if err != nil {
		fallback("period", "cannot format period cell: %v", err)
		return Stringify(value)
	}

	d, ok := asPeriodCount(value)
	if !ok {
		fallback("period", "period duration %v exceeds the safely-representable range", value)
		return Stringify(value)
	}

	base, param, _ := strings.Cut(pm.Freq, "-")
	out, ok := renderPeriod(d, base, param)
	if !ok {
		fallback("period", "unsupported period frequency %q", pm.Freq)
		return Stringify(value)
	}
	return out
}

func asPeriodCount(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int64:
		if v > maxSafeInt || v < -maxSafeInt {
			return 0, false
		}
		return v, true
	case int32:
		return int64(v), true
	case int:
		return asPeriodCount(int64(v))
	case uint64:
		if v > maxSafeInt {
			return 0, false
		}
		return int64(v), true
	case *big.Int:
		if v != nil && v.IsInt64() {
			return asPeriodCount(v.Int64())
		}
		return 0, false
	}
	return 0, false
}

func renderPeriod(d int64, base, param string) (string, bool) {
	switch base {
	case "L", "ms":
		return time.UnixMilli(d).UTC().Format("2006-01-02 15:04:05.000"), true
	case "S", "s":
		return time.Unix(d, 0).UTC().Format("2006-01-02 15:04:05"), true
	case "T", "min":
		secs, ok := mulInt64(d, 60)
		if !ok {
			return "", false
		}
		return time.Unix(secs, 0).UTC().Format("2006-01-02 15:04"), true
	case "H", "h":
		secs, ok := mulInt64(d, 3600)
		if !ok {
			return "", false
		}
		return time.Unix(secs, 0).UTC().Format("2006-01-02 15") + ":00", true
	case "D":
		return periodEpoch.AddDate(0, 0, int(d)).Format("2006-01-02"), true
	case "M":
		return periodEpoch.AddDate(0, int(d), 0).Format("2006-01"), true
	case "Q":
		// Quarters anchor to the end of the quarter, unlike every other
		// frequency; downstream output depends on this asymmetry.
		t := endOfQuarter(periodEpoch.AddDate(0, int(d)*3, 0))
		return fmt.Sprintf("%04dQ%d", t.Year(), quarterOf(t)), true
	case "Y", "A":
		return periodEpoch.AddDate(int(d), 0, 0).Format("2006"), true
	case "W":
		return renderWeek(d, param)
	}
	return "", false
}

// renderWeek renders a weekly period as an ISO start/end date range of
// the 7-day span ending on the anchor weekday named by the frequency
// parameter. Day-of-week arithmetic is relative to the Sunday-started
// week containing the shifted epoch, with negative indices reaching into
// the previous week, matching the reference ecosystem.
func renderWeek(d int64, param string) (string, bool) {
	anchor := -1
	for i, name := range weekdayNames {
		if strings.EqualFold(param, name) {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return "", false
	}

	cur := periodEpoch.AddDate(0, 0, int(d)*7)
	dayAt := func(n int) time.Time {
		return cur.AddDate(0, 0, n-int(cur.Weekday()))
	}
	start := dayAt(anchor - 6)
	end := dayAt(anchor)
	return start.Format(layoutDate) + "/" + end.Format(layoutDate), true
}

func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

func endOfQuarter(t time.Time) time.Time {
	lastMonth := time.Month(quarterOf(t) * 3)
	firstOfNext := time.Date(t.Year(), lastMonth, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

func mulInt64(a, b int64) (int64, bool) {
	if a > math.MaxInt64/b || a < math.MinInt64/b {
		return 0, false
	}
	return a * b, true
}
