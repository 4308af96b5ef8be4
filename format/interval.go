package format

import (
	"github.com/arrowview/cellfmt/field"
	"github.com/arrowview/cellfmt/types"
)

// Interval is a two-bound compound cell value.
type Interval struct {
	Left  interface{}
	Right interface{}
}

// formatInterval renders an interval cell in bracket notation. The
// closed-bound flag and the bound subtype come from the interval
// extension metadata; each bound is formatted by dispatching again with
// the subtype as its logical type.
func formatInterval(value interface{}, meta *field.Meta) string {
	im, err := meta.IntervalMeta()
	if err != nil {
		fallback("interval", "cannot format interval cell: %v", err)
		return Stringify(value)
	}

	iv, ok := asInterval(value)
	if !ok {
		fallback("interval", "interval cell is not a two-bound compound: %T", value)
		return Stringify(value)
	}

	left := "("
	if im.Closed == field.ClosedLeft || im.Closed == field.ClosedBoth {
		left = "["
	}
	right := ")"
	if im.Closed == field.ClosedRight || im.Closed == field.ClosedBoth {
		right = "]"
	}

	sub := types.Descriptor{LogicalType: im.Subtype, StorageType: im.Subtype}
	boundMeta := boundFieldMeta(meta)
	return left + Format(iv.Left, sub, boundMeta) + ", " +
		Format(iv.Right, sub, boundMeta) + right
}

func asInterval(value interface{}) (Interval, bool) {
	switch v := value.(type) {
	case Interval:
		return v, true
	case map[string]interface{}:
		l, lok := v["left"]
		r, rok := v["right"]
		if lok && rok {
			return Interval{Left: l, Right: r}, true
		}
	}
	return Interval{}, false
}

// boundFieldMeta strips the extension payload so bound formatting cannot
// re-enter the interval path; unit and scale carry through to the bounds.
func boundFieldMeta(meta *field.Meta) *field.Meta {
	if meta == nil {
		return nil
	}
	bound := *meta
	bound.Extension = nil
	return &bound
}
