package field

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arrowview/cellfmt/types"
)

// Common errors for extension metadata validation.
var (
	ErrNoExtension      = errors.New("field carries no extension metadata")
	ErrWrongExtension   = errors.New("extension name does not match")
	ErrInvalidExtension = errors.New("extension metadata is invalid")
)

// TimeUnit is the granularity an integer timestamp value is expressed in.
// The numeric values match the upstream decoder's unit codes.
type TimeUnit int

const (
	Second TimeUnit = iota
	Millisecond
	Microsecond
	Nanosecond
)

// String returns the conventional short name for the unit.
func (u TimeUnit) String() string {
	switch u {
	case Second:
		return "s"
	case Millisecond:
		return "ms"
	case Microsecond:
		return "us"
	case Nanosecond:
		return "ns"
	}
	return "s"
}

// Extension is the side-channel payload attached to a column carrying
// semantics the logical type alone cannot express. Metadata is a raw JSON
// string validated only when a specific payload variant is requested.
type Extension struct {
	Name     string
	Metadata string
}

// Meta is the physical-format metadata for one column. The zero value is
// valid and means "no metadata": callers supply per-family defaults for
// the unit, and scale defaults to zero.
type Meta struct {
	Unit      TimeUnit
	HasUnit   bool
	Scale     int32
	Timezone  string
	Compound  bool
	Extension *Extension
}

// UnitOr returns the declared unit, or def when none was declared.
// Safe on a nil receiver.
func (m *Meta) UnitOr(def TimeUnit) TimeUnit {
	if m == nil || !m.HasUnit {
		return def
	}
	return m.Unit
}

// ExtensionName returns the extension type name, or "" when absent.
// Safe on a nil receiver.
func (m *Meta) ExtensionName() string {
	if m == nil || m.Extension == nil {
		return ""
	}
	return m.Extension.Name
}

// PeriodMeta is the validated payload of a period extension column.
type PeriodMeta struct {
	Freq string `json:"freq"`
}

// Closed names which interval bounds are inclusive.
type Closed string

const (
	ClosedLeft    Closed = "left"
	ClosedRight   Closed = "right"
	ClosedBoth    Closed = "both"
	ClosedNeither Closed = "neither"
)

// IntervalMeta is the validated payload of an interval extension column.
type IntervalMeta struct {
	Subtype string `json:"subtype"`
	Closed  Closed `json:"closed"`
}

// PeriodMeta parses and validates the period extension payload. It fails
// with a wrapped sentinel error when the extension is absent, names a
// different type, or carries no frequency code.
func (m *Meta) PeriodMeta() (PeriodMeta, error) {
	var pm PeriodMeta
	if m == nil || m.Extension == nil {
		return pm, ErrNoExtension
	}
	if m.Extension.Name != types.ExtensionPeriod {
		return pm, fmt.Errorf("%w: got %q", ErrWrongExtension, m.Extension.Name)
	}
	if err := json.Unmarshal([]byte(m.Extension.Metadata), &pm); err != nil {
		return pm, fmt.Errorf("%w: %v", ErrInvalidExtension, err)
	}
	if pm.Freq == "" {
		return pm, fmt.Errorf("%w: missing freq", ErrInvalidExtension)
	}
	return pm, nil
}

// IntervalMeta parses and validates the interval extension payload.
// The closed flag must be one of the four defined values.
func (m *Meta) IntervalMeta() (IntervalMeta, error) {
	var im IntervalMeta
	if m == nil || m.Extension == nil {
		return im, ErrNoExtension
	}
	if m.Extension.Name != types.ExtensionInterval {
		return im, fmt.Errorf("%w: got %q", ErrWrongExtension, m.Extension.Name)
	}
	if err := json.Unmarshal([]byte(m.Extension.Metadata), &im); err != nil {
		return im, fmt.Errorf("%w: %v", ErrInvalidExtension, err)
	}
	if im.Subtype == "" {
		return im, fmt.Errorf("%w: missing subtype", ErrInvalidExtension)
	}
	switch im.Closed {
	case ClosedLeft, ClosedRight, ClosedBoth, ClosedNeither:
	default:
		return im, fmt.Errorf("%w: closed=%q", ErrInvalidExtension, im.Closed)
	}
	return im, nil
}
