package types

import "strings"

// Extension type names carried in field-level metadata. They mark column
// semantics the logical/storage tag pair alone cannot express.
const (
	ExtensionPeriod   = "pandas.period"
	ExtensionInterval = "pandas.interval"
)

// DescriptorMeta holds the optional metadata attached to a Descriptor.
type DescriptorMeta struct {
	Timezone string `json:"timezone,omitempty"`
}

// Descriptor describes a column's type as produced by the upstream decoder.
// LogicalType and StorageType are always present; Meta may be nil and its
// absence never affects classification.
type Descriptor struct {
	LogicalType string
	StorageType string
	Meta        *DescriptorMeta
}

// Kind is the closed set of logical-type families a column can classify
// into. Every (logical, storage) pair maps to some Kind; unrecognized
// combinations map to KindObject.
type Kind int

const (
	KindObject Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindBytes
	KindDate
	KindTime
	KindDatetime
	KindTimedelta
	KindPeriod
	KindInterval
	KindDecimal
	KindCategorical
	KindList
	KindRange
	KindEmpty
)

var kindNames = map[Kind]string{
	KindObject:      "object",
	KindBool:        "bool",
	KindInt:         "int",
	KindUint:        "uint",
	KindFloat:       "float",
	KindString:      "string",
	KindBytes:       "bytes",
	KindDate:        "date",
	KindTime:        "time",
	KindDatetime:    "datetime",
	KindTimedelta:   "timedelta",
	KindPeriod:      "period",
	KindInterval:    "interval",
	KindDecimal:     "decimal",
	KindCategorical: "categorical",
	KindList:        "list",
	KindRange:       "range",
	KindEmpty:       "empty",
}

// String returns the normalized type name for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "object"
}

// Classify maps a (logicalType, storageType) tag pair plus an optional
// extension name to a Kind. The storage tag wins over the logical tag for
// the families where it carries more specific information (period,
// decimal, timedelta, dictionary-encoded, interval-with-subtype); all
// other inputs classify from the logical tag. Classification is total:
// unknown inputs yield KindObject, never an error.
func Classify(logicalType, storageType, extensionName string) Kind {
	// Storage-tag precedence for the families the logical tag hides
	// (e.g. a period column decodes with logical type "object").
	switch {
	case extensionName == ExtensionPeriod || strings.HasPrefix(storageType, "period["):
		return KindPeriod
	case extensionName == ExtensionInterval || strings.HasPrefix(storageType, "interval["):
		return KindInterval
	case storageType == "decimal":
		return KindDecimal
	case strings.HasPrefix(storageType, "timedelta"):
		return KindTimedelta
	case logicalType == "categorical" || storageType == "categorical":
		return KindCategorical
	}

	switch {
	case logicalType == "bool":
		return KindBool
	case logicalType == "int8", logicalType == "int16",
		logicalType == "int32", logicalType == "int64":
		return KindInt
	case logicalType == "uint8", logicalType == "uint16",
		logicalType == "uint32", logicalType == "uint64":
		return KindUint
	case strings.HasPrefix(logicalType, "float"):
		return KindFloat
	case logicalType == "range":
		return KindRange
	case logicalType == "date":
		return KindDate
	case logicalType == "time":
		return KindTime
	case strings.HasPrefix(logicalType, "datetime"):
		return KindDatetime
	case strings.HasPrefix(logicalType, "timedelta"):
		return KindTimedelta
	case strings.HasPrefix(logicalType, "period"):
		return KindPeriod
	case strings.HasPrefix(logicalType, "interval"):
		return KindInterval
	case logicalType == "decimal":
		return KindDecimal
	case logicalType == "unicode", logicalType == "large_string[pyarrow]":
		return KindString
	case logicalType == "bytes":
		return KindBytes
	case strings.HasPrefix(logicalType, "list"):
		return KindList
	case logicalType == "empty":
		return KindEmpty
	}

	// The storage tag still decides two families the logical tag may
	// hide behind "object": timestamp-backed and float-backed columns.
	switch {
	case strings.HasPrefix(storageType, "datetime"):
		return KindDatetime
	case strings.HasPrefix(storageType, "float"):
		return KindFloat
	}
	return KindObject
}

// ClassifyDescriptor classifies a full descriptor. Extension information
// lives in field metadata, not the descriptor, so callers that have it
// should use Classify directly.
func ClassifyDescriptor(d Descriptor) Kind {
	return Classify(d.LogicalType, d.StorageType, "")
}

// IsInteger reports whether the descriptor belongs to the integer family.
// The synthetic "range" logical type counts as integer; booleans and
// categoricals do not, even when their storage is integer-like.
func IsInteger(d Descriptor) bool {
	switch ClassifyDescriptor(d) {
	case KindInt, KindUint, KindRange:
		return true
	}
	return false
}

// IsUnsignedInteger reports whether the descriptor is an unsigned
// fixed-width integer. The "range" type is signed and excluded.
func IsUnsignedInteger(d Descriptor) bool {
	return ClassifyDescriptor(d) == KindUint
}

// IsBoolean reports whether the descriptor is a boolean column.
func IsBoolean(d Descriptor) bool {
	return ClassifyDescriptor(d) == KindBool
}

// IsFloat reports whether the descriptor is a floating-point column.
func IsFloat(d Descriptor) bool {
	return ClassifyDescriptor(d) == KindFloat
}

// Timezone returns the timezone designator (IANA name or numeric offset
// string) attached to a timezone-aware datetime column. The second return
// is false when the column is not datetime-classified or carries no
// timezone. The designator is returned verbatim; validity is checked at
// formatting time.
func Timezone(d Descriptor) (string, bool) {
	if d.Meta == nil || d.Meta.Timezone == "" {
		return "", false
	}
	if ClassifyDescriptor(d) != KindDatetime {
		return "", false
	}
	return d.Meta.Timezone, true
}
