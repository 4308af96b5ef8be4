package field

import (
	"fmt"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/arrowview/cellfmt/types"
)

// Arrow field metadata keys carrying extension type information.
const (
	extensionNameKey     = "ARROW:extension:name"
	extensionMetadataKey = "ARROW:extension:metadata"
)

func fromArrowUnit(u arrow.TimeUnit) TimeUnit {
	switch u {
	case arrow.Second:
		return Second
	case arrow.Millisecond:
		return Millisecond
	case arrow.Microsecond:
		return Microsecond
	case arrow.Nanosecond:
		return Nanosecond
	}
	return Second
}

// FromArrowField derives column metadata from an Arrow schema field:
// temporal unit and timezone, decimal scale, compound flag, and any
// extension payload present in the field-level metadata.
func FromArrowField(f arrow.Field) Meta {
	var m Meta
	switch t := f.Type.(type) {
	case *arrow.TimestampType:
		m.Unit = fromArrowUnit(t.Unit)
		m.HasUnit = true
		m.Timezone = t.TimeZone
	case *arrow.Time32Type:
		m.Unit = fromArrowUnit(t.Unit)
		m.HasUnit = true
	case *arrow.Time64Type:
		m.Unit = fromArrowUnit(t.Unit)
		m.HasUnit = true
	case *arrow.DurationType:
		m.Unit = fromArrowUnit(t.Unit)
		m.HasUnit = true
	case *arrow.Decimal128Type:
		m.Scale = t.Scale
	case *arrow.Decimal256Type:
		m.Scale = t.Scale
	case *arrow.StructType:
		m.Compound = true
	case *arrow.DictionaryType:
		inner := FromArrowField(arrow.Field{Name: f.Name, Type: t.ValueType})
		m = inner
	}

	if name, ok := f.Metadata.GetValue(extensionNameKey); ok {
		md, _ := f.Metadata.GetValue(extensionMetadataKey)
		m.Extension = &Extension{Name: name, Metadata: md}
	}
	return m
}

// DescriptorFromArrow synthesizes a type descriptor from the Arrow
// physical type, for payloads that carry no schema-level pandas metadata.
// The tags mirror the ones the upstream decoder would have produced.
func DescriptorFromArrow(f arrow.Field) types.Descriptor {
	logical, storage := "object", "object"
	switch t := f.Type.(type) {
	case *arrow.BooleanType:
		logical, storage = "bool", "bool"
	case *arrow.Int8Type:
		logical, storage = "int8", "int8"
	case *arrow.Int16Type:
		logical, storage = "int16", "int16"
	case *arrow.Int32Type:
		logical, storage = "int32", "int32"
	case *arrow.Int64Type:
		logical, storage = "int64", "int64"
	case *arrow.Uint8Type:
		logical, storage = "uint8", "uint8"
	case *arrow.Uint16Type:
		logical, storage = "uint16", "uint16"
	case *arrow.Uint32Type:
		logical, storage = "uint32", "uint32"
	case *arrow.Uint64Type:
		logical, storage = "uint64", "uint64"
	case *arrow.Float16Type:
		logical, storage = "float16", "float16"
	case *arrow.Float32Type:
		logical, storage = "float32", "float32"
	case *arrow.Float64Type:
		logical, storage = "float64", "float64"
	case *arrow.StringType, *arrow.LargeStringType:
		logical = "unicode"
	case *arrow.BinaryType, *arrow.LargeBinaryType, *arrow.FixedSizeBinaryType:
		logical = "bytes"
	case *arrow.Date32Type, *arrow.Date64Type:
		logical = "date"
	case *arrow.Time32Type, *arrow.Time64Type:
		logical = "time"
	case *arrow.TimestampType:
		if t.TimeZone != "" {
			return types.Descriptor{
				LogicalType: "datetimetz",
				StorageType: fmt.Sprintf("datetime64[%s]", fromArrowUnit(t.Unit)),
				Meta:        &types.DescriptorMeta{Timezone: t.TimeZone},
			}
		}
		logical = fmt.Sprintf("datetime64[%s]", fromArrowUnit(t.Unit))
		storage = logical
	case *arrow.DurationType:
		logical = fmt.Sprintf("timedelta64[%s]", fromArrowUnit(t.Unit))
		storage = logical
	case *arrow.Decimal128Type, *arrow.Decimal256Type:
		storage = "decimal"
	case *arrow.DictionaryType:
		logical = "categorical"
	case *arrow.ListType, *arrow.LargeListType, *arrow.FixedSizeListType:
		logical = "list[pyarrow]"
	}
	return types.Descriptor{LogicalType: logical, StorageType: storage}
}

// ResolveDescriptor picks the descriptor for a field: the pandas-supplied
// one when the schema carried it, otherwise one synthesized from the
// physical type. A timestamp timezone declared only at the physical level
// is copied into the descriptor so the timezone resolver can see it.
func ResolveDescriptor(f arrow.Field, pandas map[string]types.Descriptor) types.Descriptor {
	desc, ok := pandas[f.Name]
	if !ok {
		desc = DescriptorFromArrow(f)
	}
	if t, isTS := f.Type.(*arrow.TimestampType); isTS && t.TimeZone != "" {
		if desc.Meta == nil || desc.Meta.Timezone == "" {
			desc.Meta = &types.DescriptorMeta{Timezone: t.TimeZone}
		}
		if !strings.HasPrefix(desc.LogicalType, "datetime") {
			desc.LogicalType = "datetimetz"
		}
	}
	return desc
}
