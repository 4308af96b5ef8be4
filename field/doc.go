// Package field models the physical-format metadata attached to a column.
// This package implements:
// - The TimeUnit enum and per-column Meta (unit, decimal scale, timezone)
// - Validated extension payload variants (period frequency, interval bounds)
// - Meta and Descriptor extraction from Arrow schema fields
// - Parsing of the schema-level "pandas" metadata blob
package field
