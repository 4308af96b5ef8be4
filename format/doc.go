// Package format renders decoded column cells as display strings.
// This package implements:
// - The per-cell dispatcher over the closed logical-type family set
// - Specialized formatters: date, time, datetime, duration, decimal,
//   period, interval, nested object/JSON, float
// - Timestamp unit conversion with arbitrary-precision handling
//
// Every function here is total: malformed values or metadata degrade to a
// raw string conversion plus a best-effort diagnostic, never a panic or
// an error return.
package format
