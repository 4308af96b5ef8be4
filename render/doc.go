// Package render walks decoded Arrow records and formats every cell.
// This package implements:
// - Materialization of Arrow array values into the engine's cell domain
// - Per-column descriptor and metadata resolution (pandas schema blob or
//   synthesized from the physical type)
// - Record-to-display-table rendering with optional instrumentation
package render
