// Package output writes rendered display tables to a destination.
// This package implements:
// - The Formatter interface shared by all output formats
// - Aligned terminal tables, CSV with a header row, and JSON Lines
package output
