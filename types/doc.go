// Package types classifies column type descriptors into logical-type families.
// This package implements:
// - The Descriptor model carried by every decoded column
// - Total classification of (logical, storage) tag pairs into a closed Kind set
// - Family predicates (integer, unsigned, boolean, float)
// - Timezone extraction for timezone-aware datetime columns
package types
