// Package attic owns schema-directed loading of raw attribute bags.
//
// Ownership boundary:
// - field descriptors, cardinality and value kinds
// - coercion table (raw value -> declared kind)
// - positional attribute groups (NAME/VALUE slot pairs)
// - discrepancy taxonomy
//
// Loading never fails: every schema field is populated, falling back to the
// declared default, and anomalies are returned as discrepancies.
package attic
