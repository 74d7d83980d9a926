// Package logical splits a record stream into logical files and owns the
// per-file object table.
//
// Ownership boundary:
// - boundary detection over the stream (Partition)
// - explicit and frame-data indices per logical file
// - at-most-once object materialization keyed by fingerprint
// - link resolution scoped to one logical file
//
// Partitioning and indexing are a single sequential pass. Materialization
// may run concurrently once Partition has returned.
package logical
