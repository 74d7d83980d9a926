// Package record owns the decoded record stream handed over by the
// lower-level decoder.
//
// Ownership boundary:
// - record, raw object and raw value shapes
// - stream validation (unique, increasing positions)
// - CBOR interchange codec for decoded streams
//
// The stream is immutable once built; every consumer reads it without
// synchronization.
package record
