// Package objects owns the typed object model built from raw object
// descriptions.
//
// Ownership boundary:
// - one schema table per object type
// - typed accessors over loaded fields
// - link accessors resolved through the owning logical file
//
// Links are stored as fingerprints and resolved by lookup on every call;
// objects never hold references to each other.
package objects
