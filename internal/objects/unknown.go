package objects

// Unknown is an object whose type has no declared schema. Every raw label
// is exposed as a list field of uncoerced values.
type Unknown struct{ *Base }
