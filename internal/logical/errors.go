package logical

import (
	"errors"
	"fmt"
)

var ErrObjectNotFound = errors.New("logical: object not found")

// NotFoundError names the identity tuple an explicit lookup failed on.
type NotFoundError struct {
	Type   string
	Name   string
	Origin int64
	Copy   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s:%s(%d,%d)", ErrObjectNotFound, e.Type, e.Name, e.Origin, e.Copy)
}

func (e *NotFoundError) Unwrap() error {
	return ErrObjectNotFound
}
