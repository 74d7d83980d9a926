package objects

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/danmuck/welllog/internal/attic"
)

var ErrBuiltinType = errors.New("objects: type has a built-in schema")

var (
	mu         sync.RWMutex
	registered = map[string]*attic.Schema{}
)

// Custom is an object of a type declared with Register.
type Custom struct{ *Base }

// Register declares the schema of an object type outside the built-in
// catalogue. Objects of that type built afterwards materialize as *Custom.
// Registering the same type again replaces its schema.
func Register(schema *attic.Schema) error {
	if schema == nil || schema.Type == "" {
		return fmt.Errorf("objects.Register: schema without type")
	}
	if _, ok := catalogue[schema.Type]; ok {
		return fmt.Errorf("objects.Register %s: %w", schema.Type, ErrBuiltinType)
	}
	mu.Lock()
	defer mu.Unlock()
	registered[schema.Type] = schema
	return nil
}

// Unregister drops a registered type. Objects already built keep their
// schema.
func Unregister(typ string) {
	mu.Lock()
	defer mu.Unlock()
	delete(registered, typ)
}

// Registered lists the registered types, sorted.
func Registered() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registered))
	for typ := range registered {
		out = append(out, typ)
	}
	sort.Strings(out)
	return out
}

func registeredSchema(typ string) (*attic.Schema, bool) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := registered[typ]
	return s, ok
}
