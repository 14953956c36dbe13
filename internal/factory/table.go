// Package factory maps closed enum keys to the implementation registered for
// them at wiring time.
package factory

import (
	"errors"
	"fmt"
)

// ErrMissingInfrastructure is returned when no implementation is registered
// for a requested key. It signals a wiring defect, not bad input.
var ErrMissingInfrastructure = errors.New("missing infrastructure")

// MissingImplementationError names the table and key that had no
// registered implementation
type MissingImplementationError struct {
	Table string
	Key   any
}

func (e *MissingImplementationError) Error() string {
	return fmt.Sprintf("%s: no %s registered for %v", ErrMissingInfrastructure, e.Table, e.Key)
}

func (e *MissingImplementationError) Unwrap() error {
	return ErrMissingInfrastructure
}

// Table is a read-only key to implementation mapping. It is safe for
// concurrent use once built.
type Table[K comparable, V any] struct {
	name     string
	handlers map[K]V
}

// NewTable builds a table from handlers, each of which declares its own key.
// Registering two handlers under the same key panics.
func NewTable[K comparable, V any](name string, handlers []V, key func(V) K) *Table[K, V] {
	m := make(map[K]V, len(handlers))
	for _, h := range handlers {
		k := key(h)
		if _, exists := m[k]; exists {
			panic(fmt.Sprintf("factory: duplicate %s registered for %v", name, k))
		}
		m[k] = h
	}
	return &Table[K, V]{name: name, handlers: m}
}

// Get returns the implementation registered for k
func (t *Table[K, V]) Get(k K) (V, error) {
	h, ok := t.handlers[k]
	if !ok {
		var zero V
		return zero, &MissingImplementationError{Table: t.name, Key: k}
	}
	return h, nil
}

// Len returns the number of registered implementations
func (t *Table[K, V]) Len() int {
	return len(t.handlers)
}
