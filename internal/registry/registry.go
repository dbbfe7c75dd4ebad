// Package registry is the service locator modules boot against.
package registry

import (
	"fmt"
	"sync"
)

// Key names a service and fixes its type, e.g. Key[*shell.Shell]("core.shell").
type Key[T any] string

// Registry holds the services the server wires before modules boot.
type Registry struct {
	mu       sync.RWMutex
	services map[string]any
}

func New() *Registry {
	return &Registry{services: make(map[string]any)}
}

// Set stores value under key, replacing any earlier value.
func Set[T any](r *Registry, key Key[T], value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[string(key)] = value
}

// Get returns the service under key. A value stored with a different type
// under the same name is reported as missing.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	r.mu.RLock()
	val, ok := r.services[string(key)]
	r.mu.RUnlock()
	result, ok := val.(T)
	return result, ok
}

// MustGet is Get for services the server always wires. It panics when the
// service is missing, which only happens on a wiring bug.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("registry: %s not registered", key))
	}
	return val
}
