package registry

import "fmt"

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve calls Get and type-asserts the result.
//
//	// Instead of: cache := r.MustGet("cache").(*RedisCache)
//	// Write:      cache, err := registry.Resolve[*RedisCache](r, "cache")
func Resolve[T any](r *Registry, key string) (T, error) {
	var zero T
	instance, err := r.Get(key)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("registry: Resolve[%T]: key %q resolved to %T", zero, key, instance)
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on a missing key or a type
// mismatch.
func MustResolve[T any](r *Registry, key string) T {
	typed, err := Resolve[T](r, key)
	if err != nil {
		panic(err)
	}
	return typed
}
