package registry

import "sort"

// ── Registry ──────────────────────────────────────────────────────────────────

// Registry is a string-keyed container for plain values, factory bindings,
// and service bindings.
//
// It supports:
//   - Set / Get / Has / Raw / Delete
//   - Factory bindings (fresh result per Get)
//   - Service bindings (memoized after first Get)
//   - Extend (decorate / wrap existing bindings)
//   - Instance-cache management (DeleteInstance / DeleteAllInstances)
//   - Ordered key iteration
//
// A Registry is not goroutine-safe. It is designed for single-threaded,
// synchronous use; callers sharing one across goroutines must provide
// their own mutual exclusion around every operation, including Get (a
// first-time service resolution writes to the instance cache).
type Registry struct {
	// key insertion order, tracked alongside bindings
	order []string

	// key → stored binding, exactly as passed to Set
	bindings map[string]any

	// key → resolved service instance
	instances map[string]any
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		bindings:  make(map[string]any),
		instances: make(map[string]any),
	}
}

// NewFrom creates a registry pre-seeded from values. Go maps carry no
// insertion order, so seed keys are applied in sorted order.
func NewFrom(values map[string]any) *Registry {
	r := New()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.Set(k, values[k])
	}
	return r
}

// ── Registration ──────────────────────────────────────────────────────────────

// Set stores value under key, overwriting any previous binding. The key
// keeps its original position in the iteration order when overwritten.
//
// Overwriting a key also drops its cached service instance, if any: the
// binding changed, so a stale instance must not shadow the new one.
func (r *Registry) Set(key string, value any) *Registry {
	if _, exists := r.bindings[key]; !exists {
		r.order = append(r.order, key)
	}
	delete(r.instances, key)
	r.bindings[key] = value
	return r
}

// Delete removes key from the registry, along with any cached service
// instance. Deleting an absent key is a no-op.
func (r *Registry) Delete(key string) *Registry {
	if _, exists := r.bindings[key]; !exists {
		return r
	}
	delete(r.bindings, key)
	delete(r.instances, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return r
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Has reports whether key currently has a stored binding.
func (r *Registry) Has(key string) bool {
	_, ok := r.bindings[key]
	return ok
}

// Raw returns the binding stored under key exactly as it was passed to
// Set, with no factory or service resolution. Returns a *NotFoundError
// if the key is absent.
func (r *Registry) Raw(key string) (any, error) {
	v, ok := r.bindings[key]
	if !ok {
		return nil, &NotFoundError{Key: key}
	}
	return v, nil
}

// Get resolves the binding stored under key:
//
//   - a cached service instance is returned as-is,
//   - a factory binding is invoked and its fresh result returned,
//   - a service binding is invoked once, cached, and returned,
//   - anything else is returned verbatim.
//
// Builder errors propagate unmodified. A missing key is a *NotFoundError.
func (r *Registry) Get(key string) (any, error) {
	if instance, ok := r.instances[key]; ok {
		return instance, nil
	}

	raw, err := r.Raw(key)
	if err != nil {
		return nil, err
	}

	switch b := raw.(type) {
	case *factoryBinding:
		return b.build(r)
	case *serviceBinding:
		instance, err := b.build(r)
		if err != nil {
			return nil, err
		}
		r.instances[key] = instance
		return instance, nil
	default:
		return raw, nil
	}
}

// MustGet is like Get but panics on error. Intended for wiring code
// where a missing binding is a programming mistake.
func (r *Registry) MustGet(key string) any {
	v, err := r.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// ── Extend ────────────────────────────────────────────────────────────────────

// Extend wraps the factory or service binding stored under key with
// decorate. The replacement binding invokes the original builder, passes
// its instance through decorate, and keeps the original's tag: a factory
// stays a factory, a service stays a service.
//
// Returns the new tagged binding, which has already replaced the old one
// at key. Any cached instance for key is dropped so the decorated
// binding takes effect on the next Get.
//
// Returns a *NotFoundError if the key is absent, and a
// *InvalidBindingError if its binding is a plain value or an untagged
// callable.
func (r *Registry) Extend(key string, decorate Decorator) (any, error) {
	raw, err := r.Raw(key)
	if err != nil {
		return nil, err
	}

	var wrapped any
	switch b := raw.(type) {
	case *factoryBinding:
		wrapped = Factory(wrap(b.build, decorate))
	case *serviceBinding:
		wrapped = Service(wrap(b.build, decorate))
	default:
		return nil, &InvalidBindingError{Key: key}
	}

	delete(r.instances, key)
	r.bindings[key] = wrapped
	return wrapped, nil
}

// wrap composes a builder with a decorator.
func wrap(build Builder, decorate Decorator) Builder {
	return func(r *Registry) (any, error) {
		instance, err := build(r)
		if err != nil {
			return nil, err
		}
		return decorate(instance, r)
	}
}

// ── Instance cache ────────────────────────────────────────────────────────────

// DeleteInstance drops the cached instance for key, leaving the binding
// itself intact. The next Get re-invokes a service builder and re-caches.
func (r *Registry) DeleteInstance(key string) *Registry {
	delete(r.instances, key)
	return r
}

// DeleteAllInstances drops every cached instance. Bindings are untouched.
func (r *Registry) DeleteAllInstances() *Registry {
	r.instances = make(map[string]any)
	return r
}

// ── Introspection ─────────────────────────────────────────────────────────────

// Keys returns all currently bound keys in insertion order. Overwriting
// a key does not move it; deleting and re-setting it does.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Count returns the number of bindings currently stored.
func (r *Registry) Count() int {
	return len(r.bindings)
}

// Reset returns the registry to the empty state: all bindings and all
// cached instances are dropped.
func (r *Registry) Reset() *Registry {
	r.order = nil
	r.bindings = make(map[string]any)
	r.instances = make(map[string]any)
	return r
}
