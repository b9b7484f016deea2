package registry

// ── Binding types ─────────────────────────────────────────────────────────────

// Builder is a function that builds a concrete value from the registry.
// Builders receive the registry itself so they can pull their own
// dependencies out of it.
type Builder func(r *Registry) (any, error)

// Decorator post-processes an already-resolved instance and returns a
// (possibly modified) replacement. Used with Extend.
type Decorator func(instance any, r *Registry) (any, error)

// factoryBinding marks a Builder as a factory: invoked on every Get,
// never cached.
type factoryBinding struct {
	build Builder
}

// serviceBinding marks a Builder as a service: invoked on first Get,
// then cached under the entry's key.
type serviceBinding struct {
	build Builder
}

// ── Tagging ───────────────────────────────────────────────────────────────────

// Factory tags build as a factory binding. Every Get of the key it is
// stored under invokes build and returns a fresh result.
//
//	r.Set("conn", registry.Factory(func(r *registry.Registry) (any, error) {
//	    return dialSomewhere()
//	}))
func Factory(build Builder) any {
	return &factoryBinding{build: build}
}

// Service tags build as a service binding. The first Get of the key it is
// stored under invokes build and caches the result; later Gets return the
// cached instance.
//
//	r.Set("cache", registry.Service(func(r *registry.Registry) (any, error) {
//	    cfg, err := r.Get("config")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return newCache(cfg), nil
//	}))
func Service(build Builder) any {
	return &serviceBinding{build: build}
}

// IsFactory reports whether v is a value tagged via Factory.
func IsFactory(v any) bool {
	_, ok := v.(*factoryBinding)
	return ok
}

// IsService reports whether v is a value tagged via Service.
func IsService(v any) bool {
	_, ok := v.(*serviceBinding)
	return ok
}
