// Package registry provides a string-keyed service container: a registry
// of plain values, factories, and memoized services, with support for
// decorating existing bindings.
//
// # Overview
//
// A Registry maps keys to bindings. A binding is either a plain value
// (returned verbatim), a factory (a builder invoked on every Get), or a
// service (a builder invoked once, its result cached). Builders receive
// the registry itself, so a service can pull its own dependencies out of
// the same registry — the dependency-injection mechanism.
//
// # Bindings
//
//	r := registry.New()
//
//	// Plain value — returned as-is
//	r.Set("app.name", "my-app")
//
//	// Factory — fresh result every Get()
//	r.Set("request.id", registry.Factory(func(r *registry.Registry) (any, error) {
//	    return newID(), nil
//	}))
//
//	// Service — built once, then cached
//	r.Set("db", registry.Service(func(r *registry.Registry) (any, error) {
//	    dsn, err := r.Get("db.dsn")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return openDB(dsn.(string))
//	}))
//
// # Resolving
//
//	// Untyped
//	db, err := r.Get("db")
//
//	// Generic (no type assertion required)
//	db, err := registry.Resolve[*sql.DB](r, "db")
//
// Raw returns the binding exactly as stored, without resolution:
//
//	b, err := r.Raw("db")   // the tagged service binding, not *sql.DB
//
// # Extend / Decorate
//
// Extend wraps an existing factory or service binding with a decorator
// that receives the resolved instance and the registry. The wrapped
// binding keeps its tag — a factory stays a factory, a service stays a
// service:
//
//	r.Extend("db", func(instance any, r *registry.Registry) (any, error) {
//	    db := instance.(*sql.DB)
//	    db.SetMaxOpenConns(32)
//	    return db, nil
//	})
//
// Plain values and untagged callables cannot be extended; Extend returns
// an *InvalidBindingError for those.
//
// # Instance cache
//
// Service results are cached per key. DeleteInstance drops one cached
// instance, DeleteAllInstances drops them all; in both cases the
// bindings stay and the next Get rebuilds. Overwriting a key with Set
// also drops its cached instance, and Delete removes binding and
// instance together. Reset empties the registry entirely.
//
// # Iteration
//
// Iter walks (key, resolved value) pairs in insertion order:
//
//	for it := r.Iter(); it.Next(); {
//	    fmt.Println(it.Key(), it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
//
// # Service Providers
//
// Providers bundle related bindings; a ProviderSet registers them and
// runs the two-phase register/boot lifecycle, loading deferred providers
// lazily on first resolution of one of their keys:
//
//	set := registry.NewProviderSet(r)
//	set.Register(&ConfigProvider{})
//	set.Register(&MailProvider{})
//	set.Boot()
//
// # Concurrency
//
// A Registry performs no internal locking. It is meant for
// single-threaded, synchronous use; share one across goroutines only
// behind your own mutex.
package registry
