package registry

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider bundles related bindings so they can be registered as
// one unit.
//
// Every provider must implement at minimum Register().
// Boot() is called after ALL providers have been registered, making it
// safe to resolve other bindings inside Boot().
//
//	type AppProvider struct{ registry.BaseProvider }
//
//	func (p *AppProvider) Register(r *registry.Registry) {
//	    r.Set("mailer", registry.Service(func(r *registry.Registry) (any, error) {
//	        cfg, err := registry.Resolve[*Config](r, "config")
//	        if err != nil {
//	            return nil, err
//	        }
//	        return newMailer(cfg), nil
//	    }))
//	}
//
//	func (p *AppProvider) Boot(r *registry.Registry) {
//	    // safe to resolve and use any binding here
//	}
type ServiceProvider interface {
	// Register stores bindings into the registry.
	// Do NOT resolve other bindings here — use Boot() for that.
	Register(r *Registry)

	// Boot is called after all providers are registered.
	// Safe to resolve and use any binding here.
	Boot(r *Registry)

	// Provides returns the list of keys this provider registers.
	// Used for deferred (lazy) provider loading.
	// Return nil / empty slice if the provider is always eager.
	Provides() []string

	// IsDeferred returns true if this provider should be loaded lazily —
	// only when one of its Provides() keys is first resolved.
	IsDeferred() bool
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct that provides no-op implementations
// of Boot(), Provides(), and IsDeferred().
// Embed it in your provider and only override what you need.
//
//	type MyProvider struct{ registry.BaseProvider }
//	func (p *MyProvider) Register(r *registry.Registry) { ... }
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Registry)   {}
func (p *BaseProvider) Provides() []string { return nil }
func (p *BaseProvider) IsDeferred() bool   { return false }

// ── ProviderSet ───────────────────────────────────────────────────────────────

// ProviderSet manages registration and booting of ServiceProviders,
// including deferred (lazy) providers.
//
// Like the registry it wraps, a ProviderSet is not goroutine-safe.
type ProviderSet struct {
	registry   *Registry
	eager      []ServiceProvider
	deferred   map[string]ServiceProvider // key → provider
	booted     bool
	registered map[ServiceProvider]bool
}

// NewProviderSet creates a provider set bound to r.
func NewProviderSet(r *Registry) *ProviderSet {
	return &ProviderSet{
		registry:   r,
		deferred:   make(map[string]ServiceProvider),
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register() method (unless
// deferred). Registering the same provider twice is a no-op.
func (s *ProviderSet) Register(provider ServiceProvider) {
	if s.registered[provider] {
		return
	}
	s.registered[provider] = true

	if provider.IsDeferred() {
		for _, key := range provider.Provides() {
			s.deferred[key] = provider
		}
		// Intercept Get() calls for deferred keys
		s.interceptDeferred(provider)
		return
	}

	provider.Register(s.registry)
	s.eager = append(s.eager, provider)

	// If already booted, boot this provider immediately
	if s.booted {
		provider.Boot(s.registry)
	}
}

// interceptDeferred stores a lazy factory for each deferred key.
// The first Get() triggers real registration + boot.
func (s *ProviderSet) interceptDeferred(provider ServiceProvider) {
	for _, key := range provider.Provides() {
		s.registry.Set(key, Factory(func(r *Registry) (any, error) {
			// Register for real on first use
			if s.deferred[key] != nil {
				provider.Register(r)
				for _, provided := range provider.Provides() {
					delete(s.deferred, provided)
				}
				if s.booted {
					provider.Boot(r)
				}
			}
			return r.Get(key)
		}))
	}
}

// Boot calls Boot() on all eager providers.
// Must be called after ALL providers have been registered. Calling it
// again is a no-op.
func (s *ProviderSet) Boot() {
	if s.booted {
		return
	}
	s.booted = true
	for _, provider := range s.eager {
		provider.Boot(s.registry)
	}
}

// Booted returns true if Boot() has been called.
func (s *ProviderSet) Booted() bool { return s.booted }

// Providers returns all registered eager providers.
func (s *ProviderSet) Providers() []ServiceProvider { return s.eager }
