package registry_test

import (
	"errors"
	"testing"

	"github.com/km-arc/go-registry/registry"
)

type mailer struct {
	host string
	port int
}

// ── Extending services ────────────────────────────────────────────────────────

func TestExtend_ServiceDecoratorReceivesInstanceAndRegistry(t *testing.T) {
	r := registry.New()
	r.Set("smtp.port", 587)
	r.Set("mailer", registry.Service(func(r *registry.Registry) (any, error) {
		return &mailer{host: "localhost"}, nil
	}))

	_, err := r.Extend("mailer", func(instance any, r *registry.Registry) (any, error) {
		m := instance.(*mailer)
		port, err := r.Get("smtp.port")
		if err != nil {
			return nil, err
		}
		m.port = port.(int)
		return m, nil
	})
	if err != nil {
		t.Fatalf("Extend(): unexpected error %v", err)
	}

	m := registry.MustResolve[*mailer](r, "mailer")
	if m.host != "localhost" || m.port != 587 {
		t.Errorf("got %+v, want host=localhost port=587", m)
	}
}

func TestExtend_ServiceStaysAService(t *testing.T) {
	calls := 0
	r := registry.New()
	r.Set("svc", registry.Service(func(r *registry.Registry) (any, error) {
		calls++
		return "base", nil
	}))

	wrapped, err := r.Extend("svc", func(instance any, r *registry.Registry) (any, error) {
		return instance.(string) + "+decorated", nil
	})
	if err != nil {
		t.Fatalf("Extend(): unexpected error %v", err)
	}

	if !registry.IsService(wrapped) {
		t.Error("the returned binding should still be tagged as a service")
	}
	if raw, _ := r.Raw("svc"); raw != wrapped {
		t.Error("Extend() must replace the raw binding with the returned one")
	}

	first := r.MustGet("svc")
	second := r.MustGet("svc")
	if first != "base+decorated" {
		t.Errorf("got %v, want 'base+decorated'", first)
	}
	if first != second || calls != 1 {
		t.Errorf("decorated service must still memoize (calls=%d)", calls)
	}
}

func TestExtend_FactoryStaysAFactory(t *testing.T) {
	calls := 0
	r := registry.New()
	r.Set("fac", registry.Factory(func(r *registry.Registry) (any, error) {
		calls++
		return calls, nil
	}))

	wrapped, err := r.Extend("fac", func(instance any, r *registry.Registry) (any, error) {
		return instance.(int) * 10, nil
	})
	if err != nil {
		t.Fatalf("Extend(): unexpected error %v", err)
	}

	if !registry.IsFactory(wrapped) {
		t.Error("the returned binding should still be tagged as a factory")
	}
	if got := r.MustGet("fac"); got != 10 {
		t.Errorf("first Get(): got %v, want 10", got)
	}
	if got := r.MustGet("fac"); got != 20 {
		t.Errorf("second Get(): got %v, want 20 (factory re-runs per Get)", got)
	}
}

func TestExtend_ChainsCompose(t *testing.T) {
	r := registry.New()
	r.Set("s", registry.Service(func(r *registry.Registry) (any, error) {
		return "base", nil
	}))

	r.Extend("s", func(instance any, r *registry.Registry) (any, error) {
		return instance.(string) + ".first", nil
	})
	r.Extend("s", func(instance any, r *registry.Registry) (any, error) {
		return instance.(string) + ".second", nil
	})

	if got := r.MustGet("s"); got != "base.first.second" {
		t.Errorf("got %v, want 'base.first.second'", got)
	}
}

func TestExtend_DropsStaleCachedInstance(t *testing.T) {
	r := registry.New()
	r.Set("svc", registry.Service(func(r *registry.Registry) (any, error) {
		return "base", nil
	}))
	r.MustGet("svc") // cache the undecorated instance

	r.Extend("svc", func(instance any, r *registry.Registry) (any, error) {
		return instance.(string) + "+decorated", nil
	})

	if got := r.MustGet("svc"); got != "base+decorated" {
		t.Errorf("got %v, want the decorated instance, not the stale cache", got)
	}
}

// ── Extend failures ───────────────────────────────────────────────────────────

func TestExtend_MissingKeyReturnsNotFound(t *testing.T) {
	r := registry.New()

	_, err := r.Extend("missing", func(instance any, r *registry.Registry) (any, error) {
		return instance, nil
	})

	var nf *registry.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("got %v, want *NotFoundError", err)
	}
}

func TestExtend_RejectsUnextendableBindings(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"plain value", 42},
		{"untagged builder", registry.Builder(func(r *registry.Registry) (any, error) {
			return nil, nil
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := registry.New()
			r.Set("k", tt.value)

			_, err := r.Extend("k", func(instance any, r *registry.Registry) (any, error) {
				return instance, nil
			})

			var ib *registry.InvalidBindingError
			if !errors.As(err, &ib) {
				t.Fatalf("got %v, want *InvalidBindingError", err)
			}
			if ib.Key != "k" {
				t.Errorf("InvalidBindingError.Key: got %q, want 'k'", ib.Key)
			}
		})
	}
}

func TestExtend_DecoratorErrorPropagatesUnmodified(t *testing.T) {
	boom := errors.New("decorate failed")
	r := registry.New()
	r.Set("svc", registry.Service(func(r *registry.Registry) (any, error) {
		return "base", nil
	}))
	r.Extend("svc", func(instance any, r *registry.Registry) (any, error) {
		return nil, boom
	})

	_, err := r.Get("svc")

	if !errors.Is(err, boom) {
		t.Errorf("got %v, want the decorator's own error", err)
	}
}
