package registry

import "fmt"

// NotFoundError is returned when a requested key has no binding.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("registry: no binding registered for key %q", e.Key)
}

// InvalidBindingError is returned by Extend when the target key's binding
// is neither a factory nor a service. Plain values and untagged callables
// cannot be decorated.
type InvalidBindingError struct {
	Key string
}

func (e *InvalidBindingError) Error() string {
	return fmt.Sprintf("registry: binding for key %q is not a factory or service, cannot extend", e.Key)
}
