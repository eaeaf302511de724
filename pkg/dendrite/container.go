package dendrite

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

// serviceEntry holds one registration: the abstraction key it was
// registered under and the instance itself
type serviceEntry struct {
	typ      reflect.Type
	instance any
}

// ServiceRegistry is an in-memory service container implementing
// ServiceLookup. Registration order is preserved: LookupAll returns
// matches in the order they were registered, and LookupOne resolves
// ties with last-registration-wins.
type ServiceRegistry struct {
	mu      sync.RWMutex
	entries []serviceEntry
}

// NewServiceRegistry creates an empty service registry
func NewServiceRegistry() *ServiceRegistry {
	return &ServiceRegistry{}
}

// RegisterInstance registers an instance under its concrete type
func (r *ServiceRegistry) RegisterInstance(instance any) {
	if instance == nil {
		panic("dendrite: cannot register a nil service")
	}
	r.RegisterAs(reflect.TypeOf(instance), instance)
}

// RegisterAs registers an instance under an explicit abstraction type.
// Panics when the instance is not assignable to the abstraction.
func (r *ServiceRegistry) RegisterAs(abstraction reflect.Type, instance any) {
	if instance == nil {
		panic("dendrite: cannot register a nil service")
	}
	concrete := reflect.TypeOf(instance)
	if !concrete.AssignableTo(abstraction) {
		panic(fmt.Sprintf("dendrite: %s is not assignable to %s", concrete, abstraction))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, serviceEntry{typ: abstraction, instance: instance})
}

// Register registers an instance under the abstraction type T. T may be
// an interface type, which reflect.TypeOf on a value cannot express.
func Register[T any](r *ServiceRegistry, instance T) {
	r.RegisterAs(TypeOf[T](), instance)
}

// LookupAll returns every registered instance assignable to t, in
// registration order
func (r *ServiceRegistry) LookupAll(ctx context.Context, t reflect.Type) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []any
	for _, entry := range r.entries {
		if r.matches(entry, t) {
			out = append(out, entry.instance)
		}
	}
	return out, nil
}

// LookupOne returns the most recently registered instance assignable to t.
// Zero matches is reported through the bool, not as an error.
func (r *ServiceRegistry) LookupOne(ctx context.Context, t reflect.Type) (any, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.matches(r.entries[i], t) {
			return r.entries[i].instance, true, nil
		}
	}
	return nil, false, nil
}

// matches reports whether an entry satisfies a requested type: either the
// registration key matches, or the concrete instance is assignable to a
// requested interface
func (r *ServiceRegistry) matches(entry serviceEntry, t reflect.Type) bool {
	if entry.typ == t {
		return true
	}
	if t.Kind() == reflect.Interface {
		return reflect.TypeOf(entry.instance).Implements(t)
	}
	return false
}

// Len returns the number of registrations
func (r *ServiceRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Flush removes all registrations
func (r *ServiceRegistry) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
