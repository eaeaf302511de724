package dendrite

import (
	"context"
	"reflect"
)

// ServiceLookup is the read-only query surface of a service registry.
// Implementations own any synchronization needed for instance
// construction; the binders neither cache nor memoize lookups.
type ServiceLookup interface {
	// LookupAll returns every registered instance assignable to t, in a
	// stable order defined by the provider, possibly empty
	LookupAll(ctx context.Context, t reflect.Type) ([]any, error)

	// LookupOne returns a single instance for t. Zero matches is reported
	// through the bool, never as an error at this layer; the fatal-error
	// decision for scalar parameters belongs to the ServiceBinder.
	LookupOne(ctx context.Context, t reflect.Type) (any, bool, error)
}

// ServiceBinder resolves services-sourced parameters against a
// ServiceLookup. It holds no mutable state; concurrent Bind calls are
// independent.
type ServiceBinder struct {
	services ServiceLookup
	registry SourceRegistry
}

// NewServiceBinder creates a service binder over the given lookup
func NewServiceBinder(services ServiceLookup) *ServiceBinder {
	return &ServiceBinder{services: services, registry: DefaultSourceRegistry}
}

// NewServiceBinderWithSources creates a service binder that resolves
// type-level source declarations against an explicit registry
func NewServiceBinderWithSources(services ServiceLookup, sources SourceRegistry) *ServiceBinder {
	return &ServiceBinder{services: services, registry: sources}
}

// Name returns the binder name
func (b *ServiceBinder) Name() string {
	return "services"
}

// Bind resolves a parameter from the service registry. Parameters whose
// effective source is not SourceServices are declined with NotBound. A
// slice-typed parameter binds every registered instance of the element
// type and always succeeds, even with zero matches; a scalar parameter
// with zero matches fails with ServiceNotRegisteredError. Service binding
// never records model state entries.
func (b *ServiceBinder) Bind(ctx context.Context, req RequestContext, param ParameterDescriptor, state *ModelState) (BindingResult, error) {
	if ResolveSourceIn(param, b.registry) != SourceServices {
		return NotBound(), nil
	}

	if elem, ok := collectionElement(param.Type()); ok {
		instances, err := b.services.LookupAll(ctx, elem)
		if err != nil {
			return NotBound(), err
		}
		out := reflect.MakeSlice(reflect.SliceOf(elem), 0, len(instances))
		for _, instance := range instances {
			out = reflect.Append(out, reflect.ValueOf(instance))
		}
		return Bound(out.Interface()), nil
	}

	instance, found, err := b.services.LookupOne(ctx, param.Type())
	if err != nil {
		return NotBound(), err
	}
	if !found {
		return NotBound(), &ServiceNotRegisteredError{Type: param.Type()}
	}
	return Bound(instance), nil
}

// collectionElement reports whether t is a collection-of-T shape and
// returns the element type. In Go that shape is a slice; maps and arrays
// bind as scalars.
func collectionElement(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8 {
		return t.Elem(), true
	}
	return nil, false
}
