package dendrite

import (
	"reflect"
	"strings"
	"sync"
)

// BindingSource identifies where a parameter's value comes from
type BindingSource int

const (
	// SourceUnset means no source was declared; resolution falls through
	// to the caller's default inference
	SourceUnset BindingSource = iota

	// SourceServices resolves the value from the service registry
	SourceServices

	// SourceQuery resolves the value from the URL query string
	SourceQuery

	// SourceRoute resolves the value from a route path parameter
	SourceRoute

	// SourceBody resolves the value from the request body
	SourceBody

	// SourceHeader resolves the value from a request header
	SourceHeader

	// SourceCustom defers to a named custom binder
	SourceCustom
)

// String returns the string representation of the binding source
func (s BindingSource) String() string {
	switch s {
	case SourceServices:
		return "services"
	case SourceQuery:
		return "query"
	case SourceRoute:
		return "route"
	case SourceBody:
		return "body"
	case SourceHeader:
		return "header"
	case SourceCustom:
		return "custom"
	default:
		return "unset"
	}
}

// ParseSource parses a source name into a BindingSource.
// Returns false if the name is not a known source.
func ParseSource(name string) (BindingSource, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "services", "service":
		return SourceServices, true
	case "query":
		return SourceQuery, true
	case "route", "path":
		return SourceRoute, true
	case "body":
		return SourceBody, true
	case "header":
		return SourceHeader, true
	case "custom":
		return SourceCustom, true
	default:
		return SourceUnset, false
	}
}

// SourceProvider is the capability implemented by types that declare their
// own binding source. Any type advertising this capability is treated
// uniformly with the built-in declarations; embedding a provider type
// promotes the method, so the declaration is inherited by wrapping types.
type SourceProvider interface {
	BindingSource() BindingSource
}

var sourceProviderType = reflect.TypeOf((*SourceProvider)(nil)).Elem()

// SourceRegistry records type-level binding source declarations for types
// that cannot carry the SourceProvider capability themselves (interface
// types, types from other modules)
type SourceRegistry interface {
	// RegisterTypeSource declares the binding source for a type
	RegisterTypeSource(t reflect.Type, source BindingSource)

	// TypeSource returns the declared source for a type, or SourceUnset
	TypeSource(t reflect.Type) BindingSource
}

// inMemorySourceRegistry implements SourceRegistry
type inMemorySourceRegistry struct {
	mu      sync.RWMutex
	sources map[reflect.Type]BindingSource
}

// NewSourceRegistry creates a new in-memory source registry
func NewSourceRegistry() SourceRegistry {
	return &inMemorySourceRegistry{
		sources: make(map[reflect.Type]BindingSource),
	}
}

func (r *inMemorySourceRegistry) RegisterTypeSource(t reflect.Type, source BindingSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[t] = source
}

func (r *inMemorySourceRegistry) TypeSource(t reflect.Type) BindingSource {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.sources[t]; ok {
		return s
	}
	// A pointer type inherits the declaration of its element type
	if t.Kind() == reflect.Ptr {
		if s, ok := r.sources[t.Elem()]; ok {
			return s
		}
	}
	return SourceUnset
}

// DefaultSourceRegistry is the global source registry
var DefaultSourceRegistry = NewSourceRegistry()

// RegisterTypeSource declares a type-level binding source with the global registry
func RegisterTypeSource(t reflect.Type, source BindingSource) {
	DefaultSourceRegistry.RegisterTypeSource(t, source)
}

// RegisterSourceFor declares a type-level binding source for T with the global registry
func RegisterSourceFor[T any](source BindingSource) {
	DefaultSourceRegistry.RegisterTypeSource(TypeOf[T](), source)
}

// TypeOf returns the reflect.Type of T. Unlike reflect.TypeOf on a value,
// it works for interface types as well as concrete ones.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
