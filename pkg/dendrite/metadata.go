package dendrite

import (
	"fmt"
	"reflect"

	"github.com/toyz/dendrite/internal/directive"
)

// BindingMetadata carries the binding declarations attached to a parameter
// or struct field: the source tag and an optional named binder for
// SourceCustom.
type BindingMetadata struct {
	// Source is the declared binding source, SourceUnset when absent
	Source BindingSource

	// BinderName selects a named custom binder when Source is SourceCustom
	BinderName string

	// Name overrides the request key used to look up the value
	// (query key, route parameter name, header name)
	Name string
}

// ParameterDescriptor is the static description of a bindable target.
// It is immutable once constructed; binders never mutate it.
type ParameterDescriptor struct {
	name string
	typ  reflect.Type
	meta BindingMetadata
}

// NewParameter creates a descriptor with parameter-level metadata
func NewParameter(name string, typ reflect.Type, meta BindingMetadata) ParameterDescriptor {
	return ParameterDescriptor{name: name, typ: typ, meta: meta}
}

// NewFieldParameter creates a descriptor for a struct field, deriving
// member-level metadata from the field's `bind` tag
func NewFieldParameter(field reflect.StructField) (ParameterDescriptor, error) {
	meta := BindingMetadata{}

	if tag, ok := field.Tag.Lookup("bind"); ok {
		d, err := directive.Parse(tag)
		if err != nil {
			return ParameterDescriptor{}, fmt.Errorf("field %s: %w", field.Name, err)
		}
		source, ok := ParseSource(d.Source)
		if !ok {
			return ParameterDescriptor{}, fmt.Errorf("field %s: unknown binding source %q", field.Name, d.Source)
		}
		meta.Source = source
		meta.BinderName = d.Binder
		meta.Name = d.Name
	}

	return ParameterDescriptor{name: field.Name, typ: field.Type, meta: meta}, nil
}

// Name returns the parameter name
func (d ParameterDescriptor) Name() string {
	return d.name
}

// Type returns the declared type
func (d ParameterDescriptor) Type() reflect.Type {
	return d.typ
}

// Metadata returns the binding metadata attached to the parameter
func (d ParameterDescriptor) Metadata() BindingMetadata {
	return d.meta
}

// Key returns the request key used to look up the parameter's value:
// the metadata name override when present, the parameter name otherwise
func (d ParameterDescriptor) Key() string {
	if d.meta.Name != "" {
		return d.meta.Name
	}
	return d.name
}

// ResolveSource determines the effective binding source for a parameter
// using the global source registry. Precedence is most-specific-wins:
// metadata attached to the parameter or field itself, then a declaration
// carried by the declared type, then SourceUnset.
func ResolveSource(d ParameterDescriptor) BindingSource {
	return ResolveSourceIn(d, DefaultSourceRegistry)
}

// ResolveSourceIn is ResolveSource against an explicit source registry
func ResolveSourceIn(d ParameterDescriptor, registry SourceRegistry) BindingSource {
	if d.meta.Source != SourceUnset {
		return d.meta.Source
	}
	if s := typeDeclaredSource(d.typ); s != SourceUnset {
		return s
	}
	if registry != nil {
		return registry.TypeSource(d.typ)
	}
	return SourceUnset
}

// typeDeclaredSource checks the SourceProvider capability on the declared
// type. Method promotion through embedding means a type inherits the
// declaration of any type it embeds, which covers the ancestor-type case
// without concrete-type checks.
func typeDeclaredSource(t reflect.Type) BindingSource {
	// Interface types can declare the capability in their method set but
	// carry no instance to call it on; those use the source registry.
	if t.Kind() == reflect.Interface {
		return SourceUnset
	}
	if t.Implements(sourceProviderType) {
		v := reflect.New(t).Elem()
		return v.Interface().(SourceProvider).BindingSource()
	}
	if reflect.PtrTo(t).Implements(sourceProviderType) {
		v := reflect.New(t)
		return v.Interface().(SourceProvider).BindingSource()
	}
	if t.Kind() == reflect.Ptr {
		return typeDeclaredSource(t.Elem())
	}
	return SourceUnset
}

// qualifiedTypeName returns the fully-qualified name of a type,
// e.g. "github.com/toyz/dendrite.ServiceLookup". Unnamed types fall back
// to their reflect string form.
func qualifiedTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.PkgPath() != "" && t.Name() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
