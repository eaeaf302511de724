package dendrite

import (
	"context"
	"fmt"
	"reflect"
)

// ParameterBinder resolves a single parameter from one binding source.
// Binders decline parameters outside their source by returning NotBound
// with a nil error; the chain then moves on. Binders that do not read
// the request (the service binder) accept a nil RequestContext.
type ParameterBinder interface {
	// Name identifies the binder, used for SourceCustom dispatch
	Name() string

	// Bind resolves a parameter, recording any field-level validation
	// failures in state
	Bind(ctx context.Context, req RequestContext, param ParameterDescriptor, state *ModelState) (BindingResult, error)
}

// ModelBinder runs an ordered chain of parameter binders. The first
// binder that neither declines nor fails produces the result. The binder
// holds no mutable state; concurrent calls are independent.
type ModelBinder struct {
	binders []ParameterBinder
}

// NewModelBinder creates a model binder over an explicit chain
func NewModelBinder(binders ...ParameterBinder) *ModelBinder {
	return &ModelBinder{binders: binders}
}

// NewDefaultModelBinder creates a model binder with the builtin chain:
// services, route, query, header, body
func NewDefaultModelBinder(services ServiceLookup) *ModelBinder {
	return NewModelBinder(
		NewServiceBinder(services),
		NewRouteBinder(),
		NewQueryBinder(),
		NewHeaderBinder(),
		NewBodyBinder(),
	)
}

// Binders returns the chain in execution order
func (m *ModelBinder) Binders() []ParameterBinder {
	return append([]ParameterBinder(nil), m.binders...)
}

// BindParameter resolves one parameter through the chain. A NotBound
// result with a nil error means no binder claimed the parameter.
func (m *ModelBinder) BindParameter(ctx context.Context, req RequestContext, param ParameterDescriptor, state *ModelState) (BindingResult, error) {
	meta := param.Metadata()
	for _, binder := range m.binders {
		if meta.Source == SourceCustom && binder.Name() != meta.BinderName {
			continue
		}
		result, err := binder.Bind(ctx, req, param, state)
		if err != nil {
			return NotBound(), err
		}
		if result.IsSet() {
			return result, nil
		}
	}
	return NotBound(), nil
}

// BindModel populates the fields of a struct from the request. The target
// must be a non-nil pointer to a struct; fields without a resolvable
// binding source are left untouched. Returns the model state collected
// across all fields.
func (m *ModelBinder) BindModel(ctx context.Context, req RequestContext, target any) (*ModelState, error) {
	state := NewModelState()

	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return state, fmt.Errorf("bind target must be a non-nil pointer, got %T", target)
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return state, fmt.Errorf("bind target must point to a struct, got %T", target)
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		param, err := NewFieldParameter(field)
		if err != nil {
			return state, err
		}
		if ResolveSource(param) == SourceUnset {
			continue
		}

		result, err := m.BindParameter(ctx, req, param, state)
		if err != nil {
			return state, fmt.Errorf("binding %s: %w", field.Name, err)
		}
		if !result.IsSet() {
			continue
		}

		value := reflect.ValueOf(result.Value())
		if !value.Type().AssignableTo(field.Type) {
			return state, fmt.Errorf("binding %s: %s is not assignable to %s", field.Name, value.Type(), field.Type)
		}
		v.Field(i).Set(value)
	}

	return state, nil
}
