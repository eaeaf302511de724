package dendrite

import (
	"context"
	"reflect"
)

// BodyBinder resolves body-sourced parameters by delegating
// deserialization to the framework context's own decoder. It performs no
// decoding itself.
type BodyBinder struct{}

// NewBodyBinder creates a body binder
func NewBodyBinder() *BodyBinder {
	return &BodyBinder{}
}

// Name returns the binder name
func (b *BodyBinder) Name() string {
	return "body"
}

// Bind resolves a parameter from the request body. The declared type must
// be a struct or pointer to struct; decode failures become model state
// entries keyed by the parameter name.
func (b *BodyBinder) Bind(ctx context.Context, req RequestContext, param ParameterDescriptor, state *ModelState) (BindingResult, error) {
	if ResolveSource(param) != SourceBody {
		return NotBound(), nil
	}
	if req == nil {
		return NotBound(), nil
	}

	t := param.Type()
	wantPtr := t.Kind() == reflect.Ptr
	if wantPtr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return NotBound(), nil
	}

	target := reflect.New(t)
	if err := req.Bind(target.Interface()); err != nil {
		state.AddError(param.Key(), err.Error())
		return NotBound(), nil
	}

	if wantPtr {
		return Bound(target.Interface()), nil
	}
	return Bound(target.Elem().Interface()), nil
}
