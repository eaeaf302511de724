package dendrite

import (
	"context"
)

// HeaderBinder resolves header-sourced parameters from request headers
type HeaderBinder struct {
	parsers *ParserRegistry
}

// NewHeaderBinder creates a header binder using the default parsers
func NewHeaderBinder() *HeaderBinder {
	return &HeaderBinder{parsers: DefaultParsers}
}

// NewHeaderBinderWithParsers creates a header binder over an explicit parser registry
func NewHeaderBinderWithParsers(parsers *ParserRegistry) *HeaderBinder {
	return &HeaderBinder{parsers: parsers}
}

// Name returns the binder name
func (b *HeaderBinder) Name() string {
	return "header"
}

// Bind resolves a parameter from a request header
func (b *HeaderBinder) Bind(ctx context.Context, req RequestContext, param ParameterDescriptor, state *ModelState) (BindingResult, error) {
	if ResolveSource(param) != SourceHeader {
		return NotBound(), nil
	}
	if req == nil {
		return NotBound(), nil
	}

	raw := req.Header(param.Key())
	if raw == "" {
		return NotBound(), nil
	}

	value, err := b.parsers.Parse(param.Type(), raw)
	if err != nil {
		state.AddError(param.Key(), err.Error())
		return NotBound(), nil
	}
	return Bound(value), nil
}
