package dendrite

import (
	"context"
	"strings"
)

// PathPartType represents the type of path part
type PathPartType int

const (
	StaticPart PathPartType = iota
	ParameterPart
	WildcardPart
)

// PathPart represents a single part of a dendrite route path
type PathPart struct {
	Type PathPartType

	// Value is the literal text for static parts, the parameter name for
	// parameter parts
	Value string

	// ParamType is the declared value type for parameter parts
	// (e.g. "int", "uuid"), empty for untyped parameters
	ParamType string
}

// RoutePath represents a route template in dendrite syntax,
// e.g. "/users/{id:int}/posts/{slug}"
type RoutePath string

// NewRoutePath creates a RoutePath from a string
func NewRoutePath(path string) RoutePath {
	return RoutePath(path)
}

// Raw returns the original path template
func (p RoutePath) Raw() string {
	return string(p)
}

// Parts parses the template and returns the individual parts
func (p RoutePath) Parts() []PathPart {
	path := string(p)
	var parts []PathPart

	i := 0
	for i < len(path) {
		if path[i] == '{' {
			j := i + 1
			for j < len(path) && path[j] != '}' {
				j++
			}
			if j < len(path) {
				content := path[i+1 : j]

				if content == "*" {
					parts = append(parts, PathPart{Type: WildcardPart, Value: "*"})
				} else {
					name := content
					paramType := ""
					if colon := strings.Index(content, ":"); colon != -1 {
						name = content[:colon]
						paramType = content[colon+1:]
					}
					parts = append(parts, PathPart{
						Type:      ParameterPart,
						Value:     name,
						ParamType: paramType,
					})
				}
				i = j + 1
			} else {
				// Unbalanced brace, treat as static
				parts = append(parts, PathPart{Type: StaticPart, Value: string(path[i])})
				i++
			}
		} else {
			start := i
			for i < len(path) && path[i] != '{' {
				i++
			}
			parts = append(parts, PathPart{Type: StaticPart, Value: path[start:i]})
		}
	}

	return parts
}

// ParamTypes maps parameter names to their declared value types
func (p RoutePath) ParamTypes() map[string]string {
	types := make(map[string]string)
	for _, part := range p.Parts() {
		if part.Type == ParameterPart {
			types[part.Value] = part.ParamType
		}
	}
	return types
}

// RouteBinder resolves route-sourced parameters from path values,
// converting raw strings through the value parser registry. Conversion
// failures are recorded as model state entries.
type RouteBinder struct {
	parsers *ParserRegistry
}

// NewRouteBinder creates a route binder using the default parsers
func NewRouteBinder() *RouteBinder {
	return &RouteBinder{parsers: DefaultParsers}
}

// NewRouteBinderWithParsers creates a route binder over an explicit parser registry
func NewRouteBinderWithParsers(parsers *ParserRegistry) *RouteBinder {
	return &RouteBinder{parsers: parsers}
}

// Name returns the binder name
func (b *RouteBinder) Name() string {
	return "route"
}

// Bind resolves a parameter from a route path value
func (b *RouteBinder) Bind(ctx context.Context, req RequestContext, param ParameterDescriptor, state *ModelState) (BindingResult, error) {
	if ResolveSource(param) != SourceRoute {
		return NotBound(), nil
	}
	if req == nil {
		return NotBound(), nil
	}

	raw := req.Param(param.Key())
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
