package dendrite

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// ValueParser converts a raw request string into a typed value
type ValueParser func(raw string) (any, error)

// ParserRegistry maps declared types to the parsers that produce them
type ParserRegistry struct {
	mu      sync.RWMutex
	parsers map[reflect.Type]ValueParser
}

// NewParserRegistry creates a registry pre-populated with the builtin parsers
func NewParserRegistry() *ParserRegistry {
	r := &ParserRegistry{parsers: make(map[reflect.Type]ValueParser)}
	r.registerBuiltins()
	return r
}

// RegisterParser registers a parser for a declared type, replacing any
// existing registration
func (r *ParserRegistry) RegisterParser(t reflect.Type, parser ValueParser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[t] = parser
}

// RegisterParserFor registers a typed parser for T
func RegisterParserFor[T any](r *ParserRegistry, parse func(raw string) (T, error)) {
	r.RegisterParser(TypeOf[T](), func(raw string) (any, error) {
		return parse(raw)
	})
}

// Parser returns the parser registered for a declared type
func (r *ParserRegistry) Parser(t reflect.Type) (ValueParser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	parser, ok := r.parsers[t]
	return parser, ok
}

// Supports reports whether a parser exists for the declared type
func (r *ParserRegistry) Supports(t reflect.Type) bool {
	_, ok := r.Parser(t)
	return ok
}

// Parse converts a raw string into a value of the declared type
func (r *ParserRegistry) Parse(t reflect.Type, raw string) (any, error) {
	parser, ok := r.Parser(t)
	if !ok {
		return nil, fmt.Errorf("no value parser registered for type %s", t)
	}
	value, err := parser(raw)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q as %s: %w", raw, t, err)
	}
	return value, nil
}

func (r *ParserRegistry) registerBuiltins() {
	r.parsers[TypeOf[string]()] = func(raw string) (any, error) {
		return raw, nil
	}
	r.parsers[TypeOf[int]()] = func(raw string) (any, error) {
		return strconv.Atoi(raw)
	}
	r.parsers[TypeOf[int64]()] = func(raw string) (any, error) {
		return strconv.ParseInt(raw, 10, 64)
	}
	r.parsers[TypeOf[bool]()] = func(raw string) (any, error) {
		return strconv.ParseBool(raw)
	}
	r.parsers[TypeOf[float64]()] = func(raw string) (any, error) {
		return strconv.ParseFloat(raw, 64)
	}
	r.parsers[TypeOf[float32]()] = func(raw string) (any, error) {
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return nil, err
		}
		return float32(v), nil
	}
	r.parsers[TypeOf[uuid.UUID]()] = func(raw string) (any, error) {
		return uuid.Parse(raw)
	}
}

// DefaultParsers is the global parser registry used by the builtin binders
var DefaultParsers = NewParserRegistry()
