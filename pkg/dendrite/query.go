package dendrite

import (
	"context"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// QueryMap represents URL query parameters with convenient access methods
type QueryMap struct {
	values url.Values
}

// NewQueryMap creates a QueryMap from a request context
func NewQueryMap(req RequestContext) QueryMap {
	return QueryMap{values: url.Values(req.QueryParams())}
}

// Get returns the first value for the given key, or empty string if not found
func (q QueryMap) Get(key string) string {
	return q.values.Get(key)
}

// GetDefault returns the first value for the given key, or the default value if not found
func (q QueryMap) GetDefault(key, defaultValue string) string {
	if value := q.values.Get(key); value != "" {
		return value
	}
	return defaultValue
}

// GetInt returns the first value for the given key as an integer, or 0 if not found/invalid
func (q QueryMap) GetInt(key string) int {
	if value := q.values.Get(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return 0
}

// GetIntDefault returns the first value for the given key as an integer, or the default if not found/invalid
func (q QueryMap) GetIntDefault(key string, defaultValue int) int {
	if value := q.values.Get(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// GetBool returns the first value for the given key as a boolean
// Accepts: "true", "1", "yes", "on" (case insensitive) as true
func (q QueryMap) GetBool(key string) bool {
	value := strings.ToLower(q.values.Get(key))
	return value == "true" || value == "1" || value == "yes" || value == "on"
}

// GetAll returns all values for the given key
func (q QueryMap) GetAll(key string) []string {
	return q.values[key]
}

// Has returns true if the key exists in the query parameters
func (q QueryMap) Has(key string) bool {
	_, exists := q.values[key]
	return exists
}

// Keys returns all query parameter keys
func (q QueryMap) Keys() []string {
	keys := make([]string, 0, len(q.values))
	for key := range q.values {
		keys = append(keys, key)
	}
	return keys
}

// ToMap returns the underlying url.Values as a map[string][]string
func (q QueryMap) ToMap() map[string][]string {
	return map[string][]string(q.values)
}

// QueryBinder resolves query-sourced parameters from the URL query
// string. A slice-typed parameter binds every value for its key;
// conversion failures are recorded as model state entries.
type QueryBinder struct {
	parsers *ParserRegistry
}

// NewQueryBinder creates a query binder using the default parsers
func NewQueryBinder() *QueryBinder {
	return &QueryBinder{parsers: DefaultParsers}
}

// NewQueryBinderWithParsers creates a query binder over an explicit parser registry
func NewQueryBinderWithParsers(parsers *ParserRegistry) *QueryBinder {
	return &QueryBinder{parsers: parsers}
}

// Name returns the binder name
func (b *QueryBinder) Name() string {
	return "query"
}

// Bind resolves a parameter from the query string
func (b *QueryBinder) Bind(ctx context.Context, req RequestContext, param ParameterDescriptor, state *ModelState) (BindingResult, error) {
	if ResolveSource(param) != SourceQuery {
		return NotBound(), nil
	}
	if req == nil {
		return NotBound(), nil
	}

	query := NewQueryMap(req)
	key := param.Key()
	if !query.Has(key) {
		return NotBound(), nil
	}

	if elem, ok := collectionElement(param.Type()); ok {
		raws := query.GetAll(key)
		out := reflect.MakeSlice(reflect.SliceOf(elem), 0, len(raws))
		for _, raw := range raws {
			value, err := b.parsers.Parse(elem, raw)
			if err != nil {
				state.AddError(key, err.Error())
				return NotBound(), nil
			}
			out = reflect.Append(out, reflect.ValueOf(value))
		}
		return Bound(out.Interface()), nil
	}

	value, err := b.parsers.Parse(param.Type(), query.Get(key))
	if err != nil {
		state.AddError(key, err.Error())
		return NotBound(), nil
	}
	return Bound(value), nil
}
