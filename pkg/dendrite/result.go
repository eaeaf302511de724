package dendrite

// BindingResult is the outcome of a single parameter resolution. A bound
// empty collection is a successful result, distinct from NotBound.
type BindingResult struct {
	value any
	isSet bool
}

// Bound creates a successful result carrying the resolved value
func Bound(value any) BindingResult {
	return BindingResult{value: value, isSet: true}
}

// NotBound creates a declined result; the caller's resolution chain continues
func NotBound() BindingResult {
	return BindingResult{}
}

// IsSet reports whether a value was bound
func (r BindingResult) IsSet() bool {
	return r.isSet
}

// Value returns the bound value, nil when not bound
func (r BindingResult) Value() any {
	return r.value
}

// ModelStateEntry holds the validation errors recorded for one field key
type ModelStateEntry struct {
	Key    string
	Errors []string
}

// ModelState collects per-field validation errors during binding. Keys are
// unique and iteration preserves insertion order.
type ModelState struct {
	keys    []string
	entries map[string]*ModelStateEntry
}

// NewModelState creates an empty model state
func NewModelState() *ModelState {
	return &ModelState{
		entries: make(map[string]*ModelStateEntry),
	}
}

// AddError records a validation error for a field key
func (m *ModelState) AddError(key, message string) {
	entry, ok := m.entries[key]
	if !ok {
		entry = &ModelStateEntry{Key: key}
		m.entries[key] = entry
		m.keys = append(m.keys, key)
	}
	entry.Errors = append(entry.Errors, message)
}

// Errors returns the errors recorded for a field key
func (m *ModelState) Errors(key string) []string {
	if entry, ok := m.entries[key]; ok {
		return entry.Errors
	}
	return nil
}

// Entries returns all entries in insertion order
func (m *ModelState) Entries() []ModelStateEntry {
	out := make([]ModelStateEntry, 0, len(m.keys))
	for _, key := range m.keys {
		out = append(out, *m.entries[key])
	}
	return out
}

// Keys returns all field keys in insertion order
func (m *ModelState) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Valid reports whether no errors have been recorded
func (m *ModelState) Valid() bool {
	return len(m.keys) == 0
}

// Len returns the number of field keys with recorded errors
func (m *ModelState) Len() int {
	return len(m.keys)
}
