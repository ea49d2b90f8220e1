package dictutil

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Pair is a single key/value entry of an OrderedMap.
type Pair struct {
	Key   string
	Value any
}

// OrderedMap is a string keyed map that remembers insertion order.
// Overwriting an existing key keeps its original position.
type OrderedMap struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewOrderedMap creates an ordered map seeded with pairs.
func NewOrderedMap(pairs ...Pair) *OrderedMap {
	om := &OrderedMap{m: orderedmap.New[string, any]()}
	for _, p := range pairs {
		om.Set(p.Key, p.Value)
	}
	return om
}

// Set stores value under key.
func (o *OrderedMap) Set(key string, value any) {
	o.m.Set(key, value)
}

// Get returns the value stored under key.
func (o *OrderedMap) Get(key string) (any, bool) {
	return o.m.Get(key)
}

// Has reports whether key is present.
func (o *OrderedMap) Has(key string) bool {
	_, ok := o.m.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (o *OrderedMap) Delete(key string) bool {
	_, ok := o.m.Delete(key)
	return ok
}

// SetDefault stores value only when key is absent and returns the stored value.
func (o *OrderedMap) SetDefault(key string, value any) any {
	if existing, ok := o.m.Get(key); ok {
		return existing
	}
	o.m.Set(key, value)
	return value
}

// Len returns the number of entries.
func (o *OrderedMap) Len() int {
	return o.m.Len()
}

// Keys returns the keys in insertion order.
func (o *OrderedMap) Keys() []string {
	keys := make([]string, 0, o.m.Len())
	for p := o.m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Values returns the values in insertion order.
func (o *OrderedMap) Values() []any {
	values := make([]any, 0, o.m.Len())
	for p := o.m.Oldest(); p != nil; p = p.Next() {
		values = append(values, p.Value)
	}
	return values
}

// Pairs returns the entries in insertion order.
func (o *OrderedMap) Pairs() []Pair {
	pairs := make([]Pair, 0, o.m.Len())
	for p := o.m.Oldest(); p != nil; p = p.Next() {
		pairs = append(pairs, Pair{Key: p.Key, Value: p.Value})
	}
	return pairs
}

// Update copies every entry of other into o, in other's order.
func (o *OrderedMap) Update(other *OrderedMap) {
	if other == nil {
		return
	}
	for p := other.m.Oldest(); p != nil; p = p.Next() {
		o.m.Set(p.Key, p.Value)
	}
}

// Copy returns a shallow copy.
func (o *OrderedMap) Copy() *OrderedMap {
	out := NewOrderedMap()
	out.Update(o)
	return out
}

// Map returns the entries as a plain map.
func (o *OrderedMap) Map() map[string]any {
	out := make(map[string]any, o.m.Len())
	for p := o.m.Oldest(); p != nil; p = p.Next() {
		out[p.Key] = p.Value
	}
	return out
}

// MoveToBack moves key to the end of the order.
func (o *OrderedMap) MoveToBack(key string) error {
	return o.m.MoveToBack(key)
}

// MarshalJSON encodes the map as a JSON object preserving key order.
func (o *OrderedMap) MarshalJSON() ([]byte, error) {
	return o.m.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object keeping its key order.
func (o *OrderedMap) UnmarshalJSON(data []byte) error {
	if o.m == nil {
		o.m = orderedmap.New[string, any]()
	}
	return o.m.UnmarshalJSON(data)
}

// Merge returns a new map holding a's entries followed by b's. Values of b win.
func Merge(a, b *OrderedMap) *OrderedMap {
	out := a.Copy()
	out.Update(b)
	return out
}
