package dictutil

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"
)

// MissingKeys returns one single-entry map for every key present in only one
// of the two dictionaries. Keys of a come first, then keys of b.
func MissingKeys(a, b map[string]any) []map[string]any {
	var out []map[string]any
	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			out = append(out, map[string]any{k: a[k]})
		}
	}
	for _, k := range sortedKeys(b) {
		if _, ok := a[k]; !ok {
			out = append(out, map[string]any{k: b[k]})
		}
	}
	return out
}

// Compare lists every difference between a and b: missing keys as returned by
// MissingKeys followed by changed values rendered as "old->new".
func Compare(a, b map[string]any) []map[string]any {
	out := MissingKeys(a, b)
	for _, k := range sortedKeys(a) {
		other, ok := b[k]
		if !ok || reflect.DeepEqual(a[k], other) {
			continue
		}
		out = append(out, map[string]any{k: fmt.Sprintf("%v->%v", a[k], other)})
	}
	return out
}

// StripInput returns a copy of m where every string value is whitespace trimmed.
func StripInput(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			v = strings.TrimSpace(s)
		}
		out[k] = v
	}
	return out
}

// SetNested stores value under a dot separated path, creating intermediate
// dictionaries as needed. Non-dictionary intermediates are replaced.
func SetNested(m map[string]any, path string, value any) {
	keys := strings.Split(path, ".")
	current := m
	for _, key := range keys[:len(keys)-1] {
		next, ok := asDict(current[key])
		if !ok {
			next = make(map[string]any)
			current[key] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// GetNested returns the value stored under a dot separated path, or def when
// any segment is missing, nil, or not a dictionary.
func GetNested(m map[string]any, path string, def any) any {
	var current any = m
	for _, key := range strings.Split(path, ".") {
		dict, ok := asDict(current)
		if !ok {
			return def
		}
		current = dict[key]
		if current == nil {
			return def
		}
	}
	return current
}

// StringKeys converts a dictionary with arbitrary keys, as produced by some
// YAML decoders, into one keyed by strings. Nested dictionaries are converted too.
func StringKeys(m map[any]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[any]any); ok {
			v = StringKeys(nested)
		}
		out[fmt.Sprint(k)] = v
	}
	return out
}

// IterateOver returns the value stored under key as a list. A scalar is
// wrapped, a missing key yields an empty list.
func IterateOver(m map[string]any, key string) []any {
	v, ok := m[key]
	if !ok || v == nil {
		return []any{}
	}
	if list, ok := v.([]any); ok {
		return list
	}
	if list, ok := v.([]string); ok {
		out := make([]any, len(list))
		for i, s := range list {
			out[i] = s
		}
		return out
	}
	return []any{v}
}

// TwoWay adds a value->key entry for every key->value entry of m and returns m.
func TwoWay(m map[string]string) map[string]string {
	pairs := make([][2]string, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, [2]string{k, v})
	}
	for _, p := range pairs {
		m[p[1]] = p[0]
	}
	return m
}

// AllNestedKeys returns the dot paths of every leaf value, sorted.
func AllNestedKeys(m map[string]any, prefix string) []string {
	var keys []string
	for k, v := range m {
		if nested, ok := asDict(v); ok {
			keys = append(keys, AllNestedKeys(nested, prefix+k+".")...)
			continue
		}
		keys = append(keys, prefix+k)
	}
	sort.Strings(keys)
	return keys
}

// FromString parses a serialized dictionary such as "a=1&b=2". Repeated keys
// collect their values into a list.
func FromString(s, itemSep, kvSep string) (map[string]any, error) {
	out := make(map[string]any)
	err := parsePairs(s, itemSep, kvSep, func(k, v string) {
		out[k] = appendValue(out[k], v)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OrderedFromString is FromString keeping the order keys first appear in.
func OrderedFromString(s, itemSep, kvSep string) (*OrderedMap, error) {
	out := NewOrderedMap()
	err := parsePairs(s, itemSep, kvSep, func(k, v string) {
		old, _ := out.Get(k)
		out.Set(k, appendValue(old, v))
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FromValues converts parsed form data into a request dictionary. Keys with a
// single value map to a string, repeated keys to a list.
func FromValues(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for k, vs := range values {
		switch len(vs) {
		case 0:
			out[k] = ""
		case 1:
			out[k] = vs[0]
		default:
			list := make([]any, len(vs))
			for i, v := range vs {
				list[i] = v
			}
			out[k] = list
		}
	}
	return out
}

func parsePairs(s, itemSep, kvSep string, set func(k, v string)) error {
	if s == "" {
		return nil
	}
	for _, item := range strings.Split(s, itemSep) {
		k, v, ok := strings.Cut(item, kvSep)
		if !ok {
			return fmt.Errorf("%w: %q", ErrMalformedPair, item)
		}
		set(k, v)
	}
	return nil
}

func appendValue(old any, v string) any {
	switch o := old.(type) {
	case nil:
		return v
	case []any:
		return append(o, v)
	default:
		return []any{o, v}
	}
}

func asDict(v any) (map[string]any, bool) {
	switch d := v.(type) {
	case map[string]any:
		return d, true
	case NestedDict:
		return d, true
	default:
		return nil, false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
