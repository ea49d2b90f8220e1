package dictutil

import (
	"reflect"
	"strings"
)

// NestedDict is a request dictionary addressed by dot paths.
type NestedDict map[string]any

// Difference describes one leaf path whose value differs between two NestedDicts.
type Difference struct {
	Key    string
	Mine   any
	Theirs any
}

// SetValue stores value under a dot path.
func (d NestedDict) SetValue(path string, value any) {
	SetNested(d, path, value)
}

// Value returns the value under a dot path or def when it is missing.
// Empty path segments are skipped.
func (d NestedDict) Value(path string, def any) any {
	var current any = map[string]any(d)
	for _, key := range strings.Split(path, ".") {
		if key == "" {
			continue
		}
		dict, ok := asDict(current)
		if !ok {
			return def
		}
		current, ok = dict[key]
		if !ok || current == nil {
			return def
		}
	}
	return current
}

// Lookup returns the value under a dot path and whether it exists.
func (d NestedDict) Lookup(path string) (any, bool) {
	var missing struct{}
	v := d.Value(path, missing)
	if _, ok := v.(struct{}); ok {
		return nil, false
	}
	return v, true
}

// AllKeys returns the dot paths of every leaf, sorted.
func (d NestedDict) AllKeys() []string {
	return AllNestedKeys(d, "")
}

// Difference compares every leaf path of d and other.
func (d NestedDict) Difference(other NestedDict) []Difference {
	seen := make(map[string]bool)
	var diffs []Difference
	for _, key := range append(d.AllKeys(), other.AllKeys()...) {
		if seen[key] {
			continue
		}
		seen[key] = true
		mine := d.Value(key, nil)
		theirs := other.Value(key, nil)
		if !reflect.DeepEqual(mine, theirs) {
			diffs = append(diffs, Difference{Key: key, Mine: mine, Theirs: theirs})
		}
	}
	return diffs
}
