// Package dictutil provides helpers for the untyped dictionaries that carry
// request data through an element tree.
//
// A request dictionary is a map[string]any whose values are scalars, lists
// ([]any) or nested dictionaries. Nested values are addressed with dot paths:
//
//	vars := map[string]any{}
//	dictutil.SetNested(vars, "user.address.city", "Lisbon")
//	city := dictutil.GetNested(vars, "user.address.city", "")
//
// OrderedMap keeps insertion order and is used wherever rendering order must be
// stable (element attributes, style declarations, table rows).
package dictutil
