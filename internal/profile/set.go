package profile

import "slices"

// ToggleMembership removes item from set if present, otherwise appends it.
// The input slice is never modified; order of the remaining items is kept.
func ToggleMembership[T comparable](set []T, item T) []T {
	if slices.Contains(set, item) {
		return Remove(set, item)
	}
	return Insert(set, item)
}

// Insert appends item unless it is already present.
func Insert[T comparable](set []T, item T) []T {
	out := slices.Clone(set)
	if slices.Contains(out, item) {
		return out
	}
	return append(out, item)
}

// Remove drops every occurrence of item.
func Remove[T comparable](set []T, item T) []T {
	out := make([]T, 0, len(set))
	for _, v := range set {
		if v != item {
			out = append(out, v)
		}
	}
	return out
}

// dedupe keeps the first occurrence of each item. An empty result is nil so
// that a collection emptied by toggling equals one never touched.
func dedupe[T comparable](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, v := range items {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
