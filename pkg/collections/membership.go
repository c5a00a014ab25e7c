// Package collections holds small generic helpers over slices and values.
package collections

import "slices"

// IsAny reports whether value equals any of items.
// It is false when items is empty.
//
// Example:
//   IsAny(status, "queued", "sending") -> true when status is queued or sending
func IsAny[T comparable](value T, items ...T) bool {
	return slices.Contains(items, value)
}

// IsAnyFunc is IsAny with a caller supplied equality, for values that are
// not comparable or need a looser match (case folding, tolerances).
func IsAnyFunc[T any](value T, eq func(a, b T) bool, items ...T) bool {
	return slices.ContainsFunc(items, func(item T) bool {
		return eq(value, item)
	})
}
