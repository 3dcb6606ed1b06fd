package store

import (
	"slices"

	"github.com/samber/lo"
)

// Prepend returns a new collection with item first.
func Prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// Append returns a new collection with item last.
func Append[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// Replace returns a new collection where the record with id is replaced by
// fn applied to it. All other records are carried over as-is. The second
// result is false when no record has id.
func Replace[T any](items []T, id string, idOf func(T) string, fn func(T) T) ([]T, bool) {
	i := IndexOf(items, id, idOf)
	if i < 0 {
		return items, false
	}
	out := slices.Clone(items)
	out[i] = fn(out[i])
	return out, true
}

// Find returns the record with id.
func Find[T any](items []T, id string, idOf func(T) string) (T, bool) {
	return lo.Find(items, func(item T) bool { return idOf(item) == id })
}

// IndexOf returns the position of the record with id, or -1.
func IndexOf[T any](items []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
}
