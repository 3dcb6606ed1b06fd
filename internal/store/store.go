// Package store holds the working collection of one record type and
// mirrors every accepted change through the persistence bridge.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/gloovup/portal/internal/persist"
	"github.com/gloovup/portal/internal/validation"
)

var (
	// ErrDuplicateID is reported by shape checks when two records share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrMissingID is reported by shape checks when a record has no id.
	ErrMissingID = errors.New("missing id")
)

// Store is an ordered, in-memory collection with write-through persistence.
// Mutations are serialized; readers always see a complete collection.
type Store[T any] struct {
	mu       sync.RWMutex
	key      string
	items    []T
	fixtures []T
	idOf     func(T) string
	bridge   *persist.Bridge
	logger   *slog.Logger
}

// Open rehydrates the collection stored under key, or starts from a copy of
// fixtures when nothing usable is stored. A nil bridge keeps the store
// purely in memory.
func Open[T any](ctx context.Context, bridge *persist.Bridge, key string, fixtures []T, idOf func(T) string, logger *slog.Logger) *Store[T] {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store[T]{
		key:      key,
		fixtures: slices.Clone(fixtures),
		idOf:     idOf,
		bridge:   bridge,
		logger:   logger,
	}

	if bridge != nil {
		if items, ok := persist.Load[[]T](ctx, bridge, key, CheckShape(idOf)); ok {
			s.items = items
			logger.Debug("rehydrated collection", "key", key, "count", len(items))
			return s
		}
	}
	s.items = slices.Clone(fixtures)
	if s.items == nil {
		s.items = []T{}
	}
	return s
}

// Key returns the storage key of the collection.
func (s *Store[T]) Key() string {
	return s.key
}

// Snapshot returns a copy of the current collection.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Find returns the record with id.
func (s *Store[T]) Find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Find(s.items, id, s.idOf)
}

// Mutate derives the next collection with fn and, if fn succeeds, swaps it
// in and persists it. A failing fn leaves memory and storage untouched.
func (s *Store[T]) Mutate(ctx context.Context, fn func([]T) ([]T, error)) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(slices.Clone(s.items))
	if err != nil {
		return nil, err
	}
	if next == nil {
		next = []T{}
	}
	s.items = next
	s.persistLocked(ctx)
	return slices.Clone(next), nil
}

// Reset restores the fixtures and persists them.
func (s *Store[T]) Reset(ctx context.Context) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.Clone(s.fixtures)
	if s.items == nil {
		s.items = []T{}
	}
	s.persistLocked(ctx)
	s.logger.Info("collection reset to fixtures", "key", s.key, "count", len(s.items))
	return slices.Clone(s.items)
}

func (s *Store[T]) persistLocked(ctx context.Context) {
	if s.bridge == nil {
		return
	}
	s.bridge.Save(ctx, s.key, s.items)
}

// CheckShape returns a persisted-state check requiring unique, non-empty
// ids and records that satisfy their validate tags.
func CheckShape[T any](idOf func(T) string) func([]T) error {
	return func(items []T) error {
		seen := make(map[string]struct{}, len(items))
		for i, item := range items {
			id := idOf(item)
			if id == "" {
				return fmt.Errorf("record %d: %w", i, ErrMissingID)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%w: %s", ErrDuplicateID, id)
			}
			seen[id] = struct{}{}
			if isStruct(item) {
				if err := validation.Struct(item); err != nil {
					return fmt.Errorf("record %s: %w", id, err)
				}
			}
		}
		return nil
	}
}

func isStruct(v any) bool {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t != nil && t.Kind() == reflect.Struct
}
