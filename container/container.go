// Package container implements the "ordered container of owned children"
// building block used wherever a parent owns several same-kind
// sub-objects (identifiers, parameters, extents, parameter-file
// references), deduplicated by a natural key. A set keeps its items in
// insertion order in a plain slice and indexes their lower-cased keys in
// a map, so the dedup check is a single map lookup.
package container

import "strings"

// Keyed is implemented by anything that can be owned in a Set: it must
// report the natural key used for case-insensitive deduplication.
type Keyed interface {
	Key() string
}

// Cloner is implemented by values that support a deep, independent copy.
type Cloner[T any] interface {
	Clone() T
}

// Set is an ordered, deduplicated collection of owned children of type T.
// Insertion order is preserved; a later Add of a value whose Key already
// exists (case-insensitively) is a no-op that reports the collision so
// the caller can raise the appropriate "duplicate X" error.
type Set[T Keyed] struct {
	items []T
	seen  map[string]int
}

// NewSet returns an empty Set.
func NewSet[T Keyed]() *Set[T] {
	return &Set[T]{seen: make(map[string]int)}
}

// Add appends item unless its key collides with an existing item's key
// (case-insensitive). It reports ok=false on collision and leaves the set
// unchanged.
func (s *Set[T]) Add(item T) (ok bool) {
	k := strings.ToLower(item.Key())
	if _, dup := s.seen[k]; dup {
		return false
	}
	s.seen[k] = len(s.items)
	s.items = append(s.items, item)
	return true
}

// Items returns the ordered slice of owned children. The returned slice
// must be treated as read-only by callers outside this package.
func (s *Set[T]) Items() []T {
	if s == nil {
		return nil
	}
	return s.items
}

// Len reports how many children are owned.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Get returns the item whose key matches name case-insensitively.
func (s *Set[T]) Get(name string) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	i, ok := s.seen[strings.ToLower(name)]
	if !ok {
		return zero, false
	}
	return s.items[i], true
}

// CloneSet returns a deep, independent copy of s, cloning every owned
// item. It is a function rather than a method on Set because its element
// type must implement Cloner[T] as well as Keyed, a constraint a method
// on Set[T] cannot add.
func CloneSet[T interface {
	Keyed
	Cloner[T]
}](s *Set[T]) *Set[T] {
	if s == nil {
		return nil
	}
	out := NewSet[T]()
	for _, item := range s.items {
		out.Add(item.Clone())
	}
	return out
}
