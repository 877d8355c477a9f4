package store

import (
	"fmt"
	"iter"
)

// Indexed is an Ordered store whose records are also reachable by a unique
// key.  Iteration order is insertion order; lookups go through the key
// index.
type Indexed[K comparable, V any] struct {
	ordered Ordered[V]
	index   map[K]int
	key     func(V) K
}

// NewIndexed creates an empty Indexed store deriving each record's key with
// key.
func NewIndexed[K comparable, V any](key func(V) K) *Indexed[K, V] {
	return &Indexed[K, V]{
		index: make(map[K]int),
		key:   key,
	}
}

// Append adds v unless a record with the same key is already stored.
func (x *Indexed[K, V]) Append(v V) (int, error) {
	if x.ordered.TornDown() {
		return 0, ErrTornDown
	}
	k := x.key(v)
	if _, ok := x.index[k]; ok {
		return 0, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
	}
	i, err := x.ordered.Append(v)
	if err != nil {
		return 0, err
	}
	x.index[k] = i
	return i, nil
}

// Lookup returns a copy of the record stored under k.
func (x *Indexed[K, V]) Lookup(k K) (V, bool) {
	i, ok := x.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return x.ordered.At(i)
}

// UpdateKey applies fn in place to the record stored under k.
func (x *Indexed[K, V]) UpdateKey(k K, fn func(*V)) error {
	if x.ordered.TornDown() {
		return ErrTornDown
	}
	i, ok := x.index[k]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	return x.ordered.Update(i, fn)
}

// Find returns the first record matching pred in insertion order.
func (x *Indexed[K, V]) Find(pred func(V) bool) (V, bool) {
	return x.ordered.Find(pred)
}

// All yields the records in insertion order.
func (x *Indexed[K, V]) All() iter.Seq[V] { return x.ordered.All() }

// Len returns the number of stored records
func (x *Indexed[K, V]) Len() int { return x.ordered.Len() }

// TornDown reports whether Teardown has been called
func (x *Indexed[K, V]) TornDown() bool { return x.ordered.TornDown() }

// Teardown releases all records (see Ordered.Teardown) and the key index.
func (x *Indexed[K, V]) Teardown(release func(*V)) {
	x.ordered.Teardown(release)
	clear(x.index)
}
