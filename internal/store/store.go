// Package store provides the insertion-ordered record containers backing the
// test registry and the failure reports of a session.
package store

import (
	"errors"
	"iter"
)

var (
	// ErrTornDown is returned by mutating operations after Teardown
	ErrTornDown = errors.New("store torn down")
	// ErrDuplicateKey is returned when an Indexed store already holds a key
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrKeyNotFound is returned when an Indexed store has no record for a key
	ErrKeyNotFound = errors.New("key not found")
	// ErrOutOfRange is returned for an index that names no record
	ErrOutOfRange = errors.New("index out of range")
)

// Ordered is an append-only sequence of records kept in insertion order.
// Indices returned by Append stay valid until Teardown.  An Ordered store
// is not safe for concurrent use.
type Ordered[V any] struct {
	records  []V
	tornDown bool
}

// NewOrdered creates an empty Ordered store
func NewOrdered[V any]() *Ordered[V] {
	return &Ordered[V]{}
}

// Append copies v to the tail and returns its index.
func (o *Ordered[V]) Append(v V) (int, error) {
	if o.tornDown {
		return 0, ErrTornDown
	}
	o.records = append(o.records, v)
	return len(o.records) - 1, nil
}

// At returns a copy of the record at index i.
func (o *Ordered[V]) At(i int) (V, bool) {
	var zero V
	if i < 0 || i >= len(o.records) {
		return zero, false
	}
	return o.records[i], true
}

// Update applies fn to the stored record at index i in place.
func (o *Ordered[V]) Update(i int, fn func(*V)) error {
	if o.tornDown {
		return ErrTornDown
	}
	if i < 0 || i >= len(o.records) {
		return ErrOutOfRange
	}
	fn(&o.records[i])
	return nil
}

// Find returns the first record matching pred in insertion order.
func (o *Ordered[V]) Find(pred func(V) bool) (V, bool) {
	for _, v := range o.records {
		if pred(v) {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// All yields the records in insertion order.  The sequence may be ranged
// over any number of times; it yields nothing after Teardown.
func (o *Ordered[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < len(o.records); i++ {
			if !yield(o.records[i]) {
				return
			}
		}
	}
}

// Len returns the number of stored records
func (o *Ordered[V]) Len() int { return len(o.records) }

// TornDown reports whether Teardown has been called
func (o *Ordered[V]) TornDown() bool { return o.tornDown }

// Teardown hands every record to release, in insertion order, so owned
// fields can be cleared, then drops the records.  release may be nil.
// Calling Teardown again is a no-op.
func (o *Ordered[V]) Teardown(release func(*V)) {
	if o.tornDown {
		return
	}
	o.tornDown = true
	if release != nil {
		for i := range o.records {
			release(&o.records[i])
		}
	}
	clear(o.records)
	o.records = nil
}
