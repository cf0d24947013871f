// Package arena provides a generational slot arena addressed by stable keys.
package arena

import (
	"iter"
	"math"
)

// Key addresses a value stored in an Arena.
// The zero Key never refers to a live value.
type Key struct {
	index uint32
	gen   uint32
}

func (k Key) IsZero() bool {
	return k.gen == 0
}

type slot[T any] struct {
	value T
	gen   uint32 // odd while occupied
}

// Arena stores values of type T behind generational keys. Removing a value
// invalidates its key permanently: the slot may be reused, but only under a
// new generation, and a slot whose generation would wrap is retired.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// Insert stores v and returns a fresh key for it.
func (a *Arena[T]) Insert(v T) Key {
	var index uint32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		index = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}
	s := &a.slots[index]
	s.gen++
	s.value = v
	a.count++
	return Key{index: index, gen: s.gen}
}

// Remove deletes the value addressed by k and returns it.
// It returns false if k is stale or zero.
func (a *Arena[T]) Remove(k Key) (T, bool) {
	var zero T
	if !a.Contains(k) {
		return zero, false
	}
	s := &a.slots[k.index]
	v := s.value
	s.value = zero
	s.gen++
	a.count--
	if s.gen < math.MaxUint32-1 {
		a.free = append(a.free, k.index)
	}
	return v, true
}

// Contains reports whether k addresses a live value.
func (a *Arena[T]) Contains(k Key) bool {
	return k.gen != 0 && int(k.index) < len(a.slots) && a.slots[k.index].gen == k.gen
}

// Get returns a pointer to the value addressed by k, or false if k is stale.
// The pointer is valid until the next Insert.
func (a *Arena[T]) Get(k Key) (*T, bool) {
	if !a.Contains(k) {
		return nil, false
	}
	return &a.slots[k.index].value, true
}

// At returns a pointer to the value addressed by k without checking its
// generation. The caller must know k to be live; a stale key yields whatever
// now occupies the slot. At panics on the zero key, which stands for an
// absent reference. The pointer is valid until the next Insert.
func (a *Arena[T]) At(k Key) *T {
	if k.gen == 0 {
		panic("arena: access through absent key")
	}
	return &a.slots[k.index].value
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.count
}

// All returns an iterator over live keys and values in slot order.
func (a *Arena[T]) All() iter.Seq2[Key, *T] {
	return func(yield func(Key, *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if s.gen&1 == 0 {
				continue
			}
			if !yield(Key{index: uint32(i), gen: s.gen}, &s.value) {
				return
			}
		}
	}
}
