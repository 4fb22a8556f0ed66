package artnode

import (
	"bytes"
	"unsafe"

	"github.com/k0ekk0ek/namedb/pkg/arena"
)

// Leaf holds a copy of the full key that led to it and the caller's
// opaque value. It is always terminal: a Leaf never has children.
type Leaf[T any] struct {
	key   arena.Slice[byte]
	Value T
}

// NewLeaf allocates a Leaf holding a copy of key, with the zero value of
// T. ok is false if the allocator refused either allocation, in which
// case no partial state is left behind.
func NewLeaf[T any](a Allocator, key []byte) (*Leaf[T], bool) {
	stored, ok := arena.FromBytes(a, key)
	if !ok {
		return nil, false
	}

	l, ok := allocZero[Leaf[T]](a)
	if !ok {
		stored.Release(a)
		return nil, false
	}

	l.key = stored
	return l, true
}

// Ref returns the tagged reference addressing l.
func (l *Leaf[T]) Ref() Ref[T] { return newRef[T](TypeLeaf, l) }

// Key returns the full key stored at l.
func (l *Leaf[T]) Key() []byte { return l.key.Raw() }

// MatchesKey reports whether l was stored under exactly key.
func (l *Leaf[T]) MatchesKey(key []byte) bool {
	return bytes.Equal(l.key.Raw(), key)
}

// Release returns l's key allocation and then l itself to a. Used to
// unwind a leaf allocated speculatively during make_path once an
// allocation later in the same operation fails, preserving the
// transactional no-leak contract.
func (l *Leaf[T]) Release(a Allocator) {
	l.key.Release(a)
	var zero Leaf[T]
	a.Release(unsafe.Pointer(l), int(unsafe.Sizeof(zero)))
}
