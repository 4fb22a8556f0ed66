package arena

import "unsafe"

// Slice is a slice backed by arena memory rather than the Go heap.
//
// Unlike a Go slice it carries no GC pointer metadata of its own; the
// object that embeds a Slice must be reachable for at least as long as the
// arena it was allocated from, or the memory it points to may have been
// reused by a later Reset.
type Slice[T any] struct {
	ptr      *T
	len, cap uint32
}

// Of copies values into a freshly allocated arena slice. ok is false if
// the allocator refused the request.
func Of[T any](a Allocator, values ...T) (Slice[T], bool) {
	s, ok := Make[T](a, len(values))
	if !ok {
		return Slice[T]{}, false
	}
	copy(s.Raw(), values)
	return s, true
}

// Make allocates an arena slice of length n, zero-initialized.
func Make[T any](a Allocator, n int) (Slice[T], bool) {
	if n == 0 {
		return Slice[T]{}, true
	}

	var zero T
	elemSize := int(unsafe.Sizeof(zero))

	raw, ok := a.Alloc(n * elemSize)
	if !ok {
		return Slice[T]{}, false
	}

	return Slice[T]{ptr: (*T)(raw), len: uint32(n), cap: uint32(n)}, true
}

// Clone copies s into a new allocation on a.
func Clone[T any](a Allocator, s Slice[T]) (Slice[T], bool) {
	return Of(a, s.Raw()...)
}

// Len reports the number of elements in s.
func (s Slice[T]) Len() int { return int(s.len) }

// Cap reports the capacity of the underlying allocation.
func (s Slice[T]) Cap() int { return int(s.cap) }

// Ptr returns the raw pointer backing s, or nil for an empty slice.
func (s Slice[T]) Ptr() *T { return s.ptr }

// Raw returns s as an ordinary Go slice view. The view must not outlive
// the arena s was allocated from.
func (s Slice[T]) Raw() []T {
	if s.ptr == nil {
		return nil
	}
	return unsafe.Slice(s.ptr, s.len)
}

// At returns the element at index i.
func (s Slice[T]) At(i int) T { return s.Raw()[i] }

// Release returns s's backing memory to a. A no-op on [Arena].
func (s Slice[T]) Release(a Allocator) {
	if s.ptr == nil {
		return
	}
	var zero T
	a.Release(unsafe.Pointer(s.ptr), int(s.cap)*int(unsafe.Sizeof(zero)))
}

// EqualTo reports whether a and b hold identical elements.
func EqualTo[T comparable](a, b Slice[T]) bool {
	if a.len != b.len {
		return false
	}
	if a.ptr == b.ptr {
		return true
	}
	ar, br := a.Raw(), b.Raw()
	for i := range ar {
		if ar[i] != br[i] {
			return false
		}
	}
	return true
}

// FromBytes copies b into a freshly allocated arena byte slice.
func FromBytes(a Allocator, b []byte) (Slice[byte], bool) {
	return Of(a, b...)
}
