package artnode

import (
	"unsafe"

	"github.com/k0ekk0ek/namedb/internal/debug"
	"github.com/k0ekk0ek/namedb/pkg/simdscan"
)

// Node16 stores up to 16 children in sorted parallel arrays, found by
// simdscan's find-equal/find-greater-than primitives.
type Node16[T any] struct {
	Base
	keys     [16]byte
	children [16]Ref[T]
}

// NewNode16 allocates an empty Node16.
func NewNode16[T any](a Allocator) (*Node16[T], bool) {
	return allocZero[Node16[T]](a)
}

func (n *Node16[T]) Ref() Ref[T]   { return newRef[T](TypeNode16, n) }
func (n *Node16[T]) Type() Type    { return TypeNode16 }
func (n *Node16[T]) Capacity() int { return 16 }
func (n *Node16[T]) Full() bool    { return n.Width() >= n.Capacity() }

func (n *Node16[T]) FindChild(b byte) *Ref[T] {
	i := simdscan.FindEq(b, n.keys[:], n.Width())
	if i == simdscan.NotFound {
		return nil
	}
	return &n.children[i]
}

func (n *Node16[T]) AddChild(a Allocator, b byte, child Ref[T]) {
	debug.Assert(!n.Full(), "AddChild called on a full Node16")

	w := n.Width()
	i := simdscan.FindGT(b, n.keys[:], w)
	if i == simdscan.NotFound {
		i = w
	}

	copy(n.keys[i+1:w+1], n.keys[i:w])
	copy(n.children[i+1:w+1], n.children[i:w])
	n.keys[i] = b
	n.children[i] = child
	n.numChildren++
}

func (n *Node16[T]) Each(yield func(b byte, child Ref[T]) bool) bool {
	for i := 0; i < n.Width(); i++ {
		if yield(n.keys[i], n.children[i]) {
			return true
		}
	}
	return false
}

// Grow converts n to a Node32 when AVX2 is available, or directly to
// Node38 or Node48 per the hostname-alphabet test otherwise (spec §4.3,
// and SIMD as capability not constant, spec §9).
func (n *Node16[T]) Grow(a Allocator, incoming byte) (Node[T], bool) {
	if simdscan.HaveAVX2 {
		return n.growToNode32(a)
	}
	if allInHostnameAlphabet(n.keys[:n.Width()], incoming) {
		return n.growToNode38(a)
	}
	return n.growToNode48(a)
}

func (n *Node16[T]) growToNode32(a Allocator) (Node[T], bool) {
	grown, ok := NewNode32[T](a)
	if !ok {
		return nil, false
	}

	grown.SetPrefix(n.Prefix())
	w := n.Width()
	copy(grown.keys[:w], n.keys[:w])
	copy(grown.children[:w], n.children[:w])
	grown.numChildren = w

	return grown, true
}

func (n *Node16[T]) growToNode38(a Allocator) (Node[T], bool) {
	grown, ok := NewNode38[T](a)
	if !ok {
		return nil, false
	}

	grown.SetPrefix(n.Prefix())
	for i := 0; i < n.Width(); i++ {
		grown.insertDirect(n.keys[i], n.children[i])
	}

	return grown, true
}

func (n *Node16[T]) growToNode48(a Allocator) (Node[T], bool) {
	grown, ok := NewNode48[T](a)
	if !ok {
		return nil, false
	}

	grown.SetPrefix(n.Prefix())
	for i := 0; i < n.Width(); i++ {
		grown.insertRaw(n.keys[i], n.children[i])
	}

	return grown, true
}

func (n *Node16[T]) Release(a Allocator) {
	a.Release(unsafe.Pointer(n), int(unsafe.Sizeof(*n)))
}

func (n *Node16[T]) Minimum() *Leaf[T] {
	if n.Width() == 0 {
		return nil
	}
	return n.children[0].Minimum()
}

func (n *Node16[T]) Maximum() *Leaf[T] {
	w := n.Width()
	if w == 0 {
		return nil
	}
	return n.children[w-1].Maximum()
}
