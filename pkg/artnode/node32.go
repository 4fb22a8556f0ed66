package artnode

import (
	"unsafe"

	"github.com/k0ekk0ek/namedb/internal/debug"
	"github.com/k0ekk0ek/namedb/pkg/simdscan"
)

// Node32 stores up to 32 children in sorted parallel arrays. It exists
// only for builds where simdscan reports AVX2 available — in this build
// HaveAVX2 is false, so Node16 never promotes here, but the layout and
// its migrations are implemented in full so the type is exercised
// directly (construction, lookup, growth) wherever tests or a future
// AVX2-enabled build need it.
type Node32[T any] struct {
	Base
	keys     [32]byte
	children [32]Ref[T]
}

// NewNode32 allocates an empty Node32.
func NewNode32[T any](a Allocator) (*Node32[T], bool) {
	return allocZero[Node32[T]](a)
}

func (n *Node32[T]) Ref() Ref[T]   { return newRef[T](TypeNode32, n) }
func (n *Node32[T]) Type() Type    { return TypeNode32 }
func (n *Node32[T]) Capacity() int { return 32 }
func (n *Node32[T]) Full() bool    { return n.Width() >= n.Capacity() }

func (n *Node32[T]) FindChild(b byte) *Ref[T] {
	i := simdscan.FindEq(b, n.keys[:], n.Width())
	if i == simdscan.NotFound {
		return nil
	}
	return &n.children[i]
}

func (n *Node32[T]) AddChild(a Allocator, b byte, child Ref[T]) {
	debug.Assert(!n.Full(), "AddChild called on a full Node32")

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

func (n *Node32[T]) Each(yield func(b byte, child Ref[T]) bool) bool {
	for i := 0; i < n.Width(); i++ {
		if yield(n.keys[i], n.children[i]) {
			return true
		}
	}
	return false
}

// Grow converts n to Node38 or Node48, by the same hostname-alphabet
// test Node16 uses (spec §4.3): Node32 has no wider sorted-array
// layout to promote to.
func (n *Node32[T]) Grow(a Allocator, incoming byte) (Node[T], bool) {
	if allInHostnameAlphabet(n.keys[:n.Width()], incoming) {
		return n.growToNode38(a)
	}
	return n.growToNode48(a)
}

func (n *Node32[T]) growToNode38(a Allocator) (Node[T], bool) {
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

func (n *Node32[T]) growToNode48(a Allocator) (Node[T], bool) {
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

func (n *Node32[T]) Release(a Allocator) {
	a.Release(unsafe.Pointer(n), int(unsafe.Sizeof(*n)))
}

func (n *Node32[T]) Minimum() *Leaf[T] {
	if n.Width() == 0 {
		return nil
	}
	return n.children[0].Minimum()
}

func (n *Node32[T]) Maximum() *Leaf[T] {
	w := n.Width()
	if w == 0 {
		return nil
	}
	return n.children[w-1].Maximum()
}
