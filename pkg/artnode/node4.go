package artnode

import (
	"unsafe"

	"github.com/k0ekk0ek/namedb/internal/debug"
	"github.com/k0ekk0ek/namedb/pkg/simdscan"
)

// Node4 is the smallest inner node: up to 4 children in sorted parallel
// arrays, found by linear scan.
type Node4[T any] struct {
	Base
	keys     [4]byte
	children [4]Ref[T]
}

// NewNode4 allocates an empty Node4.
func NewNode4[T any](a Allocator) (*Node4[T], bool) {
	return allocZero[Node4[T]](a)
}

func (n *Node4[T]) Ref() Ref[T]   { return newRef[T](TypeNode4, n) }
func (n *Node4[T]) Type() Type    { return TypeNode4 }
func (n *Node4[T]) Capacity() int { return 4 }
func (n *Node4[T]) Full() bool    { return n.Width() >= n.Capacity() }

func (n *Node4[T]) FindChild(b byte) *Ref[T] {
	i := simdscan.FindEq(b, n.keys[:], n.Width())
	if i == simdscan.NotFound {
		return nil
	}
	return &n.children[i]
}

// AddChild inserts child at branch byte b, shifting keys and children up
// to keep keys ascending. The caller must ensure !Full() first.
func (n *Node4[T]) AddChild(a Allocator, b byte, child Ref[T]) {
	debug.Assert(!n.Full(), "AddChild called on a full Node4")

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

func (n *Node4[T]) Each(yield func(b byte, child Ref[T]) bool) bool {
	for i := 0; i < n.Width(); i++ {
		if yield(n.keys[i], n.children[i]) {
			return true
		}
	}
	return false
}

// Grow converts n to a Node16, copying keys and children verbatim.
func (n *Node4[T]) Grow(a Allocator, incoming byte) (Node[T], bool) {
	grown, ok := NewNode16[T](a)
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

func (n *Node4[T]) Release(a Allocator) {
	a.Release(unsafe.Pointer(n), int(unsafe.Sizeof(*n)))
}

func (n *Node4[T]) Minimum() *Leaf[T] {
	if n.Width() == 0 {
		return nil
	}
	return n.children[0].Minimum()
}

func (n *Node4[T]) Maximum() *Leaf[T] {
	w := n.Width()
	if w == 0 {
		return nil
	}
	return n.children[w-1].Maximum()
}
