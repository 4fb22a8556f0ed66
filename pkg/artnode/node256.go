package artnode

import (
	"unsafe"

	"github.com/k0ekk0ek/namedb/internal/debug"
)

// Node256 is the terminal layout: every possible branch byte has its own
// direct slot, so lookup never scans. Its capacity is 230, not 256 —
// xlat never produces a byte above 0xE5, so the 230-entry array is the
// node's real and only key space (named Node256 to match the rest of
// the family's node-count naming, not its slot count).
type Node256[T any] struct {
	Base
	children [node48KeySpace]Ref[T]
}

// NewNode256 allocates an empty Node256.
func NewNode256[T any](a Allocator) (*Node256[T], bool) {
	return allocZero[Node256[T]](a)
}

func (n *Node256[T]) Ref() Ref[T]   { return newRef[T](TypeNode256, n) }
func (n *Node256[T]) Type() Type    { return TypeNode256 }
func (n *Node256[T]) Capacity() int { return node48KeySpace }
func (n *Node256[T]) Full() bool    { return n.Width() >= n.Capacity() }

func (n *Node256[T]) FindChild(b byte) *Ref[T] {
	if n.children[b].Empty() {
		return nil
	}
	return &n.children[b]
}

func (n *Node256[T]) AddChild(a Allocator, b byte, child Ref[T]) {
	debug.Assert(!n.Full(), "AddChild called on a full Node256")
	n.insertRaw(b, child)
}

// insertRaw places child directly at b, for use both by AddChild and by
// the Node48 growth migration that populates a freshly allocated
// Node256.
func (n *Node256[T]) insertRaw(b byte, child Ref[T]) {
	n.children[b] = child
	n.numChildren++
}

func (n *Node256[T]) Each(yield func(b byte, child Ref[T]) bool) bool {
	for b := 0; b < node48KeySpace; b++ {
		if n.children[b].Empty() {
			continue
		}
		if yield(byte(b), n.children[b]) {
			return true
		}
	}
	return false
}

// Grow must never be called: Node256 is the terminal layout and is
// never full in the sense that matters, since every branch byte it will
// ever see already has a direct slot.
func (n *Node256[T]) Grow(a Allocator, incoming byte) (Node[T], bool) {
	debug.Assert(false, "Node256 cannot grow")
	return nil, false
}

func (n *Node256[T]) Release(a Allocator) {
	a.Release(unsafe.Pointer(n), int(unsafe.Sizeof(*n)))
}

func (n *Node256[T]) Minimum() *Leaf[T] {
	for b := 0; b < node48KeySpace; b++ {
		if !n.children[b].Empty() {
			return n.children[b].Minimum()
		}
	}
	return nil
}

func (n *Node256[T]) Maximum() *Leaf[T] {
	for b := node48KeySpace - 1; b >= 0; b-- {
		if !n.children[b].Empty() {
			return n.children[b].Maximum()
		}
	}
	return nil
}
