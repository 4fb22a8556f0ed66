package artnode

import (
	"unsafe"

	"github.com/k0ekk0ek/namedb/internal/debug"
)

// node48KeySpace bounds Node48's byte->slot index array. xlat only ever
// produces bytes in 0x00..0xE5 (230 values), so that — not 256 — is the
// real key space every node layout must index.
const node48KeySpace = 230

// Node48 maps a branch byte to a 1-based index into children via a
// sparse 230-entry table; zero means unoccupied.
type Node48[T any] struct {
	Base
	keys     [node48KeySpace]byte
	children [48]Ref[T]
}

// NewNode48 allocates an empty Node48.
func NewNode48[T any](a Allocator) (*Node48[T], bool) {
	return allocZero[Node48[T]](a)
}

func (n *Node48[T]) Ref() Ref[T]   { return newRef[T](TypeNode48, n) }
func (n *Node48[T]) Type() Type    { return TypeNode48 }
func (n *Node48[T]) Capacity() int { return 48 }
func (n *Node48[T]) Full() bool    { return n.Width() >= n.Capacity() }

func (n *Node48[T]) FindChild(b byte) *Ref[T] {
	idx := n.keys[b]
	if idx == 0 {
		return nil
	}
	return &n.children[idx-1]
}

func (n *Node48[T]) AddChild(a Allocator, b byte, child Ref[T]) {
	debug.Assert(!n.Full(), "AddChild called on a full Node48")
	n.insertRaw(b, child)
}

// insertRaw appends child to the next free slot and records it under
// b, without a Full check, for use both by AddChild and by the
// Node16/Node32/Node38 growth migrations that populate a freshly
// allocated Node48.
func (n *Node48[T]) insertRaw(b byte, child Ref[T]) {
	slot := n.numChildren
	n.children[slot] = child
	n.keys[b] = byte(slot + 1)
	n.numChildren++
}

func (n *Node48[T]) Each(yield func(b byte, child Ref[T]) bool) bool {
	for b := 0; b < node48KeySpace; b++ {
		idx := n.keys[b]
		if idx == 0 {
			continue
		}
		if yield(byte(b), n.children[idx-1]) {
			return true
		}
	}
	return false
}

// Grow converts n to a Node256: Node48 only grows when full, regardless
// of incoming, since Node256 admits every byte directly.
func (n *Node48[T]) Grow(a Allocator, incoming byte) (Node[T], bool) {
	grown, ok := NewNode256[T](a)
	if !ok {
		return nil, false
	}

	grown.SetPrefix(n.Prefix())
	for b := 0; b < node48KeySpace; b++ {
		idx := n.keys[b]
		if idx == 0 {
			continue
		}
		grown.insertRaw(byte(b), n.children[idx-1])
	}

	return grown, true
}

func (n *Node48[T]) Release(a Allocator) {
	a.Release(unsafe.Pointer(n), int(unsafe.Sizeof(*n)))
}

func (n *Node48[T]) Minimum() *Leaf[T] {
	for b := 0; b < node48KeySpace; b++ {
		if idx := n.keys[b]; idx != 0 {
			return n.children[idx-1].Minimum()
		}
	}
	return nil
}

func (n *Node48[T]) Maximum() *Leaf[T] {
	for b := node48KeySpace - 1; b >= 0; b-- {
		if idx := n.keys[b]; idx != 0 {
			return n.children[idx-1].Maximum()
		}
	}
	return nil
}
