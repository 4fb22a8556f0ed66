package artnode

import (
	"unsafe"

	"github.com/k0ekk0ek/namedb/internal/debug"
	"github.com/k0ekk0ek/namedb/pkg/dnskey"
)

// Node38 stores its children directly indexed by the dense hostname-
// alphabet position of their branch byte (dnskey.Node38Xlat), rather
// than in a sorted array: every branch byte a Node38 ever holds lies in
// that 38-value alphabet, so the index doubles as the sort order.
type Node38[T any] struct {
	Base
	children [38]Ref[T]
}

// NewNode38 allocates an empty Node38.
func NewNode38[T any](a Allocator) (*Node38[T], bool) {
	return allocZero[Node38[T]](a)
}

func (n *Node38[T]) Ref() Ref[T]   { return newRef[T](TypeNode38, n) }
func (n *Node38[T]) Type() Type    { return TypeNode38 }
func (n *Node38[T]) Capacity() int { return 38 }
func (n *Node38[T]) Full() bool    { return n.Width() >= n.Capacity() }

func (n *Node38[T]) FindChild(b byte) *Ref[T] {
	idx := dnskey.Node38Xlat(b)
	if idx == dnskey.Node38Sentinel || n.children[idx].Empty() {
		return nil
	}
	return &n.children[idx]
}

// AddChild inserts child at branch byte b. b must lie in the hostname
// alphabet — the growth rule that creates and grows a Node38 guarantees
// every byte it is ever asked to hold does.
func (n *Node38[T]) AddChild(a Allocator, b byte, child Ref[T]) {
	debug.Assert(!n.Full(), "AddChild called on a full Node38")
	n.insertDirect(b, child)
}

// insertDirect places child at b's alphabet index without a Full check,
// for use both by AddChild and by the Node16/Node32 growth migrations
// that populate a freshly allocated Node38.
func (n *Node38[T]) insertDirect(b byte, child Ref[T]) {
	idx := dnskey.Node38Xlat(b)
	debug.Assert(idx != dnskey.Node38Sentinel, "branch byte %#x outside hostname alphabet", b)
	n.children[idx] = child
	n.numChildren++
}

func (n *Node38[T]) Each(yield func(b byte, child Ref[T]) bool) bool {
	for i, child := range n.children {
		if child.Empty() {
			continue
		}
		if yield(dnskey.Node38Unxlat(byte(i)), child) {
			return true
		}
	}
	return false
}

// Grow converts n to a Node48: Node38 only grows when an incoming byte
// falls outside the hostname alphabet, since within the alphabet it has
// exactly as much room as Node48 needs for the same keys (spec §4.3).
func (n *Node38[T]) Grow(a Allocator, incoming byte) (Node[T], bool) {
	grown, ok := NewNode48[T](a)
	if !ok {
		return nil, false
	}

	grown.SetPrefix(n.Prefix())
	for i, child := range n.children {
		if child.Empty() {
			continue
		}
		grown.insertRaw(dnskey.Node38Unxlat(byte(i)), child)
	}

	return grown, true
}

func (n *Node38[T]) Release(a Allocator) {
	a.Release(unsafe.Pointer(n), int(unsafe.Sizeof(*n)))
}

func (n *Node38[T]) Minimum() *Leaf[T] {
	for _, child := range n.children {
		if !child.Empty() {
			return child.Minimum()
		}
	}
	return nil
}

func (n *Node38[T]) Maximum() *Leaf[T] {
	for i := len(n.children) - 1; i >= 0; i-- {
		if !n.children[i].Empty() {
			return n.children[i].Maximum()
		}
	}
	return nil
}
