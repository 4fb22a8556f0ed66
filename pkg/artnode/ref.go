package artnode

import (
	"unsafe"

	"github.com/k0ekk0ek/namedb/internal/debug"
	"github.com/k0ekk0ek/namedb/pkg/arena"
)

// AsRef is implemented by every node and leaf type: it returns the typed
// reference that addresses the receiver.
type AsRef[T any] interface {
	Ref() Ref[T]
}

// Ref is a tagged pointer to a node or a leaf: the low bits (below
// arena.Align) hold a Type, the high bits hold the node's address. A zero
// Ref is the empty reference — the convention an unoccupied child slot
// uses.
//
// This is the same discriminator spec.md's Design Notes discusses as
// "pointer tagging for leaf discrimination": child slots of inner nodes
// uniformly admit both a leaf and an inner-node alternative, and swapping
// one for the other is a single store — the publish step growth and
// make_path's splice rely on.
type Ref[T any] uintptr

const (
	typeMask = uintptr(arena.Align - 1)
	ptrMask  = ^typeMask
)

func newRef[T, N any](t Type, p *N) Ref[T] {
	addr := uintptr(unsafe.Pointer(p))
	debug.Assert(addr&typeMask == 0, "node at %#x is not aligned to %d bytes", addr, arena.Align)
	return Ref[T]((addr & ptrMask) | (uintptr(t) & typeMask))
}

// Ref implements AsRef for Ref itself, so a Ref can be passed anywhere an
// AsRef is expected.
func (r Ref[T]) Ref() Ref[T] { return r }

// Type reports which node layout r addresses.
func (r Ref[T]) Type() Type { return Type(uintptr(r) & typeMask) }

// Empty reports whether r addresses nothing.
func (r Ref[T]) Empty() bool { return r == 0 }

// IsLeaf reports whether r addresses a Leaf.
func (r Ref[T]) IsLeaf() bool { return r.Type() == TypeLeaf }

// IsInner reports whether r addresses one of the six inner node types.
func (r Ref[T]) IsInner() bool { return !r.Empty() && !r.IsLeaf() }

func (r Ref[T]) ptr() unsafe.Pointer {
	return unsafe.Pointer(uintptr(r) & ptrMask)
}

// AsLeaf returns the Leaf r addresses, or nil if r is empty or addresses
// an inner node.
func (r Ref[T]) AsLeaf() *Leaf[T] {
	if !r.IsLeaf() {
		return nil
	}
	return (*Leaf[T])(r.ptr())
}

// AsNode returns the inner node r addresses as a Node[T], or nil if r is
// empty or addresses a leaf.
func (r Ref[T]) AsNode() Node[T] {
	if !r.IsInner() {
		return nil
	}

	p := r.ptr()
	switch r.Type() {
	case TypeNode4:
		return (*Node4[T])(p)
	case TypeNode16:
		return (*Node16[T])(p)
	case TypeNode32:
		return (*Node32[T])(p)
	case TypeNode38:
		return (*Node38[T])(p)
	case TypeNode48:
		return (*Node48[T])(p)
	case TypeNode256:
		return (*Node256[T])(p)
	default:
		debug.Assert(false, "invalid inner node type %d", r.Type())
		return nil
	}
}

// Minimum returns the leftmost leaf reachable from r, or nil if r is
// empty. Used only by the range-scan/prefix-enumeration overlay; the core
// find_path/make_path contract never calls it.
func (r Ref[T]) Minimum() *Leaf[T] {
	if r.Empty() {
		return nil
	}
	if l := r.AsLeaf(); l != nil {
		return l
	}
	return r.AsNode().Minimum()
}

// Maximum returns the rightmost leaf reachable from r, or nil if r is
// empty.
func (r Ref[T]) Maximum() *Leaf[T] {
	if r.Empty() {
		return nil
	}
	if l := r.AsLeaf(); l != nil {
		return l
	}
	return r.AsNode().Maximum()
}
