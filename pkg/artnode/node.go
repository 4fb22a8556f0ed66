package artnode

import (
	"github.com/k0ekk0ek/namedb/internal/debug"
	"github.com/k0ekk0ek/namedb/pkg/dnskey"
)

// Node is the common interface of the six inner node layouts. It does not
// describe Leaf: a Leaf is always terminal and is reached through
// Ref.AsLeaf instead.
type Node[T any] interface {
	AsRef[T]

	// Type reports which of the six layouts this node is.
	Type() Type

	// Width reports the number of occupied child slots.
	Width() int

	// Capacity reports how many child slots this layout provides.
	Capacity() int

	// Full reports whether Width has reached Capacity; AddChild must not
	// be called until the caller has grown the node.
	Full() bool

	// Prefix returns the node's compressed prefix, at most dnskey.MaxPrefix
	// bytes.
	Prefix() []byte

	// SetPrefix replaces the node's compressed prefix.
	SetPrefix(prefix []byte)

	// Minimum returns the leftmost leaf below this node.
	Minimum() *Leaf[T]

	// Maximum returns the rightmost leaf below this node.
	Maximum() *Leaf[T]

	// FindChild returns a pointer to the child slot for branch byte b —
	// the slot-reference a cursor records — or nil if no child occupies
	// that byte.
	FindChild(b byte) *Ref[T]

	// AddChild inserts child at branch byte b. The caller must have
	// already verified !Full(); AddChild asserts this rather than
	// growing itself, since growth replaces the node at a different
	// address and the caller (which holds the owning slot) must be the
	// one to retarget it.
	AddChild(a Allocator, b byte, child Ref[T])

	// Each calls yield for every occupied child slot in ascending
	// branch-byte order, stopping and returning true as soon as yield
	// does. It exists so callers that only need to enumerate children —
	// the Visit/VisitPrefix overlay — do not need a type switch over
	// every layout.
	Each(yield func(b byte, child Ref[T]) bool) bool

	// Grow allocates the next-larger layout, migrates every child and the
	// prefix into it, and returns it. incoming is the branch byte that
	// triggered growth: Node16/Node32 need it to decide between Node38
	// and Node48 (spec §4.3's hostname-alphabet test covers the incoming
	// byte as well as the existing keys). ok is false if allocation
	// failed, in which case the receiver is untouched.
	Grow(a Allocator, incoming byte) (Node[T], bool)

	// Release returns the node's own memory (not its children's) to a.
	Release(a Allocator)
}

// Base holds the state common to every inner node layout: the compressed
// prefix and the occupied-slot count.
type Base struct {
	numChildren int
	prefixLen   uint8
	prefix      [dnskey.MaxPrefix]byte
}

// Width reports the number of occupied child slots.
func (b *Base) Width() int { return b.numChildren }

// Prefix returns the node's compressed prefix.
func (b *Base) Prefix() []byte { return b.prefix[:b.prefixLen] }

// SetPrefix replaces the node's compressed prefix. p must be at most
// dnskey.MaxPrefix bytes.
func (b *Base) SetPrefix(p []byte) {
	debug.Assert(len(p) <= dnskey.MaxPrefix, "prefix of %d bytes exceeds MaxPrefix", len(p))
	b.prefixLen = uint8(copy(b.prefix[:], p))
}
