package arttree

import (
	"github.com/k0ekk0ek/namedb/internal/debug"
	"github.com/k0ekk0ek/namedb/pkg/artnode"
	"github.com/k0ekk0ek/namedb/pkg/opt"
)

// Tree is an Adaptive Radix Tree keyed by the byte strings dnskey.MakeKey
// produces. Unlike a map, it never copies or replaces values it already
// holds a pointer to; T is addressed in place for the lifetime of the
// allocator the tree was built from.
//
// A Tree's root is always an inner node — an empty Node4 at first, replaced
// by a larger layout as it fills — never a bare leaf and never an empty
// Ref. NewTree allocates it eagerly so every traversal can assume the root
// slot already holds an inner node.
type Tree[T any] struct {
	root artnode.Ref[T]
}

// NewTree allocates a Tree with an empty Node4 as its root. ok is false
// if a refused the allocation.
func NewTree[T any](a artnode.Allocator) (*Tree[T], bool) {
	root, ok := artnode.NewNode4[T](a)
	if !ok {
		return nil, false
	}
	return &Tree[T]{root: root.Ref()}, true
}

// Search looks up key and returns its leaf, wrapped in an Option: None if
// key is not present, rather than a nil *Leaf a caller could dereference
// by mistake.
func (t *Tree[T]) Search(key []byte) opt.Option[*artnode.Leaf[T]] {
	var cursor artnode.Cursor[T]
	if FindPath(&t.root, &cursor, key) != Ok {
		return opt.None[*artnode.Leaf[T]]()
	}
	_, slot := cursor.Entry(cursor.Height() - 1)
	return opt.Some(slot.AsLeaf())
}

// Insert ensures key is present, allocating whatever nodes and the leaf
// it takes to admit it, and returns its leaf together with a Result: Ok
// whether key was already present or newly inserted, NoMemory if the
// allocator refused a step partway through (the tree is left exactly as
// it was, with nothing leaked).
//
// Insert never replaces an existing leaf's value; the caller that finds
// an already-present key decides for itself whether to update Value.
func (t *Tree[T]) Insert(a artnode.Allocator, key []byte) (*artnode.Leaf[T], Result) {
	var cursor artnode.Cursor[T]
	res := MakePath(a, &t.root, &cursor, key)
	if res != Ok {
		return nil, res
	}
	_, slot := cursor.Entry(cursor.Height() - 1)
	return slot.AsLeaf(), Ok
}

// Minimum returns the leftmost leaf in the tree, or nil if the tree holds
// no leaves yet. The root slot itself is never empty once constructed by
// NewTree; Minimum asserts this and panics otherwise.
func (t *Tree[T]) Minimum() *artnode.Leaf[T] {
	debug.Assert(!t.root.Empty(), "tree root is empty")
	return t.root.Minimum()
}

// Maximum returns the rightmost leaf in the tree.
func (t *Tree[T]) Maximum() *artnode.Leaf[T] {
	debug.Assert(!t.root.Empty(), "tree root is empty")
	return t.root.Maximum()
}

// Visit walks every leaf in canonical key order, calling cb with each
// leaf's key and value. It stops early and returns true if cb returns
// true.
func (t *Tree[T]) Visit(cb func(key []byte, value *T) bool) bool {
	return visit(t.root, cb)
}

// VisitPrefix walks every leaf whose key starts with prefix, in canonical
// order. It stops early and returns true if cb returns true.
func (t *Tree[T]) VisitPrefix(prefix []byte, cb func(key []byte, value *T) bool) bool {
	return visitPrefix(t.root, prefix, cb)
}
