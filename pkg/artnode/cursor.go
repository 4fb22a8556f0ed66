package artnode

import "github.com/k0ekk0ek/namedb/internal/debug"

// MaxCursorHeight bounds a Cursor to at most 255 entries — one per byte
// of the longest possible key.
const MaxCursorHeight = 255

// cursorEntry records one step of a traversal: the slot-reference that
// was followed, and the key depth at which it was entered.
type cursorEntry[T any] struct {
	depth int
	slot  *Ref[T]
}

// Cursor accumulates the slot-references traversed from a tree's root
// towards a key, entry by entry, so that find_path/make_path can
// recompute the consumed key prefix without re-reading the tree, and so
// that growth/splitting can retarget the exact slot a traversal passed
// through.
//
// An empty cursor (Height() == 0) is the "start from root" state, and it
// is the only state FindPath and MakePath accept on entry: both push the
// root entry themselves and walk from there. Neither resumes from a
// pre-populated cursor.
//
// On find_path's NotFound, the documented behavior differs by cause: a
// leaf-key or compressed-prefix mismatch pops the mismatching entry (the
// cursor is left at the deepest node that still matched), while a
// child-absent miss
// leaves the cursor exactly as it stood at the parent, without pushing
// an entry for the absent child. Both are deliberate and are preserved
// here rather than unified, per the source's documented (if asymmetric)
// behavior.
type Cursor[T any] struct {
	entries [MaxCursorHeight]cursorEntry[T]
	height  int
}

// Height reports the number of entries currently on the cursor.
func (c *Cursor[T]) Height() int { return c.height }

// Empty reports whether the cursor has no entries (the "start from
// root" state).
func (c *Cursor[T]) Empty() bool { return c.height == 0 }

// Reset empties the cursor.
func (c *Cursor[T]) Reset() { c.height = 0 }

// Push records a traversal step: slot was entered at depth. slot must
// point at the location holding the child reference (a node's child
// slot, or the tree's root field) so that a later growth/split can
// retarget it in place.
func (c *Cursor[T]) Push(depth int, slot *Ref[T]) {
	debug.Assert(c.height < MaxCursorHeight, "cursor overflow: key longer than %d bytes", MaxCursorHeight)
	c.entries[c.height] = cursorEntry[T]{depth: depth, slot: slot}
	c.height++
}

// Pop discards the topmost entry. The caller must ensure the cursor is
// non-empty.
func (c *Cursor[T]) Pop() {
	debug.Assert(c.height > 0, "Pop called on an empty cursor")
	c.height--
}

// Top returns the topmost entry's depth and slot-reference. ok is false
// if the cursor is empty.
func (c *Cursor[T]) Top() (depth int, slot *Ref[T], ok bool) {
	if c.height == 0 {
		return 0, nil, false
	}
	e := c.entries[c.height-1]
	return e.depth, e.slot, true
}

// TopSlot returns the topmost entry's slot-reference, or nil if the
// cursor is empty.
func (c *Cursor[T]) TopSlot() *Ref[T] {
	if c.height == 0 {
		return nil
	}
	return c.entries[c.height-1].slot
}

// TopDepth returns the topmost entry's depth. The caller must ensure
// the cursor is non-empty.
func (c *Cursor[T]) TopDepth() int {
	debug.Assert(c.height > 0, "TopDepth called on an empty cursor")
	return c.entries[c.height-1].depth
}

// Entry returns the depth and slot-reference recorded at position i
// (0 is the root entry). The caller must ensure 0 <= i < Height().
func (c *Cursor[T]) Entry(i int) (depth int, slot *Ref[T]) {
	debug.Assert(i >= 0 && i < c.height, "cursor entry index %d out of range [0, %d)", i, c.height)
	e := c.entries[i]
	return e.depth, e.slot
}

// Truncate reduces the cursor to height entries, discarding everything
// above. It is used to unwind a cursor back to a known-good depth after
// a failed divergence-handling step, without touching entries below.
func (c *Cursor[T]) Truncate(height int) {
	debug.Assert(height >= 0 && height <= c.height, "Truncate(%d) out of range [0, %d]", height, c.height)
	c.height = height
}
