// Package arena provides bump allocation for the node and leaf values of
// the radix tree: many small, same-lifetime objects allocated from large
// pre-allocated blocks and freed in bulk, rather than one at a time by the
// garbage collector.
//
// A zero Arena is empty and ready to use. Memory returned by Alloc remains
// valid until Reset is called; Reset discards everything except the most
// recently grown block, which is cleared and reused, so a long-running
// arena eventually settles on the one block size it actually needs.
//
// Arena-allocated memory must not contain pointers to memory outside the
// arena: nodes and leaves store only arena-relative references (see
// artnode.Ref), never live Go pointers to each other's homes, so that
// Reset can discard a whole generation of tree nodes without the GC having
// to trace through them individually.
package arena

import "unsafe"

// Allocator is the fallible memory source every tree-building operation
// takes. Alloc returns ok=false instead of panicking or growing without
// bound when the allocator has been configured to refuse an allocation;
// this is what makes make_path's NoMemory contract observable and
// testable, rather than just a documented-but-unreachable error kind.
//
// Arena's own Alloc never refuses; [FaultArena] wraps an Arena to inject
// failures at a chosen call for exercising that contract.
type Allocator interface {
	// Alloc returns size bytes of zeroed, pointer-aligned memory, or
	// ok=false if the allocator refuses the request.
	Alloc(size int) (p unsafe.Pointer, ok bool)

	// Release returns a previously allocated block. Arena's implementation
	// is a no-op; memory is only ever reclaimed in bulk, by Reset.
	Release(p unsafe.Pointer, size int)
}

// Align is the alignment of every allocation handed out by an Arena.
const Align = int(unsafe.Sizeof(uintptr(0)))

// Arena is a bump allocator. All memory it hands out is freed together,
// by Reset; there is no way to free a single allocation early. Arena's
// Alloc never reports failure.
type Arena struct {
	block []byte
	next  int

	// Earlier blocks, kept only so the objects allocated from them stay
	// reachable (and thus alive) until the next Reset.
	blocks [][]byte
}

var _ Allocator = (*Arena)(nil)

const minBlockSize = 4096

func alignUp(size int) int {
	return (size + Align - 1) &^ (Align - 1)
}

// Alloc allocates size bytes of zeroed memory, aligned to Align. Always
// succeeds.
//
// Do not call this directly for typed allocations; use [New] instead.
func (a *Arena) Alloc(size int) (unsafe.Pointer, bool) {
	size = alignUp(size)

	if a.next+size > len(a.block) {
		a.grow(size)
	}

	p := unsafe.Pointer(&a.block[a.next])
	a.next += size
	return p, true
}

// Release is a no-op: Arena memory is only reclaimed in bulk, via Reset.
func (a *Arena) Release(unsafe.Pointer, int) {}

// Reserve ensures at least size bytes can be allocated without growing.
func (a *Arena) Reserve(size int) {
	if a.next+size > len(a.block) {
		a.grow(size)
	}
}

func (a *Arena) grow(size int) {
	n := minBlockSize
	for n < size {
		n *= 2
	}
	if cur := len(a.block) * 2; cur > n {
		n = cur
	}

	if a.block != nil {
		a.blocks = append(a.blocks, a.block)
	}
	a.block = make([]byte, n)
	a.next = 0
}

// Reset discards every allocation made since the arena was created (or
// last reset). Pointers into arena memory obtained before this call must
// never be dereferenced afterward.
//
// The most recently grown block is kept, cleared, and reused; smaller,
// earlier blocks are dropped, so a long-lived arena converges on
// allocating exactly the block size its workload needs.
func (a *Arena) Reset() {
	if a.block == nil {
		return
	}

	clear(a.block)
	a.next = 0
	a.blocks = nil
}

// Cap reports the size of the arena's current block.
func (a *Arena) Cap() int { return len(a.block) }

// Empty reports whether the arena currently holds no live allocations.
func (a *Arena) Empty() bool { return a.next == 0 }

// New allocates a zero-initialized value of type T from a, then copies
// value into it, returning a pointer into arena memory. ok is false if
// the allocator refused the request, in which case the returned pointer
// is nil.
func New[T any](a Allocator, value T) (*T, bool) {
	size := int(unsafe.Sizeof(value))

	raw, ok := a.Alloc(size)
	if !ok {
		return nil, false
	}

	p := (*T)(raw)
	*p = value
	return p, true
}

// Free returns a value of type T previously allocated with [New] back to
// a. With an [Arena], this is a no-op; it exists so callers do not need to
// special-case cleanup for values that happen to live on an arena.
func Free[T any](a Allocator, p *T) {
	var zero T
	a.Release(unsafe.Pointer(p), int(unsafe.Sizeof(zero)))
}
