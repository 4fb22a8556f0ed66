package arena

import "unsafe"

// FaultArena wraps an Arena to deterministically fail one chosen
// allocation, so callers can exercise make_path's "no-leak on failure"
// contract (every n-th allocation, not just the first) without needing a
// real out-of-memory condition.
type FaultArena struct {
	*Arena

	calls  int
	FailAt int // 1-based ordinal of the Alloc call to fail; 0 disables.
}

// NewFaultArena returns a FaultArena backed by a fresh Arena.
func NewFaultArena() *FaultArena {
	return &FaultArena{Arena: new(Arena)}
}

var _ Allocator = (*FaultArena)(nil)

// Alloc behaves like Arena.Alloc, except it returns ok=false on the
// FailAt-th call (1-based) if FailAt is non-zero.
func (f *FaultArena) Alloc(size int) (unsafe.Pointer, bool) {
	f.calls++
	if f.FailAt > 0 && f.calls == f.FailAt {
		return nil, false
	}
	return f.Arena.Alloc(size)
}

// Calls reports how many times Alloc has been called.
func (f *FaultArena) Calls() int { return f.calls }
