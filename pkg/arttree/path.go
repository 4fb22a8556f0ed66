package arttree

import (
	"github.com/k0ekk0ek/namedb/internal/debug"
	"github.com/k0ekk0ek/namedb/pkg/artnode"
	"github.com/k0ekk0ek/namedb/pkg/dnskey"
)

// commonPrefixLen returns how many leading bytes a and b share.
func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// FindPath walks from root towards key, recording every slot it passes
// through on cursor, and reports whether key is present.
//
// cursor must be empty on entry; FindPath always starts from root and
// populates the cursor as it goes, rather than resuming a prior
// traversal. On Ok, the cursor's topmost entry addresses key's leaf. On
// NotFound, the cursor is left per the asymmetric contract documented on
// Cursor: a leaf-key or compressed-prefix mismatch pops the mismatching
// entry, leaving the cursor at the deepest node that still matched, while a
// child-absent miss leaves the cursor at the parent, without pushing an
// entry for the byte that had no child.
func FindPath[T any](root *artnode.Ref[T], cursor *artnode.Cursor[T], key []byte) Result {
	debug.Assert(root != nil, "FindPath called with a nil root")
	debug.Assert(cursor.Empty(), "FindPath called with a non-empty cursor")
	debug.Assert(len(key) > 0, "FindPath called with an empty key")

	cursor.Push(0, root)
	depth := 0

	for {
		slot := cursor.TopSlot()
		ref := *slot
		debug.Assert(!ref.Empty(), "find_path stepped onto an empty slot")

		if leaf := ref.AsLeaf(); leaf != nil {
			if leaf.MatchesKey(key) {
				return Ok
			}
			cursor.Pop()
			return NotFound
		}

		node := ref.AsNode()
		prefix := node.Prefix()
		if len(prefix) > 0 {
			if depth+len(prefix) > len(key) {
				cursor.Pop()
				return NotFound
			}
			if commonPrefixLen(prefix, key[depth:]) != len(prefix) {
				cursor.Pop()
				return NotFound
			}
			depth += len(prefix)
		}

		if depth >= len(key) {
			return NotFound
		}

		child := node.FindChild(key[depth])
		if child == nil {
			return NotFound
		}

		cursor.Push(depth, child)
		depth++
	}
}

// MakePath walks from root towards key, growing and splitting whatever
// nodes stand in the way, until key's leaf exists and the cursor
// addresses it.
//
// cursor must be empty on entry. On NoMemory, every allocation MakePath
// performed earlier in the same call has already been released, and the
// tree is exactly as it was before the call — nothing is left reachable
// or leaked.
func MakePath[T any](a artnode.Allocator, root *artnode.Ref[T], cursor *artnode.Cursor[T], key []byte) Result {
	debug.Assert(root != nil, "MakePath called with a nil root")
	debug.Assert(cursor.Empty(), "MakePath called with a non-empty cursor")
	debug.Assert(len(key) > 0, "MakePath called with an empty key")

	cursor.Push(0, root)
	depth := 0

	for {
		slot := cursor.TopSlot()
		ref := *slot
		debug.Assert(!ref.Empty(), "make_path stepped onto an empty slot")

		if leaf := ref.AsLeaf(); leaf != nil {
			if leaf.MatchesKey(key) {
				return Ok
			}
			return splitLeaf(a, cursor, slot, leaf, key, depth)
		}

		node := ref.AsNode()
		prefix := node.Prefix()
		if len(prefix) > 0 {
			cnt := commonPrefixLen(prefix, key[depth:])
			if cnt < len(prefix) {
				newLeaf, ok := artnode.NewLeaf[T](a, key)
				if !ok {
					return NoMemory
				}
				if !splitPrefix(a, slot, node, key, depth, cnt) {
					newLeaf.Release(a)
					return NoMemory
				}
				b := key[depth+cnt]
				split := slot.AsNode()
				split.AddChild(a, b, newLeaf.Ref())
				cursor.Push(depth+cnt, split.FindChild(b))
				return Ok
			}
			depth += len(prefix)
		}

		debug.Assert(depth < len(key), "make_path ran past the end of key without reaching a leaf")

		b := key[depth]
		if child := node.FindChild(b); child != nil {
			cursor.Push(depth, child)
			depth++
			continue
		}

		newLeaf, ok := artnode.NewLeaf[T](a, key)
		if !ok {
			return NoMemory
		}

		if node.Full() || (node.Type() == artnode.TypeNode38 && !dnskey.InHostnameAlphabet(b)) {
			grown, ok := node.Grow(a, b)
			if !ok {
				newLeaf.Release(a)
				return NoMemory
			}
			grown.AddChild(a, b, newLeaf.Ref())
			*slot = grown.Ref()
			node.Release(a)
			cursor.Push(depth, grown.FindChild(b))
		} else {
			node.AddChild(a, b, newLeaf.Ref())
			cursor.Push(depth, node.FindChild(b))
		}
		return Ok
	}
}

// splitPrefix handles make_path case (c): key diverges from node's
// compressed prefix after cnt shared bytes. It installs a new Node4
// holding just the shared cnt bytes as its prefix, with node — now
// shortened by cnt+1 bytes and relinked at the byte it used to diverge
// on — as its only child. It does not insert key's leaf itself: the
// caller, which allocated that leaf before calling, adds it to the new
// node at key's own divergence byte.
func splitPrefix[T any](a artnode.Allocator, slot *artnode.Ref[T], node artnode.Node[T], key []byte, depth, cnt int) bool {
	newNode, ok := artnode.NewNode4[T](a)
	if !ok {
		return false
	}

	oldPrefix := append([]byte(nil), node.Prefix()...)
	newNode.SetPrefix(oldPrefix[:cnt])

	branchByte := oldPrefix[cnt]
	node.SetPrefix(oldPrefix[cnt+1:])
	newNode.AddChild(a, branchByte, node.Ref())

	*slot = newNode.Ref()
	return true
}

// splitLeaf handles make_path case (b): key and the leaf occupying slot
// share depth bytes already consumed, then diverge somewhere within
// their remaining bytes. It builds a chain of Node4s holding the
// intervening shared bytes (at most dnskey.MaxPrefix per node) and
// splices it in only once every allocation the chain needs has
// succeeded, so a failure partway through leaves the original leaf
// untouched and leaks nothing.
func splitLeaf[T any](a artnode.Allocator, cursor *artnode.Cursor[T], slot *artnode.Ref[T], existing *artnode.Leaf[T], key []byte, depth int) Result {
	existingKey := existing.Key()

	cnt := depth + commonPrefixLen(key[depth:], existingKey[depth:])
	debug.Assert(cnt < len(key) && cnt < len(existingKey), "splitLeaf called with key equal to the existing leaf's key")

	newLeaf, ok := artnode.NewLeaf[T](a, key)
	if !ok {
		return NoMemory
	}

	type chainNode struct {
		node       artnode.Node[T]
		branchPos  int
		branchByte byte
	}
	var chain []chainNode
	release := func() {
		for _, c := range chain {
			c.node.Release(a)
		}
		newLeaf.Release(a)
	}

	curPos := depth
	remaining := cnt - depth + 1 // bytes still to be covered, including the true divergence byte
	var headRef artnode.Ref[T]

	for {
		prefixLen := remaining - 1
		if prefixLen > dnskey.MaxPrefix {
			prefixLen = dnskey.MaxPrefix
		}

		node, ok := artnode.NewNode4[T](a)
		if !ok {
			release()
			return NoMemory
		}
		node.SetPrefix(key[curPos : curPos+prefixLen])

		if len(chain) == 0 {
			headRef = node.Ref()
		} else {
			prev := &chain[len(chain)-1]
			prev.node.AddChild(a, prev.branchByte, node.Ref())
		}

		branchPos := curPos + prefixLen
		remaining -= prefixLen + 1

		if remaining == 0 {
			node.AddChild(a, key[branchPos], newLeaf.Ref())
			node.AddChild(a, existingKey[branchPos], existing.Ref())
			chain = append(chain, chainNode{node: node, branchPos: branchPos, branchByte: key[branchPos]})
			break
		}

		chain = append(chain, chainNode{node: node, branchPos: branchPos, branchByte: key[branchPos]})
		curPos = branchPos + 1
	}

	*slot = headRef
	for _, c := range chain {
		cursor.Push(c.branchPos, c.node.FindChild(c.branchByte))
	}
	return Ok
}
