package arttree

import (
	"bytes"

	"github.com/k0ekk0ek/namedb/pkg/artnode"
)

// visit recursively enumerates every leaf reachable from ref, in
// ascending key order, calling cb with each leaf's key and value. It
// returns true as soon as cb does, stopping the walk early.
func visit[T any](ref artnode.Ref[T], cb func(key []byte, value *T) bool) bool {
	if ref.Empty() {
		return false
	}

	if leaf := ref.AsLeaf(); leaf != nil {
		return cb(leaf.Key(), &leaf.Value)
	}

	return ref.AsNode().Each(func(_ byte, child artnode.Ref[T]) bool {
		return visit(child, cb)
	})
}

// visitPrefix walks only the subtree whose keys start with prefix,
// descending through compressed prefixes and matching branch bytes
// until prefix is fully consumed, then delegates to visit for the rest.
func visitPrefix[T any](ref artnode.Ref[T], prefix []byte, cb func(key []byte, value *T) bool) bool {
	depth := 0

	for !ref.Empty() {
		if leaf := ref.AsLeaf(); leaf != nil {
			key := leaf.Key()
			if len(key) >= len(prefix) && bytes.Equal(key[:len(prefix)], prefix) {
				return cb(key, &leaf.Value)
			}
			return false
		}

		node := ref.AsNode()

		if depth == len(prefix) {
			return visit(ref, cb)
		}

		if p := node.Prefix(); len(p) > 0 {
			remaining := prefix[depth:]
			n := commonPrefixLen(p, remaining)
			if n < len(p) {
				// node's prefix diverges from what's left of prefix before
				// prefix is exhausted, or before the node's own prefix is:
				// either way, nothing under ref can match unless prefix was
				// itself fully consumed by the shared run.
				if depth+n != len(prefix) {
					return false
				}
				return visit(ref, cb)
			}
			depth += len(p)
			if depth >= len(prefix) {
				return visit(ref, cb)
			}
		}

		child := node.FindChild(prefix[depth])
		if child == nil {
			return false
		}
		ref = *child
		depth++
	}

	return false
}
