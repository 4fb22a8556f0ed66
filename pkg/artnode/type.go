// Package artnode implements the six adaptive node layouts of the radix
// tree — Node4, Node16, Node32, Node38, Node48, Node256 — the leaf type,
// the tagged node reference, and the path cursor that records a
// traversal through them.
package artnode

// Type identifies which concrete node layout a Ref points to.
type Type int

const (
	// TypeUnknown marks an empty reference; it is distinct from TypeLeaf
	// so that Ref(0).Type() never collides with a real node type.
	TypeUnknown Type = iota
	TypeLeaf
	TypeNode4
	TypeNode16
	TypeNode32
	TypeNode38
	TypeNode48
	TypeNode256
)

func (t Type) String() string {
	switch t {
	case TypeLeaf:
		return "Leaf"
	case TypeNode4:
		return "Node4"
	case TypeNode16:
		return "Node16"
	case TypeNode32:
		return "Node32"
	case TypeNode38:
		return "Node38"
	case TypeNode48:
		return "Node48"
	case TypeNode256:
		return "Node256"
	default:
		return "Unknown"
	}
}
