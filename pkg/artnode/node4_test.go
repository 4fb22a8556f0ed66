package artnode_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/k0ekk0ek/namedb/pkg/arena"
	"github.com/k0ekk0ek/namedb/pkg/artnode"
)

func TestNode4(t *testing.T) {
	Convey("Given an empty Node4", t, func() {
		a := new(arena.Arena)
		n, ok := artnode.NewNode4[string](a)
		So(ok, ShouldBeTrue)

		So(n.Type(), ShouldEqual, artnode.TypeNode4)
		So(n.Capacity(), ShouldEqual, 4)
		So(n.Width(), ShouldEqual, 0)
		So(n.Full(), ShouldBeFalse)
		So(n.FindChild(0x41), ShouldBeNil)

		Convey("AddChild keeps keys in ascending order regardless of insertion order", func() {
			leaves := make([]*artnode.Leaf[string], 4)
			bytes := []byte{0x30, 0x10, 0x40, 0x20}
			for i, b := range bytes {
				l, ok := artnode.NewLeaf[string](a, []byte{b})
				So(ok, ShouldBeTrue)
				leaves[i] = l
				n.AddChild(a, b, l.Ref())
			}

			So(n.Width(), ShouldEqual, 4)
			So(n.Full(), ShouldBeTrue)

			Convey("FindChild locates every inserted branch byte", func() {
				for i, b := range bytes {
					ref := n.FindChild(b)
					So(ref, ShouldNotBeNil)
					So(ref.AsLeaf(), ShouldEqual, leaves[i])
				}
			})

			Convey("FindChild reports nothing for an unoccupied byte", func() {
				So(n.FindChild(0xFF), ShouldBeNil)
			})

			Convey("Grow migrates every child, verbatim, into a Node16", func() {
				grown, ok := n.Grow(a, 0x50)
				So(ok, ShouldBeTrue)
				So(grown.Type(), ShouldEqual, artnode.TypeNode16)
				So(grown.Width(), ShouldEqual, 4)

				for i, b := range bytes {
					ref := grown.FindChild(b)
					So(ref, ShouldNotBeNil)
					So(ref.AsLeaf(), ShouldEqual, leaves[i])
				}
			})
		})

		Convey("SetPrefix and Prefix round-trip", func() {
			n.SetPrefix([]byte{0x01, 0x02, 0x03})
			So(n.Prefix(), ShouldResemble, []byte{0x01, 0x02, 0x03})
		})

		Convey("Minimum and Maximum are nil on an empty node", func() {
			So(n.Minimum(), ShouldBeNil)
			So(n.Maximum(), ShouldBeNil)
		})

		Convey("Minimum and Maximum reflect the lowest and highest branch byte", func() {
			lo, _ := artnode.NewLeaf[string](a, []byte{0x10})
			mid, _ := artnode.NewLeaf[string](a, []byte{0x20})
			hi, _ := artnode.NewLeaf[string](a, []byte{0x30})
			n.AddChild(a, 0x20, mid.Ref())
			n.AddChild(a, 0x10, lo.Ref())
			n.AddChild(a, 0x30, hi.Ref())

			So(n.Minimum(), ShouldEqual, lo)
			So(n.Maximum(), ShouldEqual, hi)
		})
	})
}
