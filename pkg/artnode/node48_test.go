package artnode_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/k0ekk0ek/namedb/pkg/arena"
	"github.com/k0ekk0ek/namedb/pkg/artnode"
)

func TestNode48(t *testing.T) {
	Convey("Given an empty Node48", t, func() {
		a := new(arena.Arena)
		n, ok := artnode.NewNode48[string](a)
		So(ok, ShouldBeTrue)

		So(n.Type(), ShouldEqual, artnode.TypeNode48)
		So(n.Capacity(), ShouldEqual, 48)

		Convey("AddChild supports a mix of alphabet and non-alphabet branch bytes", func() {
			bytes := []byte{0x00, 0x31, 0x62, 0x80, 0xE5}
			leaves := make([]*artnode.Leaf[string], len(bytes))
			for i, b := range bytes {
				l := mustLeaf(t, a, b)
				leaves[i] = l
				n.AddChild(a, b, l.Ref())
			}

			So(n.Width(), ShouldEqual, len(bytes))

			for i, b := range bytes {
				ref := n.FindChild(b)
				So(ref, ShouldNotBeNil)
				So(ref.AsLeaf(), ShouldEqual, leaves[i])
			}

			Convey("Minimum and Maximum scan the key space in byte order", func() {
				So(n.Minimum(), ShouldEqual, leaves[0])
				So(n.Maximum(), ShouldEqual, leaves[len(leaves)-1])
			})
		})
	})
}
