package artnode_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/k0ekk0ek/namedb/pkg/arena"
	"github.com/k0ekk0ek/namedb/pkg/artnode"
	"github.com/k0ekk0ek/namedb/pkg/dnskey"
)

func TestNode38(t *testing.T) {
	Convey("Given an empty Node38", t, func() {
		a := new(arena.Arena)
		n, ok := artnode.NewNode38[string](a)
		So(ok, ShouldBeTrue)

		So(n.Type(), ShouldEqual, artnode.TypeNode38)
		So(n.Capacity(), ShouldEqual, 38)
		So(n.Minimum(), ShouldBeNil)
		So(n.Maximum(), ShouldBeNil)

		Convey("AddChild places children at their alphabet index, independent of insertion order", func() {
			hi := dnskey.Node38Unxlat(37)
			lo := dnskey.Node38Unxlat(0)
			mid := dnskey.Node38Unxlat(18)

			hiLeaf := mustLeaf(t, a, hi)
			loLeaf := mustLeaf(t, a, lo)
			midLeaf := mustLeaf(t, a, mid)

			n.AddChild(a, hi, hiLeaf.Ref())
			n.AddChild(a, lo, loLeaf.Ref())
			n.AddChild(a, mid, midLeaf.Ref())

			So(n.Width(), ShouldEqual, 3)

			So(n.FindChild(hi).AsLeaf(), ShouldEqual, hiLeaf)
			So(n.FindChild(lo).AsLeaf(), ShouldEqual, loLeaf)
			So(n.FindChild(mid).AsLeaf(), ShouldEqual, midLeaf)

			Convey("Minimum and Maximum reflect alphabet order, not insertion order", func() {
				So(n.Minimum(), ShouldEqual, loLeaf)
				So(n.Maximum(), ShouldEqual, hiLeaf)
			})
		})

		Convey("FindChild on an unoccupied alphabet byte is nil", func() {
			So(n.FindChild(dnskey.Node38Unxlat(5)), ShouldBeNil)
		})
	})
}
