package artnode_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/k0ekk0ek/namedb/pkg/artnode"
)

func TestCursor(t *testing.T) {
	Convey("Given an empty Cursor", t, func() {
		var c artnode.Cursor[string]

		So(c.Empty(), ShouldBeTrue)
		So(c.Height(), ShouldEqual, 0)

		var root artnode.Ref[string]

		Convey("Pushing the root entry makes it non-empty", func() {
			c.Push(0, &root)

			So(c.Empty(), ShouldBeFalse)
			So(c.Height(), ShouldEqual, 1)

			depth, slot, ok := c.Top()
			So(ok, ShouldBeTrue)
			So(depth, ShouldEqual, 0)
			So(slot, ShouldEqual, &root)
		})

		Convey("Pushing several entries preserves order and depth", func() {
			var a, b artnode.Ref[string]
			c.Push(0, &root)
			c.Push(1, &a)
			c.Push(4, &b)

			So(c.Height(), ShouldEqual, 3)

			d0, s0 := c.Entry(0)
			So(d0, ShouldEqual, 0)
			So(s0, ShouldEqual, &root)

			d1, s1 := c.Entry(1)
			So(d1, ShouldEqual, 1)
			So(s1, ShouldEqual, &a)

			d2, s2 := c.Entry(2)
			So(d2, ShouldEqual, 4)
			So(s2, ShouldEqual, &b)

			Convey("Pop removes the topmost entry only", func() {
				c.Pop()
				So(c.Height(), ShouldEqual, 2)
				depth, slot, ok := c.Top()
				So(ok, ShouldBeTrue)
				So(depth, ShouldEqual, 1)
				So(slot, ShouldEqual, &a)
			})

			Convey("Truncate discards everything above the given height", func() {
				c.Truncate(1)
				So(c.Height(), ShouldEqual, 1)
				depth, slot, ok := c.Top()
				So(ok, ShouldBeTrue)
				So(depth, ShouldEqual, 0)
				So(slot, ShouldEqual, &root)
			})
		})

		Convey("Reset empties a populated cursor", func() {
			c.Push(0, &root)
			c.Reset()
			So(c.Empty(), ShouldBeTrue)
		})

		Convey("Top on an empty cursor reports ok=false", func() {
			_, _, ok := c.Top()
			So(ok, ShouldBeFalse)
			So(c.TopSlot(), ShouldBeNil)
		})
	})
}
