package arena_test

import (
	"testing"
	"unsafe"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/k0ekk0ek/namedb/pkg/arena"
)

type testStruct struct {
	X int
	Y float64
}

func TestArena(t *testing.T) {
	Convey("Given an Arena", t, func() {
		a := new(arena.Arena)

		So(a.Empty(), ShouldBeTrue)

		Convey("When a value is allocated", func() {
			p, ok := arena.New(a, testStruct{X: 42, Y: 3.14})
			So(ok, ShouldBeTrue)
			So(p, ShouldNotBeNil)

			Convey("Then the value should be set", func() {
				So(p.X, ShouldEqual, 42)
				So(p.Y, ShouldEqual, 3.14)
			})

			Convey("Then the pointer should be aligned", func() {
				So(uintptr(unsafe.Pointer(p))%uintptr(arena.Align), ShouldEqual, uintptr(0))
			})

			Convey("Then the arena should no longer be empty", func() {
				So(a.Empty(), ShouldBeFalse)
			})
		})

		Convey("When many values are allocated", func() {
			var ptrs []*testStruct
			for i := 0; i < 100; i++ {
				p, ok := arena.New(a, testStruct{X: i, Y: float64(i)})
				So(ok, ShouldBeTrue)
				ptrs = append(ptrs, p)
			}

			Convey("Then each value keeps its own contents", func() {
				for i, p := range ptrs {
					So(p.X, ShouldEqual, i)
					So(p.Y, ShouldEqual, float64(i))
				}
			})

			Convey("Then every pointer is distinct", func() {
				seen := make(map[*testStruct]bool, len(ptrs))
				for _, p := range ptrs {
					So(seen[p], ShouldBeFalse)
					seen[p] = true
				}
			})

			Convey("Then Reset empties the arena", func() {
				a.Reset()
				So(a.Empty(), ShouldBeTrue)
			})
		})

		Convey("When a value larger than a block is allocated", func() {
			p, ok := arena.New(a, [1 << 20]byte{})
			So(ok, ShouldBeTrue)
			So(p, ShouldNotBeNil)
		})
	})
}

func TestArenaSlice(t *testing.T) {
	Convey("Given an Arena", t, func() {
		a := new(arena.Arena)

		Convey("Of copies values into arena memory", func() {
			s, ok := arena.Of(a, byte('a'), byte('b'), byte('c'))
			So(ok, ShouldBeTrue)
			So(s.Len(), ShouldEqual, 3)
			So(s.Raw(), ShouldResemble, []byte{'a', 'b', 'c'})
		})

		Convey("FromBytes round-trips through Raw", func() {
			s, ok := arena.FromBytes(a, []byte("example.com"))
			So(ok, ShouldBeTrue)
			So(string(s.Raw()), ShouldEqual, "example.com")
		})

		Convey("EqualTo compares contents, not identity", func() {
			s1, _ := arena.FromBytes(a, []byte("abc"))
			s2, _ := arena.FromBytes(a, []byte("abc"))
			s3, _ := arena.FromBytes(a, []byte("abd"))

			So(arena.EqualTo(s1, s2), ShouldBeTrue)
			So(arena.EqualTo(s1, s3), ShouldBeFalse)
		})

		Convey("Clone produces an independent copy", func() {
			s1, _ := arena.FromBytes(a, []byte("abc"))
			s2, ok := arena.Clone(a, s1)
			So(ok, ShouldBeTrue)

			So(arena.EqualTo(s1, s2), ShouldBeTrue)
			So(s1.Ptr(), ShouldNotEqual, s2.Ptr())
		})

		Convey("Make(0) returns an empty, nil-backed slice", func() {
			s, ok := arena.Make[byte](a, 0)
			So(ok, ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
			So(s.Ptr(), ShouldBeNil)
		})
	})
}

func TestFaultArena(t *testing.T) {
	Convey("Given a FaultArena configured to fail the 3rd allocation", t, func() {
		a := arena.NewFaultArena()
		a.FailAt = 3

		Convey("The first two allocations succeed", func() {
			_, ok1 := arena.New(a, 1)
			_, ok2 := arena.New(a, 2)
			So(ok1, ShouldBeTrue)
			So(ok2, ShouldBeTrue)
		})

		Convey("The third allocation fails", func() {
			arena.New(a, 1)
			arena.New(a, 2)
			p, ok := arena.New(a, 3)

			So(ok, ShouldBeFalse)
			So(p, ShouldBeNil)
		})

		Convey("Later allocations succeed again", func() {
			arena.New(a, 1)
			arena.New(a, 2)
			arena.New(a, 3)
			_, ok := arena.New(a, 4)

			So(ok, ShouldBeTrue)
		})
	})
}
