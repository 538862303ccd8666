package intmath

import "testing"

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{6, 3, 2},
		{-6, 3, -2},
		{0, 5, 0},
		{-1, 86400, -1},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestFloorMod(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{7, 2, 1},
		{-7, 2, 1},
		{7, -2, -1},
		{-7, -2, -1},
		{-1, 86400, 86399},
		{0, 7, 0},
	}
	for _, c := range cases {
		if got := FloorMod(c.a, c.b); got != c.want {
			t.Errorf("FloorMod(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestFloorDivModIdentity(t *testing.T) {
	for a := int64(-25); a <= 25; a++ {
		for _, b := range []int64{-7, -2, 2, 7, 12} {
			q, r := FloorDiv(a, b), FloorMod(a, b)
			if q*b+r != a {
				t.Errorf("FloorDiv/FloorMod identity broken for a=%d b=%d: q=%d r=%d", a, b, q, r)
			}
		}
	}
}
