package gf

import (
	"errors"
	"testing"
)

// samplePoly evaluates p at n distinct non-zero x values.
func samplePoly(t testing.TB, p *Poly, n int) []Point {
	t.Helper()
	seen := map[Elem]bool{Zero: true}
	points := make([]Point, 0, n)
	for len(points) < n {
		x := randomElem(t)
		if seen[x] {
			continue
		}
		seen[x] = true
		points = append(points, Point{X: x, Y: p.Evaluate(x)})
	}
	return points
}

func TestLagrangeConstant_RecoversConstant(t *testing.T) {
	for _, k := range []int{0, 1, 2, 5, 11} {
		p := randomPoly(t, k)
		points := samplePoly(t, p, k+1)
		got, err := LagrangeConstant(k, points)
		if err != nil {
			t.Fatalf("k=%d: LagrangeConstant: %v", k, err)
		}
		if got != p.Constant() {
			t.Errorf("k=%d: recovered %#08x, want %#08x",
				k, uint32(got), uint32(p.Constant()))
		}
	}
}

func TestLagrangeConstant_WrongPointCount(t *testing.T) {
	p := randomPoly(t, 3)

	_, err := LagrangeConstant(3, samplePoly(t, p, 3))
	if !errors.Is(err, ErrPointCount) {
		t.Fatalf("3 points for degree 3: got %v, want ErrPointCount", err)
	}

	_, err = LagrangeConstant(3, samplePoly(t, p, 5))
	if !errors.Is(err, ErrPointCount) {
		t.Fatalf("5 points for degree 3: got %v, want ErrPointCount", err)
	}
}

func TestLagrangeConstant_DuplicateX(t *testing.T) {
	p := randomPoly(t, 2)
	points := samplePoly(t, p, 3)
	points[2] = points[0] // equal y too: still rejected by contract

	_, err := LagrangeConstant(2, points)
	if !errors.Is(err, ErrDuplicatePoint) {
		t.Fatalf("got %v, want ErrDuplicatePoint", err)
	}
}

func TestBarycentric_AgreesWithOriginal(t *testing.T) {
	for _, k := range []int{0, 1, 2, 5, 11} {
		p := randomPoly(t, k)
		points := samplePoly(t, p, k+1)
		b, err := NewBarycentric(k, points)
		if err != nil {
			t.Fatalf("k=%d: NewBarycentric: %v", k, err)
		}

		if b.Constant() != p.Constant() {
			t.Errorf("k=%d: constant %#08x, want %#08x",
				k, uint32(b.Constant()), uint32(p.Constant()))
		}
		if b.Degree() != k {
			t.Errorf("k=%d: Degree() = %d", k, b.Degree())
		}

		// Arbitrary query points.
		for i := 0; i < 20; i++ {
			x := randomElem(t)
			if got, want := b.Evaluate(x), p.Evaluate(x); got != want {
				t.Fatalf("k=%d x=%#08x: got %#08x, want %#08x",
					k, uint32(x), uint32(got), uint32(want))
			}
		}

		// The original sample nodes hit the short-circuit path.
		for _, pt := range points {
			if got := b.Evaluate(pt.X); got != pt.Y {
				t.Fatalf("k=%d: b(%#08x) = %#08x, want sample y %#08x",
					k, uint32(pt.X), uint32(got), uint32(pt.Y))
			}
		}
	}
}

func TestBarycentric_DoesNotAliasInput(t *testing.T) {
	p := randomPoly(t, 2)
	points := samplePoly(t, p, 3)
	b, err := NewBarycentric(2, points)
	if err != nil {
		t.Fatal(err)
	}
	before := b.Evaluate(Zero)

	// Clobber the caller's buffer; the reconstruction must be unaffected.
	for i := range points {
		points[i] = Point{}
	}
	if after := b.Evaluate(Zero); after != before {
		t.Fatal("Barycentric aliases the caller's point slice")
	}
}

func TestBarycentric_Errors(t *testing.T) {
	p := randomPoly(t, 2)
	points := samplePoly(t, p, 3)

	if _, err := NewBarycentric(2, points[:2]); !errors.Is(err, ErrPointCount) {
		t.Errorf("short point set: got %v, want ErrPointCount", err)
	}

	dup := []Point{points[0], points[1], points[0]}
	if _, err := NewBarycentric(2, dup); !errors.Is(err, ErrDuplicatePoint) {
		t.Errorf("duplicate x: got %v, want ErrDuplicatePoint", err)
	}
}

func TestBarycentric_SinglePoint(t *testing.T) {
	// Threshold 1 means degree 0: one sample pins the whole polynomial.
	p := randomPoly(t, 0)
	points := samplePoly(t, p, 1)
	b, err := NewBarycentric(0, points)
	if err != nil {
		t.Fatal(err)
	}
	if b.Constant() != p.Constant() {
		t.Fatalf("constant %#08x, want %#08x",
			uint32(b.Constant()), uint32(p.Constant()))
	}
	x := randomElem(t)
	if b.Evaluate(x) != p.Constant() {
		t.Fatal("degree-0 reconstruction not constant")
	}
}
