package gf

import (
	"crypto/rand"
	"testing"
)

// naiveEval computes the power sum directly, as a cross-check for the
// Horner evaluation.
func naiveEval(p *Poly, x Elem) Elem {
	result := Zero
	xi := One
	for _, c := range p.coeffs {
		result = result.Add(c.Mul(xi))
		xi = xi.Mul(x)
	}
	return result
}

func randomPoly(t testing.TB, k int) *Poly {
	t.Helper()
	p, err := NewRandomPoly(k, rand.Reader)
	if err != nil {
		t.Fatalf("NewRandomPoly(%d): %v", k, err)
	}
	p.SetConstant(randomElem(t))
	return p
}

func TestPoly_EvaluateAtZeroIsConstant(t *testing.T) {
	for _, k := range []int{0, 1, 2, 5, 16} {
		p := randomPoly(t, k)
		if got := p.Evaluate(Zero); got != p.Constant() {
			t.Errorf("k=%d: p(0) = %#08x, want constant %#08x",
				k, uint32(got), uint32(p.Constant()))
		}
	}
}

func TestPoly_EvaluateMatchesNaive(t *testing.T) {
	for _, k := range []int{0, 1, 3, 7} {
		p := randomPoly(t, k)
		for i := 0; i < 20; i++ {
			x := randomElem(t)
			if got, want := p.Evaluate(x), naiveEval(p, x); got != want {
				t.Fatalf("k=%d x=%#08x: Horner %#08x, naive %#08x",
					k, uint32(x), uint32(got), uint32(want))
			}
		}
	}
}

func TestPoly_DegreeZeroIsConstantEverywhere(t *testing.T) {
	p := randomPoly(t, 0)
	for i := 0; i < 10; i++ {
		x := randomElem(t)
		if p.Evaluate(x) != p.Constant() {
			t.Fatalf("degree-0 polynomial not constant at x=%#08x", uint32(x))
		}
	}
}

func TestPoly_Degree(t *testing.T) {
	for _, k := range []int{0, 1, 4, 11} {
		if got := randomPoly(t, k).Degree(); got != k {
			t.Errorf("Degree() = %d, want %d", got, k)
		}
	}
}

func TestNewRandomPoly_NegativeDegree(t *testing.T) {
	if _, err := NewRandomPoly(-1, rand.Reader); err == nil {
		t.Fatal("expected error for negative degree")
	}
}

func TestNewRandomPoly_ReaderError(t *testing.T) {
	if _, err := NewRandomPoly(3, failingReader{}); err == nil {
		t.Fatal("expected error from failing reader")
	}
	// A degree-0 polynomial needs no randomness at all.
	if _, err := NewRandomPoly(0, failingReader{}); err != nil {
		t.Fatalf("degree-0 polynomial should not touch the reader: %v", err)
	}
}
