package gf

import (
	"errors"
	"fmt"
)

// Interpolation errors. Both algorithms demand exactly k+1 samples of
// the unknown degree-k polynomial with pairwise-distinct x values;
// anything else makes reconstruction mathematically undefined and is
// rejected before any field arithmetic runs.
var (
	// ErrPointCount indicates the wrong number of sample points.
	ErrPointCount = errors.New("interpolation requires exactly degree+1 points")
	// ErrDuplicatePoint indicates two sample points share an x value.
	ErrDuplicatePoint = errors.New("interpolation points must have distinct x values")
)

// Point is one (x, y) sample of a polynomial.
type Point struct {
	X Elem
	Y Elem
}

// checkPoints validates the shared interpolation contract.
func checkPoints(k int, points []Point) error {
	if len(points) != k+1 {
		return fmt.Errorf("%w: want %d, got %d", ErrPointCount, k+1, len(points))
	}
	for i := range points {
		for j := 0; j < i; j++ {
			if points[i].X == points[j].X {
				return fmt.Errorf("%w: x = %#08x", ErrDuplicatePoint, uint32(points[i].X))
			}
		}
	}
	return nil
}

// LagrangeConstant recovers only the constant term of the unknown
// degree-k polynomial behind the samples, i.e. its value at x = Zero,
// using the closed-form Lagrange basis:
//
//	p(0) = Σ_i y_i · Π_{j≠i} x_j / (x_i - x_j)
//
// Subtraction is addition in characteristic 2 and division is
// multiplication by the inverse. This is the cheap path for recovering
// a secret chunk: O(k^2) field operations and no polynomial object.
func LagrangeConstant(k int, points []Point) (Elem, error) {
	if err := checkPoints(k, points); err != nil {
		return Zero, err
	}

	secret := Zero
	for i, pi := range points {
		basis := One
		for j, pj := range points {
			if i == j {
				continue
			}
			// l_i(0) term: x_j / (x_i + x_j). The denominator is
			// non-zero because the x values are pairwise distinct.
			basis = basis.Mul(pj.X.Mul(pi.X.Add(pj.X).Inverse()))
		}
		secret = secret.Add(pi.Y.Mul(basis))
	}
	return secret, nil
}

// Barycentric is a degree-k polynomial reconstructed from k+1 samples
// in barycentric Lagrange form. The weights are computed once at
// construction (O(k^2)); every subsequent Evaluate costs O(k), which is
// what makes recovering a full dealer and minting further shards
// practical. It is immutable once built and evaluates identically to
// the polynomial the samples came from, on every input.
type Barycentric struct {
	points  []Point
	weights []Elem
}

// NewBarycentric reconstructs the unknown degree-k polynomial from
// exactly k+1 samples with pairwise-distinct x values. The weights are
//
//	w_i = 1 / Π_{j≠i} (x_i - x_j)
func NewBarycentric(k int, points []Point) (*Barycentric, error) {
	if err := checkPoints(k, points); err != nil {
		return nil, err
	}

	// Callers reuse their point buffers between reconstructions.
	owned := make([]Point, len(points))
	copy(owned, points)

	weights := make([]Elem, len(owned))
	for i, pi := range owned {
		prod := One
		for j, pj := range owned {
			if i == j {
				continue
			}
			prod = prod.Mul(pi.X.Add(pj.X))
		}
		weights[i] = prod.Inverse()
	}
	return &Barycentric{points: owned, weights: weights}, nil
}

// Evaluate computes the polynomial's value at x via
//
//	p(x) = Σ_i (w_i / (x - x_i)) · y_i  ÷  Σ_i w_i / (x - x_i)
//
// with the sample points themselves short-circuited to their known y
// values, since the general form divides by zero there.
func (b *Barycentric) Evaluate(x Elem) Elem {
	for _, p := range b.points {
		if x == p.X {
			return p.Y
		}
	}

	num, den := Zero, Zero
	for i, p := range b.points {
		term := b.weights[i].Mul(x.Add(p.X).Inverse())
		num = num.Add(term.Mul(p.Y))
		den = den.Add(term)
	}
	return num.Mul(den.Inverse())
}

// Constant returns the polynomial's value at x = Zero.
func (b *Barycentric) Constant() Elem {
	return b.Evaluate(Zero)
}

// Degree returns the polynomial's degree.
func (b *Barycentric) Degree() int {
	return len(b.points) - 1
}
