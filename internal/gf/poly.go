package gf

import (
	"fmt"
	"io"
)

// Polynomial is the evaluation contract shared by the two polynomial
// variants: dense random polynomials built while splitting a secret
// (Poly) and barycentric polynomials rebuilt from samples during
// recovery (Barycentric). The set is closed; nothing else implements it.
type Polynomial interface {
	// Evaluate computes the polynomial's value at x.
	Evaluate(x Elem) Elem
	// Constant returns the constant term, i.e. the value at x = Zero.
	Constant() Elem
}

// Poly is a dense polynomial of fixed degree k over GF(2^32),
// represented by its k+1 coefficients. coeffs[0] is the constant term.
// The degree is fixed at construction and never changes.
type Poly struct {
	coeffs []Elem
}

// NewRandomPoly builds a polynomial of degree k with coefficients 1..k
// drawn uniformly at random from the supplied source. The constant term
// starts at Zero; callers set it with SetConstant immediately after
// construction, before any evaluation.
func NewRandomPoly(k int, rand io.Reader) (*Poly, error) {
	if k < 0 {
		return nil, fmt.Errorf("polynomial degree must be non-negative, got %d", k)
	}
	coeffs := make([]Elem, k+1)
	for i := 1; i <= k; i++ {
		c, err := RandomElem(rand)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return &Poly{coeffs: coeffs}, nil
}

// SetConstant sets the constant term.
func (p *Poly) SetConstant(c Elem) {
	p.coeffs[0] = c
}

// Constant returns the constant term.
func (p *Poly) Constant() Elem {
	return p.coeffs[0]
}

// Degree returns the polynomial's degree.
func (p *Poly) Degree() int {
	return len(p.coeffs) - 1
}

// Evaluate computes p(x) = c0 + c1·x + c2·x^2 + ... using Horner's
// method from the highest-degree coefficient down. Evaluate(Zero)
// always equals Constant().
func (p *Poly) Evaluate(x Elem) Elem {
	result := Zero
	for i := len(p.coeffs) - 1; i >= 1; i-- {
		result = result.Mul(x).Add(p.coeffs[i])
	}
	return result.Mul(x).Add(p.coeffs[0])
}
