package gf

import (
	"crypto/rand"
	"testing"
)

func BenchmarkMul(b *testing.B) {
	x, _ := RandomElem(rand.Reader)
	y, _ := RandomElem(rand.Reader)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = x.Mul(y)
	}
	sink = x
}

func BenchmarkInverse(b *testing.B) {
	x, _ := RandomElem(rand.Reader)
	if x == Zero {
		x = One
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = x.Inverse()
	}
}

func BenchmarkLagrangeConstant_K8(b *testing.B) {
	p, _ := NewRandomPoly(8, rand.Reader)
	points := samplePoly(b, p, 9)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := LagrangeConstant(8, points)
		if err != nil {
			b.Fatal(err)
		}
		sink = v
	}
}

func BenchmarkBarycentricEvaluate_K8(b *testing.B) {
	p, _ := NewRandomPoly(8, rand.Reader)
	points := samplePoly(b, p, 9)
	bary, err := NewBarycentric(8, points)
	if err != nil {
		b.Fatal(err)
	}
	x, _ := RandomElem(rand.Reader)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = bary.Evaluate(x)
	}
}

var sink Elem
