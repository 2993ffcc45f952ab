// Package gf implements arithmetic over the finite field GF(2^32).
//
// Elements are 32-bit values interpreted as polynomials over GF(2),
// reduced modulo the irreducible pentanomial
//
//	x^32 + x^22 + x^2 + x + 1
//
// Addition is XOR (the field has characteristic 2, so every element is
// its own additive inverse) and multiplication is carry-less shift/XOR
// with modular reduction. The polynomial is fixed for the whole system:
// shards produced under one field definition cannot be combined with
// shards produced under another.
package gf

import (
	"encoding/binary"
	"fmt"
	"io"
)

// reducePoly holds the low 32 bits of the field polynomial
// x^32 + x^22 + x^2 + x + 1.
const reducePoly uint32 = 0x00400007

// Elem is one element of GF(2^32).
type Elem uint32

// Field constants.
const (
	// Zero is the additive identity.
	Zero Elem = 0
	// One is the multiplicative identity.
	One Elem = 1
)

// Add returns a+b. In characteristic 2 this is also a-b.
func (a Elem) Add(b Elem) Elem {
	return a ^ b
}

// Mul returns a·b using Russian peasant multiplication with modular
// reduction after every doubling.
func (a Elem) Mul(b Elem) Elem {
	var result uint32
	aa, bb := uint32(a), uint32(b)
	for bb > 0 {
		if bb&1 != 0 {
			result ^= aa
		}
		highBit := aa & 0x80000000
		aa <<= 1
		if highBit != 0 {
			aa ^= reducePoly // reduce mod x^32 + x^22 + x^2 + x + 1
		}
		bb >>= 1
	}
	return Elem(result)
}

// Inverse computes the multiplicative inverse of a in GF(2^32) by
// exponentiation: a^(2^32 - 2) = a^(-1).
// Inverse of Zero is undefined; it returns Zero to avoid panics, and
// callers are expected to never invert Zero (interpolation rejects
// duplicate x values before any inversion happens).
func (a Elem) Inverse() Elem {
	if a == Zero {
		return Zero
	}
	// a^(2^32 - 2): 30 rounds of square-then-multiply take the exponent
	// to 2^31 - 1, a final squaring doubles it to 2^32 - 2.
	result := a
	for i := 0; i < 30; i++ {
		result = result.Mul(result)
		result = result.Mul(a)
	}
	return result.Mul(result)
}

// Bytes returns the 4-byte big-endian encoding of a.
func (a Elem) Bytes() []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(a))
	return buf
}

// ElemFromBytes decodes up to 4 bytes (big-endian) into an element.
// Shorter input is zero-padded at the tail, so a partial trailing chunk
// of a secret round-trips through Bytes as long as the caller remembers
// the original length. Input beyond 4 bytes is ignored.
func ElemFromBytes(b []byte) Elem {
	var buf [4]byte
	copy(buf[:], b)
	return Elem(binary.BigEndian.Uint32(buf[:]))
}

// RandomElem draws one element uniformly at random from the whole field
// (including Zero) using the supplied random source.
func RandomElem(rand io.Reader) (Elem, error) {
	var buf [4]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return Zero, fmt.Errorf("random field element: %w", err)
	}
	return Elem(binary.BigEndian.Uint32(buf[:])), nil
}
