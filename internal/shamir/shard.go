package shamir

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/Skpow1234/Shardvault/internal/gf"
)

// IDLength is the length in characters of every shard identifier,
// independent of the secret's size or the threshold.
const IDLength = 16

// Shard is one share of a split secret: the cross-section of all of a
// dealer's polynomials at a single non-zero x. A shard on its own
// reveals nothing about the secret; threshold shards with distinct x
// values reveal all of it.
//
// Shards are immutable value objects once the dealer hands them out.
type Shard struct {
	x         gf.Elem
	ys        []gf.Elem
	threshold uint32
	secretLen int
}

// Threshold returns the number of distinct shards required to recover
// the secret this shard belongs to.
func (s *Shard) Threshold() uint32 {
	return s.threshold
}

// NumValues returns the number of per-chunk values carried by the
// shard, which equals the owning dealer's polynomial count.
func (s *Shard) NumValues() int {
	return len(s.ys)
}

// SecretLen returns the byte length of the original secret.
func (s *Shard) SecretLen() int {
	return s.secretLen
}

// ID returns a stable identifier for the shard, derived from its
// sample point and values. Two shards with the same ID are the same
// sample; the ID reveals neither. Always IDLength characters.
func (s *Shard) ID() string {
	buf := make([]byte, 0, (1+len(s.ys))*4)
	buf = append(buf, s.x.Bytes()...)
	for _, y := range s.ys {
		buf = append(buf, y.Bytes()...)
	}
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:IDLength/2])
}

// Equal reports whether two shards carry identical content.
func (s *Shard) Equal(o *Shard) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.x != o.x || s.threshold != o.threshold || s.secretLen != o.secretLen {
		return false
	}
	if len(s.ys) != len(o.ys) {
		return false
	}
	for i := range s.ys {
		if s.ys[i] != o.ys[i] {
			return false
		}
	}
	return true
}
