// Package shamir implements Shamir Secret Sharing over GF(2^32).
//
// A secret is chunked into 4-byte field elements; each chunk becomes
// the constant term of an independent random polynomial of degree
// threshold-1. A Shard is the evaluation of every polynomial at one
// shared random non-zero x, so any threshold shards with distinct x
// values pin down every polynomial, and fewer reveal nothing.
//
// Two recovery paths exist. RecoverSecret interpolates only the
// constant terms and is the cheap default. Recover rebuilds the full
// Dealer via barycentric interpolation, which costs the same up front
// but additionally allows minting brand-new shards afterwards; use it
// only when that capability is needed.
//
// The package never authenticates shards: a corrupted shard silently
// produces a wrong secret unless the caller layers integrity checking
// on top (the file format in wire.go detects transcription damage, not
// tampering).
package shamir

import (
	"errors"
	"fmt"
	"io"

	"github.com/Skpow1234/Shardvault/internal/gf"
)

// Sentinel errors for contract violations. All validation happens
// eagerly at the entry of NewDealer, Recover, and RecoverSecret, before
// any field arithmetic runs.
var (
	// ErrInvalidThreshold is returned for a threshold of zero.
	ErrInvalidThreshold = errors.New("threshold must be at least one")
	// ErrNoShards is returned for an empty shard set.
	ErrNoShards = errors.New("at least one shard is required")
	// ErrInconsistentShards is returned when shards disagree on
	// threshold, value count, or secret length.
	ErrInconsistentShards = errors.New("shards disagree on threshold, value count, or secret length")
	// ErrWrongShardCount is returned when the set size is not exactly
	// the threshold. Too many is as much a contract violation as too
	// few.
	ErrWrongShardCount = errors.New("shard count must equal the threshold exactly")
)

// Dealer owns the full polynomial set for a secret and is the only
// entity able to produce arbitrarily many shards. A dealer built by
// Recover is behaviorally indistinguishable from the one that
// originally split the secret.
//
// A Dealer is immutable after construction, so concurrent reads
// (including NextShard calls, each with its own random source) are
// safe without locking.
type Dealer struct {
	polys     []gf.Polynomial
	threshold uint32
	secretLen int
}

// elemSize is the chunk width: one GF(2^32) element per 4 secret bytes.
const elemSize = 4

// NewDealer splits secret into one polynomial per 4-byte chunk, each of
// degree threshold-1 with the chunk as its constant term and all other
// coefficients drawn from rand. The final short chunk, if any, is
// zero-padded; the true length is preserved so padding never reaches
// recovered output.
func NewDealer(threshold uint32, secret []byte, rand io.Reader) (*Dealer, error) {
	if threshold == 0 {
		return nil, ErrInvalidThreshold
	}
	k := int(threshold) - 1

	polys := make([]gf.Polynomial, 0, (len(secret)+elemSize-1)/elemSize)
	for off := 0; off < len(secret); off += elemSize {
		end := off + elemSize
		if end > len(secret) {
			end = len(secret)
		}
		poly, err := gf.NewRandomPoly(k, rand)
		if err != nil {
			return nil, fmt.Errorf("chunk %d polynomial: %w", len(polys), err)
		}
		poly.SetConstant(gf.ElemFromBytes(secret[off:end]))
		polys = append(polys, poly)
	}

	return &Dealer{
		polys:     polys,
		threshold: threshold,
		secretLen: len(secret),
	}, nil
}

// Threshold returns the number of distinct shards required to recover
// the stored secret.
func (d *Dealer) Threshold() uint32 {
	return d.threshold
}

// Secret returns the secret held by the dealer: the concatenated
// constant terms, truncated to the original length.
func (d *Dealer) Secret() []byte {
	out := make([]byte, 0, len(d.polys)*elemSize)
	for _, poly := range d.polys {
		out = append(out, poly.Constant().Bytes()...)
	}
	return out[:d.secretLen]
}

// NextShard mints a new shard at a fresh random non-zero x drawn from
// rand. Zero is excluded by redrawing, never evaluated: a shard at
// x = 0 would be the secret itself.
//
// The x is random, so two calls can collide (probability roughly
// calls^2 / 2^32). Ensuring a sufficiently distinct shard set is the
// caller's responsibility.
func (d *Dealer) NextShard(rand io.Reader) (*Shard, error) {
	x := gf.Zero
	for x == gf.Zero {
		var err error
		x, err = gf.RandomElem(rand)
		if err != nil {
			return nil, fmt.Errorf("shard x value: %w", err)
		}
	}
	return d.shardAt(x), nil
}

// shardAt evaluates every polynomial at x. Returns nil for x = Zero,
// which must never become a shard.
func (d *Dealer) shardAt(x gf.Elem) *Shard {
	if x == gf.Zero {
		return nil
	}
	ys := make([]gf.Elem, len(d.polys))
	for i, poly := range d.polys {
		ys[i] = poly.Evaluate(x)
	}
	return &Shard{
		x:         x,
		ys:        ys,
		threshold: d.threshold,
		secretLen: d.secretLen,
	}
}

// validateShardSet enforces the shared recovery contract: a non-empty,
// mutually consistent set whose size is exactly the threshold.
func validateShardSet(shards []*Shard) error {
	if len(shards) == 0 {
		return ErrNoShards
	}
	first := shards[0]
	for i, s := range shards[1:] {
		if s.threshold != first.threshold || len(s.ys) != len(first.ys) || s.secretLen != first.secretLen {
			return fmt.Errorf("%w: shard %d", ErrInconsistentShards, i+1)
		}
	}
	if uint32(len(shards)) != first.threshold {
		return fmt.Errorf("%w: want %d, got %d", ErrWrongShardCount, first.threshold, len(shards))
	}
	return nil
}

// points gathers the i-th value of every shard into one sample set.
// The buffer is reused across polynomial indices by both recovery
// paths.
func points(shards []*Shard, i int, buf []gf.Point) []gf.Point {
	buf = buf[:0]
	for _, s := range shards {
		buf = append(buf, gf.Point{X: s.x, Y: s.ys[i]})
	}
	return buf
}

// Recover reconstructs a full Dealer from exactly threshold mutually
// consistent shards, using barycentric interpolation per polynomial
// index. This is markedly more expensive than RecoverSecret and should
// only be used when further shards must be minted afterwards.
func Recover(shards []*Shard) (*Dealer, error) {
	if err := validateShardSet(shards); err != nil {
		return nil, err
	}
	threshold := shards[0].threshold
	k := int(threshold) - 1
	numPolys := len(shards[0].ys)

	polys := make([]gf.Polynomial, numPolys)
	buf := make([]gf.Point, 0, len(shards))
	for i := 0; i < numPolys; i++ {
		poly, err := gf.NewBarycentric(k, points(shards, i, buf))
		if err != nil {
			return nil, fmt.Errorf("polynomial %d: %w", i, err)
		}
		polys[i] = poly
	}

	return &Dealer{
		polys:     polys,
		threshold: threshold,
		secretLen: shards[0].secretLen,
	}, nil
}

// RecoverSecret reconstructs only the secret from exactly threshold
// mutually consistent shards, interpolating each polynomial's constant
// term directly. This is the default recovery path; it never
// materializes polynomial objects.
func RecoverSecret(shards []*Shard) ([]byte, error) {
	if err := validateShardSet(shards); err != nil {
		return nil, err
	}
	k := int(shards[0].threshold) - 1
	numPolys := len(shards[0].ys)

	out := make([]byte, 0, numPolys*elemSize)
	buf := make([]gf.Point, 0, len(shards))
	for i := 0; i < numPolys; i++ {
		chunk, err := gf.LagrangeConstant(k, points(shards, i, buf))
		if err != nil {
			return nil, fmt.Errorf("polynomial %d: %w", i, err)
		}
		out = append(out, chunk.Bytes()...)
	}
	return out[:shards[0].secretLen], nil
}
