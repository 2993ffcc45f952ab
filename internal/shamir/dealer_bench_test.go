package shamir

import (
	"crypto/rand"
	"testing"
)

func benchShards(b *testing.B, threshold uint32, secretLen int) []*Shard {
	b.Helper()
	d, err := NewDealer(threshold, randomSecret(b, secretLen), rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	return mintShards(b, d, int(threshold))
}

func BenchmarkNewDealer_T8_1KiB(b *testing.B) {
	secret := randomSecret(b, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NewDealer(8, secret, rand.Reader); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNextShard_T8_1KiB(b *testing.B) {
	d, err := NewDealer(8, randomSecret(b, 1024), rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.NextShard(rand.Reader); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecoverSecret_T8_1KiB(b *testing.B) {
	shards := benchShards(b, 8, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := RecoverSecret(shards); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecover_T8_1KiB(b *testing.B) {
	shards := benchShards(b, 8, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Recover(shards); err != nil {
			b.Fatal(err)
		}
	}
}
