// Package bench holds standalone benchmarks for the scanning engine's hot
// path: seed scalar multiplication, batched Jacobian walking, batch affine
// conversion, and the specialized hash pipeline. These are the operations
// that actually dominate keys/sec, unlike a single generate-and-hash call.
package bench

import (
	"math/big"
	"testing"

	"github.com/keyhunt71/puzzle71/internal/batch"
	"github.com/keyhunt71/puzzle71/internal/curve"
	"github.com/keyhunt71/puzzle71/internal/hash160"
	"github.com/keyhunt71/puzzle71/internal/params"
)

// BenchmarkScalarMultGenTable benchmarks the per-chunk seed point
// computation via the generator table.
func BenchmarkScalarMultGenTable(b *testing.B) {
	k := new(big.Int).Add(params.Low, big.NewInt(12345))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = curve.ScalarMultGenTable(k)
	}
}

// BenchmarkBatchWalkAndToAffine benchmarks a full batch: BatchSize Jacobian
// additions followed by one Montgomery simultaneous inversion, the core
// amortized-inversion optimization the whole design exists to exploit.
func BenchmarkBatchWalkAndToAffine(b *testing.B) {
	start := curve.FromAffine(curve.Generator)
	jac := make([]curve.Jacobian, params.BatchSize)
	aff := make([]curve.Affine, params.BatchSize)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		batch.Walk(jac, start)
		batch.ToAffine(aff, jac)
	}
}

// BenchmarkHashPipeline benchmarks the full compressed-pubkey -> hash160
// path used once per candidate point in the hot loop.
func BenchmarkHashPipeline(b *testing.B) {
	compressed := curve.Compress(curve.Generator)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = hash160.Sum160(compressed)
	}
}

// BenchmarkSum33 isolates the specialized SHA-256 stage.
func BenchmarkSum33(b *testing.B) {
	compressed := curve.Compress(curve.Generator)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = hash160.Sum33(compressed)
	}
}

// BenchmarkSum32 isolates the specialized RIPEMD-160 stage.
func BenchmarkSum32(b *testing.B) {
	digest := hash160.Sum33(curve.Compress(curve.Generator))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = hash160.Sum32(digest)
	}
}
