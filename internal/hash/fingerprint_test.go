package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	method1 := []float64{1.5, 2.5, 3.5}
	method2 := []float64{1.4, 2.6, 3.4}

	first := Fingerprint(method1, method2)
	second := Fingerprint(method1, method2)
	assert.Equal(t, first, second)

	// Order matters: swapping the series changes the fingerprint.
	assert.NotEqual(t, first, Fingerprint(method2, method1))

	// Any value change changes the fingerprint.
	bumped := []float64{1.5, 2.5, 3.50001}
	assert.NotEqual(t, first, Fingerprint(bumped, method2))
}

func TestSum(t *testing.T) {
	data := []byte("paired measurements")
	assert.Equal(t, Sum(data), Sum(data))
	assert.NotEqual(t, Sum(data), Sum([]byte("paired measurement")))
	// xxHash64 seed-0 hash of the empty input.
	assert.Equal(t, uint64(0xef46db3751d8e999), Sum(nil))
}

func BenchmarkFingerprint(b *testing.B) {
	method1 := make([]float64, 1000)
	method2 := make([]float64, 1000)
	for i := range method1 {
		method1[i] = float64(i)
		method2[i] = float64(i) * 1.01
	}
	b.ResetTimer()
	for b.Loop() {
		Fingerprint(method1, method2)
	}
}
