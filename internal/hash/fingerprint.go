package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes the xxHash64 of two paired measurement sequences.
//
// The hash covers both sequences in index order, so two comparison runs
// over the same paired data always produce the same fingerprint. It
// backs the Fingerprint accessor of the compare package's Series, meant
// for keying caches of analysis results.
func Fingerprint(method1, method2 []float64) uint64 {
	d := xxhash.New()

	var buf [8]byte
	for _, v := range method1 {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
	for _, v := range method2 {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// Sum computes the xxHash64 of a raw byte payload.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
