package compress

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinstat/methcomp/format"
)

// floatPayload builds a payload shaped like a snapshot body: runs of
// little-endian float64 values.
func floatPayload(n int) []byte {
	buf := make([]byte, 0, 8*n)
	for i := range n {
		v := 100 + 0.5*float64(i) + math.Sin(float64(i)/10)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return buf
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		name        string
		compression format.CompressionType
		wantErr     bool
	}{
		{"none", format.CompressionNone, false},
		{"zstd", format.CompressionZstd, false},
		{"s2", format.CompressionS2, false},
		{"lz4", format.CompressionLZ4, false},
		{"invalid", format.CompressionType(0x99), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := CreateCodec(tt.compression, "payload")
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, codec)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, codec)
			}
		})
	}
}

func TestGetCodec_SharedInstances(t *testing.T) {
	first, err := GetCodec(format.CompressionS2)
	require.NoError(t, err)
	second, err := GetCodec(format.CompressionS2)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = GetCodec(format.CompressionType(0x99))
	assert.Error(t, err)
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	payload := floatPayload(1000)

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(payload, restored))
		})
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Empty(t, restored)
		})
	}
}

func TestCodecs_CorruptedData(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03}

	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)
			_, err = codec.Decompress(garbage)
			assert.Error(t, err)
		})
	}
}

func TestNoOp_PassesThrough(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := floatPayload(10)

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, compressed)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, payload, restored)
}

func TestZstd_CompressesRepetitiveData(t *testing.T) {
	payload := bytes.Repeat([]byte("measurement"), 500)

	codec := NewZstdCompressor()
	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(payload))
}

func BenchmarkCodecs_Compress(b *testing.B) {
	payload := floatPayload(1000)

	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(compression.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				if _, err := codec.Compress(payload); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
