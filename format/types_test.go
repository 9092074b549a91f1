package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffMode_String(t *testing.T) {
	assert.Equal(t, "Absolute", DiffAbsolute.String())
	assert.Equal(t, "Percentage", DiffPercentage.String())
	assert.Equal(t, "Unknown", DiffMode(0x7F).String())
}

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		compression CompressionType
		want        string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionType(0x7F), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.compression.String())
	}
}
