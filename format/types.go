package format

type (
	DiffMode        uint8
	CompressionType uint8
)

const (
	// DiffAbsolute represents absolute differences: d = method2 - method1.
	DiffAbsolute DiffMode = 0x1
	// DiffPercentage represents relative differences in percent of the pair mean.
	DiffPercentage DiffMode = 0x2

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (d DiffMode) String() string {
	switch d {
	case DiffAbsolute:
		return "Absolute"
	case DiffPercentage:
		return "Percentage"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
