package snapshot

import (
	"fmt"

	"github.com/clinstat/methcomp/format"
	"github.com/clinstat/methcomp/internal/options"
)

type config struct {
	compression format.CompressionType
}

// Option configures snapshot encoding.
type Option = options.Option[*config]

func newConfig(opts ...Option) (config, error) {
	cfg := config{compression: format.CompressionNone}
	if err := options.Apply(&cfg, opts...); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// WithCompression selects the payload compression algorithm. The default
// is format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.compression = compression
			return nil
		default:
			return fmt.Errorf("%w: compression type %s", ErrInvalidSnapshot, compression)
		}
	})
}
