// Package compress provides the compression codecs used by snapshot
// payloads.
//
// A snapshot stores the analyzed series together with the computed
// result, so payloads are dominated by runs of float64 values. The
// supported algorithms trade ratio against speed:
//
//   - None: no compression (fastest, largest)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//
// Codecs are looked up by format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// All codecs are safe for concurrent use. Zstd has two implementations
// selected by build tags: cgo builds use the libzstd bindings, pure Go
// builds use klauspost/compress with pooled encoders and decoders. Both
// produce interchangeable output.
package compress
