// Package snapshot serializes method comparison results into a compact
// binary form.
//
// A snapshot bundles the analyzed series together with the computed
// result, so an external consumer (a plotting frontend, a report
// generator, another process) can reproduce the analysis without access
// to the original inputs. Snapshots are plain byte slices; storing or
// transmitting them is the caller's business.
//
// The layout is a fixed 24-byte little-endian header followed by a
// payload. The payload may be compressed with any codec from the
// compress package and is protected by an xxHash64 checksum taken over
// the uncompressed bytes, so corruption is detected before a result is
// reconstructed.
//
//	data, err := snapshot.EncodeBlandAltman(series, result,
//	    snapshot.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	snap, err := snapshot.Decode(data)
//
// Decode rejects snapshots with an unknown magic number, an unsupported
// version, a truncated payload, or a checksum mismatch.
package snapshot
