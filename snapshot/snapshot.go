package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/clinstat/methcomp/compare"
	"github.com/clinstat/methcomp/compress"
	"github.com/clinstat/methcomp/format"
	"github.com/clinstat/methcomp/internal/hash"
	"github.com/clinstat/methcomp/regression"
)

// Kind identifies the result type stored in a snapshot payload.
type Kind uint8

const (
	// KindBlandAltman marks a Bland-Altman difference analysis payload.
	KindBlandAltman Kind = 0x1
	// KindRegression marks a regression fit payload.
	KindRegression Kind = 0x2
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBlandAltman:
		return "bland-altman"
	case KindRegression:
		return "regression"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

var (
	// ErrInvalidSnapshot indicates data that is not a snapshot or uses an
	// unsupported version, kind, or compression type.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	// ErrChecksumMismatch indicates the payload checksum does not match,
	// i.e. the snapshot was corrupted after encoding.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")
)

// Header layout, little-endian, 24 bytes:
//
//	[0:2]   magic 0x4D43 ("CM")
//	[2]     version
//	[3]     kind
//	[4]     compression
//	[5:8]   reserved, zero
//	[8:12]  pair count
//	[12:16] compressed payload length
//	[16:24] xxHash64 of the uncompressed payload
const (
	headerSize      = 24
	snapshotMagic   = uint16(0x4D43)
	snapshotVersion = uint8(1)
)

// Snapshot is a decoded snapshot: the original series plus exactly one
// of the result fields, selected by Kind.
type Snapshot struct {
	Kind        Kind
	Compression format.CompressionType

	// Method1 and Method2 are the analyzed series, in input order.
	Method1 []float64
	Method2 []float64

	// BlandAltman is set when Kind is KindBlandAltman.
	BlandAltman *compare.BlandAltmanResult
	// Regression is set when Kind is KindRegression.
	Regression *regression.Model
}

// EncodeBlandAltman serializes a Bland-Altman result together with the
// series it was computed from.
func EncodeBlandAltman(series compare.Series, result *compare.BlandAltmanResult, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("%w: nil result", ErrInvalidSnapshot)
	}

	w := newPayloadWriter(series)
	w.byte(uint8(result.Mode))
	w.float(result.LimitMultiplier)
	w.float(result.ConfidenceLevel)
	w.float(result.Bias)
	w.float(result.SD)
	w.float(result.LimitLower)
	w.float(result.LimitUpper)
	w.bool(result.HasCI)
	w.interval(result.BiasCI)
	w.interval(result.LimitLowerCI)
	w.interval(result.LimitUpperCI)

	return seal(KindBlandAltman, cfg.compression, uint32(series.Len()), w.bytes())
}

// EncodeRegression serializes a regression fit together with the series
// it was computed from.
func EncodeRegression(series compare.Series, model *regression.Model, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, fmt.Errorf("%w: nil model", ErrInvalidSnapshot)
	}

	w := newPayloadWriter(series)
	w.byte(uint8(model.Kind))
	w.float(model.Slope)
	w.float(model.Intercept)
	w.float(model.ConfidenceLevel)
	w.bool(model.HasCI)
	w.interval(model.SlopeCI)
	w.interval(model.InterceptCI)
	w.uint32(uint32(model.ExcludedVertical))

	return seal(KindRegression, cfg.compression, uint32(series.Len()), w.bytes())
}

// Decode parses a snapshot produced by one of the Encode functions. The
// payload checksum is verified before any result is reconstructed.
func Decode(data []byte) (*Snapshot, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidSnapshot, len(data), headerSize)
	}
	if binary.LittleEndian.Uint16(data[0:2]) != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic 0x%04X", ErrInvalidSnapshot, binary.LittleEndian.Uint16(data[0:2]))
	}
	if version := data[2]; version != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, version)
	}

	kind := Kind(data[3])
	compression := format.CompressionType(data[4])
	n := binary.LittleEndian.Uint32(data[8:12])
	payloadLen := binary.LittleEndian.Uint32(data[12:16])
	checksum := binary.LittleEndian.Uint64(data[16:24])

	if uint32(len(data)-headerSize) != payloadLen {
		return nil, fmt.Errorf("%w: payload length %d, header says %d",
			ErrInvalidSnapshot, len(data)-headerSize, payloadLen)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err)
	}
	payload, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err)
	}
	if sum := hash.Sum(payload); sum != checksum {
		return nil, fmt.Errorf("%w: got 0x%016X, want 0x%016X", ErrChecksumMismatch, sum, checksum)
	}

	// The checksum covers only the payload, so the pair count must be
	// bounded by the payload actually present before it sizes any
	// allocation. This also keeps int(n) safe on 32-bit platforms.
	if minLen := uint64(n) * 16; uint64(len(payload)) < minLen {
		return nil, fmt.Errorf("%w: %d pairs need %d payload bytes, have %d",
			ErrInvalidSnapshot, n, minLen, len(payload))
	}

	r := payloadReader{data: payload}
	method1, method2, err := r.series(int(n))
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Kind:        kind,
		Compression: compression,
		Method1:     method1,
		Method2:     method2,
	}
	switch kind {
	case KindBlandAltman:
		snap.BlandAltman, err = decodeBlandAltman(&r, method1, method2)
	case KindRegression:
		snap.Regression, err = decodeRegression(&r, int(n))
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidSnapshot, uint8(kind))
	}
	if err != nil {
		return nil, err
	}
	if r.err != nil {
		return nil, r.err
	}

	return snap, nil
}

func decodeBlandAltman(r *payloadReader, method1, method2 []float64) (*compare.BlandAltmanResult, error) {
	result := &compare.BlandAltmanResult{N: len(method1)}
	result.Mode = format.DiffMode(r.byte())
	result.LimitMultiplier = r.float()
	result.ConfidenceLevel = r.float()
	result.Bias = r.float()
	result.SD = r.float()
	result.LimitLower = r.float()
	result.LimitUpper = r.float()
	result.HasCI = r.bool()
	result.BiasCI = r.interval()
	result.LimitLowerCI = r.interval()
	result.LimitUpperCI = r.interval()
	if r.err != nil {
		return nil, r.err
	}

	// Means and per-pair differences are not stored; they are cheap to
	// rebuild from the series.
	result.Means = make([]float64, len(method1))
	result.Diffs = make([]float64, len(method1))
	for i := range method1 {
		mean := (method1[i] + method2[i]) / 2
		diff := method2[i] - method1[i]
		if result.Mode == format.DiffPercentage {
			// The analyzer never produces a percentage result from a
			// zero-mean pair; a payload claiming otherwise is crafted.
			if mean == 0 {
				return nil, fmt.Errorf("%w: zero pair mean at index %d in percentage mode",
					ErrInvalidSnapshot, i)
			}
			diff = diff / mean * 100
		}
		result.Means[i] = mean
		result.Diffs[i] = diff
	}

	return result, nil
}

func decodeRegression(r *payloadReader, n int) (*regression.Model, error) {
	model := &regression.Model{N: n}
	model.Kind = regression.Kind(r.byte())
	model.Slope = r.float()
	model.Intercept = r.float()
	model.ConfidenceLevel = r.float()
	model.HasCI = r.bool()
	model.SlopeCI = r.interval()
	model.InterceptCI = r.interval()
	model.ExcludedVertical = int(r.uint32())
	if r.err != nil {
		return nil, r.err
	}
	model.Formula = fmt.Sprintf("y = %.4f + %.4f * x", model.Intercept, model.Slope)

	return model, nil
}

// seal compresses the payload, checksums it, and prepends the header.
// Encoding creates a fresh codec; Decode shares the built-in ones.
func seal(kind Kind, compression format.CompressionType, n uint32, payload []byte) ([]byte, error) {
	checksum := hash.Sum(payload)

	codec, err := compress.CreateCodec(compression, "snapshot payload")
	if err != nil {
		return nil, err
	}
	packed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot payload: %w", err)
	}

	buf := make([]byte, headerSize, headerSize+len(packed))
	binary.LittleEndian.PutUint16(buf[0:2], snapshotMagic)
	buf[2] = snapshotVersion
	buf[3] = uint8(kind)
	buf[4] = uint8(compression)
	binary.LittleEndian.PutUint32(buf[8:12], n)
	binary.LittleEndian.PutUint32(buf[12:16], uint32(len(packed)))
	binary.LittleEndian.PutUint64(buf[16:24], checksum)

	return append(buf, packed...), nil
}

// payloadWriter accumulates the little-endian payload. The series always
// comes first so Decode can rebuild it without knowing the result kind.
type payloadWriter struct {
	buf []byte
}

func newPayloadWriter(series compare.Series) *payloadWriter {
	w := &payloadWriter{buf: make([]byte, 0, 16*series.Len()+64)}
	for _, v := range series.Method1() {
		w.float(v)
	}
	for _, v := range series.Method2() {
		w.float(v)
	}
	return w
}

func (w *payloadWriter) bytes() []byte { return w.buf }

func (w *payloadWriter) byte(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *payloadWriter) bool(v bool) {
	if v {
		w.byte(1)
	} else {
		w.byte(0)
	}
}

func (w *payloadWriter) uint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *payloadWriter) float(v float64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, math.Float64bits(v))
}

func (w *payloadWriter) interval(iv compare.Interval) {
	w.float(iv.Lower)
	w.float(iv.Upper)
}

// payloadReader walks the payload, latching the first truncation error.
type payloadReader struct {
	data []byte
	off  int
	err  error
}

func (r *payloadReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.off+n > len(r.data) {
		r.err = fmt.Errorf("%w: truncated payload at offset %d", ErrInvalidSnapshot, r.off)
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

func (r *payloadReader) byte() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *payloadReader) bool() bool {
	return r.byte() != 0
}

func (r *payloadReader) uint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *payloadReader) float() float64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

func (r *payloadReader) interval() compare.Interval {
	return compare.Interval{Lower: r.float(), Upper: r.float()}
}

func (r *payloadReader) series(n int) (method1, method2 []float64, err error) {
	method1 = make([]float64, n)
	method2 = make([]float64, n)
	for i := range method1 {
		method1[i] = r.float()
	}
	for i := range method2 {
		method2[i] = r.float()
	}
	if r.err != nil {
		return nil, nil, r.err
	}
	return method1, method2, nil
}
