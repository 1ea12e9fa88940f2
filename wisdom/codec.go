package wisdom

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/fftwgo"
	"github.com/hupe1980/fftwgo/internal/conv"
	"github.com/hupe1980/fftwgo/internal/hash"
)

// Compression defines the compression algorithm for envelope payloads.
type Compression uint8

const (
	// CompressionNone stores the wisdom text as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD (better ratio, the default).
	CompressionZSTD Compression = 2
)

// String returns the string representation of a Compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression parses "none", "lz4" or "zstd".
func ParseCompression(s string) (Compression, bool) {
	switch s {
	case "none":
		return CompressionNone, true
	case "lz4":
		return CompressionLZ4, true
	case "zstd", "":
		return CompressionZSTD, true
	default:
		return 0, false
	}
}

var (
	// ErrCorruptEnvelope reports an envelope with a bad magic, version,
	// length, checksum or payload.
	ErrCorruptEnvelope = errors.New("wisdom: corrupt envelope")

	// ErrPrecisionMismatch reports an envelope written for the other precision.
	ErrPrecisionMismatch = errors.New("wisdom: precision mismatch")
)

// Envelope format (little endian):
//
//	[0:4)   magic "FWSD"
//	[4]     version
//	[5]     compression of the stored payload
//	[6]     precision
//	[7]     reserved, zero
//	[8:12)  uncompressed length
//	[12:16) CRC32C of the uncompressed payload
//	[16:)   payload
const (
	magic      = "FWSD"
	version    = 1
	headerSize = 16

	// Compressed output above this share of the input is stored raw.
	minSavings = 0.9

	// MaxSize bounds the wisdom text an envelope may declare.
	MaxSize = 64 << 20
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Encode wraps exported wisdom text for storage.
func Encode(p fftwgo.Precision, raw []byte, c Compression) ([]byte, error) {
	size, err := conv.Length32(len(raw))
	if err != nil || size > MaxSize {
		return nil, fmt.Errorf("wisdom: %d bytes exceeds envelope limit %d", len(raw), MaxSize)
	}

	payload, stored, err := compress(raw, c)
	if err != nil {
		return nil, err
	}

	out := make([]byte, headerSize+len(payload))
	copy(out[0:4], magic)
	out[4] = version
	out[5] = byte(stored)
	out[6] = byte(p)
	binary.LittleEndian.PutUint32(out[8:], size)
	binary.LittleEndian.PutUint32(out[12:], hash.CRC32C(raw))
	copy(out[headerSize:], payload)
	return out, nil
}

// Decode unwraps an envelope and returns the wisdom text. want is the
// precision of the domain that will import it.
func Decode(want fftwgo.Precision, data []byte) ([]byte, error) {
	if len(data) < headerSize || string(data[0:4]) != magic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorruptEnvelope)
	}
	if data[4] != version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptEnvelope, data[4])
	}
	if got := fftwgo.Precision(data[6]); got != want {
		return nil, fmt.Errorf("%w: envelope holds %s, domain is %s", ErrPrecisionMismatch, got, want)
	}

	size := binary.LittleEndian.Uint32(data[8:])
	sum := binary.LittleEndian.Uint32(data[12:])
	if size > MaxSize {
		return nil, fmt.Errorf("%w: declared size %d exceeds %d", ErrCorruptEnvelope, size, MaxSize)
	}

	raw, err := decompress(data[headerSize:], Compression(data[5]), size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptEnvelope, err)
	}
	if hash.CRC32C(raw) != sum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptEnvelope)
	}
	return raw, nil
}

func compress(raw []byte, c Compression) ([]byte, Compression, error) {
	if c == CompressionNone || len(raw) == 0 {
		return raw, CompressionNone, nil
	}

	var out []byte
	switch c {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, buf, nil)
		if err != nil {
			return nil, 0, err
		}
		out = buf[:n] // n == 0 means incompressible
	case CompressionZSTD:
		enc := getZstdEncoder()
		out = enc.EncodeAll(raw, nil)
		putZstdEncoder(enc)
	default:
		return nil, 0, fmt.Errorf("wisdom: unknown compression %d", uint8(c))
	}

	if len(out) == 0 || float64(len(out)) > float64(len(raw))*minSavings {
		return raw, CompressionNone, nil
	}
	return out, c, nil
}

func decompress(payload []byte, c Compression, size uint32) ([]byte, error) {
	n, err := conv.Int(size)
	if err != nil {
		return nil, err
	}

	switch c {
	case CompressionNone:
		if len(payload) != n {
			return nil, errors.New("length mismatch")
		}
		return payload, nil

	case CompressionLZ4:
		result := make([]byte, n)
		got, err := lz4.UncompressBlock(payload, result)
		if err != nil {
			return nil, err
		}
		if got != n {
			return nil, errors.New("decompressed size mismatch")
		}
		return result, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(payload, make([]byte, 0, n))
		if err != nil {
			return nil, err
		}
		if len(decoded) != n {
			return nil, errors.New("decompressed size mismatch")
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("unknown compression %d", uint8(c))
	}
}
