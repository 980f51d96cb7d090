package bitmap

import (
	"encoding/binary"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/bitkit"
	"github.com/hupe1980/bitkit/word"
)

// Compression selects the block compression of a snapshot.
type Compression uint8

const (
	// CompressionNone stores the serialized bitmap as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, good for hot data).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio, good for cold data).
	CompressionZSTD Compression = 2
)

// String returns the name of the compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return "unknown"
	}
}

// ErrCorruptSnapshot is returned when snapshot bytes cannot be decoded.
var ErrCorruptSnapshot = errors.New("corrupt bitmap snapshot")

// Snapshot layout: [Compression uint8][RawSize uint32][StoredSize uint32][Data...]
// StoredSize == 0 means Data holds RawSize uncompressed bytes.
const headerSize = 9

const (
	// maxRawSize bounds the decoded bitmap. A serialized 32-bit roaring bitmap
	// never exceeds ~513 MiB (65536 containers of 8 KiB plus headers).
	maxRawSize = 1 << 30

	// maxLZ4Ratio is the largest expansion an LZ4 block can encode.
	maxLZ4Ratio = 255
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

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxRawSize))
	return dec
}

// Marshal serializes bm and compresses it with c. Data that does not shrink
// by at least 10% is stored uncompressed. bm is run-optimized in place.
func Marshal(bm *roaring.Bitmap, c Compression) ([]byte, error) {
	bm.RunOptimize()
	raw, err := bm.ToBytes()
	if err != nil {
		return nil, errors.Wrap(err, "serialize bitmap")
	}

	var packed []byte
	switch c {
	case CompressionNone:
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, buf, nil)
		if err != nil {
			return nil, errors.Wrap(err, "lz4 compress")
		}
		packed = buf[:n] // n == 0 means incompressible
	case CompressionZSTD:
		enc := getZstdEncoder()
		packed = enc.EncodeAll(raw, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, errors.Newf("unknown compression %d", c)
	}

	if len(packed) == 0 || float64(len(packed)) > float64(len(raw))*0.9 {
		out := make([]byte, headerSize+len(raw))
		out[0] = byte(c)
		binary.LittleEndian.PutUint32(out[1:], uint32(len(raw)))
		binary.LittleEndian.PutUint32(out[5:], 0)
		copy(out[headerSize:], raw)
		return out, nil
	}

	out := make([]byte, headerSize+len(packed))
	out[0] = byte(c)
	binary.LittleEndian.PutUint32(out[1:], uint32(len(raw)))
	binary.LittleEndian.PutUint32(out[5:], uint32(len(packed)))
	copy(out[headerSize:], packed)
	return out, nil
}

// Unmarshal decodes a snapshot produced by Marshal.
func Unmarshal(data []byte) (*roaring.Bitmap, error) {
	if len(data) < headerSize {
		return nil, errors.Wrap(ErrCorruptSnapshot, "short header")
	}
	c := Compression(data[0])
	rawSize := binary.LittleEndian.Uint32(data[1:])
	storedSize := binary.LittleEndian.Uint32(data[5:])
	body := data[headerSize:]

	if rawSize > maxRawSize {
		return nil, errors.Wrapf(ErrCorruptSnapshot, "raw size %d exceeds limit", rawSize)
	}

	var raw []byte
	switch {
	case storedSize == 0:
		if uint64(len(body)) < uint64(rawSize) {
			return nil, errors.Wrap(ErrCorruptSnapshot, "short data")
		}
		raw = body[:rawSize]
	case uint64(len(body)) < uint64(storedSize):
		return nil, errors.Wrap(ErrCorruptSnapshot, "short compressed data")
	default:
		body = body[:storedSize]
		switch c {
		case CompressionLZ4:
			// Checked before allocating: the header size is untrusted.
			if uint64(rawSize) > uint64(storedSize)*maxLZ4Ratio+16 {
				return nil, errors.Wrapf(ErrCorruptSnapshot, "raw size %d impossible for %d lz4 bytes", rawSize, storedSize)
			}
			raw = make([]byte, rawSize)
			n, err := lz4.UncompressBlock(body, raw)
			if err != nil {
				return nil, errors.Mark(errors.Wrap(err, "lz4 decompress"), ErrCorruptSnapshot)
			}
			if uint32(n) != rawSize {
				return nil, errors.Wrap(ErrCorruptSnapshot, "decompressed size mismatch")
			}
		case CompressionZSTD:
			dec := getZstdDecoder()
			// The output grows with the decoded data, capped by the decoder.
			decoded, err := dec.DecodeAll(body, nil)
			zstdDecoderPool.Put(dec)
			if err != nil {
				return nil, errors.Mark(errors.Wrap(err, "zstd decompress"), ErrCorruptSnapshot)
			}
			if uint32(len(decoded)) != rawSize {
				return nil, errors.Wrap(ErrCorruptSnapshot, "decompressed size mismatch")
			}
			raw = decoded
		default:
			return nil, errors.Wrapf(ErrCorruptSnapshot, "unknown compression %d", c)
		}
	}

	bm := roaring.New()
	if err := bm.UnmarshalBinary(raw); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode bitmap"), ErrCorruptSnapshot)
	}
	return bm, nil
}

// Snapshot exports [first, last) as compressed snapshot bytes.
func Snapshot[W word.Word, C bitkit.Cursor[W, C]](first, last bitkit.Iterator[W, C], c Compression) ([]byte, error) {
	bm, err := FromRange(first, last)
	if err != nil {
		return nil, err
	}
	return Marshal(bm, c)
}

// Restore overwrites [first, last) with the bits stored in a snapshot.
func Restore[W word.Word, C bitkit.RandomAccessCursor[W, C]](first, last bitkit.Iterator[W, C], data []byte) error {
	bm, err := Unmarshal(data)
	if err != nil {
		return err
	}
	return Apply(first, last, bm)
}
