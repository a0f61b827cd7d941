package param

import (
	"encoding/binary"
	"fmt"
	"math"
)

// DecodeError reports a malformed ParamSet buffer.
type DecodeError struct {
	Len int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("param: buffer is %d bytes, want %d", e.Len, EncodedSize)
}

// Encode returns the 40-byte wire form: each axis as a little-endian
// float32, in struct field order. Values are written as-is; callers
// that need canonical bytes should Clamp first.
func (p ParamSet) Encode() [EncodedSize]byte {
	var buf [EncodedSize]byte
	p.AppendBinary(buf[:0])
	return buf
}

// AppendBinary appends the wire form to b and returns the extended
// slice.
func (p ParamSet) AppendBinary(b []byte) []byte {
	for _, v := range p.fields() {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b
}

// Decode parses a 40-byte wire buffer. Any other length is an error.
// Decoded values are clamped into range, so a buffer holding NaN or
// out-of-range floats still yields a valid set.
func Decode(b []byte) (ParamSet, error) {
	if len(b) != EncodedSize {
		return ParamSet{}, &DecodeError{Len: len(b)}
	}
	var f [10]float32
	for i := range f {
		f[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	p := ParamSet{
		Weight:    f[0],
		Width:     f[1],
		Serif:     f[2],
		Contrast:  f[3],
		Slant:     f[4],
		XHeight:   f[5],
		CapHeight: f[6],
		Ascender:  f[7],
		Descender: f[8],
		Roundness: f[9],
	}
	p.Clamp()
	return p, nil
}

// FNV-1a 64-bit constants.
const (
	fnvOffset = 0xcbf29ce484222325
	fnvPrime  = 0x100000001b3
)

// Fingerprint hashes the wire encoding with FNV-1a. Equal sets always
// share a fingerprint; the converse does not hold, so callers using the
// fingerprint as a cache index must confirm with Equal.
func (p ParamSet) Fingerprint() uint64 {
	enc := p.Encode()
	h := uint64(fnvOffset)
	for _, b := range enc {
		h ^= uint64(b)
		h *= fnvPrime
	}
	return h
}

func (p ParamSet) fields() [10]float32 {
	return [10]float32{
		p.Weight, p.Width, p.Serif, p.Contrast, p.Slant,
		p.XHeight, p.CapHeight, p.Ascender, p.Descender, p.Roundness,
	}
}
