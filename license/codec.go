package license

import (
	"encoding/binary"
	"fmt"
)

// EncodedSize is the wire size of a license in bytes.
const EncodedSize = 32

// DecodeError reports a malformed license buffer.
type DecodeError struct {
	Len      int
	TypeByte uint8
	BadType  bool
}

func (e *DecodeError) Error() string {
	if e.BadType {
		return fmt.Sprintf("license: invalid license type byte %d", e.TypeByte)
	}
	return fmt.Sprintf("license: buffer is %d bytes, want %d", e.Len, EncodedSize)
}

// Encode serializes to the 32-byte little-endian wire format.
func (l *License) Encode() [EncodedSize]byte {
	var buf [EncodedSize]byte
	binary.LittleEndian.PutUint64(buf[0:8], l.ContentHash)
	binary.LittleEndian.PutUint64(buf[8:16], l.ParamsHash)
	binary.LittleEndian.PutUint32(buf[16:20], l.TitleID)
	binary.LittleEndian.PutUint32(buf[20:24], l.Expires)
	binary.LittleEndian.PutUint16(buf[24:26], uint16(l.Rights))
	binary.LittleEndian.PutUint16(buf[26:28], l.MaxSeats)
	buf[28] = byte(l.Type)
	buf[29] = byte(l.Platform)
	// buf[30:32] reserved
	return buf
}

// Decode parses the 32-byte wire format. Buffers of the wrong length
// or with an undefined license type byte are rejected.
func Decode(data []byte) (License, error) {
	if len(data) != EncodedSize {
		return License{}, &DecodeError{Len: len(data)}
	}
	if data[28] >= byte(typeMax) {
		return License{}, &DecodeError{Len: len(data), TypeByte: data[28], BadType: true}
	}

	return License{
		ContentHash: binary.LittleEndian.Uint64(data[0:8]),
		ParamsHash:  binary.LittleEndian.Uint64(data[8:16]),
		TitleID:     binary.LittleEndian.Uint32(data[16:20]),
		Expires:     binary.LittleEndian.Uint32(data[20:24]),
		Rights:      Rights(binary.LittleEndian.Uint16(data[24:26])),
		MaxSeats:    binary.LittleEndian.Uint16(data[26:28]),
		Type:        Type(data[28]),
		Platform:    Platform(data[29]),
	}, nil
}
