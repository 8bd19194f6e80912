package wire

import (
	"io"
	"math"

	"github.com/SubZeroLabs/MinecraftTypes/endian"
	"github.com/SubZeroLabs/MinecraftTypes/internal/errs"
)

// Engine is the byte order used for every fixed-width primitive on the
// wire. The protocol edition this codec targets is frozen big-endian; the
// EndianEngine abstraction is kept (rather than calling encoding/binary
// directly) so a future protocol revision only has to swap this value.
var Engine endian.EndianEngine = endian.GetBigEndianEngine()

// ReadBool decodes a single boolean octet. Any byte other than 0x00 or
// 0x01 is a malformed-boolean failure; the reader position still advances
// by exactly one byte.
func ReadBool(r io.Reader) (bool, error) {
	var buf [1]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return false, err
	}

	switch buf[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, errs.ErrMalformedBoolean
	}
}

// WriteBool encodes a boolean as a single 0x00/0x01 octet.
func WriteBool(w io.Writer, v bool) error {
	var b byte
	if v {
		b = 0x01
	}

	return WriteAll(w, []byte{b})
}

// SizeBool is the constant wire size of a boolean.
func SizeBool() VarInt { return VarInt(1) }

// ReadU8 decodes a single unsigned byte.
func ReadU8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return buf[0], nil
}

// WriteU8 encodes a single unsigned byte.
func WriteU8(w io.Writer, v uint8) error {
	return WriteAll(w, []byte{v})
}

// ReadI8 decodes a single signed byte.
func ReadI8(r io.Reader) (int8, error) {
	v, err := ReadU8(r)
	return int8(v), err //nolint:gosec
}

// WriteI8 encodes a single signed byte.
func WriteI8(w io.Writer, v int8) error {
	return WriteU8(w, uint8(v)) //nolint:gosec
}

// ReadU16 decodes a big-endian unsigned 16-bit integer.
func ReadU16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return Engine.Uint16(buf[:]), nil
}

// WriteU16 encodes a big-endian unsigned 16-bit integer.
func WriteU16(w io.Writer, v uint16) error {
	buf := Engine.AppendUint16(nil, v)
	return WriteAll(w, buf)
}

// ReadI16 decodes a big-endian signed 16-bit integer.
func ReadI16(r io.Reader) (int16, error) {
	v, err := ReadU16(r)
	return int16(v), err //nolint:gosec
}

// WriteI16 encodes a big-endian signed 16-bit integer.
func WriteI16(w io.Writer, v int16) error {
	return WriteU16(w, uint16(v)) //nolint:gosec
}

// ReadU32 decodes a big-endian unsigned 32-bit integer.
func ReadU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return Engine.Uint32(buf[:]), nil
}

// WriteU32 encodes a big-endian unsigned 32-bit integer.
func WriteU32(w io.Writer, v uint32) error {
	buf := Engine.AppendUint32(nil, v)
	return WriteAll(w, buf)
}

// ReadI32 decodes a big-endian signed 32-bit integer.
func ReadI32(r io.Reader) (int32, error) {
	v, err := ReadU32(r)
	return int32(v), err //nolint:gosec
}

// WriteI32 encodes a big-endian signed 32-bit integer.
func WriteI32(w io.Writer, v int32) error {
	return WriteU32(w, uint32(v)) //nolint:gosec
}

// ReadU64 decodes a big-endian unsigned 64-bit integer.
func ReadU64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return Engine.Uint64(buf[:]), nil
}

// WriteU64 encodes a big-endian unsigned 64-bit integer.
func WriteU64(w io.Writer, v uint64) error {
	buf := Engine.AppendUint64(nil, v)
	return WriteAll(w, buf)
}

// ReadI64 decodes a big-endian signed 64-bit integer.
func ReadI64(r io.Reader) (int64, error) {
	v, err := ReadU64(r)
	return int64(v), err //nolint:gosec
}

// WriteI64 encodes a big-endian signed 64-bit integer.
func WriteI64(w io.Writer, v int64) error {
	return WriteU64(w, uint64(v)) //nolint:gosec
}

// ReadF32 decodes a big-endian IEEE 754 single-precision float.
func ReadF32(r io.Reader) (float32, error) {
	v, err := ReadU32(r)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// WriteF32 encodes a big-endian IEEE 754 single-precision float.
func WriteF32(w io.Writer, v float32) error {
	return WriteU32(w, math.Float32bits(v))
}

// ReadF64 decodes a big-endian IEEE 754 double-precision float.
func ReadF64(r io.Reader) (float64, error) {
	v, err := ReadU64(r)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

// WriteF64 encodes a big-endian IEEE 754 double-precision float.
func WriteF64(w io.Writer, v float64) error {
	return WriteU64(w, math.Float64bits(v))
}

// SizeFixed returns the constant wire size, in bytes, of a fixed-width
// primitive of n bytes.
func SizeFixed(n int) VarInt { return VarInt(n) } //nolint:gosec
