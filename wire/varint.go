package wire

import (
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/internal/errs"
)

// VarInt is a variable-length encoding of a signed 32-bit integer: seven
// payload bits per byte, MSB-first within each byte set as a continuation
// flag, LSB-group first across bytes. Negative values are carried through
// their 32-bit two's-complement bit pattern, so VarInt always occupies its
// maximum five bytes for any negative input.
type VarInt int32

// VarLong is the 64-bit counterpart of VarInt: ten bytes maximum, 70-bit
// offset ceiling.
type VarLong int64

const (
	varIntBitLimit  = 35
	varLongBitLimit = 70

	continuationBit = 0x80
	payloadMask     = 0x7F
)

// Decode reads a VarInt, failing with errs.ErrOverlongVarInt if no
// terminating byte (continuation bit clear) appears within 5 bytes.
func (v *VarInt) Decode(r io.Reader) error {
	var value int32
	var bitOffset uint

	for {
		if bitOffset == varIntBitLimit {
			return errs.ErrOverlongVarInt
		}

		var buf [1]byte
		if err := ReadFull(r, buf[:]); err != nil {
			return err
		}

		b := buf[0]
		value |= int32(b&payloadMask) << bitOffset
		bitOffset += 7

		if b&continuationBit == 0 {
			*v = VarInt(value)
			return nil
		}
	}
}

// Encode writes v's 7-bit-group encoding. The sign bit, if set, is carried
// through the 32-bit unsigned bit pattern, so negative values always
// encode as exactly 5 bytes.
func (v VarInt) Encode(w io.Writer) error {
	temp := uint32(v) //nolint:gosec

	for {
		if temp&0xFFFFFF80 == 0 {
			return WriteU8(w, uint8(temp)) //nolint:gosec
		}

		if err := WriteU8(w, uint8(temp&payloadMask)|continuationBit); err != nil { //nolint:gosec
			return err
		}

		temp >>= 7
	}
}

// Size reports the number of bytes Encode would write: 1 to 5.
func (v VarInt) Size() (VarInt, error) {
	temp := uint32(v) //nolint:gosec

	var size VarInt
	for {
		size++
		if temp&0xFFFFFF80 == 0 {
			return size, nil
		}

		temp >>= 7
	}
}

// DecodeVarIntWithLength decodes a VarInt and additionally reports how many
// bytes its encoding occupied, for callers that need to account for
// prefix length separately from the decoded value (e.g. framing layers).
func DecodeVarIntWithLength(r io.Reader) (VarInt, VarInt, error) {
	var value int32
	var bitOffset uint
	var consumed VarInt

	for {
		if bitOffset == varIntBitLimit {
			return 0, 0, errs.ErrOverlongVarInt
		}

		var buf [1]byte
		if err := ReadFull(r, buf[:]); err != nil {
			return 0, 0, err
		}

		consumed++
		b := buf[0]
		value |= int32(b&payloadMask) << bitOffset
		bitOffset += 7

		if b&continuationBit == 0 {
			return consumed, VarInt(value), nil
		}
	}
}

// Int32 returns v's numeric value as an int32.
func (v VarInt) Int32() int32 { return int32(v) }

// Decode reads a VarLong, failing with errs.ErrOverlongVarLong if no
// terminating byte appears within 10 bytes.
func (v *VarLong) Decode(r io.Reader) error {
	var value int64
	var bitOffset uint

	for {
		if bitOffset == varLongBitLimit {
			return errs.ErrOverlongVarLong
		}

		var buf [1]byte
		if err := ReadFull(r, buf[:]); err != nil {
			return err
		}

		b := buf[0]
		value |= int64(b&payloadMask) << bitOffset
		bitOffset += 7

		if b&continuationBit == 0 {
			*v = VarLong(value)
			return nil
		}
	}
}

// Encode writes v's 7-bit-group encoding, always exactly 10 bytes for
// negative values.
func (v VarLong) Encode(w io.Writer) error {
	temp := uint64(v) //nolint:gosec

	for {
		if temp&0xFFFFFFFFFFFFFF80 == 0 {
			return WriteU8(w, uint8(temp)) //nolint:gosec
		}

		if err := WriteU8(w, uint8(temp&payloadMask)|continuationBit); err != nil { //nolint:gosec
			return err
		}

		temp >>= 7
	}
}

// Size reports the number of bytes Encode would write: 1 to 10.
func (v VarLong) Size() (VarInt, error) {
	temp := uint64(v) //nolint:gosec

	var size VarInt
	for {
		size++
		if temp&0xFFFFFFFFFFFFFF80 == 0 {
			return size, nil
		}

		temp >>= 7
	}
}

// Int64 returns v's numeric value as an int64.
func (v VarLong) Int64() int64 { return int64(v) }

// AsInt converts v to an int, failing with errs.ErrNotRepresentable if the
// platform's int cannot hold it losslessly. On all platforms this module
// targets (32-bit int or wider), the conversion always succeeds.
func (v VarInt) AsInt() (int, error) {
	return int(v), nil
}

// VarIntFromInt builds a VarInt from an int, failing with
// errs.ErrNotRepresentable if n does not fit in 32 bits.
func VarIntFromInt(n int) (VarInt, error) {
	if n > 0x7FFFFFFF || n < -0x80000000 {
		return 0, errs.ErrNotRepresentable
	}

	return VarInt(n), nil //nolint:gosec
}
