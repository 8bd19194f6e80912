// Package types implements the composite scalar wire types (L2): bounded
// strings, the packed Position triple, UUID, and Angle.
package types

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/SubZeroLabs/MinecraftTypes/internal/errs"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// String is a UTF-8 string bounded by a static character-count limit
// Limit. Decode enforces byteLen <= 4*Limit; encode enforces
// byteLen <= Limit; both are checked before the violating bytes are read
// or written, per spec.
type String struct {
	Limit wire.VarInt
	Value string
}

// NewString constructs a String bound to limit, holding value.
func NewString(limit wire.VarInt, value string) String {
	return String{Limit: limit, Value: value}
}

// Named constructors for the character limits used across the message
// catalog (spec §3).
const (
	LimitPlayerName  wire.VarInt = 16
	LimitServerID    wire.VarInt = 20
	LimitIdentifier  wire.VarInt = 32767
	LimitScoreName   wire.VarInt = 40
	LimitServerAddr  wire.VarInt = 255
	LimitChatJSON    wire.VarInt = 262144
)

// NewPlayerName constructs a 16-character-limited string.
func NewPlayerName(value string) String { return NewString(LimitPlayerName, value) }

// NewServerID constructs a 20-character-limited string.
func NewServerID(value string) String { return NewString(LimitServerID, value) }

// NewIdentifier constructs a 32767-character-limited string.
func NewIdentifier(value string) String { return NewString(LimitIdentifier, value) }

// NewScoreName constructs a 40-character-limited string.
func NewScoreName(value string) String { return NewString(LimitScoreName, value) }

// NewServerAddress constructs a 255-character-limited string.
func NewServerAddress(value string) String { return NewString(LimitServerAddr, value) }

// NewChatJSON constructs a 262144-character-limited string.
func NewChatJSON(value string) String { return NewString(LimitChatJSON, value) }

// Decode reads a VarInt byte length, rejects it if it exceeds 4*Limit,
// reads exactly that many bytes, and UTF-8-validates them. Limit must
// already be set on s (the aggregate declaring this field is responsible
// for constructing the zero value with the correct limit before calling
// Decode, matching how the record declarator threads per-field type
// parameters in the other layers).
func (s *String) Decode(r io.Reader) error {
	var length wire.VarInt
	if err := length.Decode(r); err != nil {
		return err
	}

	if s.Limit != 0 && length > s.Limit*4 {
		return errs.ErrStringTooLong
	}

	buf := make([]byte, int(length))
	if err := wire.ReadFull(r, buf); err != nil {
		return err
	}

	if !utf8.Valid(buf) {
		return errs.ErrInvalidUTF8
	}

	s.Value = string(buf)
	return nil
}

// Encode writes the VarInt byte length (failing if it exceeds Limit)
// followed by the UTF-8 bytes.
func (s String) Encode(w io.Writer) error {
	b := []byte(s.Value)
	length := wire.VarInt(len(b)) //nolint:gosec

	if s.Limit != 0 && length > s.Limit {
		return errs.ErrStringTooLong
	}

	if err := length.Encode(w); err != nil {
		return err
	}

	return wire.WriteAll(w, b)
}

// Size reports the VarInt-encoded length prefix plus the UTF-8 byte count.
func (s String) Size() (wire.VarInt, error) {
	length := wire.VarInt(len(s.Value)) //nolint:gosec

	prefixSize, err := length.Size()
	if err != nil {
		return 0, err
	}

	return prefixSize + length, nil
}

// ReadAll drains r entirely into a string without any length prefix or
// cap, used by the rare reader-terminated payload (e.g. a plugin-channel
// message body whose bound comes from the enclosing packet framing, not
// from a VarInt of its own).
func ReadAll(r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return "", err
	}

	return buf.String(), nil
}
