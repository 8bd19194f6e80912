package types

import (
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/wire"
	uuid "github.com/satori/go.uuid"
)

// UUID is the 16-byte big-endian identifier type (spec §3), backed by
// satori/go.uuid's array representation rather than a hand-rolled byte
// array — the one pack dependency offering a ready UUID domain type
// (string form, nil check, comparison) on top of the raw 16 bytes.
type UUID struct {
	uuid.UUID
}

// NewUUID wraps an existing satori/go.uuid value.
func NewUUID(u uuid.UUID) UUID {
	return UUID{UUID: u}
}

// Decode reads 16 raw bytes, identity transform.
func (u *UUID) Decode(r io.Reader) error {
	var buf [16]byte
	if err := wire.ReadFull(r, buf[:]); err != nil {
		return err
	}

	u.UUID = uuid.UUID(buf)
	return nil
}

// Encode writes the 16 raw bytes, identity transform.
func (u UUID) Encode(w io.Writer) error {
	return wire.WriteAll(w, u.UUID[:])
}

// Size is the constant 16-byte wire size of a UUID.
func (u UUID) Size() (wire.VarInt, error) {
	return 16, nil
}
