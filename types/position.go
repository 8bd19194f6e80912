package types

import (
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// Position packs three signed coordinates into a single 64-bit big-endian
// word: X in the high 26 bits, Z in the middle 26 bits, Y in the low 12
// bits. All three fields are sign-extended on decode (spec §3, resolving
// the source's inconsistent handling of Y per SPEC_FULL.md §13).
type Position struct {
	X int32
	Y int32
	Z int32
}

// NewPosition constructs a Position from its three coordinates.
func NewPosition(x, y, z int32) Position {
	return Position{X: x, Y: y, Z: z}
}

// Decode reads the packed 64-bit word and extracts X, Z (26-bit,
// sign-extended) and Y (12-bit, sign-extended).
func (p *Position) Decode(r io.Reader) error {
	w, err := wire.ReadU64(r)
	if err != nil {
		return err
	}

	p.X = signExtend(int64(w>>38), 26)
	p.Z = signExtend(int64(w<<26)>>38, 26)
	p.Y = signExtend(int64(w&0xFFF), 12)

	return nil
}

// Encode packs X, Y, Z into the 64-bit word and writes it big-endian.
func (p Position) Encode(w io.Writer) error {
	packed := (uint64(p.X)&0x3FFFFFF)<<38 | (uint64(p.Z)&0x3FFFFFF)<<12 | (uint64(p.Y) & 0xFFF)
	return wire.WriteU64(w, packed)
}

// Size is the constant 8-byte wire size of a Position.
func (p Position) Size() (wire.VarInt, error) {
	return 8, nil
}

// signExtend sign-extends the low bits-wide field of v into a full int32.
func signExtend(v int64, bits uint) int32 {
	shift := 64 - bits
	return int32(v << shift >> shift) //nolint:gosec
}
