package types

import (
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// Angle is a single unsigned byte representing value * 360/256 degrees
// (spec §3). The codec carries the raw byte; degree conversion is a
// convenience the caller may apply, not a codec concern.
type Angle struct {
	Raw uint8
}

// NewAngle constructs an Angle from a raw byte.
func NewAngle(raw uint8) Angle { return Angle{Raw: raw} }

// Degrees returns the angle in degrees, in [0, 360).
func (a Angle) Degrees() float64 {
	return float64(a.Raw) * 360.0 / 256.0
}

// Decode reads the single raw byte, identity transform.
func (a *Angle) Decode(r io.Reader) error {
	v, err := wire.ReadU8(r)
	if err != nil {
		return err
	}

	a.Raw = v
	return nil
}

// Encode writes the single raw byte, identity transform.
func (a Angle) Encode(w io.Writer) error {
	return wire.WriteU8(w, a.Raw)
}

// Size is the constant 1-byte wire size of an Angle.
func (a Angle) Size() (wire.VarInt, error) {
	return 1, nil
}
