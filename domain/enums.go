// Package domain implements the L5 domain types built from L4: Slot,
// MetadataEntry (19-variant union), Particle (89-variant union),
// Direction/Pose/VillagerType/VillagerProfession (payload-less unions).
// Grounded on original_source/src/base_types.rs's auto_enum!/auto_struct!
// declarations.
package domain

import (
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/codec"
	"github.com/SubZeroLabs/MinecraftTypes/internal/errs"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// Direction is a payload-less VarInt-indexed enum of cardinal/vertical
// directions.
type Direction int32

const (
	DirectionDown Direction = iota
	DirectionUp
	DirectionNorth
	DirectionSouth
	DirectionWest
	DirectionEast
)

func (d *Direction) Decode(r io.Reader) error {
	return codec.DecodeDiscriminant(r, func(idx int) error {
		if idx < int(DirectionDown) || idx > int(DirectionEast) {
			return errs.ErrUnknownDiscriminant
		}

		*d = Direction(idx)
		return nil
	})
}

func (d Direction) Encode(w io.Writer) error {
	return codec.EncodeDiscriminant(w, int(d), nil)
}

func (d Direction) Size() (wire.VarInt, error) {
	return codec.SizeDiscriminant(int(d), nil)
}

// Pose is a payload-less VarInt-indexed enum of entity poses.
type Pose int32

const (
	PoseStanding Pose = iota
	PoseFallFlying
	PoseSleeping
	PoseSwimming
	PoseSpinAttack
	PoseSneaking
	PoseLongJumping
	PoseDying
)

func (p *Pose) Decode(r io.Reader) error {
	return codec.DecodeDiscriminant(r, func(idx int) error {
		if idx < int(PoseStanding) || idx > int(PoseDying) {
			return errs.ErrUnknownDiscriminant
		}

		*p = Pose(idx)
		return nil
	})
}

func (p Pose) Encode(w io.Writer) error {
	return codec.EncodeDiscriminant(w, int(p), nil)
}

func (p Pose) Size() (wire.VarInt, error) {
	return codec.SizeDiscriminant(int(p), nil)
}

// VillagerType is a payload-less VarInt-indexed enum of villager biome
// types.
type VillagerType int32

const (
	VillagerTypeDesert VillagerType = iota
	VillagerTypeJungle
	VillagerTypePlains
	VillagerTypeSavanna
	VillagerTypeSnow
	VillagerTypeSwamp
	VillagerTypeTaiga
)

func (v *VillagerType) Decode(r io.Reader) error {
	return codec.DecodeDiscriminant(r, func(idx int) error {
		if idx < int(VillagerTypeDesert) || idx > int(VillagerTypeTaiga) {
			return errs.ErrUnknownDiscriminant
		}

		*v = VillagerType(idx)
		return nil
	})
}

func (v VillagerType) Encode(w io.Writer) error {
	return codec.EncodeDiscriminant(w, int(v), nil)
}

func (v VillagerType) Size() (wire.VarInt, error) {
	return codec.SizeDiscriminant(int(v), nil)
}

// VillagerProfession is a payload-less VarInt-indexed enum of villager
// professions.
type VillagerProfession int32

const (
	VillagerProfessionNone VillagerProfession = iota
	VillagerProfessionArmorer
	VillagerProfessionButcher
	VillagerProfessionCartographer
	VillagerProfessionCleric
	VillagerProfessionFarmer
	VillagerProfessionFisherman
	VillagerProfessionFletcher
	VillagerProfessionLeatherWorker
	VillagerProfessionLibrarian
	VillagerProfessionMason
	VillagerProfessionNitwit
	VillagerProfessionShepherd
	VillagerProfessionToolSmith
	VillagerProfessionWeaponSmith
)

func (v *VillagerProfession) Decode(r io.Reader) error {
	return codec.DecodeDiscriminant(r, func(idx int) error {
		if idx < int(VillagerProfessionNone) || idx > int(VillagerProfessionWeaponSmith) {
			return errs.ErrUnknownDiscriminant
		}

		*v = VillagerProfession(idx)
		return nil
	})
}

func (v VillagerProfession) Encode(w io.Writer) error {
	return codec.EncodeDiscriminant(w, int(v), nil)
}

func (v VillagerProfession) Size() (wire.VarInt, error) {
	return codec.SizeDiscriminant(int(v), nil)
}
