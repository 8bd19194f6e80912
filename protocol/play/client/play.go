// Package client implements a representative set of the play phase's
// client-bound messages (grounded on
// original_source/src/packets/play/client.rs). The handful of message
// kinds original_source marks `// todo` (Boss Bar, Tab-Complete, Declare
// Commands, Map Data, Trade List, Particle, Update Light) are carried
// forward as the same open questions in SPEC_FULL.md §9 and are not
// implemented here.
package client

import (
	"bytes"
	"context"
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/codec"
	"github.com/SubZeroLabs/MinecraftTypes/domain"
	"github.com/SubZeroLabs/MinecraftTypes/internal/intern"
	"github.com/SubZeroLabs/MinecraftTypes/nbt"
	"github.com/SubZeroLabs/MinecraftTypes/seq"
	"github.com/SubZeroLabs/MinecraftTypes/types"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// SpawnEntity introduces a non-living entity into the world.
type SpawnEntity struct {
	EntityID   wire.VarInt
	UUID       types.UUID
	EntityType wire.VarInt
	X, Y, Z    float64
	Pitch, Yaw types.Angle
	Data       int32
	VelocityX  int16
	VelocityY  int16
	VelocityZ  int16
}

func (s *SpawnEntity) Decode(r io.Reader) error {
	return decodeFields(
		f("SpawnEntity", "entity_id", func() error { return s.EntityID.Decode(r) }),
		f("SpawnEntity", "uuid", func() error { return s.UUID.Decode(r) }),
		f("SpawnEntity", "entity_type", func() error { return s.EntityType.Decode(r) }),
		f("SpawnEntity", "x", func() error { v, err := wire.ReadF64(r); s.X = v; return err }),
		f("SpawnEntity", "y", func() error { v, err := wire.ReadF64(r); s.Y = v; return err }),
		f("SpawnEntity", "z", func() error { v, err := wire.ReadF64(r); s.Z = v; return err }),
		f("SpawnEntity", "pitch", func() error { return s.Pitch.Decode(r) }),
		f("SpawnEntity", "yaw", func() error { return s.Yaw.Decode(r) }),
		f("SpawnEntity", "data", func() error { v, err := wire.ReadI32(r); s.Data = v; return err }),
		f("SpawnEntity", "velocity_x", func() error { v, err := wire.ReadI16(r); s.VelocityX = v; return err }),
		f("SpawnEntity", "velocity_y", func() error { v, err := wire.ReadI16(r); s.VelocityY = v; return err }),
		f("SpawnEntity", "velocity_z", func() error { v, err := wire.ReadI16(r); s.VelocityZ = v; return err }),
	)
}

func (s SpawnEntity) Encode(w io.Writer) error {
	return encodeFields(
		f("SpawnEntity", "entity_id", func() error { return s.EntityID.Encode(w) }),
		f("SpawnEntity", "uuid", func() error { return s.UUID.Encode(w) }),
		f("SpawnEntity", "entity_type", func() error { return s.EntityType.Encode(w) }),
		f("SpawnEntity", "x", func() error { return wire.WriteF64(w, s.X) }),
		f("SpawnEntity", "y", func() error { return wire.WriteF64(w, s.Y) }),
		f("SpawnEntity", "z", func() error { return wire.WriteF64(w, s.Z) }),
		f("SpawnEntity", "pitch", func() error { return s.Pitch.Encode(w) }),
		f("SpawnEntity", "yaw", func() error { return s.Yaw.Encode(w) }),
		f("SpawnEntity", "data", func() error { return wire.WriteI32(w, s.Data) }),
		f("SpawnEntity", "velocity_x", func() error { return wire.WriteI16(w, s.VelocityX) }),
		f("SpawnEntity", "velocity_y", func() error { return wire.WriteI16(w, s.VelocityY) }),
		f("SpawnEntity", "velocity_z", func() error { return wire.WriteI16(w, s.VelocityZ) }),
	)
}

func (s SpawnEntity) Size() (wire.VarInt, error) {
	idSize, err := s.EntityID.Size()
	if err != nil {
		return 0, err
	}

	typeSize, err := s.EntityType.Size()
	if err != nil {
		return 0, err
	}

	return idSize + 16 + typeSize + 24 + 2 + 4 + 6, nil
}

// SpawnExperienceOrb introduces an experience orb entity.
type SpawnExperienceOrb struct {
	EntityID wire.VarInt
	X, Y, Z  float64
	Count    int16
}

func (s *SpawnExperienceOrb) Decode(r io.Reader) error {
	return decodeFields(
		f("SpawnExperienceOrb", "entity_id", func() error { return s.EntityID.Decode(r) }),
		f("SpawnExperienceOrb", "x", func() error { v, err := wire.ReadF64(r); s.X = v; return err }),
		f("SpawnExperienceOrb", "y", func() error { v, err := wire.ReadF64(r); s.Y = v; return err }),
		f("SpawnExperienceOrb", "z", func() error { v, err := wire.ReadF64(r); s.Z = v; return err }),
		f("SpawnExperienceOrb", "count", func() error { v, err := wire.ReadI16(r); s.Count = v; return err }),
	)
}

func (s SpawnExperienceOrb) Encode(w io.Writer) error {
	return encodeFields(
		f("SpawnExperienceOrb", "entity_id", func() error { return s.EntityID.Encode(w) }),
		f("SpawnExperienceOrb", "x", func() error { return wire.WriteF64(w, s.X) }),
		f("SpawnExperienceOrb", "y", func() error { return wire.WriteF64(w, s.Y) }),
		f("SpawnExperienceOrb", "z", func() error { return wire.WriteF64(w, s.Z) }),
		f("SpawnExperienceOrb", "count", func() error { return wire.WriteI16(w, s.Count) }),
	)
}

func (s SpawnExperienceOrb) Size() (wire.VarInt, error) {
	idSize, err := s.EntityID.Size()
	if err != nil {
		return 0, err
	}

	return idSize + 24 + 2, nil
}

// SpawnLivingEntity introduces a living (mob) entity.
type SpawnLivingEntity struct {
	EntityID                        wire.VarInt
	UUID                            types.UUID
	EntityType                      wire.VarInt
	X, Y, Z                         float64
	Yaw, Pitch, HeadPitch           types.Angle
	VelocityX, VelocityY, VelocityZ int16
}

func (s *SpawnLivingEntity) Decode(r io.Reader) error {
	return decodeFields(
		f("SpawnLivingEntity", "entity_id", func() error { return s.EntityID.Decode(r) }),
		f("SpawnLivingEntity", "uuid", func() error { return s.UUID.Decode(r) }),
		f("SpawnLivingEntity", "entity_type", func() error { return s.EntityType.Decode(r) }),
		f("SpawnLivingEntity", "x", func() error { v, err := wire.ReadF64(r); s.X = v; return err }),
		f("SpawnLivingEntity", "y", func() error { v, err := wire.ReadF64(r); s.Y = v; return err }),
		f("SpawnLivingEntity", "z", func() error { v, err := wire.ReadF64(r); s.Z = v; return err }),
		f("SpawnLivingEntity", "yaw", func() error { return s.Yaw.Decode(r) }),
		f("SpawnLivingEntity", "pitch", func() error { return s.Pitch.Decode(r) }),
		f("SpawnLivingEntity", "head_pitch", func() error { return s.HeadPitch.Decode(r) }),
		f("SpawnLivingEntity", "velocity_x", func() error { v, err := wire.ReadI16(r); s.VelocityX = v; return err }),
		f("SpawnLivingEntity", "velocity_y", func() error { v, err := wire.ReadI16(r); s.VelocityY = v; return err }),
		f("SpawnLivingEntity", "velocity_z", func() error { v, err := wire.ReadI16(r); s.VelocityZ = v; return err }),
	)
}

func (s SpawnLivingEntity) Encode(w io.Writer) error {
	return encodeFields(
		f("SpawnLivingEntity", "entity_id", func() error { return s.EntityID.Encode(w) }),
		f("SpawnLivingEntity", "uuid", func() error { return s.UUID.Encode(w) }),
		f("SpawnLivingEntity", "entity_type", func() error { return s.EntityType.Encode(w) }),
		f("SpawnLivingEntity", "x", func() error { return wire.WriteF64(w, s.X) }),
		f("SpawnLivingEntity", "y", func() error { return wire.WriteF64(w, s.Y) }),
		f("SpawnLivingEntity", "z", func() error { return wire.WriteF64(w, s.Z) }),
		f("SpawnLivingEntity", "yaw", func() error { return s.Yaw.Encode(w) }),
		f("SpawnLivingEntity", "pitch", func() error { return s.Pitch.Encode(w) }),
		f("SpawnLivingEntity", "head_pitch", func() error { return s.HeadPitch.Encode(w) }),
		f("SpawnLivingEntity", "velocity_x", func() error { return wire.WriteI16(w, s.VelocityX) }),
		f("SpawnLivingEntity", "velocity_y", func() error { return wire.WriteI16(w, s.VelocityY) }),
		f("SpawnLivingEntity", "velocity_z", func() error { return wire.WriteI16(w, s.VelocityZ) }),
	)
}

func (s SpawnLivingEntity) Size() (wire.VarInt, error) {
	idSize, err := s.EntityID.Size()
	if err != nil {
		return 0, err
	}

	typeSize, err := s.EntityType.Size()
	if err != nil {
		return 0, err
	}

	return idSize + 16 + typeSize + 24 + 3 + 6, nil
}

// SpawnPainting introduces a painting entity.
type SpawnPainting struct {
	EntityID  wire.VarInt
	UUID      types.UUID
	Motive    wire.VarInt
	Location  types.Position
	Direction int8
}

func (s *SpawnPainting) Decode(r io.Reader) error {
	return decodeFields(
		f("SpawnPainting", "entity_id", func() error { return s.EntityID.Decode(r) }),
		f("SpawnPainting", "uuid", func() error { return s.UUID.Decode(r) }),
		f("SpawnPainting", "motive", func() error { return s.Motive.Decode(r) }),
		f("SpawnPainting", "location", func() error { return s.Location.Decode(r) }),
		f("SpawnPainting", "direction", func() error { v, err := wire.ReadI8(r); s.Direction = v; return err }),
	)
}

func (s SpawnPainting) Encode(w io.Writer) error {
	return encodeFields(
		f("SpawnPainting", "entity_id", func() error { return s.EntityID.Encode(w) }),
		f("SpawnPainting", "uuid", func() error { return s.UUID.Encode(w) }),
		f("SpawnPainting", "motive", func() error { return s.Motive.Encode(w) }),
		f("SpawnPainting", "location", func() error { return s.Location.Encode(w) }),
		f("SpawnPainting", "direction", func() error { return wire.WriteI8(w, s.Direction) }),
	)
}

func (s SpawnPainting) Size() (wire.VarInt, error) {
	idSize, err := s.EntityID.Size()
	if err != nil {
		return 0, err
	}

	motiveSize, err := s.Motive.Size()
	if err != nil {
		return 0, err
	}

	return idSize + 16 + motiveSize + 8 + 1, nil
}

// SpawnPlayer introduces a player entity.
type SpawnPlayer struct {
	EntityID   wire.VarInt
	UUID       types.UUID
	X, Y, Z    float64
	Yaw, Pitch types.Angle
}

func (s *SpawnPlayer) Decode(r io.Reader) error {
	return decodeFields(
		f("SpawnPlayer", "entity_id", func() error { return s.EntityID.Decode(r) }),
		f("SpawnPlayer", "uuid", func() error { return s.UUID.Decode(r) }),
		f("SpawnPlayer", "x", func() error { v, err := wire.ReadF64(r); s.X = v; return err }),
		f("SpawnPlayer", "y", func() error { v, err := wire.ReadF64(r); s.Y = v; return err }),
		f("SpawnPlayer", "z", func() error { v, err := wire.ReadF64(r); s.Z = v; return err }),
		f("SpawnPlayer", "yaw", func() error { return s.Yaw.Decode(r) }),
		f("SpawnPlayer", "pitch", func() error { return s.Pitch.Decode(r) }),
	)
}

func (s SpawnPlayer) Encode(w io.Writer) error {
	return encodeFields(
		f("SpawnPlayer", "entity_id", func() error { return s.EntityID.Encode(w) }),
		f("SpawnPlayer", "uuid", func() error { return s.UUID.Encode(w) }),
		f("SpawnPlayer", "x", func() error { return wire.WriteF64(w, s.X) }),
		f("SpawnPlayer", "y", func() error { return wire.WriteF64(w, s.Y) }),
		f("SpawnPlayer", "z", func() error { return wire.WriteF64(w, s.Z) }),
		f("SpawnPlayer", "yaw", func() error { return s.Yaw.Encode(w) }),
		f("SpawnPlayer", "pitch", func() error { return s.Pitch.Encode(w) }),
	)
}

func (s SpawnPlayer) Size() (wire.VarInt, error) {
	idSize, err := s.EntityID.Size()
	if err != nil {
		return 0, err
	}

	return idSize + 16 + 24 + 2, nil
}

// SculkVibrationSignalBlock signals a vibration travelling toward a
// fixed block destination.
type SculkVibrationSignalBlock struct {
	SourcePosition         types.Position
	DestinationIdentifier  types.String
	Destination            types.Position
	ArrivalTicks           wire.VarInt
}

func (s *SculkVibrationSignalBlock) Decode(r io.Reader) error {
	s.DestinationIdentifier = types.String{Limit: types.LimitIdentifier}
	return decodeFields(
		f("SculkVibrationSignalBlock", "source_position", func() error { return s.SourcePosition.Decode(r) }),
		f("SculkVibrationSignalBlock", "destination_identifier", func() error { return s.DestinationIdentifier.Decode(r) }),
		f("SculkVibrationSignalBlock", "destination", func() error { return s.Destination.Decode(r) }),
		f("SculkVibrationSignalBlock", "arrival_ticks", func() error { return s.ArrivalTicks.Decode(r) }),
	)
}

func (s SculkVibrationSignalBlock) Encode(w io.Writer) error {
	return encodeFields(
		f("SculkVibrationSignalBlock", "source_position", func() error { return s.SourcePosition.Encode(w) }),
		f("SculkVibrationSignalBlock", "destination_identifier", func() error { return s.DestinationIdentifier.Encode(w) }),
		f("SculkVibrationSignalBlock", "destination", func() error { return s.Destination.Encode(w) }),
		f("SculkVibrationSignalBlock", "arrival_ticks", func() error { return s.ArrivalTicks.Encode(w) }),
	)
}

func (s SculkVibrationSignalBlock) Size() (wire.VarInt, error) {
	idSize, err := s.DestinationIdentifier.Size()
	if err != nil {
		return 0, err
	}

	ticksSize, err := s.ArrivalTicks.Size()
	if err != nil {
		return 0, err
	}

	return 8 + idSize + 8 + ticksSize, nil
}

// SculkVibrationSignalEntity signals a vibration travelling toward a
// moving entity destination.
type SculkVibrationSignalEntity struct {
	SourcePosition        types.Position
	DestinationIdentifier types.String
	Destination           wire.VarInt
	ArrivalTicks          wire.VarInt
}

func (s *SculkVibrationSignalEntity) Decode(r io.Reader) error {
	s.DestinationIdentifier = types.String{Limit: types.LimitIdentifier}
	return decodeFields(
		f("SculkVibrationSignalEntity", "source_position", func() error { return s.SourcePosition.Decode(r) }),
		f("SculkVibrationSignalEntity", "destination_identifier", func() error { return s.DestinationIdentifier.Decode(r) }),
		f("SculkVibrationSignalEntity", "destination", func() error { return s.Destination.Decode(r) }),
		f("SculkVibrationSignalEntity", "arrival_ticks", func() error { return s.ArrivalTicks.Decode(r) }),
	)
}

func (s SculkVibrationSignalEntity) Encode(w io.Writer) error {
	return encodeFields(
		f("SculkVibrationSignalEntity", "source_position", func() error { return s.SourcePosition.Encode(w) }),
		f("SculkVibrationSignalEntity", "destination_identifier", func() error { return s.DestinationIdentifier.Encode(w) }),
		f("SculkVibrationSignalEntity", "destination", func() error { return s.Destination.Encode(w) }),
		f("SculkVibrationSignalEntity", "arrival_ticks", func() error { return s.ArrivalTicks.Encode(w) }),
	)
}

func (s SculkVibrationSignalEntity) Size() (wire.VarInt, error) {
	idSize, err := s.DestinationIdentifier.Size()
	if err != nil {
		return 0, err
	}

	destSize, err := s.Destination.Size()
	if err != nil {
		return 0, err
	}

	ticksSize, err := s.ArrivalTicks.Size()
	if err != nil {
		return 0, err
	}

	return 8 + idSize + destSize + ticksSize, nil
}

// EntityAnimation plays a one-shot animation on an entity.
type EntityAnimation struct {
	EntityID  wire.VarInt
	Animation uint8
}

func (e *EntityAnimation) Decode(r io.Reader) error {
	return decodeFields(
		f("EntityAnimation", "entity_id", func() error { return e.EntityID.Decode(r) }),
		f("EntityAnimation", "animation", func() error { v, err := wire.ReadU8(r); e.Animation = v; return err }),
	)
}

func (e EntityAnimation) Encode(w io.Writer) error {
	return encodeFields(
		f("EntityAnimation", "entity_id", func() error { return e.EntityID.Encode(w) }),
		f("EntityAnimation", "animation", func() error { return wire.WriteU8(w, e.Animation) }),
	)
}

func (e EntityAnimation) Size() (wire.VarInt, error) {
	idSize, err := e.EntityID.Size()
	if err != nil {
		return 0, err
	}

	return idSize + 1, nil
}

// Statistics reports the client's accumulated statistic values.
// original_source carries an explicit leading count field in addition to
// the array; the Go catalog folds that into the slice's own length.
type Statistics struct {
	Values []wire.VarInt
}

func (s *Statistics) Decode(r io.Reader) error {
	return codec.DecodeField("Statistics", "statistic", func() error {
		values, err := seq.DecodeLengthPrefixed[wire.VarInt](r, func() *wire.VarInt { return new(wire.VarInt) })
		s.Values = values
		return err
	})
}

func (s Statistics) Encode(w io.Writer) error {
	return codec.EncodeField("Statistics", "statistic", func() error {
		return seq.EncodeLengthPrefixed(w, s.Values, func(w io.Writer, v wire.VarInt) error { return v.Encode(w) })
	})
}

func (s Statistics) Size() (wire.VarInt, error) {
	return seq.SizeLengthPrefixed(s.Values, func(v wire.VarInt) (wire.VarInt, error) { return v.Size() })
}

// AcknowledgePlayerDigging confirms a digging action the server
// processed.
type AcknowledgePlayerDigging struct {
	Location   types.Position
	Block      wire.VarInt
	Status     wire.VarInt
	Successful bool
}

func (a *AcknowledgePlayerDigging) Decode(r io.Reader) error {
	return decodeFields(
		f("AcknowledgePlayerDigging", "location", func() error { return a.Location.Decode(r) }),
		f("AcknowledgePlayerDigging", "block", func() error { return a.Block.Decode(r) }),
		f("AcknowledgePlayerDigging", "status", func() error { return a.Status.Decode(r) }),
		f("AcknowledgePlayerDigging", "successful", func() error { v, err := wire.ReadBool(r); a.Successful = v; return err }),
	)
}

func (a AcknowledgePlayerDigging) Encode(w io.Writer) error {
	return encodeFields(
		f("AcknowledgePlayerDigging", "location", func() error { return a.Location.Encode(w) }),
		f("AcknowledgePlayerDigging", "block", func() error { return a.Block.Encode(w) }),
		f("AcknowledgePlayerDigging", "status", func() error { return a.Status.Encode(w) }),
		f("AcknowledgePlayerDigging", "successful", func() error { return wire.WriteBool(w, a.Successful) }),
	)
}

func (a AcknowledgePlayerDigging) Size() (wire.VarInt, error) {
	blockSize, err := a.Block.Size()
	if err != nil {
		return 0, err
	}

	statusSize, err := a.Status.Size()
	if err != nil {
		return 0, err
	}

	return 8 + blockSize + statusSize + 1, nil
}

// BlockBreakAnimation shows a block's crack progress. original_source
// types `location` as a bare VarInt rather than a Position; the Go
// catalog preserves that exactly since it is how the wild protocol
// encodes this particular message.
type BlockBreakAnimation struct {
	EntityID     wire.VarInt
	Location     wire.VarInt
	DestroyStage int8
}

func (b *BlockBreakAnimation) Decode(r io.Reader) error {
	return decodeFields(
		f("BlockBreakAnimation", "entity_id", func() error { return b.EntityID.Decode(r) }),
		f("BlockBreakAnimation", "location", func() error { return b.Location.Decode(r) }),
		f("BlockBreakAnimation", "destroy_stage", func() error { v, err := wire.ReadI8(r); b.DestroyStage = v; return err }),
	)
}

func (b BlockBreakAnimation) Encode(w io.Writer) error {
	return encodeFields(
		f("BlockBreakAnimation", "entity_id", func() error { return b.EntityID.Encode(w) }),
		f("BlockBreakAnimation", "location", func() error { return b.Location.Encode(w) }),
		f("BlockBreakAnimation", "destroy_stage", func() error { return wire.WriteI8(w, b.DestroyStage) }),
	)
}

func (b BlockBreakAnimation) Size() (wire.VarInt, error) {
	idSize, err := b.EntityID.Size()
	if err != nil {
		return 0, err
	}

	locSize, err := b.Location.Size()
	if err != nil {
		return 0, err
	}

	return idSize + locSize + 1, nil
}

// BlockEntityData updates a block entity's NBT data.
type BlockEntityData struct {
	Location types.Position
	Action   uint8
	NBTData  nbt.Tag
}

func (b *BlockEntityData) Decode(r io.Reader) error {
	return decodeFields(
		f("BlockEntityData", "location", func() error { return b.Location.Decode(r) }),
		f("BlockEntityData", "action", func() error { v, err := wire.ReadU8(r); b.Action = v; return err }),
		f("BlockEntityData", "nbt_data", func() error { return b.NBTData.Decode(r) }),
	)
}

func (b BlockEntityData) Encode(w io.Writer) error {
	return encodeFields(
		f("BlockEntityData", "location", func() error { return b.Location.Encode(w) }),
		f("BlockEntityData", "action", func() error { return wire.WriteU8(w, b.Action) }),
		f("BlockEntityData", "nbt_data", func() error { return b.NBTData.Encode(w) }),
	)
}

func (b BlockEntityData) Size() (wire.VarInt, error) {
	nbtSize, err := b.NBTData.Size()
	if err != nil {
		return 0, err
	}

	return 8 + 1 + nbtSize, nil
}

// BlockAction triggers a block-specific action (e.g. a chest's lid or a
// note block's note).
type BlockAction struct {
	Location     types.Position
	ActionID     uint8
	ActionParam  uint8
	BlockType    wire.VarInt
}

func (b *BlockAction) Decode(r io.Reader) error {
	return decodeFields(
		f("BlockAction", "location", func() error { return b.Location.Decode(r) }),
		f("BlockAction", "action_id", func() error { v, err := wire.ReadU8(r); b.ActionID = v; return err }),
		f("BlockAction", "action_param", func() error { v, err := wire.ReadU8(r); b.ActionParam = v; return err }),
		f("BlockAction", "block_type", func() error { return b.BlockType.Decode(r) }),
	)
}

func (b BlockAction) Encode(w io.Writer) error {
	return encodeFields(
		f("BlockAction", "location", func() error { return b.Location.Encode(w) }),
		f("BlockAction", "action_id", func() error { return wire.WriteU8(w, b.ActionID) }),
		f("BlockAction", "action_param", func() error { return wire.WriteU8(w, b.ActionParam) }),
		f("BlockAction", "block_type", func() error { return b.BlockType.Encode(w) }),
	)
}

func (b BlockAction) Size() (wire.VarInt, error) {
	typeSize, err := b.BlockType.Size()
	if err != nil {
		return 0, err
	}

	return 8 + 2 + typeSize, nil
}

// BlockChange replaces a single block.
type BlockChange struct {
	Location types.Position
	BlockID  wire.VarInt
}

func (b *BlockChange) Decode(r io.Reader) error {
	return decodeFields(
		f("BlockChange", "location", func() error { return b.Location.Decode(r) }),
		f("BlockChange", "block_id", func() error { return b.BlockID.Decode(r) }),
	)
}

func (b BlockChange) Encode(w io.Writer) error {
	return encodeFields(
		f("BlockChange", "location", func() error { return b.Location.Encode(w) }),
		f("BlockChange", "block_id", func() error { return b.BlockID.Encode(w) }),
	)
}

func (b BlockChange) Size() (wire.VarInt, error) {
	idSize, err := b.BlockID.Size()
	if err != nil {
		return 0, err
	}

	return 8 + idSize, nil
}

// ServerDifficulty announces the world's difficulty setting.
type ServerDifficulty struct {
	Difficulty        uint8
	DifficultyLocked  bool
}

func (s *ServerDifficulty) Decode(r io.Reader) error {
	return decodeFields(
		f("ServerDifficulty", "difficulty", func() error { v, err := wire.ReadU8(r); s.Difficulty = v; return err }),
		f("ServerDifficulty", "difficulty_locked", func() error { v, err := wire.ReadBool(r); s.DifficultyLocked = v; return err }),
	)
}

func (s ServerDifficulty) Encode(w io.Writer) error {
	return encodeFields(
		f("ServerDifficulty", "difficulty", func() error { return wire.WriteU8(w, s.Difficulty) }),
		f("ServerDifficulty", "difficulty_locked", func() error { return wire.WriteBool(w, s.DifficultyLocked) }),
	)
}

func (s ServerDifficulty) Size() (wire.VarInt, error) { return 2, nil }

// ChatMessage delivers a chat-JSON message to the client.
type ChatMessage struct {
	ChatJSON types.String
	Position int8
	Sender   types.UUID
}

func (c *ChatMessage) Decode(r io.Reader) error {
	c.ChatJSON = types.String{Limit: types.LimitChatJSON}
	return decodeFields(
		f("ChatMessage", "chat_json", func() error { return c.ChatJSON.Decode(r) }),
		f("ChatMessage", "position", func() error { v, err := wire.ReadI8(r); c.Position = v; return err }),
		f("ChatMessage", "sender", func() error { return c.Sender.Decode(r) }),
	)
}

func (c ChatMessage) Encode(w io.Writer) error {
	return encodeFields(
		f("ChatMessage", "chat_json", func() error { return c.ChatJSON.Encode(w) }),
		f("ChatMessage", "position", func() error { return wire.WriteI8(w, c.Position) }),
		f("ChatMessage", "sender", func() error { return c.Sender.Encode(w) }),
	)
}

func (c ChatMessage) Size() (wire.VarInt, error) {
	jsonSize, err := c.ChatJSON.Size()
	if err != nil {
		return 0, err
	}

	return jsonSize + 1 + 16, nil
}

// ClearTitles clears (and optionally resets) the client's title state.
type ClearTitles struct {
	Reset bool
}

func (c *ClearTitles) Decode(r io.Reader) error {
	return codec.DecodeField("ClearTitles", "reset", func() error {
		v, err := wire.ReadBool(r)
		c.Reset = v
		return err
	})
}

func (c ClearTitles) Encode(w io.Writer) error {
	return codec.EncodeField("ClearTitles", "reset", func() error { return wire.WriteBool(w, c.Reset) })
}

func (c ClearTitles) Size() (wire.VarInt, error) { return 1, nil }

// CloseWindow tells the client to close a window it has open.
type CloseWindow struct {
	WindowID uint8
}

func (c *CloseWindow) Decode(r io.Reader) error {
	return codec.DecodeField("CloseWindow", "window_id", func() error {
		v, err := wire.ReadU8(r)
		c.WindowID = v
		return err
	})
}

func (c CloseWindow) Encode(w io.Writer) error {
	return codec.EncodeField("CloseWindow", "window_id", func() error { return wire.WriteU8(w, c.WindowID) })
}

func (c CloseWindow) Size() (wire.VarInt, error) { return 1, nil }

// WindowItems replaces an entire window's contents.
type WindowItems struct {
	WindowID uint8
	StateID  wire.VarInt
	Slots    []domain.Slot
}

func (w *WindowItems) Decode(r io.Reader) error {
	if err := codec.DecodeField("WindowItems", "window_id", func() error {
		v, err := wire.ReadU8(r)
		w.WindowID = v
		return err
	}); err != nil {
		return err
	}

	if err := codec.DecodeField("WindowItems", "state_id", func() error {
		return w.StateID.Decode(r)
	}); err != nil {
		return err
	}

	return codec.DecodeField("WindowItems", "slot_data", func() error {
		slots, err := seq.DecodeLengthPrefixed[domain.Slot](r, func() *domain.Slot { return new(domain.Slot) })
		w.Slots = slots
		return err
	})
}

func (win WindowItems) Encode(w io.Writer) error {
	if err := codec.EncodeField("WindowItems", "window_id", func() error { return wire.WriteU8(w, win.WindowID) }); err != nil {
		return err
	}

	if err := codec.EncodeField("WindowItems", "state_id", func() error { return win.StateID.Encode(w) }); err != nil {
		return err
	}

	return codec.EncodeField("WindowItems", "slot_data", func() error {
		return seq.EncodeLengthPrefixed(w, win.Slots, func(w io.Writer, s domain.Slot) error { return s.Encode(w) })
	})
}

func (win WindowItems) Size() (wire.VarInt, error) {
	stateSize, err := win.StateID.Size()
	if err != nil {
		return 0, err
	}

	slotsSize, err := seq.SizeLengthPrefixed(win.Slots, func(s domain.Slot) (wire.VarInt, error) { return s.Size() })
	if err != nil {
		return 0, err
	}

	return 1 + stateSize + slotsSize, nil
}

// WindowProperty updates a single numeric window property (e.g. a
// furnace's cook progress).
type WindowProperty struct {
	WindowID uint8
	Property int16
	Value    int16
}

func (w *WindowProperty) Decode(r io.Reader) error {
	return decodeFields(
		f("WindowProperty", "window_id", func() error { v, err := wire.ReadU8(r); w.WindowID = v; return err }),
		f("WindowProperty", "property", func() error { v, err := wire.ReadI16(r); w.Property = v; return err }),
		f("WindowProperty", "value", func() error { v, err := wire.ReadI16(r); w.Value = v; return err }),
	)
}

func (w WindowProperty) Encode(writer io.Writer) error {
	return encodeFields(
		f("WindowProperty", "window_id", func() error { return wire.WriteU8(writer, w.WindowID) }),
		f("WindowProperty", "property", func() error { return wire.WriteI16(writer, w.Property) }),
		f("WindowProperty", "value", func() error { return wire.WriteI16(writer, w.Value) }),
	)
}

func (w WindowProperty) Size() (wire.VarInt, error) { return 5, nil }

// SetSlot overwrites a single inventory slot.
type SetSlot struct {
	WindowID uint8
	StateID  wire.VarInt
	Slot     int16
	SlotData domain.Slot
}

func (s *SetSlot) Decode(r io.Reader) error {
	return decodeFields(
		f("SetSlot", "window_id", func() error { v, err := wire.ReadU8(r); s.WindowID = v; return err }),
		f("SetSlot", "state_id", func() error { return s.StateID.Decode(r) }),
		f("SetSlot", "slot", func() error { v, err := wire.ReadI16(r); s.Slot = v; return err }),
		f("SetSlot", "slot_data", func() error { return s.SlotData.Decode(r) }),
	)
}

func (s SetSlot) Encode(w io.Writer) error {
	return encodeFields(
		f("SetSlot", "window_id", func() error { return wire.WriteU8(w, s.WindowID) }),
		f("SetSlot", "state_id", func() error { return s.StateID.Encode(w) }),
		f("SetSlot", "slot", func() error { return wire.WriteI16(w, s.Slot) }),
		f("SetSlot", "slot_data", func() error { return s.SlotData.Encode(w) }),
	)
}

func (s SetSlot) Size() (wire.VarInt, error) {
	stateSize, err := s.StateID.Size()
	if err != nil {
		return 0, err
	}

	slotSize, err := s.SlotData.Size()
	if err != nil {
		return 0, err
	}

	return 1 + stateSize + 2 + slotSize, nil
}

// SetCooldown sets a client-side item cooldown.
type SetCooldown struct {
	ItemID        wire.VarInt
	CooldownTicks wire.VarInt
}

func (s *SetCooldown) Decode(r io.Reader) error {
	return decodeFields(
		f("SetCooldown", "item_id", func() error { return s.ItemID.Decode(r) }),
		f("SetCooldown", "cooldown_ticks", func() error { return s.CooldownTicks.Decode(r) }),
	)
}

func (s SetCooldown) Encode(w io.Writer) error {
	return encodeFields(
		f("SetCooldown", "item_id", func() error { return s.ItemID.Encode(w) }),
		f("SetCooldown", "cooldown_ticks", func() error { return s.CooldownTicks.Encode(w) }),
	)
}

func (s SetCooldown) Size() (wire.VarInt, error) {
	idSize, err := s.ItemID.Size()
	if err != nil {
		return 0, err
	}

	ticksSize, err := s.CooldownTicks.Size()
	if err != nil {
		return 0, err
	}

	return idSize + ticksSize, nil
}

// PluginMessage carries an opaque payload on a named channel; Data is
// reader-terminated per SPEC_FULL.md §13.
type PluginMessage struct {
	Channel types.String
	Data    []byte
}

func (p *PluginMessage) Decode(r io.Reader) error {
	p.Channel = types.String{Limit: types.LimitIdentifier}
	if err := codec.DecodeField("PluginMessage", "channel", func() error { return p.Channel.Decode(r) }); err != nil {
		return err
	}

	return codec.DecodeField("PluginMessage", "data", func() error {
		data, err := types.ReadAll(r)
		p.Data = []byte(data)
		return err
	})
}

func (p PluginMessage) Encode(w io.Writer) error {
	if err := codec.EncodeField("PluginMessage", "channel", func() error { return p.Channel.Encode(w) }); err != nil {
		return err
	}

	return codec.EncodeField("PluginMessage", "data", func() error { return wire.WriteAll(w, p.Data) })
}

func (p PluginMessage) Size() (wire.VarInt, error) {
	chSize, err := p.Channel.Size()
	if err != nil {
		return 0, err
	}

	return chSize + wire.VarInt(len(p.Data)), nil //nolint:gosec
}

// NamedSoundEffect plays a sound identified by name at a fixed-point
// position.
type NamedSoundEffect struct {
	SoundName                                     types.String
	SoundCategory                                 wire.VarInt
	EffectPositionX, EffectPositionY, EffectPositionZ int32
	Volume, Pitch                                  float32
}

func (n *NamedSoundEffect) Decode(r io.Reader) error {
	n.SoundName = types.String{Limit: types.LimitIdentifier}
	return decodeFields(
		f("NamedSoundEffect", "sound_name", func() error { return n.SoundName.Decode(r) }),
		f("NamedSoundEffect", "sound_category", func() error { return n.SoundCategory.Decode(r) }),
		f("NamedSoundEffect", "effect_position_x", func() error { v, err := wire.ReadI32(r); n.EffectPositionX = v; return err }),
		f("NamedSoundEffect", "effect_position_y", func() error { v, err := wire.ReadI32(r); n.EffectPositionY = v; return err }),
		f("NamedSoundEffect", "effect_position_z", func() error { v, err := wire.ReadI32(r); n.EffectPositionZ = v; return err }),
		f("NamedSoundEffect", "volume", func() error { v, err := wire.ReadF32(r); n.Volume = v; return err }),
		f("NamedSoundEffect", "pitch", func() error { v, err := wire.ReadF32(r); n.Pitch = v; return err }),
	)
}

func (n NamedSoundEffect) Encode(w io.Writer) error {
	return encodeFields(
		f("NamedSoundEffect", "sound_name", func() error { return n.SoundName.Encode(w) }),
		f("NamedSoundEffect", "sound_category", func() error { return n.SoundCategory.Encode(w) }),
		f("NamedSoundEffect", "effect_position_x", func() error { return wire.WriteI32(w, n.EffectPositionX) }),
		f("NamedSoundEffect", "effect_position_y", func() error { return wire.WriteI32(w, n.EffectPositionY) }),
		f("NamedSoundEffect", "effect_position_z", func() error { return wire.WriteI32(w, n.EffectPositionZ) }),
		f("NamedSoundEffect", "volume", func() error { return wire.WriteF32(w, n.Volume) }),
		f("NamedSoundEffect", "pitch", func() error { return wire.WriteF32(w, n.Pitch) }),
	)
}

func (n NamedSoundEffect) Size() (wire.VarInt, error) {
	nameSize, err := n.SoundName.Size()
	if err != nil {
		return 0, err
	}

	catSize, err := n.SoundCategory.Size()
	if err != nil {
		return 0, err
	}

	return nameSize + catSize + 12 + 8, nil
}

// Disconnect closes the connection during play with a chat-JSON reason.
type Disconnect struct {
	Reason types.String
}

func (d *Disconnect) Decode(r io.Reader) error {
	d.Reason = types.String{Limit: types.LimitChatJSON}
	return codec.DecodeField("Disconnect", "reason", func() error { return d.Reason.Decode(r) })
}

func (d Disconnect) Encode(w io.Writer) error {
	return codec.EncodeField("Disconnect", "reason", func() error { return d.Reason.Encode(w) })
}

func (d Disconnect) Size() (wire.VarInt, error) { return d.Reason.Size() }

// EntityStatus triggers a client-side status effect/animation keyed by
// a byte code.
type EntityStatus struct {
	EntityID     int32
	EntityStatus int8
}

func (e *EntityStatus) Decode(r io.Reader) error {
	return decodeFields(
		f("EntityStatus", "entity_id", func() error { v, err := wire.ReadI32(r); e.EntityID = v; return err }),
		f("EntityStatus", "entity_status", func() error { v, err := wire.ReadI8(r); e.EntityStatus = v; return err }),
	)
}

func (e EntityStatus) Encode(w io.Writer) error {
	return encodeFields(
		f("EntityStatus", "entity_id", func() error { return wire.WriteI32(w, e.EntityID) }),
		f("EntityStatus", "entity_status", func() error { return wire.WriteI8(w, e.EntityStatus) }),
	)
}

func (e EntityStatus) Size() (wire.VarInt, error) { return 5, nil }

// Explosion describes an explosion's epicenter, strength, the set of
// blocks it destroyed (as relative offset triples), and the push it
// imparts on the player.
type Explosion struct {
	X, Y, Z, Strength float32
	Records           []seq.Triple[uint8, uint8, uint8]
	PlayerMotionX     float32
	PlayerMotionY     float32
	PlayerMotionZ     float32
}

func (e *Explosion) Decode(r io.Reader) error {
	if err := decodeFields(
		f("Explosion", "x", func() error { v, err := wire.ReadF32(r); e.X = v; return err }),
		f("Explosion", "y", func() error { v, err := wire.ReadF32(r); e.Y = v; return err }),
		f("Explosion", "z", func() error { v, err := wire.ReadF32(r); e.Z = v; return err }),
		f("Explosion", "strength", func() error { v, err := wire.ReadF32(r); e.Strength = v; return err }),
	); err != nil {
		return err
	}

	if err := codec.DecodeField("Explosion", "records", func() error {
		var count wire.VarInt
		if err := count.Decode(r); err != nil {
			return err
		}

		records := make([]seq.Triple[uint8, uint8, uint8], count)
		for i := range records {
			x, err := wire.ReadU8(r)
			if err != nil {
				return err
			}

			y, err := wire.ReadU8(r)
			if err != nil {
				return err
			}

			z, err := wire.ReadU8(r)
			if err != nil {
				return err
			}

			records[i] = seq.Triple[uint8, uint8, uint8]{First: x, Second: y, Third: z}
		}

		e.Records = records
		return nil
	}); err != nil {
		return err
	}

	return decodeFields(
		f("Explosion", "player_motion_x", func() error { v, err := wire.ReadF32(r); e.PlayerMotionX = v; return err }),
		f("Explosion", "player_motion_y", func() error { v, err := wire.ReadF32(r); e.PlayerMotionY = v; return err }),
		f("Explosion", "player_motion_z", func() error { v, err := wire.ReadF32(r); e.PlayerMotionZ = v; return err }),
	)
}

func (e Explosion) Encode(w io.Writer) error {
	if err := encodeFields(
		f("Explosion", "x", func() error { return wire.WriteF32(w, e.X) }),
		f("Explosion", "y", func() error { return wire.WriteF32(w, e.Y) }),
		f("Explosion", "z", func() error { return wire.WriteF32(w, e.Z) }),
		f("Explosion", "strength", func() error { return wire.WriteF32(w, e.Strength) }),
	); err != nil {
		return err
	}

	if err := codec.EncodeField("Explosion", "records", func() error {
		if err := wire.VarInt(len(e.Records)).Encode(w); err != nil { //nolint:gosec
			return err
		}

		for _, rec := range e.Records {
			if err := wire.WriteU8(w, rec.First); err != nil {
				return err
			}

			if err := wire.WriteU8(w, rec.Second); err != nil {
				return err
			}

			if err := wire.WriteU8(w, rec.Third); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return err
	}

	return encodeFields(
		f("Explosion", "player_motion_x", func() error { return wire.WriteF32(w, e.PlayerMotionX) }),
		f("Explosion", "player_motion_y", func() error { return wire.WriteF32(w, e.PlayerMotionY) }),
		f("Explosion", "player_motion_z", func() error { return wire.WriteF32(w, e.PlayerMotionZ) }),
	)
}

func (e Explosion) Size() (wire.VarInt, error) {
	prefixSize, err := wire.VarInt(len(e.Records)).Size() //nolint:gosec
	if err != nil {
		return 0, err
	}

	return 16 + prefixSize + wire.VarInt(len(e.Records))*3 + 12, nil
}

// UnloadChunk instructs the client to drop a loaded chunk.
type UnloadChunk struct {
	ChunkX, ChunkZ int32
}

func (u *UnloadChunk) Decode(r io.Reader) error {
	return decodeFields(
		f("UnloadChunk", "chunk_x", func() error { v, err := wire.ReadI32(r); u.ChunkX = v; return err }),
		f("UnloadChunk", "chunk_z", func() error { v, err := wire.ReadI32(r); u.ChunkZ = v; return err }),
	)
}

func (u UnloadChunk) Encode(w io.Writer) error {
	return encodeFields(
		f("UnloadChunk", "chunk_x", func() error { return wire.WriteI32(w, u.ChunkX) }),
		f("UnloadChunk", "chunk_z", func() error { return wire.WriteI32(w, u.ChunkZ) }),
	)
}

func (u UnloadChunk) Size() (wire.VarInt, error) { return 8, nil }

// ChangeGameState signals a world-level state transition (e.g. rain
// starting, game mode changing).
type ChangeGameState struct {
	Reason uint8
	Value  float32
}

func (c *ChangeGameState) Decode(r io.Reader) error {
	return decodeFields(
		f("ChangeGameState", "reason", func() error { v, err := wire.ReadU8(r); c.Reason = v; return err }),
		f("ChangeGameState", "value", func() error { v, err := wire.ReadF32(r); c.Value = v; return err }),
	)
}

func (c ChangeGameState) Encode(w io.Writer) error {
	return encodeFields(
		f("ChangeGameState", "reason", func() error { return wire.WriteU8(w, c.Reason) }),
		f("ChangeGameState", "value", func() error { return wire.WriteF32(w, c.Value) }),
	)
}

func (c ChangeGameState) Size() (wire.VarInt, error) { return 5, nil }

// OpenHorseWindow opens the inventory of a rideable entity.
type OpenHorseWindow struct {
	WindowID      int8
	NumberOfSlots wire.VarInt
	EntityID      int32
}

func (o *OpenHorseWindow) Decode(r io.Reader) error {
	return decodeFields(
		f("OpenHorseWindow", "window_id", func() error { v, err := wire.ReadI8(r); o.WindowID = v; return err }),
		f("OpenHorseWindow", "number_of_slots", func() error { return o.NumberOfSlots.Decode(r) }),
		f("OpenHorseWindow", "entity_id", func() error { v, err := wire.ReadI32(r); o.EntityID = v; return err }),
	)
}

func (o OpenHorseWindow) Encode(w io.Writer) error {
	return encodeFields(
		f("OpenHorseWindow", "window_id", func() error { return wire.WriteI8(w, o.WindowID) }),
		f("OpenHorseWindow", "number_of_slots", func() error { return o.NumberOfSlots.Encode(w) }),
		f("OpenHorseWindow", "entity_id", func() error { return wire.WriteI32(w, o.EntityID) }),
	)
}

func (o OpenHorseWindow) Size() (wire.VarInt, error) {
	slotsSize, err := o.NumberOfSlots.Size()
	if err != nil {
		return 0, err
	}

	return 1 + slotsSize + 4, nil
}

// InitializeWorldBorder sets the world border's full geometry and
// warning thresholds.
type InitializeWorldBorder struct {
	X, Z                                   float64
	OldDiameter, NewDiameter                float64
	Speed                                   wire.VarLong
	PortalTeleportBoundary                  wire.VarInt
	WarningBlocks                           wire.VarInt
	WarningTime                             wire.VarInt
}

func (i *InitializeWorldBorder) Decode(r io.Reader) error {
	return decodeFields(
		f("InitializeWorldBorder", "x", func() error { v, err := wire.ReadF64(r); i.X = v; return err }),
		f("InitializeWorldBorder", "z", func() error { v, err := wire.ReadF64(r); i.Z = v; return err }),
		f("InitializeWorldBorder", "old_diameter", func() error { v, err := wire.ReadF64(r); i.OldDiameter = v; return err }),
		f("InitializeWorldBorder", "new_diameter", func() error { v, err := wire.ReadF64(r); i.NewDiameter = v; return err }),
		f("InitializeWorldBorder", "speed", func() error { return i.Speed.Decode(r) }),
		f("InitializeWorldBorder", "portal_teleport_boundary", func() error { return i.PortalTeleportBoundary.Decode(r) }),
		f("InitializeWorldBorder", "warning_blocks", func() error { return i.WarningBlocks.Decode(r) }),
		f("InitializeWorldBorder", "warning_time", func() error { return i.WarningTime.Decode(r) }),
	)
}

func (i InitializeWorldBorder) Encode(w io.Writer) error {
	return encodeFields(
		f("InitializeWorldBorder", "x", func() error { return wire.WriteF64(w, i.X) }),
		f("InitializeWorldBorder", "z", func() error { return wire.WriteF64(w, i.Z) }),
		f("InitializeWorldBorder", "old_diameter", func() error { return wire.WriteF64(w, i.OldDiameter) }),
		f("InitializeWorldBorder", "new_diameter", func() error { return wire.WriteF64(w, i.NewDiameter) }),
		f("InitializeWorldBorder", "speed", func() error { return i.Speed.Encode(w) }),
		f("InitializeWorldBorder", "portal_teleport_boundary", func() error { return i.PortalTeleportBoundary.Encode(w) }),
		f("InitializeWorldBorder", "warning_blocks", func() error { return i.WarningBlocks.Encode(w) }),
		f("InitializeWorldBorder", "warning_time", func() error { return i.WarningTime.Encode(w) }),
	)
}

func (i InitializeWorldBorder) Size() (wire.VarInt, error) {
	speedSize, err := i.Speed.Size()
	if err != nil {
		return 0, err
	}

	ptbSize, err := i.PortalTeleportBoundary.Size()
	if err != nil {
		return 0, err
	}

	wbSize, err := i.WarningBlocks.Size()
	if err != nil {
		return 0, err
	}

	wtSize, err := i.WarningTime.Size()
	if err != nil {
		return 0, err
	}

	return 32 + speedSize + ptbSize + wbSize + wtSize, nil
}

// KeepAlive is the server's half of the keep-alive ping/pong.
type KeepAlive struct {
	KeepAliveID int64
}

func (k *KeepAlive) Decode(r io.Reader) error {
	return codec.DecodeField("KeepAlive", "keep_alive_id", func() error {
		v, err := wire.ReadI64(r)
		k.KeepAliveID = v
		return err
	})
}

func (k KeepAlive) Encode(w io.Writer) error {
	return codec.EncodeField("KeepAlive", "keep_alive_id", func() error { return wire.WriteI64(w, k.KeepAliveID) })
}

func (k KeepAlive) Size() (wire.VarInt, error) { return 8, nil }

// ChunkData carries a chunk's column of sections plus its block
// entities. Bit mask, biomes, raw section data, and block entities are
// each their own length-prefixed sequence.
type ChunkData struct {
	ChunkX, ChunkZ   int32
	PrimaryBitMask   []int64
	HeightMaps       nbt.Tag
	Biomes           []wire.VarInt
	Data             []byte
	BlockEntities    []nbt.Tag
}

func (c *ChunkData) Decode(r io.Reader) error {
	if err := decodeFields(
		f("ChunkData", "chunk_x", func() error { v, err := wire.ReadI32(r); c.ChunkX = v; return err }),
		f("ChunkData", "chunk_z", func() error { v, err := wire.ReadI32(r); c.ChunkZ = v; return err }),
	); err != nil {
		return err
	}

	if err := codec.DecodeField("ChunkData", "primary_bit_mask", func() error {
		var count wire.VarInt
		if err := count.Decode(r); err != nil {
			return err
		}

		mask := make([]int64, count)
		for i := range mask {
			v, err := wire.ReadI64(r)
			if err != nil {
				return err
			}

			mask[i] = v
		}

		c.PrimaryBitMask = mask
		return nil
	}); err != nil {
		return err
	}

	if err := codec.DecodeField("ChunkData", "height_maps", func() error {
		return c.HeightMaps.Decode(r)
	}); err != nil {
		return err
	}

	if err := codec.DecodeField("ChunkData", "biomes", func() error {
		biomes, err := seq.DecodeLengthPrefixed[wire.VarInt](r, func() *wire.VarInt { return new(wire.VarInt) })
		c.Biomes = biomes
		return err
	}); err != nil {
		return err
	}

	if err := codec.DecodeField("ChunkData", "data", func() error {
		var size wire.VarInt
		if err := size.Decode(r); err != nil {
			return err
		}

		buf := make([]byte, int(size))
		if err := wire.ReadFull(r, buf); err != nil {
			return err
		}

		c.Data = buf
		return nil
	}); err != nil {
		return err
	}

	return codec.DecodeField("ChunkData", "block_entities", func() error {
		entities, err := seq.DecodeLengthPrefixed[nbt.Tag](r, func() *nbt.Tag { return new(nbt.Tag) })
		c.BlockEntities = entities
		return err
	})
}

func (c ChunkData) Encode(w io.Writer) error {
	if err := encodeFields(
		f("ChunkData", "chunk_x", func() error { return wire.WriteI32(w, c.ChunkX) }),
		f("ChunkData", "chunk_z", func() error { return wire.WriteI32(w, c.ChunkZ) }),
	); err != nil {
		return err
	}

	if err := codec.EncodeField("ChunkData", "primary_bit_mask", func() error {
		if err := wire.VarInt(len(c.PrimaryBitMask)).Encode(w); err != nil { //nolint:gosec
			return err
		}

		for _, v := range c.PrimaryBitMask {
			if err := wire.WriteI64(w, v); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return err
	}

	if err := codec.EncodeField("ChunkData", "height_maps", func() error { return c.HeightMaps.Encode(w) }); err != nil {
		return err
	}

	if err := codec.EncodeField("ChunkData", "biomes", func() error {
		return seq.EncodeLengthPrefixed(w, c.Biomes, func(w io.Writer, v wire.VarInt) error { return v.Encode(w) })
	}); err != nil {
		return err
	}

	if err := codec.EncodeField("ChunkData", "data", func() error {
		if err := wire.VarInt(len(c.Data)).Encode(w); err != nil { //nolint:gosec
			return err
		}

		return wire.WriteAll(w, c.Data)
	}); err != nil {
		return err
	}

	return codec.EncodeField("ChunkData", "block_entities", func() error {
		return seq.EncodeLengthPrefixed(w, c.BlockEntities, func(w io.Writer, t nbt.Tag) error { return t.Encode(w) })
	})
}

func (c ChunkData) Size() (wire.VarInt, error) {
	maskPrefixSize, err := wire.VarInt(len(c.PrimaryBitMask)).Size() //nolint:gosec
	if err != nil {
		return 0, err
	}

	heightSize, err := c.HeightMaps.Size()
	if err != nil {
		return 0, err
	}

	biomesSize, err := seq.SizeLengthPrefixed(c.Biomes, func(v wire.VarInt) (wire.VarInt, error) { return v.Size() })
	if err != nil {
		return 0, err
	}

	dataPrefixSize, err := wire.VarInt(len(c.Data)).Size() //nolint:gosec
	if err != nil {
		return 0, err
	}

	entitiesSize, err := seq.SizeLengthPrefixed(c.BlockEntities, func(t nbt.Tag) (wire.VarInt, error) { return t.Size() })
	if err != nil {
		return 0, err
	}

	return 8 + maskPrefixSize + wire.VarInt(len(c.PrimaryBitMask))*8 + heightSize +
		biomesSize + dataPrefixSize + wire.VarInt(len(c.Data)) + entitiesSize, nil
}

// AsyncEncode is ChunkData's counterpart to Encode for the suspending
// write path (spec §4.8). A chunk column's raw section Data can run to
// several kilobytes, unlike Handshake's few-byte payload, so this does
// not use wire.EncodeViaBuffer's buffer-the-whole-value default: it
// stages the small header fields (chunk_x through biomes) into one
// buffer and writes them in a single call, then hands Data to w
// directly as its own suspension-checked write, then does the same for
// block_entities. A slow AsyncWriter can therefore suspend between the
// header, the section data, and the block entities instead of only
// before or after the whole message.
func (c ChunkData) AsyncEncode(ctx context.Context, w wire.AsyncWriter) error {
	if err := codec.AsyncEncodeField(ctx, "ChunkData", "header", func(ctx context.Context) error {
		var header bytes.Buffer

		if err := codec.EncodeField("ChunkData", "chunk_x", func() error { return wire.WriteI32(&header, c.ChunkX) }); err != nil {
			return err
		}

		if err := codec.EncodeField("ChunkData", "chunk_z", func() error { return wire.WriteI32(&header, c.ChunkZ) }); err != nil {
			return err
		}

		if err := codec.EncodeField("ChunkData", "primary_bit_mask", func() error {
			if err := wire.VarInt(len(c.PrimaryBitMask)).Encode(&header); err != nil { //nolint:gosec
				return err
			}

			for _, v := range c.PrimaryBitMask {
				if err := wire.WriteI64(&header, v); err != nil {
					return err
				}
			}

			return nil
		}); err != nil {
			return err
		}

		if err := codec.EncodeField("ChunkData", "height_maps", func() error { return c.HeightMaps.Encode(&header) }); err != nil {
			return err
		}

		if err := codec.EncodeField("ChunkData", "biomes", func() error {
			return seq.EncodeLengthPrefixed(&header, c.Biomes, func(w io.Writer, v wire.VarInt) error { return v.Encode(w) })
		}); err != nil {
			return err
		}

		_, err := w.Write(ctx, header.Bytes())
		return err
	}); err != nil {
		return err
	}

	if err := codec.AsyncEncodeField(ctx, "ChunkData", "data", func(ctx context.Context) error {
		var prefix bytes.Buffer
		if err := wire.VarInt(len(c.Data)).Encode(&prefix); err != nil { //nolint:gosec
			return err
		}

		if _, err := w.Write(ctx, prefix.Bytes()); err != nil {
			return err
		}

		_, err := w.Write(ctx, c.Data)
		return err
	}); err != nil {
		return err
	}

	return codec.AsyncEncodeField(ctx, "ChunkData", "block_entities", func(ctx context.Context) error {
		var tail bytes.Buffer
		if err := seq.EncodeLengthPrefixed(&tail, c.BlockEntities, func(w io.Writer, t nbt.Tag) error { return t.Encode(w) }); err != nil {
			return err
		}

		_, err := w.Write(ctx, tail.Bytes())
		return err
	})
}

// Effect plays a world-level sound/visual effect at a fixed block
// position.
type Effect struct {
	EffectID              int32
	Location              types.Position
	Data                  int32
	DisableRelativeVolume bool
}

func (e *Effect) Decode(r io.Reader) error {
	return decodeFields(
		f("Effect", "effect_id", func() error { v, err := wire.ReadI32(r); e.EffectID = v; return err }),
		f("Effect", "location", func() error { return e.Location.Decode(r) }),
		f("Effect", "data", func() error { v, err := wire.ReadI32(r); e.Data = v; return err }),
		f("Effect", "disable_relative_volume", func() error { v, err := wire.ReadBool(r); e.DisableRelativeVolume = v; return err }),
	)
}

func (e Effect) Encode(w io.Writer) error {
	return encodeFields(
		f("Effect", "effect_id", func() error { return wire.WriteI32(w, e.EffectID) }),
		f("Effect", "location", func() error { return e.Location.Encode(w) }),
		f("Effect", "data", func() error { return wire.WriteI32(w, e.Data) }),
		f("Effect", "disable_relative_volume", func() error { return wire.WriteBool(w, e.DisableRelativeVolume) }),
	)
}

func (e Effect) Size() (wire.VarInt, error) { return 4 + 8 + 4 + 1, nil }

// JoinGame finalizes the transition into the play phase with the
// client's starting world state.
type JoinGame struct {
	EntityID            int32
	IsHardcore           bool
	Gamemode             uint8
	PreviousGamemode     int8
	WorldNames           []types.String
	DimensionCodec       nbt.Tag
	Dimension            nbt.Tag
	WorldName            types.String
	HashedSeed           int64
	MaxPlayers           wire.VarInt
	ViewDistance         wire.VarInt
	ReducedDebugInfo     bool
	EnableRespawnScreen  bool
	IsDebug              bool
	IsFlat               bool
}

func (j *JoinGame) Decode(r io.Reader) error {
	if err := decodeFields(
		f("JoinGame", "entity_id", func() error { v, err := wire.ReadI32(r); j.EntityID = v; return err }),
		f("JoinGame", "is_hardcore", func() error { v, err := wire.ReadBool(r); j.IsHardcore = v; return err }),
		f("JoinGame", "gamemode", func() error { v, err := wire.ReadU8(r); j.Gamemode = v; return err }),
		f("JoinGame", "previous_gamemode", func() error { v, err := wire.ReadI8(r); j.PreviousGamemode = v; return err }),
	); err != nil {
		return err
	}

	if err := codec.DecodeField("JoinGame", "world_names", func() error {
		names, err := seq.DecodeLengthPrefixed[types.String](r, func() *types.String {
			return &types.String{Limit: types.LimitIdentifier}
		})
		internIdentifiers(names)
		j.WorldNames = names
		return err
	}); err != nil {
		return err
	}

	if err := codec.DecodeField("JoinGame", "dimension_codec", func() error { return j.DimensionCodec.Decode(r) }); err != nil {
		return err
	}

	if err := codec.DecodeField("JoinGame", "dimension", func() error { return j.Dimension.Decode(r) }); err != nil {
		return err
	}

	j.WorldName = types.String{Limit: types.LimitIdentifier}
	if err := codec.DecodeField("JoinGame", "world_name", func() error {
		if err := j.WorldName.Decode(r); err != nil {
			return err
		}

		j.WorldName.Value = intern.Identifiers().Intern(j.WorldName.Value)
		return nil
	}); err != nil {
		return err
	}

	return decodeFields(
		f("JoinGame", "hashed_seed", func() error { v, err := wire.ReadI64(r); j.HashedSeed = v; return err }),
		f("JoinGame", "max_players", func() error { return j.MaxPlayers.Decode(r) }),
		f("JoinGame", "view_distance", func() error { return j.ViewDistance.Decode(r) }),
		f("JoinGame", "reduced_debug_info", func() error { v, err := wire.ReadBool(r); j.ReducedDebugInfo = v; return err }),
		f("JoinGame", "enable_respawn_screen", func() error { v, err := wire.ReadBool(r); j.EnableRespawnScreen = v; return err }),
		f("JoinGame", "is_debug", func() error { v, err := wire.ReadBool(r); j.IsDebug = v; return err }),
		f("JoinGame", "is_flat", func() error { v, err := wire.ReadBool(r); j.IsFlat = v; return err }),
	)
}

func (j JoinGame) Encode(w io.Writer) error {
	if err := encodeFields(
		f("JoinGame", "entity_id", func() error { return wire.WriteI32(w, j.EntityID) }),
		f("JoinGame", "is_hardcore", func() error { return wire.WriteBool(w, j.IsHardcore) }),
		f("JoinGame", "gamemode", func() error { return wire.WriteU8(w, j.Gamemode) }),
		f("JoinGame", "previous_gamemode", func() error { return wire.WriteI8(w, j.PreviousGamemode) }),
	); err != nil {
		return err
	}

	if err := codec.EncodeField("JoinGame", "world_names", func() error {
		return seq.EncodeLengthPrefixed(w, j.WorldNames, func(w io.Writer, s types.String) error { return s.Encode(w) })
	}); err != nil {
		return err
	}

	if err := codec.EncodeField("JoinGame", "dimension_codec", func() error { return j.DimensionCodec.Encode(w) }); err != nil {
		return err
	}

	if err := codec.EncodeField("JoinGame", "dimension", func() error { return j.Dimension.Encode(w) }); err != nil {
		return err
	}

	if err := codec.EncodeField("JoinGame", "world_name", func() error { return j.WorldName.Encode(w) }); err != nil {
		return err
	}

	return encodeFields(
		f("JoinGame", "hashed_seed", func() error { return wire.WriteI64(w, j.HashedSeed) }),
		f("JoinGame", "max_players", func() error { return j.MaxPlayers.Encode(w) }),
		f("JoinGame", "view_distance", func() error { return j.ViewDistance.Encode(w) }),
		f("JoinGame", "reduced_debug_info", func() error { return wire.WriteBool(w, j.ReducedDebugInfo) }),
		f("JoinGame", "enable_respawn_screen", func() error { return wire.WriteBool(w, j.EnableRespawnScreen) }),
		f("JoinGame", "is_debug", func() error { return wire.WriteBool(w, j.IsDebug) }),
		f("JoinGame", "is_flat", func() error { return wire.WriteBool(w, j.IsFlat) }),
	)
}

func (j JoinGame) Size() (wire.VarInt, error) {
	namesSize, err := seq.SizeLengthPrefixed(j.WorldNames, func(s types.String) (wire.VarInt, error) { return s.Size() })
	if err != nil {
		return 0, err
	}

	codecSize, err := j.DimensionCodec.Size()
	if err != nil {
		return 0, err
	}

	dimSize, err := j.Dimension.Size()
	if err != nil {
		return 0, err
	}

	nameSize, err := j.WorldName.Size()
	if err != nil {
		return 0, err
	}

	maxPlayersSize, err := j.MaxPlayers.Size()
	if err != nil {
		return 0, err
	}

	viewDistSize, err := j.ViewDistance.Size()
	if err != nil {
		return 0, err
	}

	return 7 + namesSize + codecSize + dimSize + nameSize + 8 +
		maxPlayersSize + viewDistSize + 4, nil
}

// EntityPosition reports a relative positional update for an entity,
// encoded as a fixed-point delta.
type EntityPosition struct {
	EntityID                      wire.VarInt
	DeltaX, DeltaY, DeltaZ        int16
	OnGround                      bool
}

func (e *EntityPosition) Decode(r io.Reader) error {
	return decodeFields(
		f("EntityPosition", "entity_id", func() error { return e.EntityID.Decode(r) }),
		f("EntityPosition", "delta_x", func() error { v, err := wire.ReadI16(r); e.DeltaX = v; return err }),
		f("EntityPosition", "delta_y", func() error { v, err := wire.ReadI16(r); e.DeltaY = v; return err }),
		f("EntityPosition", "delta_z", func() error { v, err := wire.ReadI16(r); e.DeltaZ = v; return err }),
		f("EntityPosition", "on_ground", func() error { v, err := wire.ReadBool(r); e.OnGround = v; return err }),
	)
}

func (e EntityPosition) Encode(w io.Writer) error {
	return encodeFields(
		f("EntityPosition", "entity_id", func() error { return e.EntityID.Encode(w) }),
		f("EntityPosition", "delta_x", func() error { return wire.WriteI16(w, e.DeltaX) }),
		f("EntityPosition", "delta_y", func() error { return wire.WriteI16(w, e.DeltaY) }),
		f("EntityPosition", "delta_z", func() error { return wire.WriteI16(w, e.DeltaZ) }),
		f("EntityPosition", "on_ground", func() error { return wire.WriteBool(w, e.OnGround) }),
	)
}

func (e EntityPosition) Size() (wire.VarInt, error) {
	idSize, err := e.EntityID.Size()
	if err != nil {
		return 0, err
	}

	return idSize + 6 + 1, nil
}

// SelectAdvancementTab focuses a specific advancement tab in the
// client's UI, or clears the focus when absent. Not present in
// original_source's retrieved play/client.rs; authored per
// SPEC_FULL.md §12 as a tagged-optional identifier.
type SelectAdvancementTab struct {
	TabID seq.TaggedOptional[types.String]
}

func (s *SelectAdvancementTab) Decode(r io.Reader) error {
	return codec.DecodeField("SelectAdvancementTab", "tab_id", func() error {
		opt, err := seq.DecodeTaggedOptional(r, func(r io.Reader) (types.String, error) {
			str := types.String{Limit: types.LimitIdentifier}
			err := str.Decode(r)
			return str, err
		})
		s.TabID = opt
		return err
	})
}

func (s SelectAdvancementTab) Encode(w io.Writer) error {
	return codec.EncodeField("SelectAdvancementTab", "tab_id", func() error {
		return seq.EncodeTaggedOptional(w, s.TabID, func(w io.Writer, v types.String) error { return v.Encode(w) })
	})
}

func (s SelectAdvancementTab) Size() (wire.VarInt, error) {
	return seq.SizeTaggedOptional(s.TabID, func(v types.String) (wire.VarInt, error) { return v.Size() })
}

// UnlockRecipes toggles recipe-book visibility and, for the INIT action
// (0), also seeds the set of recipes to highlight as newly unlocked.
// Not present in original_source's retrieved play/client.rs; authored
// per SPEC_FULL.md §12.
//
// Encode and Size key InitRecipes' presence off the field itself, not off
// Action: a caller building an Action-0 message must set InitRecipes to at
// least an empty (non-nil) slice, or Encode omits it and the stream won't
// match what Decode (which always reads it when Action == 0) expects.
type UnlockRecipes struct {
	Action                  wire.VarInt
	CraftingRecipeBookOpen   bool
	CraftingFilterActive     bool
	SmeltingRecipeBookOpen   bool
	SmeltingFilterActive     bool
	Recipes                  []types.String
	InitRecipes              []types.String
}

const unlockRecipesActionInit wire.VarInt = 0

func (u *UnlockRecipes) Decode(r io.Reader) error {
	if err := decodeFields(
		f("UnlockRecipes", "action", func() error { return u.Action.Decode(r) }),
		f("UnlockRecipes", "crafting_recipe_book_open", func() error { v, err := wire.ReadBool(r); u.CraftingRecipeBookOpen = v; return err }),
		f("UnlockRecipes", "crafting_filter_active", func() error { v, err := wire.ReadBool(r); u.CraftingFilterActive = v; return err }),
		f("UnlockRecipes", "smelting_recipe_book_open", func() error { v, err := wire.ReadBool(r); u.SmeltingRecipeBookOpen = v; return err }),
		f("UnlockRecipes", "smelting_filter_active", func() error { v, err := wire.ReadBool(r); u.SmeltingFilterActive = v; return err }),
	); err != nil {
		return err
	}

	if err := codec.DecodeField("UnlockRecipes", "recipes", func() error {
		recipes, err := seq.DecodeLengthPrefixed[types.String](r, func() *types.String {
			return &types.String{Limit: types.LimitIdentifier}
		})
		internIdentifiers(recipes)
		u.Recipes = recipes
		return err
	}); err != nil {
		return err
	}

	return codec.DecodeConditional(u.Action == unlockRecipesActionInit, func() error {
		return codec.DecodeField("UnlockRecipes", "init_recipes", func() error {
			recipes, err := seq.DecodeLengthPrefixed[types.String](r, func() *types.String {
				return &types.String{Limit: types.LimitIdentifier}
			})
			internIdentifiers(recipes)
			u.InitRecipes = recipes
			return err
		})
	})
}

func (u UnlockRecipes) Encode(w io.Writer) error {
	if err := encodeFields(
		f("UnlockRecipes", "action", func() error { return u.Action.Encode(w) }),
		f("UnlockRecipes", "crafting_recipe_book_open", func() error { return wire.WriteBool(w, u.CraftingRecipeBookOpen) }),
		f("UnlockRecipes", "crafting_filter_active", func() error { return wire.WriteBool(w, u.CraftingFilterActive) }),
		f("UnlockRecipes", "smelting_recipe_book_open", func() error { return wire.WriteBool(w, u.SmeltingRecipeBookOpen) }),
		f("UnlockRecipes", "smelting_filter_active", func() error { return wire.WriteBool(w, u.SmeltingFilterActive) }),
	); err != nil {
		return err
	}

	if err := codec.EncodeField("UnlockRecipes", "recipes", func() error {
		return seq.EncodeLengthPrefixed(w, u.Recipes, func(w io.Writer, s types.String) error { return s.Encode(w) })
	}); err != nil {
		return err
	}

	return codec.EncodeOptionalField(u.InitRecipes != nil, func() error {
		return codec.EncodeField("UnlockRecipes", "init_recipes", func() error {
			return seq.EncodeLengthPrefixed(w, u.InitRecipes, func(w io.Writer, s types.String) error { return s.Encode(w) })
		})
	})
}

func (u UnlockRecipes) Size() (wire.VarInt, error) {
	actionSize, err := u.Action.Size()
	if err != nil {
		return 0, err
	}

	recipesSize, err := seq.SizeLengthPrefixed(u.Recipes, func(s types.String) (wire.VarInt, error) { return s.Size() })
	if err != nil {
		return 0, err
	}

	total := actionSize + 4 + recipesSize
	if u.InitRecipes != nil {
		initSize, err := seq.SizeLengthPrefixed(u.InitRecipes, func(s types.String) (wire.VarInt, error) { return s.Size() })
		if err != nil {
			return 0, err
		}

		total += initSize
	}

	return total, nil
}

// fieldSpec defers the choice of "decode"/"encode" error-context
// wrapping to whichever of decodeFields/encodeFields consumes it, so the
// same f(...) call sites read correctly from both a Decode and an
// Encode method body.
type fieldSpec struct {
	typeName  string
	fieldName string
	fn        func() error
}

func f(typeName, fieldName string, fn func() error) fieldSpec {
	return fieldSpec{typeName: typeName, fieldName: fieldName, fn: fn}
}

func decodeFields(specs ...fieldSpec) error {
	for _, s := range specs {
		if err := codec.DecodeField(s.typeName, s.fieldName, s.fn); err != nil {
			return err
		}
	}

	return nil
}

func encodeFields(specs ...fieldSpec) error {
	for _, s := range specs {
		if err := codec.EncodeField(s.typeName, s.fieldName, s.fn); err != nil {
			return err
		}
	}

	return nil
}

// internIdentifiers canonicalizes each decoded identifier string's Value
// in place against the shared intern.Identifiers cache, so repeated
// recipe ids and world/dimension names decoded across many messages in a
// session share one backing string instead of each keeping its own
// freshly decoded copy.
func internIdentifiers(strs []types.String) {
	cache := intern.Identifiers()
	for i := range strs {
		strs[i].Value = cache.Intern(strs[i].Value)
	}
}
