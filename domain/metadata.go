package domain

import (
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/codec"
	"github.com/SubZeroLabs/MinecraftTypes/internal/errs"
	"github.com/SubZeroLabs/MinecraftTypes/nbt"
	"github.com/SubZeroLabs/MinecraftTypes/types"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// MetadataEntryKind indexes the 19 variants an entity metadata entry's
// type can hold (spec §4.6, grounded on base_types.rs's
// MetadataEntryType union).
type MetadataEntryKind int32

const (
	MetadataByte MetadataEntryKind = iota
	MetadataVarInt
	MetadataFloat
	MetadataString
	MetadataChat
	MetadataOptChat
	MetadataSlot
	MetadataBoolean
	MetadataRotation
	MetadataPosition
	MetadataOptPosition
	MetadataDirection
	MetadataOptUUID
	MetadataOptBlockID
	MetadataNBT
	MetadataParticle
	MetadataVillagerData
	MetadataOptVarInt
	MetadataPose
)

// Rotation is the fixed (pitch, yaw, roll) float triple used by the
// Rotation metadata variant.
type Rotation struct {
	X, Y, Z float32
}

// VillagerData is the fixed (type, profession, level) triple used by the
// VillagerData metadata variant.
type VillagerData struct {
	Type       VillagerType
	Profession VillagerProfession
	Level      wire.VarInt
}

// MetadataEntryType is the tagged-union payload of a MetadataEntry whose
// Index is not the sentinel 0xFF.
type MetadataEntryType struct {
	Kind MetadataEntryKind

	Byte         uint8
	VarIntValue  wire.VarInt
	Float        float32
	StringValue  types.String
	Chat         types.String
	OptChat      *types.String
	SlotValue    Slot
	Boolean      bool
	RotationVal  Rotation
	Position     types.Position
	OptPosition  *types.Position
	Direction    Direction
	OptUUID      *types.UUID
	OptBlockID   wire.VarInt
	NBT          nbt.Tag
	Particle     Particle
	VillagerData VillagerData
	OptVarInt    wire.VarInt
	Pose         Pose
}

func (m *MetadataEntryType) Decode(r io.Reader) error {
	return codec.DecodeDiscriminant(r, func(idx int) error {
		if idx < int(MetadataByte) || idx > int(MetadataPose) {
			return errs.ErrUnknownDiscriminant
		}

		m.Kind = MetadataEntryKind(idx)

		switch m.Kind {
		case MetadataByte:
			v, err := wire.ReadU8(r)
			m.Byte = v
			return err
		case MetadataVarInt:
			return m.VarIntValue.Decode(r)
		case MetadataFloat:
			v, err := wire.ReadF32(r)
			m.Float = v
			return err
		case MetadataString:
			m.StringValue = types.String{Limit: types.LimitIdentifier}
			return m.StringValue.Decode(r)
		case MetadataChat:
			m.Chat = types.String{Limit: types.LimitChatJSON}
			return m.Chat.Decode(r)
		case MetadataOptChat:
			present, err := wire.ReadBool(r)
			if err != nil {
				return err
			}
			if !present {
				return nil
			}
			var s types.String
			s.Limit = types.LimitChatJSON
			if err := s.Decode(r); err != nil {
				return err
			}
			m.OptChat = &s
			return nil
		case MetadataSlot:
			return m.SlotValue.Decode(r)
		case MetadataBoolean:
			v, err := wire.ReadBool(r)
			m.Boolean = v
			return err
		case MetadataRotation:
			var rot Rotation
			var err error
			if rot.X, err = wire.ReadF32(r); err != nil {
				return err
			}
			if rot.Y, err = wire.ReadF32(r); err != nil {
				return err
			}
			if rot.Z, err = wire.ReadF32(r); err != nil {
				return err
			}
			m.RotationVal = rot
			return nil
		case MetadataPosition:
			return m.Position.Decode(r)
		case MetadataOptPosition:
			present, err := wire.ReadBool(r)
			if err != nil {
				return err
			}
			if !present {
				return nil
			}
			var p types.Position
			if err := p.Decode(r); err != nil {
				return err
			}
			m.OptPosition = &p
			return nil
		case MetadataDirection:
			return m.Direction.Decode(r)
		case MetadataOptUUID:
			present, err := wire.ReadBool(r)
			if err != nil {
				return err
			}
			if !present {
				return nil
			}
			var u types.UUID
			if err := u.Decode(r); err != nil {
				return err
			}
			m.OptUUID = &u
			return nil
		case MetadataOptBlockID:
			return m.OptBlockID.Decode(r)
		case MetadataNBT:
			return m.NBT.Decode(r)
		case MetadataParticle:
			return m.Particle.Decode(r)
		case MetadataVillagerData:
			if err := m.VillagerData.Type.Decode(r); err != nil {
				return err
			}
			if err := m.VillagerData.Profession.Decode(r); err != nil {
				return err
			}
			return m.VillagerData.Level.Decode(r)
		case MetadataOptVarInt:
			return m.OptVarInt.Decode(r)
		case MetadataPose:
			return m.Pose.Decode(r)
		default:
			return errs.ErrUnknownDiscriminant
		}
	})
}

func (m MetadataEntryType) Encode(w io.Writer) error {
	return codec.EncodeDiscriminant(w, int(m.Kind), func() error {
		switch m.Kind {
		case MetadataByte:
			return wire.WriteU8(w, m.Byte)
		case MetadataVarInt:
			return m.VarIntValue.Encode(w)
		case MetadataFloat:
			return wire.WriteF32(w, m.Float)
		case MetadataString:
			return m.StringValue.Encode(w)
		case MetadataChat:
			return m.Chat.Encode(w)
		case MetadataOptChat:
			if err := wire.WriteBool(w, m.OptChat != nil); err != nil {
				return err
			}
			if m.OptChat == nil {
				return nil
			}
			return m.OptChat.Encode(w)
		case MetadataSlot:
			return m.SlotValue.Encode(w)
		case MetadataBoolean:
			return wire.WriteBool(w, m.Boolean)
		case MetadataRotation:
			for _, v := range []float32{m.RotationVal.X, m.RotationVal.Y, m.RotationVal.Z} {
				if err := wire.WriteF32(w, v); err != nil {
					return err
				}
			}
			return nil
		case MetadataPosition:
			return m.Position.Encode(w)
		case MetadataOptPosition:
			if err := wire.WriteBool(w, m.OptPosition != nil); err != nil {
				return err
			}
			if m.OptPosition == nil {
				return nil
			}
			return m.OptPosition.Encode(w)
		case MetadataDirection:
			return m.Direction.Encode(w)
		case MetadataOptUUID:
			if err := wire.WriteBool(w, m.OptUUID != nil); err != nil {
				return err
			}
			if m.OptUUID == nil {
				return nil
			}
			return m.OptUUID.Encode(w)
		case MetadataOptBlockID:
			return m.OptBlockID.Encode(w)
		case MetadataNBT:
			return m.NBT.Encode(w)
		case MetadataParticle:
			return m.Particle.Encode(w)
		case MetadataVillagerData:
			if err := m.VillagerData.Type.Encode(w); err != nil {
				return err
			}
			if err := m.VillagerData.Profession.Encode(w); err != nil {
				return err
			}
			return m.VillagerData.Level.Encode(w)
		case MetadataOptVarInt:
			return m.OptVarInt.Encode(w)
		case MetadataPose:
			return m.Pose.Encode(w)
		default:
			return errs.ErrUnknownDiscriminant
		}
	})
}

func (m MetadataEntryType) Size() (wire.VarInt, error) {
	return codec.SizeDiscriminant(int(m.Kind), func() (wire.VarInt, error) {
		switch m.Kind {
		case MetadataByte:
			return 1, nil
		case MetadataVarInt:
			return m.VarIntValue.Size()
		case MetadataFloat:
			return 4, nil
		case MetadataString:
			return m.StringValue.Size()
		case MetadataChat:
			return m.Chat.Size()
		case MetadataOptChat:
			if m.OptChat == nil {
				return wire.SizeBool(), nil
			}
			s, err := m.OptChat.Size()
			return wire.SizeBool() + s, err
		case MetadataSlot:
			return m.SlotValue.Size()
		case MetadataBoolean:
			return wire.SizeBool(), nil
		case MetadataRotation:
			return 12, nil
		case MetadataPosition:
			return m.Position.Size()
		case MetadataOptPosition:
			if m.OptPosition == nil {
				return wire.SizeBool(), nil
			}
			s, err := m.OptPosition.Size()
			return wire.SizeBool() + s, err
		case MetadataDirection:
			return m.Direction.Size()
		case MetadataOptUUID:
			if m.OptUUID == nil {
				return wire.SizeBool(), nil
			}
			s, err := m.OptUUID.Size()
			return wire.SizeBool() + s, err
		case MetadataOptBlockID:
			return m.OptBlockID.Size()
		case MetadataNBT:
			return m.NBT.Size()
		case MetadataParticle:
			return m.Particle.Size()
		case MetadataVillagerData:
			typeSize, err := m.VillagerData.Type.Size()
			if err != nil {
				return 0, err
			}
			profSize, err := m.VillagerData.Profession.Size()
			if err != nil {
				return 0, err
			}
			levelSize, err := m.VillagerData.Level.Size()
			if err != nil {
				return 0, err
			}
			return typeSize + profSize + levelSize, nil
		case MetadataOptVarInt:
			return m.OptVarInt.Size()
		case MetadataPose:
			return m.Pose.Size()
		default:
			return 0, errs.ErrUnknownDiscriminant
		}
	})
}

// MetadataEntry is the (index u8, entry_type?) record: entry_type is
// absent iff Index == 0xFF (spec §4.6).
type MetadataEntry struct {
	Index     uint8
	EntryType *MetadataEntryType
}

func (e *MetadataEntry) Decode(r io.Reader) error {
	if err := codec.DecodeField("MetadataEntry", "index", func() error {
		v, err := wire.ReadU8(r)
		e.Index = v
		return err
	}); err != nil {
		return err
	}

	return codec.DecodeField("MetadataEntry", "entry_type", func() error {
		return codec.DecodeConditional(e.Index != 0xFF, func() error {
			var t MetadataEntryType
			if err := t.Decode(r); err != nil {
				return err
			}
			e.EntryType = &t
			return nil
		})
	})
}

func (e MetadataEntry) Encode(w io.Writer) error {
	if err := codec.EncodeField("MetadataEntry", "index", func() error {
		return wire.WriteU8(w, e.Index)
	}); err != nil {
		return err
	}

	return codec.EncodeField("MetadataEntry", "entry_type", func() error {
		return codec.EncodeOptionalField(e.EntryType != nil, func() error {
			return e.EntryType.Encode(w)
		})
	})
}

func (e MetadataEntry) Size() (wire.VarInt, error) {
	total := wire.SizeFixed(1)

	s, err := codec.SizeOptionalField(e.EntryType != nil, func() (wire.VarInt, error) {
		return e.EntryType.Size()
	})
	if err != nil {
		return 0, err
	}

	return total + s, nil
}
