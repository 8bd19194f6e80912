package domain

import (
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/codec"
	"github.com/SubZeroLabs/MinecraftTypes/nbt"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// Slot is the inventory item record: (present bool, item_id VarInt?,
// item_count byte?, nbt NBT?), the last three conditional on Present
// (spec §4.6, grounded on original_source's SlotData auto_struct). The
// three payload fields are nil pointers when absent; decode leaves them
// nil without consuming bytes when Present is false, and encode writes
// each iff non-nil, matching the conditional-on-decode /
// presence-on-encode split of spec §4.5.
type Slot struct {
	Present   bool
	ItemID    *wire.VarInt
	ItemCount *uint8
	NBT       *nbt.Tag
}

func (s *Slot) Decode(r io.Reader) error {
	if err := codec.DecodeField("Slot", "present", func() error {
		present, err := wire.ReadBool(r)
		s.Present = present
		return err
	}); err != nil {
		return err
	}

	if err := codec.DecodeField("Slot", "item_id", func() error {
		return codec.DecodeConditional(s.Present, func() error {
			var v wire.VarInt
			if err := v.Decode(r); err != nil {
				return err
			}
			s.ItemID = &v
			return nil
		})
	}); err != nil {
		return err
	}

	if err := codec.DecodeField("Slot", "item_count", func() error {
		return codec.DecodeConditional(s.Present, func() error {
			v, err := wire.ReadU8(r)
			if err != nil {
				return err
			}
			s.ItemCount = &v
			return nil
		})
	}); err != nil {
		return err
	}

	if err := codec.DecodeField("Slot", "nbt", func() error {
		return codec.DecodeConditional(s.Present, func() error {
			var tag nbt.Tag
			if err := tag.Decode(r); err != nil {
				return err
			}
			s.NBT = &tag
			return nil
		})
	}); err != nil {
		return err
	}

	return nil
}

func (s Slot) Encode(w io.Writer) error {
	if err := codec.EncodeField("Slot", "present", func() error {
		return wire.WriteBool(w, s.Present)
	}); err != nil {
		return err
	}

	if err := codec.EncodeField("Slot", "item_id", func() error {
		return codec.EncodeOptionalField(s.ItemID != nil, func() error {
			return s.ItemID.Encode(w)
		})
	}); err != nil {
		return err
	}

	if err := codec.EncodeField("Slot", "item_count", func() error {
		return codec.EncodeOptionalField(s.ItemCount != nil, func() error {
			return wire.WriteU8(w, *s.ItemCount)
		})
	}); err != nil {
		return err
	}

	if err := codec.EncodeField("Slot", "nbt", func() error {
		return codec.EncodeOptionalField(s.NBT != nil, func() error {
			return s.NBT.Encode(w)
		})
	}); err != nil {
		return err
	}

	return nil
}

func (s Slot) Size() (wire.VarInt, error) {
	total := wire.SizeBool()

	idSize, err := codec.SizeOptionalField(s.ItemID != nil, func() (wire.VarInt, error) {
		return s.ItemID.Size()
	})
	if err != nil {
		return 0, err
	}
	total += idSize

	if s.ItemCount != nil {
		total++
	}

	if s.NBT != nil {
		nbtSize, err := s.NBT.Size()
		if err != nil {
			return 0, err
		}
		total += nbtSize
	}

	return total, nil
}
