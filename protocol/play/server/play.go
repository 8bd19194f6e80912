// Package server implements a representative set of the play phase's
// server-bound messages. None of these were present in original_source's
// retrieved file set (only play/client.rs was retrieved); they are
// authored here per SPEC_FULL.md §12 from the standard protocol shapes,
// in the same field-by-field style as the client-bound catalog.
package server

import (
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/codec"
	"github.com/SubZeroLabs/MinecraftTypes/domain"
	"github.com/SubZeroLabs/MinecraftTypes/types"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// TeleportConfirm acknowledges a server-issued player teleport.
type TeleportConfirm struct {
	TeleportID wire.VarInt
}

func (t *TeleportConfirm) Decode(r io.Reader) error {
	return codec.DecodeField("TeleportConfirm", "teleport_id", func() error { return t.TeleportID.Decode(r) })
}

func (t TeleportConfirm) Encode(w io.Writer) error {
	return codec.EncodeField("TeleportConfirm", "teleport_id", func() error { return t.TeleportID.Encode(w) })
}

func (t TeleportConfirm) Size() (wire.VarInt, error) { return t.TeleportID.Size() }

// ClientSettings reports the player's locale and rendering preferences.
type ClientSettings struct {
	Locale             types.String
	ViewDistance       int8
	ChatMode           wire.VarInt
	ChatColors         bool
	DisplayedSkinParts uint8
	MainHand           wire.VarInt
}

func (c *ClientSettings) Decode(r io.Reader) error {
	c.Locale = types.String{Limit: 16}
	return decodeFields(
		f("ClientSettings", "locale", func() error { return c.Locale.Decode(r) }),
		f("ClientSettings", "view_distance", func() error { v, err := wire.ReadI8(r); c.ViewDistance = v; return err }),
		f("ClientSettings", "chat_mode", func() error { return c.ChatMode.Decode(r) }),
		f("ClientSettings", "chat_colors", func() error { v, err := wire.ReadBool(r); c.ChatColors = v; return err }),
		f("ClientSettings", "displayed_skin_parts", func() error { v, err := wire.ReadU8(r); c.DisplayedSkinParts = v; return err }),
		f("ClientSettings", "main_hand", func() error { return c.MainHand.Decode(r) }),
	)
}

func (c ClientSettings) Encode(w io.Writer) error {
	return encodeFields(
		f("ClientSettings", "locale", func() error { return c.Locale.Encode(w) }),
		f("ClientSettings", "view_distance", func() error { return wire.WriteI8(w, c.ViewDistance) }),
		f("ClientSettings", "chat_mode", func() error { return c.ChatMode.Encode(w) }),
		f("ClientSettings", "chat_colors", func() error { return wire.WriteBool(w, c.ChatColors) }),
		f("ClientSettings", "displayed_skin_parts", func() error { return wire.WriteU8(w, c.DisplayedSkinParts) }),
		f("ClientSettings", "main_hand", func() error { return c.MainHand.Encode(w) }),
	)
}

func (c ClientSettings) Size() (wire.VarInt, error) {
	localeSize, err := c.Locale.Size()
	if err != nil {
		return 0, err
	}

	chatModeSize, err := c.ChatMode.Size()
	if err != nil {
		return 0, err
	}

	mainHandSize, err := c.MainHand.Size()
	if err != nil {
		return 0, err
	}

	return localeSize + 1 + chatModeSize + 1 + 1 + mainHandSize, nil
}

// KeepAlive is the client's half of the keep-alive ping/pong.
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

// PlayerPosition reports an absolute position update.
type PlayerPosition struct {
	X, FeetY, Z float64
	OnGround    bool
}

func (p *PlayerPosition) Decode(r io.Reader) error {
	return decodeFields(
		f("PlayerPosition", "x", func() error { v, err := wire.ReadF64(r); p.X = v; return err }),
		f("PlayerPosition", "feet_y", func() error { v, err := wire.ReadF64(r); p.FeetY = v; return err }),
		f("PlayerPosition", "z", func() error { v, err := wire.ReadF64(r); p.Z = v; return err }),
		f("PlayerPosition", "on_ground", func() error { v, err := wire.ReadBool(r); p.OnGround = v; return err }),
	)
}

func (p PlayerPosition) Encode(w io.Writer) error {
	return encodeFields(
		f("PlayerPosition", "x", func() error { return wire.WriteF64(w, p.X) }),
		f("PlayerPosition", "feet_y", func() error { return wire.WriteF64(w, p.FeetY) }),
		f("PlayerPosition", "z", func() error { return wire.WriteF64(w, p.Z) }),
		f("PlayerPosition", "on_ground", func() error { return wire.WriteBool(w, p.OnGround) }),
	)
}

func (p PlayerPosition) Size() (wire.VarInt, error) { return 25, nil }

// PlayerPositionAndRotation reports a combined position and rotation
// update.
type PlayerPositionAndRotation struct {
	X, FeetY, Z float64
	Yaw, Pitch  float32
	OnGround    bool
}

func (p *PlayerPositionAndRotation) Decode(r io.Reader) error {
	return decodeFields(
		f("PlayerPositionAndRotation", "x", func() error { v, err := wire.ReadF64(r); p.X = v; return err }),
		f("PlayerPositionAndRotation", "feet_y", func() error { v, err := wire.ReadF64(r); p.FeetY = v; return err }),
		f("PlayerPositionAndRotation", "z", func() error { v, err := wire.ReadF64(r); p.Z = v; return err }),
		f("PlayerPositionAndRotation", "yaw", func() error { v, err := wire.ReadF32(r); p.Yaw = v; return err }),
		f("PlayerPositionAndRotation", "pitch", func() error { v, err := wire.ReadF32(r); p.Pitch = v; return err }),
		f("PlayerPositionAndRotation", "on_ground", func() error { v, err := wire.ReadBool(r); p.OnGround = v; return err }),
	)
}

func (p PlayerPositionAndRotation) Encode(w io.Writer) error {
	return encodeFields(
		f("PlayerPositionAndRotation", "x", func() error { return wire.WriteF64(w, p.X) }),
		f("PlayerPositionAndRotation", "feet_y", func() error { return wire.WriteF64(w, p.FeetY) }),
		f("PlayerPositionAndRotation", "z", func() error { return wire.WriteF64(w, p.Z) }),
		f("PlayerPositionAndRotation", "yaw", func() error { return wire.WriteF32(w, p.Yaw) }),
		f("PlayerPositionAndRotation", "pitch", func() error { return wire.WriteF32(w, p.Pitch) }),
		f("PlayerPositionAndRotation", "on_ground", func() error { return wire.WriteBool(w, p.OnGround) }),
	)
}

func (p PlayerPositionAndRotation) Size() (wire.VarInt, error) { return 33, nil }

// PlayerRotation reports a rotation-only update.
type PlayerRotation struct {
	Yaw, Pitch float32
	OnGround   bool
}

func (p *PlayerRotation) Decode(r io.Reader) error {
	return decodeFields(
		f("PlayerRotation", "yaw", func() error { v, err := wire.ReadF32(r); p.Yaw = v; return err }),
		f("PlayerRotation", "pitch", func() error { v, err := wire.ReadF32(r); p.Pitch = v; return err }),
		f("PlayerRotation", "on_ground", func() error { v, err := wire.ReadBool(r); p.OnGround = v; return err }),
	)
}

func (p PlayerRotation) Encode(w io.Writer) error {
	return encodeFields(
		f("PlayerRotation", "yaw", func() error { return wire.WriteF32(w, p.Yaw) }),
		f("PlayerRotation", "pitch", func() error { return wire.WriteF32(w, p.Pitch) }),
		f("PlayerRotation", "on_ground", func() error { return wire.WriteBool(w, p.OnGround) }),
	)
}

func (p PlayerRotation) Size() (wire.VarInt, error) { return 9, nil }

// PlayerMovement reports a ground-contact-only update.
type PlayerMovement struct {
	OnGround bool
}

func (p *PlayerMovement) Decode(r io.Reader) error {
	return codec.DecodeField("PlayerMovement", "on_ground", func() error {
		v, err := wire.ReadBool(r)
		p.OnGround = v
		return err
	})
}

func (p PlayerMovement) Encode(w io.Writer) error {
	return codec.EncodeField("PlayerMovement", "on_ground", func() error { return wire.WriteBool(w, p.OnGround) })
}

func (p PlayerMovement) Size() (wire.VarInt, error) { return 1, nil }

// PlayerDigging reports a digging-related action at a block.
type PlayerDigging struct {
	Status   wire.VarInt
	Location types.Position
	Face     int8
}

func (p *PlayerDigging) Decode(r io.Reader) error {
	return decodeFields(
		f("PlayerDigging", "status", func() error { return p.Status.Decode(r) }),
		f("PlayerDigging", "location", func() error { return p.Location.Decode(r) }),
		f("PlayerDigging", "face", func() error { v, err := wire.ReadI8(r); p.Face = v; return err }),
	)
}

func (p PlayerDigging) Encode(w io.Writer) error {
	return encodeFields(
		f("PlayerDigging", "status", func() error { return p.Status.Encode(w) }),
		f("PlayerDigging", "location", func() error { return p.Location.Encode(w) }),
		f("PlayerDigging", "face", func() error { return wire.WriteI8(w, p.Face) }),
	)
}

func (p PlayerDigging) Size() (wire.VarInt, error) {
	statusSize, err := p.Status.Size()
	if err != nil {
		return 0, err
	}

	return statusSize + 8 + 1, nil
}

// EntityAction reports a player-triggered entity action (sneak, sprint,
// jump-with-horse, etc).
type EntityAction struct {
	EntityID  wire.VarInt
	ActionID  wire.VarInt
	JumpBoost wire.VarInt
}

func (e *EntityAction) Decode(r io.Reader) error {
	return decodeFields(
		f("EntityAction", "entity_id", func() error { return e.EntityID.Decode(r) }),
		f("EntityAction", "action_id", func() error { return e.ActionID.Decode(r) }),
		f("EntityAction", "jump_boost", func() error { return e.JumpBoost.Decode(r) }),
	)
}

func (e EntityAction) Encode(w io.Writer) error {
	return encodeFields(
		f("EntityAction", "entity_id", func() error { return e.EntityID.Encode(w) }),
		f("EntityAction", "action_id", func() error { return e.ActionID.Encode(w) }),
		f("EntityAction", "jump_boost", func() error { return e.JumpBoost.Encode(w) }),
	)
}

func (e EntityAction) Size() (wire.VarInt, error) {
	idSize, err := e.EntityID.Size()
	if err != nil {
		return 0, err
	}

	actionSize, err := e.ActionID.Size()
	if err != nil {
		return 0, err
	}

	jumpSize, err := e.JumpBoost.Size()
	if err != nil {
		return 0, err
	}

	return idSize + actionSize + jumpSize, nil
}

// HeldItemChange reports the player's newly selected hotbar slot.
type HeldItemChange struct {
	Slot int16
}

func (h *HeldItemChange) Decode(r io.Reader) error {
	return codec.DecodeField("HeldItemChange", "slot", func() error {
		v, err := wire.ReadI16(r)
		h.Slot = v
		return err
	})
}

func (h HeldItemChange) Encode(w io.Writer) error {
	return codec.EncodeField("HeldItemChange", "slot", func() error { return wire.WriteI16(w, h.Slot) })
}

func (h HeldItemChange) Size() (wire.VarInt, error) { return 2, nil }

// CreativeInventoryAction sets a single slot directly (creative mode).
type CreativeInventoryAction struct {
	Slot        int16
	ClickedItem domain.Slot
}

func (c *CreativeInventoryAction) Decode(r io.Reader) error {
	if err := codec.DecodeField("CreativeInventoryAction", "slot", func() error {
		v, err := wire.ReadI16(r)
		c.Slot = v
		return err
	}); err != nil {
		return err
	}

	return codec.DecodeField("CreativeInventoryAction", "clicked_item", func() error {
		return c.ClickedItem.Decode(r)
	})
}

func (c CreativeInventoryAction) Encode(w io.Writer) error {
	if err := codec.EncodeField("CreativeInventoryAction", "slot", func() error { return wire.WriteI16(w, c.Slot) }); err != nil {
		return err
	}

	return codec.EncodeField("CreativeInventoryAction", "clicked_item", func() error {
		return c.ClickedItem.Encode(w)
	})
}

func (c CreativeInventoryAction) Size() (wire.VarInt, error) {
	itemSize, err := c.ClickedItem.Size()
	if err != nil {
		return 0, err
	}

	return 2 + itemSize, nil
}

// Animation reports the player swinging an arm.
type Animation struct {
	Hand wire.VarInt
}

func (a *Animation) Decode(r io.Reader) error {
	return codec.DecodeField("Animation", "hand", func() error { return a.Hand.Decode(r) })
}

func (a Animation) Encode(w io.Writer) error {
	return codec.EncodeField("Animation", "hand", func() error { return a.Hand.Encode(w) })
}

func (a Animation) Size() (wire.VarInt, error) { return a.Hand.Size() }

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

// ClientStatus reports a respawn or stats-request action.
type ClientStatus struct {
	ActionID wire.VarInt
}

func (c *ClientStatus) Decode(r io.Reader) error {
	return codec.DecodeField("ClientStatus", "action_id", func() error { return c.ActionID.Decode(r) })
}

func (c ClientStatus) Encode(w io.Writer) error {
	return codec.EncodeField("ClientStatus", "action_id", func() error { return c.ActionID.Encode(w) })
}

func (c ClientStatus) Size() (wire.VarInt, error) { return c.ActionID.Size() }

// ChatMessage sends a server-bound chat line.
type ChatMessage struct {
	Message types.String
}

func (c *ChatMessage) Decode(r io.Reader) error {
	c.Message = types.String{Limit: 256}
	return codec.DecodeField("ChatMessage", "message", func() error { return c.Message.Decode(r) })
}

func (c ChatMessage) Encode(w io.Writer) error {
	return codec.EncodeField("ChatMessage", "message", func() error { return c.Message.Encode(w) })
}

func (c ChatMessage) Size() (wire.VarInt, error) { return c.Message.Size() }

func f(typeName, fieldName string, fn func() error) fieldSpec {
	return fieldSpec{typeName: typeName, fieldName: fieldName, fn: fn}
}

type fieldSpec struct {
	typeName  string
	fieldName string
	fn        func() error
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
