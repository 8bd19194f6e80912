package server_test

import (
	"bytes"
	"testing"

	"github.com/SubZeroLabs/MinecraftTypes/domain"
	"github.com/SubZeroLabs/MinecraftTypes/nbt"
	"github.com/SubZeroLabs/MinecraftTypes/protocol/play/server"
	"github.com/SubZeroLabs/MinecraftTypes/types"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeleportConfirmRoundTrip(t *testing.T) {
	msg := server.TeleportConfirm{TeleportID: 17}

	var buf bytes.Buffer
	require.NoError(t, msg.Encode(&buf))

	var got server.TeleportConfirm
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, msg.TeleportID, got.TeleportID)
}

func TestClientSettingsRoundTrip(t *testing.T) {
	msg := server.ClientSettings{
		Locale:             types.NewString(16, "en_US"),
		ViewDistance:        10,
		ChatMode:            0,
		ChatColors:          true,
		DisplayedSkinParts:  0x7F,
		MainHand:            1,
	}

	var buf bytes.Buffer
	require.NoError(t, msg.Encode(&buf))

	var got server.ClientSettings
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, msg.Locale.Value, got.Locale.Value)
	assert.Equal(t, msg.ViewDistance, got.ViewDistance)
	assert.Equal(t, msg.ChatColors, got.ChatColors)
	assert.Equal(t, msg.DisplayedSkinParts, got.DisplayedSkinParts)
	assert.Equal(t, msg.MainHand, got.MainHand)
}

func TestPlayerPositionRoundTrip(t *testing.T) {
	msg := server.PlayerPosition{X: 1.5, FeetY: 64, Z: -2.25, OnGround: true}

	var buf bytes.Buffer
	require.NoError(t, msg.Encode(&buf))
	assert.Equal(t, 25, buf.Len())

	var got server.PlayerPosition
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, msg, got)
}

func TestPlayerDiggingRoundTrip(t *testing.T) {
	msg := server.PlayerDigging{
		Status:   0,
		Location: types.NewPosition(10, 64, -10),
		Face:     1,
	}

	var buf bytes.Buffer
	require.NoError(t, msg.Encode(&buf))

	var got server.PlayerDigging
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, msg.Status, got.Status)
	assert.Equal(t, msg.Location, got.Location)
	assert.Equal(t, msg.Face, got.Face)
}

func TestCreativeInventoryActionRoundTrip(t *testing.T) {
	id := wire.VarInt(5)
	count := uint8(3)
	tag := nbt.Empty()
	msg := server.CreativeInventoryAction{
		Slot: 36,
		ClickedItem: domain.Slot{
			Present:   true,
			ItemID:    &id,
			ItemCount: &count,
			NBT:       &tag,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, msg.Encode(&buf))

	var got server.CreativeInventoryAction
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, msg.Slot, got.Slot)
	assert.True(t, got.ClickedItem.Present)
	require.NotNil(t, got.ClickedItem.ItemID)
	assert.Equal(t, id, *got.ClickedItem.ItemID)
}

func TestPluginMessageRoundTrip(t *testing.T) {
	msg := server.PluginMessage{
		Channel: types.NewIdentifier("minecraft:brand"),
		Data:    []byte("fabric"),
	}

	var buf bytes.Buffer
	require.NoError(t, msg.Encode(&buf))

	var got server.PluginMessage
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, msg.Channel.Value, got.Channel.Value)
	assert.Equal(t, msg.Data, got.Data)
}

func TestChatMessageRoundTrip(t *testing.T) {
	msg := server.ChatMessage{Message: types.NewString(256, "hello world")}

	var buf bytes.Buffer
	require.NoError(t, msg.Encode(&buf))

	var got server.ChatMessage
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, msg.Message.Value, got.Message.Value)
}
