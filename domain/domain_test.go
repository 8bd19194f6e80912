package domain_test

import (
	"bytes"
	"testing"

	"github.com/SubZeroLabs/MinecraftTypes/domain"
	"github.com/SubZeroLabs/MinecraftTypes/nbt"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotAbsent(t *testing.T) {
	s := domain.Slot{Present: false}

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))
	assert.Equal(t, []byte{0x00}, buf.Bytes())

	var got domain.Slot
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.False(t, got.Present)
	assert.Nil(t, got.ItemID)
}

func TestSlotPresent(t *testing.T) {
	id := wire.VarInt(1)
	count := uint8(64)
	tag := nbt.Empty()

	s := domain.Slot{Present: true, ItemID: &id, ItemCount: &count, NBT: &tag}

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))

	var got domain.Slot
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	require.True(t, got.Present)
	require.NotNil(t, got.ItemID)
	assert.EqualValues(t, 1, *got.ItemID)
	require.NotNil(t, got.ItemCount)
	assert.EqualValues(t, 64, *got.ItemCount)
	require.NotNil(t, got.NBT)
}

func TestParticleRoundTrip_NoPayload(t *testing.T) {
	p := domain.Particle{Kind: domain.ParticleBubble}

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf))

	var got domain.Particle
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, domain.ParticleBubble, got.Kind)
}

func TestParticleRoundTrip_DustPayload(t *testing.T) {
	p := domain.Particle{
		Kind: domain.ParticleDust,
		Dust: domain.DustParticleData{Red: 1, Green: 0.5, Blue: 0.25, Scale: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf))

	var got domain.Particle
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, p.Dust, got.Dust)
}

func TestMetadataEntry_AbsentType(t *testing.T) {
	e := domain.MetadataEntry{Index: 0xFF}

	var buf bytes.Buffer
	require.NoError(t, e.Encode(&buf))
	assert.Equal(t, []byte{0xFF}, buf.Bytes())

	var got domain.MetadataEntry
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Nil(t, got.EntryType)
}

func TestMetadataEntry_VarIntType(t *testing.T) {
	e := domain.MetadataEntry{
		Index:     3,
		EntryType: &domain.MetadataEntryType{Kind: domain.MetadataVarInt, VarIntValue: 42},
	}

	var buf bytes.Buffer
	require.NoError(t, e.Encode(&buf))

	var got domain.MetadataEntry
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	require.NotNil(t, got.EntryType)
	assert.EqualValues(t, 42, got.EntryType.VarIntValue)
}

func TestDirectionRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, domain.DirectionEast.Encode(&buf))

	var got domain.Direction
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, domain.DirectionEast, got)
}
