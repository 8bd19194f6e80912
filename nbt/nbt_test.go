package nbt_test

import (
	"bytes"
	"testing"

	"github.com/SubZeroLabs/MinecraftTypes/nbt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyCompoundRoundTrip(t *testing.T) {
	tag := nbt.Empty()
	tag.Name = ""

	var buf bytes.Buffer
	require.NoError(t, tag.Encode(&buf))
	assert.Equal(t, []byte{byte(nbt.TagCompound), 0x00, 0x00, byte(nbt.TagEnd)}, buf.Bytes())

	var got nbt.Tag
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, nbt.TagCompound, got.Type)
	assert.Empty(t, got.Compound)
}

func TestCompoundWithChildrenRoundTrip(t *testing.T) {
	tag := nbt.Tag{
		Type: nbt.TagCompound,
		Name: "root",
		Compound: []nbt.Tag{
			{Type: nbt.TagInt, Name: "level", Int: 42},
			{Type: nbt.TagString, Name: "name", Str: "steve"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, tag.Encode(&buf))

	var got nbt.Tag
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, tag.Name, got.Name)
	require.Len(t, got.Compound, 2)
	assert.Equal(t, int32(42), got.Compound[0].Int)
	assert.Equal(t, "steve", got.Compound[1].Str)

	size, err := tag.Size()
	require.NoError(t, err)
	assert.EqualValues(t, buf.Len(), size)
}

func TestListRoundTrip(t *testing.T) {
	tag := nbt.Tag{
		Type:     nbt.TagList,
		Name:     "nums",
		ListKind: nbt.TagInt,
		List: []nbt.Tag{
			{Type: nbt.TagInt, Int: 1},
			{Type: nbt.TagInt, Int: 2},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, tag.Encode(&buf))

	var got nbt.Tag
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	require.Len(t, got.List, 2)
	assert.Equal(t, int32(1), got.List[0].Int)
	assert.Equal(t, int32(2), got.List[1].Int)
}
