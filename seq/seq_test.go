package seq_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/SubZeroLabs/MinecraftTypes/seq"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeLengthPrefixed_VarInt(t *testing.T) {
	values := []wire.VarInt{1, 2, 3, 25565}

	var buf bytes.Buffer
	require.NoError(t, seq.EncodeLengthPrefixed(&buf, values, func(w io.Writer, v wire.VarInt) error {
		return v.Encode(w)
	}))

	got, err := seq.DecodeLengthPrefixed[wire.VarInt](bytes.NewReader(buf.Bytes()), func() *wire.VarInt {
		return new(wire.VarInt)
	})
	require.NoError(t, err)
	assert.Equal(t, values, got)

	size, err := seq.SizeLengthPrefixed(values, func(v wire.VarInt) (wire.VarInt, error) { return v.Size() })
	require.NoError(t, err)
	assert.EqualValues(t, buf.Len(), size)
}

func TestTaggedOptional_RoundTrip(t *testing.T) {
	present := seq.TaggedOptional[wire.VarInt]{Present: true, Value: 42}

	var buf bytes.Buffer
	require.NoError(t, seq.EncodeTaggedOptional(&buf, present, func(w io.Writer, v wire.VarInt) error {
		return v.Encode(w)
	}))

	got, err := seq.DecodeTaggedOptional(bytes.NewReader(buf.Bytes()), func(r io.Reader) (wire.VarInt, error) {
		var v wire.VarInt
		err := v.Decode(r)
		return v, err
	})
	require.NoError(t, err)
	assert.True(t, got.Present)
	assert.EqualValues(t, 42, got.Value)
}

func TestTaggedOptional_Absent(t *testing.T) {
	absent := seq.TaggedOptional[wire.VarInt]{}

	var buf bytes.Buffer
	require.NoError(t, seq.EncodeTaggedOptional(&buf, absent, func(w io.Writer, v wire.VarInt) error {
		return v.Encode(w)
	}))
	assert.Equal(t, []byte{0x00}, buf.Bytes())

	got, err := seq.DecodeTaggedOptional(bytes.NewReader(buf.Bytes()), func(r io.Reader) (wire.VarInt, error) {
		var v wire.VarInt
		err := v.Decode(r)
		return v, err
	})
	require.NoError(t, err)
	assert.False(t, got.Present)
}
