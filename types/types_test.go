package types_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/SubZeroLabs/MinecraftTypes/internal/errs"
	"github.com/SubZeroLabs/MinecraftTypes/types"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRoundTrip(t *testing.T) {
	s := types.NewServerAddress("localhost")

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))
	assert.Equal(t, []byte{0x09, 'l', 'o', 'c', 'a', 'l', 'h', 'o', 's', 't'}, buf.Bytes())

	size, err := s.Size()
	require.NoError(t, err)
	assert.EqualValues(t, 10, size)

	got := types.String{Limit: types.LimitServerAddr}
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, "localhost", got.Value)
}

func TestStringEncode_TooLong(t *testing.T) {
	s := types.NewPlayerName("this_name_is_definitely_far_too_long_for_16")

	var buf bytes.Buffer
	err := s.Encode(&buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrStringTooLong))
}

func TestStringDecode_LengthExceedsCap(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, wire.VarInt(1000).Encode(&buf))

	got := types.String{Limit: types.LimitPlayerName}
	err := got.Decode(bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrStringTooLong))
}

func TestStringDecode_InvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, wire.VarInt(2).Encode(&buf))
	buf.Write([]byte{0xFF, 0xFE})

	got := types.String{Limit: types.LimitIdentifier}
	err := got.Decode(bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidUTF8))
}

func TestPositionRoundTrip(t *testing.T) {
	cases := []types.Position{
		types.NewPosition(0, 0, 0),
		types.NewPosition(18357644, 831, -20882616),
		types.NewPosition(-1, -1, -1),
		types.NewPosition(1<<25-1, 1<<11-1, -(1 << 25)),
	}

	for _, p := range cases {
		var buf bytes.Buffer
		require.NoError(t, p.Encode(&buf))
		assert.EqualValues(t, 8, buf.Len())

		var got types.Position
		require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
		assert.Equal(t, p, got)
	}
}

func TestAngleRoundTrip(t *testing.T) {
	a := types.NewAngle(128)

	var buf bytes.Buffer
	require.NoError(t, a.Encode(&buf))
	assert.Equal(t, []byte{128}, buf.Bytes())

	var got types.Angle
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, a, got)
	assert.InDelta(t, 180.0, got.Degrees(), 0.001)
}

func TestUUIDRoundTrip(t *testing.T) {
	raw := [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	var buf bytes.Buffer
	u := types.UUID{}
	copy(u.UUID[:], raw[:])
	require.NoError(t, u.Encode(&buf))
	assert.Equal(t, raw[:], buf.Bytes())

	var got types.UUID
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, u, got)
}
