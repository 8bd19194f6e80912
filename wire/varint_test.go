package wire_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/SubZeroLabs/MinecraftTypes/internal/errs"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarIntEncode_KnownVectors(t *testing.T) {
	cases := []struct {
		name string
		v    wire.VarInt
		want []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one", 1, []byte{0x01}},
		{"twoFiftyFive", 255, []byte{0xFF, 0x01}},
		{"twentyFiveFiveSixFive", 25565, []byte{0xDD, 0xC7, 0x01}},
		{"maxInt32", 2147483647, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x07}},
		{"negativeOne", -1, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
		{"minInt32", -2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tc.v.Encode(&buf))
			assert.Equal(t, tc.want, buf.Bytes())

			size, err := tc.v.Size()
			require.NoError(t, err)
			assert.EqualValues(t, len(tc.want), size)
		})
	}
}

func TestVarIntDecode_KnownVectors(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want wire.VarInt
	}{
		{"zero", []byte{0x00}, 0},
		{"twentyFiveFiveSixFive", []byte{0xDD, 0xC7, 0x01}, 25565},
		{"negativeOne", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got wire.VarInt
			require.NoError(t, got.Decode(bytes.NewReader(tc.in)))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	values := []wire.VarInt{0, 1, -1, 127, 128, 255, 25565, 2147483647, -2147483648, -2}

	for _, v := range values {
		var buf bytes.Buffer
		require.NoError(t, v.Encode(&buf))

		size, err := v.Size()
		require.NoError(t, err)
		assert.EqualValues(t, buf.Len(), size)

		var got wire.VarInt
		require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
		assert.Equal(t, v, got)
	}
}

func TestVarIntDecode_Overlong(t *testing.T) {
	in := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

	var got wire.VarInt
	err := got.Decode(bytes.NewReader(in))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrOverlongVarInt))
}

func TestVarIntDecode_UnexpectedEOF(t *testing.T) {
	in := []byte{0x80}

	var got wire.VarInt
	err := got.Decode(bytes.NewReader(in))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrUnexpectedEOF))
}

func TestVarLongEncode_KnownVectors(t *testing.T) {
	cases := []struct {
		name string
		v    wire.VarLong
		want []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"maxInt64", 9223372036854775807, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}},
		{"negativeOne", -1, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}},
		{"minInt64", -9223372036854775808, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tc.v.Encode(&buf))
			assert.Equal(t, tc.want, buf.Bytes())

			size, err := tc.v.Size()
			require.NoError(t, err)
			assert.EqualValues(t, len(tc.want), size)
		})
	}
}

func TestVarLongDecode_Overlong(t *testing.T) {
	in := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

	var got wire.VarLong
	err := got.Decode(bytes.NewReader(in))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrOverlongVarLong))
}

func TestVarLongRoundTrip(t *testing.T) {
	values := []wire.VarLong{0, 1, -1, 9223372036854775807, -9223372036854775808, 1 << 40}

	for _, v := range values {
		var buf bytes.Buffer
		require.NoError(t, v.Encode(&buf))

		var got wire.VarLong
		require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
		assert.Equal(t, v, got)
	}
}

func TestDecodeVarIntWithLength(t *testing.T) {
	consumed, value, err := wire.DecodeVarIntWithLength(bytes.NewReader([]byte{0xDD, 0xC7, 0x01, 0xAA}))
	require.NoError(t, err)
	assert.EqualValues(t, 3, consumed)
	assert.EqualValues(t, 25565, value)
}

func TestVarIntFromInt(t *testing.T) {
	v, err := wire.VarIntFromInt(42)
	require.NoError(t, err)
	assert.EqualValues(t, 42, v)

	_, err = wire.VarIntFromInt(1 << 33)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotRepresentable))
}
