package mctypes_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/SubZeroLabs/MinecraftTypes"
	"github.com/SubZeroLabs/MinecraftTypes/protocol/handshake"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandshakeRoundTrip(t *testing.T) {
	h := mctypes.NewHandshake(mctypes.ProtocolVersion, "play.example.com", 25565, mctypes.NextStateLogin)

	var buf bytes.Buffer
	require.NoError(t, mctypes.Encode(&buf, &h))

	var got handshake.Handshake
	require.NoError(t, mctypes.Decode(bytes.NewReader(buf.Bytes()), &got))

	assert.Equal(t, h.ProtocolVersion, got.ProtocolVersion)
	assert.Equal(t, h.ServerAddress.Value, got.ServerAddress.Value)
	assert.Equal(t, h.ServerPort, got.ServerPort)
	assert.Equal(t, wire.VarInt(handshake.NextStateLogin), got.NextState)
}

func TestNewLoginStartAndPing(t *testing.T) {
	start := mctypes.NewLoginStart("Notch")
	size, err := mctypes.Size(start)
	require.NoError(t, err)
	assert.Positive(t, size)

	ping := mctypes.NewPing(42)
	var buf bytes.Buffer
	require.NoError(t, mctypes.Encode(&buf, &ping))
	assert.Len(t, buf.Bytes(), 8)
}

func TestAsyncEncodeForwardsToHandshake(t *testing.T) {
	h := mctypes.NewHandshake(mctypes.ProtocolVersion, "localhost", 25565, mctypes.NextStateStatus)

	var buf bytes.Buffer
	require.NoError(t, mctypes.AsyncEncode(context.Background(), wire.AsyncWriterFunc{W: &buf}, h))

	var got handshake.Handshake
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, h.ServerAddress.Value, got.ServerAddress.Value)
}
