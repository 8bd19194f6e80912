package handshake_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/SubZeroLabs/MinecraftTypes/protocol/handshake"
	"github.com/SubZeroLabs/MinecraftTypes/types"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandshakeEncode_KnownVector(t *testing.T) {
	h := handshake.Handshake{
		ProtocolVersion: 756,
		ServerAddress:   types.NewServerAddress("localhost"),
		ServerPort:      25565,
		NextState:       2,
	}

	var buf bytes.Buffer
	require.NoError(t, h.Encode(&buf))

	want := []byte{
		0xF4, 0x05,
		0x09, 'l', 'o', 'c', 'a', 'l', 'h', 'o', 's', 't',
		0x63, 0xDD,
		0x02,
	}
	assert.Equal(t, want, buf.Bytes())

	size, err := h.Size()
	require.NoError(t, err)
	assert.EqualValues(t, len(want), size)
}

func TestHandshakeRoundTrip(t *testing.T) {
	h := handshake.Handshake{
		ProtocolVersion: 756,
		ServerAddress:   types.NewServerAddress("localhost"),
		ServerPort:      25565,
		NextState:       2,
	}

	var buf bytes.Buffer
	require.NoError(t, h.Encode(&buf))

	var got handshake.Handshake
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, h.ProtocolVersion, got.ProtocolVersion)
	assert.Equal(t, h.ServerAddress.Value, got.ServerAddress.Value)
	assert.Equal(t, h.ServerPort, got.ServerPort)
	assert.Equal(t, h.NextState, got.NextState)
}

func TestHandshakeAsyncEncodeMatchesEncode(t *testing.T) {
	h := handshake.Handshake{
		ProtocolVersion: 756,
		ServerAddress:   types.NewServerAddress("localhost"),
		ServerPort:      25565,
		NextState:       2,
	}

	var syncBuf bytes.Buffer
	require.NoError(t, h.Encode(&syncBuf))

	var asyncBuf bytes.Buffer
	require.NoError(t, h.AsyncEncode(context.Background(), wire.AsyncWriterFunc{W: &asyncBuf}))

	assert.Equal(t, syncBuf.Bytes(), asyncBuf.Bytes())
}

func TestHandshakeAsyncEncodeRespectsCancellation(t *testing.T) {
	h := handshake.Handshake{ServerAddress: types.NewServerAddress("localhost")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := h.AsyncEncode(ctx, wire.AsyncWriterFunc{W: &buf})
	assert.ErrorIs(t, err, context.Canceled)
}
