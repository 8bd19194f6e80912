package server_test

import (
	"bytes"
	"testing"

	"github.com/SubZeroLabs/MinecraftTypes/protocol/status/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRequestIsEmpty(t *testing.T) {
	var req server.StatusRequest

	var buf bytes.Buffer
	require.NoError(t, req.Encode(&buf))
	assert.Equal(t, 0, buf.Len())

	size, err := req.Size()
	require.NoError(t, err)
	assert.EqualValues(t, 0, size)

	require.NoError(t, req.Decode(bytes.NewReader(nil)))
}

func TestPingRoundTrip(t *testing.T) {
	p := server.Ping{Payload: 42}

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf))
	assert.Equal(t, 8, buf.Len())

	var got server.Ping
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, p.Payload, got.Payload)
}
