package client_test

import (
	"bytes"
	"testing"

	"github.com/SubZeroLabs/MinecraftTypes/protocol/status/client"
	"github.com/SubZeroLabs/MinecraftTypes/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusResponseRoundTrip(t *testing.T) {
	r := client.StatusResponse{JSONResponse: types.NewServerAddress(`{"version":{"name":"1.17"}}`)}

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf))

	var got client.StatusResponse
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, r.JSONResponse.Value, got.JSONResponse.Value)
}

func TestPongRoundTrip(t *testing.T) {
	p := client.Pong{Payload: -123456789}

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf))
	assert.Equal(t, 8, buf.Len())

	var got client.Pong
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, p.Payload, got.Payload)
}
