package server_test

import (
	"bytes"
	"testing"

	"github.com/SubZeroLabs/MinecraftTypes/protocol/login/server"
	"github.com/SubZeroLabs/MinecraftTypes/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStartRoundTrip(t *testing.T) {
	l := server.LoginStart{Name: types.NewPlayerName("Herobrine")}

	var buf bytes.Buffer
	require.NoError(t, l.Encode(&buf))

	var got server.LoginStart
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, l.Name.Value, got.Name.Value)
}

func TestEncryptionResponseRoundTrip(t *testing.T) {
	e := server.EncryptionResponse{
		SharedSecret: []byte{1, 2, 3, 4},
		VerifyToken:  []byte{5, 6, 7, 8, 9},
	}

	var buf bytes.Buffer
	require.NoError(t, e.Encode(&buf))

	size, err := e.Size()
	require.NoError(t, err)
	assert.EqualValues(t, buf.Len(), size)

	var got server.EncryptionResponse
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, e.SharedSecret, got.SharedSecret)
	assert.Equal(t, e.VerifyToken, got.VerifyToken)
}

func TestLoginPluginResponseRoundTrip(t *testing.T) {
	l := server.LoginPluginResponse{
		MessageID:  3,
		Successful: true,
		Data:       []byte("ack"),
	}

	var buf bytes.Buffer
	require.NoError(t, l.Encode(&buf))

	var got server.LoginPluginResponse
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, l.MessageID, got.MessageID)
	assert.Equal(t, l.Successful, got.Successful)
	assert.Equal(t, l.Data, got.Data)
}

func TestLoginPluginResponseUnsuccessfulNoData(t *testing.T) {
	l := server.LoginPluginResponse{MessageID: 4, Successful: false}

	var buf bytes.Buffer
	require.NoError(t, l.Encode(&buf))

	var got server.LoginPluginResponse
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.False(t, got.Successful)
	assert.Empty(t, got.Data)
}
