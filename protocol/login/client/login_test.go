package client_test

import (
	"bytes"
	"testing"

	"github.com/SubZeroLabs/MinecraftTypes/protocol/login/client"
	"github.com/SubZeroLabs/MinecraftTypes/types"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisconnectRoundTrip(t *testing.T) {
	d := client.Disconnect{Reason: types.NewChatJSON(`{"text":"kicked"}`)}

	var buf bytes.Buffer
	require.NoError(t, d.Encode(&buf))

	var got client.Disconnect
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, d.Reason.Value, got.Reason.Value)
}

func TestEncryptionRequestRoundTrip(t *testing.T) {
	e := client.EncryptionRequest{
		ServerID:    types.NewServerID(""),
		PublicKey:   []byte{1, 2, 3, 4, 5},
		VerifyToken: []byte{9, 8, 7, 6},
	}

	var buf bytes.Buffer
	require.NoError(t, e.Encode(&buf))

	size, err := e.Size()
	require.NoError(t, err)
	assert.EqualValues(t, buf.Len(), size)

	var got client.EncryptionRequest
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, e.ServerID.Value, got.ServerID.Value)
	assert.Equal(t, e.PublicKey, got.PublicKey)
	assert.Equal(t, e.VerifyToken, got.VerifyToken)
}

func TestLoginSuccessRoundTrip(t *testing.T) {
	id := uuid.NewV4()
	l := client.LoginSuccess{
		UUID:     types.NewUUID(id),
		Username: types.NewPlayerName("Notch"),
	}

	var buf bytes.Buffer
	require.NoError(t, l.Encode(&buf))

	var got client.LoginSuccess
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, l.UUID.UUID, got.UUID.UUID)
	assert.Equal(t, l.Username.Value, got.Username.Value)
}

func TestSetCompressionRoundTrip(t *testing.T) {
	s := client.SetCompression{Threshold: 256}

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))

	var got client.SetCompression
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, s.Threshold, got.Threshold)
}

func TestLoginPluginRequestRoundTrip(t *testing.T) {
	l := client.LoginPluginRequest{
		MessageID: 7,
		Channel:   types.NewIdentifier("minecraft:brand"),
		Data:      []byte("vanilla"),
	}

	var buf bytes.Buffer
	require.NoError(t, l.Encode(&buf))

	var got client.LoginPluginRequest
	require.NoError(t, got.Decode(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, l.MessageID, got.MessageID)
	assert.Equal(t, l.Channel.Value, got.Channel.Value)
	assert.Equal(t, l.Data, got.Data)
}

func TestEncryptionRequestRejectsTruncatedKey(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, types.NewServerID("srv").Encode(&buf))
	require.NoError(t, wire.VarInt(10).Encode(&buf))
	buf.Write([]byte{1, 2, 3})

	var e client.EncryptionRequest
	err := e.Decode(&buf)
	assert.Error(t, err)
}
