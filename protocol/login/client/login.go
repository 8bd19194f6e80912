// Package client implements the login phase's client-bound messages
// (grounded on original_source/src/packets/login/client.rs).
package client

import (
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/codec"
	"github.com/SubZeroLabs/MinecraftTypes/types"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// Disconnect closes the connection during login with a chat-JSON reason.
type Disconnect struct {
	Reason types.String
}

func (d *Disconnect) Decode(r io.Reader) error {
	d.Reason = types.String{Limit: types.LimitChatJSON}
	return codec.DecodeField("Disconnect", "reason", func() error { return d.Reason.Decode(r) })
}

func (d Disconnect) Encode(w io.Writer) error {
	return codec.EncodeField("Disconnect", "reason", func() error { return d.Reason.Encode(w) })
}

func (d Disconnect) Size() (wire.VarInt, error) { return d.Reason.Size() }

// EncryptionRequest holds the server-id token plus two length-prefixed
// byte sequences (public key, verify token), each a (VarInt, []byte)
// pair per spec §4.7's notable wrinkle.
type EncryptionRequest struct {
	ServerID    types.String
	PublicKey   []byte
	VerifyToken []byte
}

func (e *EncryptionRequest) Decode(r io.Reader) error {
	e.ServerID = types.String{Limit: types.LimitServerID}
	if err := codec.DecodeField("EncryptionRequest", "server_id", func() error {
		return e.ServerID.Decode(r)
	}); err != nil {
		return err
	}

	if err := codec.DecodeField("EncryptionRequest", "public_key", func() error {
		buf, err := decodeByteArray(r)
		e.PublicKey = buf
		return err
	}); err != nil {
		return err
	}

	return codec.DecodeField("EncryptionRequest", "verify_token", func() error {
		buf, err := decodeByteArray(r)
		e.VerifyToken = buf
		return err
	})
}

func (e EncryptionRequest) Encode(w io.Writer) error {
	if err := codec.EncodeField("EncryptionRequest", "server_id", func() error {
		return e.ServerID.Encode(w)
	}); err != nil {
		return err
	}

	if err := codec.EncodeField("EncryptionRequest", "public_key", func() error {
		return encodeByteArray(w, e.PublicKey)
	}); err != nil {
		return err
	}

	return codec.EncodeField("EncryptionRequest", "verify_token", func() error {
		return encodeByteArray(w, e.VerifyToken)
	})
}

func (e EncryptionRequest) Size() (wire.VarInt, error) {
	idSize, err := e.ServerID.Size()
	if err != nil {
		return 0, err
	}

	pkSize, err := byteArraySize(e.PublicKey)
	if err != nil {
		return 0, err
	}

	vtSize, err := byteArraySize(e.VerifyToken)
	if err != nil {
		return 0, err
	}

	return idSize + pkSize + vtSize, nil
}

// LoginSuccess concludes login with the player's UUID and username.
type LoginSuccess struct {
	UUID     types.UUID
	Username types.String
}

func (l *LoginSuccess) Decode(r io.Reader) error {
	if err := codec.DecodeField("LoginSuccess", "uuid", func() error {
		return l.UUID.Decode(r)
	}); err != nil {
		return err
	}

	l.Username = types.String{Limit: types.LimitPlayerName}
	return codec.DecodeField("LoginSuccess", "username", func() error {
		return l.Username.Decode(r)
	})
}

func (l LoginSuccess) Encode(w io.Writer) error {
	if err := codec.EncodeField("LoginSuccess", "uuid", func() error {
		return l.UUID.Encode(w)
	}); err != nil {
		return err
	}

	return codec.EncodeField("LoginSuccess", "username", func() error {
		return l.Username.Encode(w)
	})
}

func (l LoginSuccess) Size() (wire.VarInt, error) {
	uSize, err := l.UUID.Size()
	if err != nil {
		return 0, err
	}

	nSize, err := l.Username.Size()
	if err != nil {
		return 0, err
	}

	return uSize + nSize, nil
}

// SetCompression announces the negotiated compression threshold; the
// codec carries the VarInt only, compression itself is out of scope
// (spec §1).
type SetCompression struct {
	Threshold wire.VarInt
}

func (s *SetCompression) Decode(r io.Reader) error {
	return codec.DecodeField("SetCompression", "threshold", func() error { return s.Threshold.Decode(r) })
}

func (s SetCompression) Encode(w io.Writer) error {
	return codec.EncodeField("SetCompression", "threshold", func() error { return s.Threshold.Encode(w) })
}

func (s SetCompression) Size() (wire.VarInt, error) { return s.Threshold.Size() }

// LoginPluginRequest asks the client to respond on a named plugin
// channel; its data payload is reader-terminated (bounded by the
// enclosing packet framing, per SPEC_FULL.md §13).
type LoginPluginRequest struct {
	MessageID wire.VarInt
	Channel   types.String
	Data      []byte
}

func (l *LoginPluginRequest) Decode(r io.Reader) error {
	if err := codec.DecodeField("LoginPluginRequest", "message_id", func() error {
		return l.MessageID.Decode(r)
	}); err != nil {
		return err
	}

	l.Channel = types.String{Limit: types.LimitIdentifier}
	if err := codec.DecodeField("LoginPluginRequest", "channel", func() error {
		return l.Channel.Decode(r)
	}); err != nil {
		return err
	}

	return codec.DecodeField("LoginPluginRequest", "data", func() error {
		data, err := types.ReadAll(r)
		l.Data = []byte(data)
		return err
	})
}

func (l LoginPluginRequest) Encode(w io.Writer) error {
	if err := codec.EncodeField("LoginPluginRequest", "message_id", func() error {
		return l.MessageID.Encode(w)
	}); err != nil {
		return err
	}

	if err := codec.EncodeField("LoginPluginRequest", "channel", func() error {
		return l.Channel.Encode(w)
	}); err != nil {
		return err
	}

	return codec.EncodeField("LoginPluginRequest", "data", func() error {
		return wire.WriteAll(w, l.Data)
	})
}

func (l LoginPluginRequest) Size() (wire.VarInt, error) {
	idSize, err := l.MessageID.Size()
	if err != nil {
		return 0, err
	}

	chSize, err := l.Channel.Size()
	if err != nil {
		return 0, err
	}

	return idSize + chSize + wire.VarInt(len(l.Data)), nil //nolint:gosec
}

func decodeByteArray(r io.Reader) ([]byte, error) {
	var length wire.VarInt
	if err := length.Decode(r); err != nil {
		return nil, err
	}

	buf := make([]byte, int(length))
	if err := wire.ReadFull(r, buf); err != nil {
		return nil, err
	}

	return buf, nil
}

func encodeByteArray(w io.Writer, b []byte) error {
	if err := wire.VarInt(len(b)).Encode(w); err != nil { //nolint:gosec
		return err
	}

	return wire.WriteAll(w, b)
}

func byteArraySize(b []byte) (wire.VarInt, error) {
	prefixSize, err := wire.VarInt(len(b)).Size() //nolint:gosec
	if err != nil {
		return 0, err
	}

	return prefixSize + wire.VarInt(len(b)), nil //nolint:gosec
}
