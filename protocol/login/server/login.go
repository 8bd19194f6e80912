// Package server implements the login phase's server-bound messages
// (grounded on original_source/src/packets/login/server.rs).
package server

import (
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/codec"
	"github.com/SubZeroLabs/MinecraftTypes/types"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// LoginStart opens login with the requested username.
type LoginStart struct {
	Name types.String
}

func (l *LoginStart) Decode(r io.Reader) error {
	l.Name = types.String{Limit: types.LimitPlayerName}
	return codec.DecodeField("LoginStart", "name", func() error { return l.Name.Decode(r) })
}

func (l LoginStart) Encode(w io.Writer) error {
	return codec.EncodeField("LoginStart", "name", func() error { return l.Name.Encode(w) })
}

func (l LoginStart) Size() (wire.VarInt, error) { return l.Name.Size() }

// EncryptionResponse answers an EncryptionRequest with the encrypted
// shared secret and verify token, each a (VarInt, []byte) pair.
type EncryptionResponse struct {
	SharedSecret []byte
	VerifyToken  []byte
}

func (e *EncryptionResponse) Decode(r io.Reader) error {
	if err := codec.DecodeField("EncryptionResponse", "shared_secret", func() error {
		buf, err := decodeByteArray(r)
		e.SharedSecret = buf
		return err
	}); err != nil {
		return err
	}

	return codec.DecodeField("EncryptionResponse", "verify_token", func() error {
		buf, err := decodeByteArray(r)
		e.VerifyToken = buf
		return err
	})
}

func (e EncryptionResponse) Encode(w io.Writer) error {
	if err := codec.EncodeField("EncryptionResponse", "shared_secret", func() error {
		return encodeByteArray(w, e.SharedSecret)
	}); err != nil {
		return err
	}

	return codec.EncodeField("EncryptionResponse", "verify_token", func() error {
		return encodeByteArray(w, e.VerifyToken)
	})
}

func (e EncryptionResponse) Size() (wire.VarInt, error) {
	ssSize, err := byteArraySize(e.SharedSecret)
	if err != nil {
		return 0, err
	}

	vtSize, err := byteArraySize(e.VerifyToken)
	if err != nil {
		return 0, err
	}

	return ssSize + vtSize, nil
}

// LoginPluginResponse answers a LoginPluginRequest; Data is
// reader-terminated and only meaningful when Successful is true.
type LoginPluginResponse struct {
	MessageID  wire.VarInt
	Successful bool
	Data       []byte
}

func (l *LoginPluginResponse) Decode(r io.Reader) error {
	if err := codec.DecodeField("LoginPluginResponse", "message_id", func() error {
		return l.MessageID.Decode(r)
	}); err != nil {
		return err
	}

	if err := codec.DecodeField("LoginPluginResponse", "successful", func() error {
		v, err := wire.ReadBool(r)
		l.Successful = v
		return err
	}); err != nil {
		return err
	}

	return codec.DecodeField("LoginPluginResponse", "data", func() error {
		data, err := types.ReadAll(r)
		l.Data = []byte(data)
		return err
	})
}

func (l LoginPluginResponse) Encode(w io.Writer) error {
	if err := codec.EncodeField("LoginPluginResponse", "message_id", func() error {
		return l.MessageID.Encode(w)
	}); err != nil {
		return err
	}

	if err := codec.EncodeField("LoginPluginResponse", "successful", func() error {
		return wire.WriteBool(w, l.Successful)
	}); err != nil {
		return err
	}

	return codec.EncodeField("LoginPluginResponse", "data", func() error {
		return wire.WriteAll(w, l.Data)
	})
}

func (l LoginPluginResponse) Size() (wire.VarInt, error) {
	idSize, err := l.MessageID.Size()
	if err != nil {
		return 0, err
	}

	return idSize + 1 + wire.VarInt(len(l.Data)), nil //nolint:gosec
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
