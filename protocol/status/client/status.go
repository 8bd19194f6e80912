// Package client implements the status phase's client-bound messages
// (grounded on original_source/src/packets/status/client.rs).
package client

import (
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/codec"
	"github.com/SubZeroLabs/MinecraftTypes/types"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// StatusResponse carries the server-list-ping JSON payload.
type StatusResponse struct {
	JSONResponse types.String
}

func (s *StatusResponse) Decode(r io.Reader) error {
	s.JSONResponse = types.String{Limit: types.LimitServerAddr}
	return codec.DecodeField("StatusResponse", "json_response", func() error {
		return s.JSONResponse.Decode(r)
	})
}

func (s StatusResponse) Encode(w io.Writer) error {
	return codec.EncodeField("StatusResponse", "json_response", func() error {
		return s.JSONResponse.Encode(w)
	})
}

func (s StatusResponse) Size() (wire.VarInt, error) {
	return s.JSONResponse.Size()
}

// Pong echoes the client-bound reply to a Ping.
type Pong struct {
	Payload int64
}

func (p *Pong) Decode(r io.Reader) error {
	return codec.DecodeField("Pong", "payload", func() error {
		v, err := wire.ReadI64(r)
		p.Payload = v
		return err
	})
}

func (p Pong) Encode(w io.Writer) error {
	return codec.EncodeField("Pong", "payload", func() error {
		return wire.WriteI64(w, p.Payload)
	})
}

func (p Pong) Size() (wire.VarInt, error) {
	return 8, nil
}
